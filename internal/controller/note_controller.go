package controller

import (
	"errors"

	"noteboard-be/internal/dto"
	"noteboard-be/internal/entity"
	"noteboard-be/internal/mapper"
	"noteboard-be/internal/pkg/serverutils"
	"noteboard-be/internal/service"
	"noteboard-be/pkg/gesture"
	"noteboard-be/pkg/navigation"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Reorder(ctx *fiber.Ctx) error
	Move(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
	mapper      *mapper.NoteMapper
}

func NewNoteController(noteService service.INoteService, noteMapper *mapper.NoteMapper) INoteController {
	return &noteController{
		noteService: noteService,
		mapper:      noteMapper,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/note/v1")
	h.Use(auth)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Put(":id/reorder", c.Reorder)
	h.Put(":id/move", c.Move)
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	notes := c.noteService.Search(query)

	return ctx.JSON(serverutils.SuccessResponse("Success list notes", dto.ListNotesResponse{
		Query: query,
		Total: len(notes),
		Notes: c.mapper.ToResponses(notes),
	}))
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	note := c.noteService.Create(ctx.UserContext(), req.Content)
	if note == nil {
		return ctx.JSON(serverutils.SuccessResponse("Empty note ignored", dto.CreateNoteResponse{Created: false}))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create note", dto.CreateNoteResponse{
		Created: true,
		Note:    c.mapper.ToResponse(*note),
	}))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	path := navigation.Resolve(navigation.NotePath(id), func(id string) bool {
		_, ok := c.noteService.Get(id)
		return ok
	})
	if path == navigation.BoardPath {
		return ctx.Status(fiber.StatusNotFound).JSON(&serverutils.BaseResponse[dto.ShowNoteResponse]{
			Success: false,
			Code:    fiber.StatusNotFound,
			Message: "Note not found",
			Data:    dto.ShowNoteResponse{Redirect: navigation.BoardPath},
		})
	}

	note, _ := c.noteService.Get(id)
	return ctx.JSON(serverutils.SuccessResponse("Success show note", dto.ShowNoteResponse{
		Note: c.mapper.ToResponse(*note),
	}))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	req.Id = ctx.Params("id")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	err := c.noteService.UpdateContent(ctx.UserContext(), req.Id, req.Content)
	if errors.Is(err, service.ErrNoteNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, err.Error()))
	}
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update note", dto.UpdateNoteResponse{Id: req.Id}))
}

func (c *noteController) Reorder(ctx *fiber.Ctx) error {
	var req dto.ReorderNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	req.Id = ctx.Params("id")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	moved := c.noteService.Reorder(ctx.UserContext(), req.Id, req.TargetId)
	return ctx.JSON(serverutils.SuccessResponse("Success reorder note", c.orderResponse(moved)))
}

func (c *noteController) Move(ctx *fiber.Ctx) error {
	var req dto.MoveNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	req.Id = ctx.Params("id")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	moved := c.noteService.Move(ctx.UserContext(), req.Id, gesture.Direction(req.Direction))
	return ctx.JSON(serverutils.SuccessResponse("Success move note", c.orderResponse(moved)))
}

func (c *noteController) orderResponse(moved bool) dto.ReorderNoteResponse {
	return dto.ReorderNoteResponse{
		Moved: moved,
		Order: noteIds(c.noteService.List()),
	}
}

func noteIds(notes []entity.Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Id)
	}
	return out
}
