package controller

import (
	"noteboard-be/internal/pkg/serverutils"
	"noteboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBoardController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Capabilities(ctx *fiber.Ctx) error
}

type boardController struct {
	boardService service.IBoardService
}

func NewBoardController(boardService service.IBoardService) IBoardController {
	return &boardController{boardService: boardService}
}

func (c *boardController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/board/v1")
	h.Use(auth)
	h.Get("capabilities", c.Capabilities)
}

// Capabilities is the editor configuration the view builds its toolbar from.
func (c *boardController) Capabilities(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get capabilities", c.boardService.Capabilities()))
}
