package bootstrap

import (
	"context"
	"fmt"

	"noteboard-be/internal/config"
	"noteboard-be/internal/controller"
	"noteboard-be/internal/handler"
	"noteboard-be/internal/mapper"
	"noteboard-be/internal/pkg/logger"
	"noteboard-be/internal/repository/contract"
	"noteboard-be/internal/repository/implementation"
	"noteboard-be/internal/repository/memory"
	"noteboard-be/internal/service"
	"noteboard-be/internal/websocket"
	pktNats "noteboard-be/pkg/nats"
	"noteboard-be/pkg/richtext"
	pktStore "noteboard-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	NoteController  controller.INoteController
	BoardController controller.IBoardController
	BoardHandler    *handler.BoardHandler

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	WebSocketHub    *websocket.Hub

	NoteService service.INoteService
	Logger      logger.ILogger

	store   contract.NoteStore
	pubSub  *gochannel.GoChannel
	natsPub *pktNats.Publisher
}

func NewContainer(cfg *config.Config) (*Container, error) {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	store, err := implementation.NewNoteStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("open note store: %w", err)
	}
	sysLogger.Info("BOOT", "Note store opened", map[string]interface{}{"driver": cfg.Store.Driver})

	caps := richtext.DefaultCapabilities(cfg.Board.DefaultFontSize)
	noteMapper := mapper.NewNoteMapper(richtext.NewSanitizer(caps))

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)

	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			sysLogger.Warn("BOOT", "Failed to connect to NATS Publisher", map[string]interface{}{"error": err.Error()})
			natsPub = nil
		}
	}

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Board.EventsTopic, pubSub)
	noteService := service.NewNoteService(store, noteMapper, publisherService, sysLogger, service.NoteServiceOptions{
		Key:          cfg.Store.Key,
		WriteTimeout: cfg.Store.WriteTimeout,
	})
	noteService.Load(context.Background())

	sessionRepo := memory.NewSessionRepository(cfg.Board.SessionTTL)
	sessionRepo.OnEvict(func(sess *pktStore.Session) {
		sess.Lock()
		dirty := sess.Draft != nil && sess.Draft.Snapshot().Dirty
		sess.Unlock()
		if dirty {
			sysLogger.Warn("BOARD", "Board session expired with an uncommitted draft", map[string]interface{}{"session_id": sess.ID})
		}
	})
	boardService := service.NewBoardService(noteService, sessionRepo, noteMapper, sysLogger, service.BoardServiceOptions{
		DragThreshold: cfg.Board.DragThreshold,
		Capabilities:  caps,
	})

	// WebSocket Hub
	wsHub := websocket.NewHub(sysLogger)
	go wsHub.Run()

	var mirror service.EventMirror
	if natsPub != nil {
		mirror = natsPub
	}
	consumerService := service.NewConsumerService(pubSub, cfg.Board.EventsTopic, wsHub, mirror, sysLogger)

	// 4. Controllers
	return &Container{
		NoteController:  controller.NewNoteController(noteService, noteMapper),
		BoardController: controller.NewBoardController(boardService),
		BoardHandler:    handler.NewBoardHandler(boardService, wsHub, cfg.App.JwtSecret, sysLogger),
		ConsumerService: consumerService,
		WebSocketHub:    wsHub,
		NoteService:     noteService,
		Logger:          sysLogger,
		store:           store,
		pubSub:          pubSub,
		natsPub:         natsPub,
	}, nil
}

// Close releases the store, the event bus and the NATS connection.
func (c *Container) Close() error {
	if c.natsPub != nil {
		c.natsPub.Close()
	}
	if err := c.pubSub.Close(); err != nil {
		c.Logger.Warn("BOOT", "Failed to close event bus", map[string]interface{}{"error": err.Error()})
	}
	err := c.store.Close()
	_ = c.Logger.Sync()
	return err
}
