package service

import (
	"context"
	"encoding/json"

	"noteboard-be/internal/dto"
	"noteboard-be/internal/pkg/logger"
	"noteboard-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const consumerModule = "CONSUMER"

// BoardNotifier tells connected views that the board changed.
type BoardNotifier interface {
	BroadcastChange(change dto.BoardChangedMessage)
}

// EventMirror forwards board events outside the process.
type EventMirror interface {
	Publish(ctx context.Context, event events.Event) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	notifier  BoardNotifier
	mirror    EventMirror
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	notifier BoardNotifier,
	mirror EventMirror,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		notifier:  notifier,
		mirror:    mirror,
		logger:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var event events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error(consumerModule, "Failed to unmarshal board event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if cs.notifier != nil {
		cs.notifier.BroadcastChange(dto.BoardChangedMessage{
			Kind:   event.Type,
			NoteId: events.NoteID(event),
		})
	}

	// Delivery outside the process is best effort.
	if cs.mirror != nil {
		if err := cs.mirror.Publish(ctx, event); err != nil {
			cs.logger.Warn(consumerModule, "Failed to mirror board event", map[string]interface{}{"type": event.Type, "error": err.Error()})
		}
	}

	msg.Ack()
}
