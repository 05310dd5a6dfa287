package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"

	"outfix-be/internal/constant"
	"outfix-be/internal/pkg/logger"
	"outfix-be/internal/repository/memory"
	"outfix-be/pkg/events"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService credits style points for chat activity. Points land
// eventually; a points read racing a chat may briefly see the old balance.
type consumerService struct {
	subscriber  message.Subscriber
	sessionRepo *memory.SessionRepository
	log         logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	sessionRepo *memory.SessionRepository,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:  subscriber,
		sessionRepo: sessionRepo,
		log:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, events.TopicChatSent)
	if err != nil {
		return err
	}

	cs.log.Info("consumer_service", "listening for chat events", map[string]interface{}{
		"topic": events.TopicChatSent,
	})

	for msg := range messages {
		cs.handleChatSent(msg)
		msg.Ack()
	}
	return nil
}

func (cs *consumerService) handleChatSent(msg *message.Message) {
	var evt events.ChatSent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		cs.log.Warn("consumer_service", "dropping malformed chat event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	session, ok := cs.sessionRepo.Get(evt.SessionId)
	if !ok {
		// Session may have expired between publish and delivery.
		return
	}
	session.AddPoints(constant.StylePointsPerChat)
}
