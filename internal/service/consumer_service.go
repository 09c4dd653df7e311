package service

import (
	"context"
	"encoding/json"

	"astro-chat-be/internal/entity"
	"astro-chat-be/internal/pkg/logger"
	"astro-chat-be/internal/repository/unitofwork"
	"astro-chat-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService persists user-activity events off the request path.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     log,
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
	var event events.UserActivityEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal activity event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	var details json.RawMessage
	if len(event.Details) > 0 {
		if raw, err := json.Marshal(event.Details); err == nil {
			details = raw
		}
	}

	activity := &entity.UserActivity{
		Id:      uuid.New(),
		UserId:  event.UserID,
		Action:  event.Action,
		Details: details,
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserActivityRepository().Create(ctx, activity); err != nil {
		cs.logger.Error("ConsumerService", "Failed to persist user activity", map[string]interface{}{
			"error":  err.Error(),
			"userId": event.UserID,
			"action": event.Action,
		})
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
