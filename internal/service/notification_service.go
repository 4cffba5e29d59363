package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Spencer4792/jwt-pizza-service/internal/events"
)

// NotificationService logs ordering domain events as they happen.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleEvent)
	n.dispatcher.Subscribe(events.EventUserLoggedIn, n.handleEvent)
	n.dispatcher.Subscribe(events.EventOrderPlaced, n.handleEvent)
	n.dispatcher.Subscribe(events.EventOrderFulfilled, n.handleEvent)
	n.dispatcher.Subscribe(events.EventOrderFulfillFailed, n.handleEvent)
}

func (n *NotificationService) handleEvent(_ context.Context, event events.Event) error {
	n.logger.Info("domain event",
		zap.String("type", string(event.Type)),
		zap.String("user_id", event.UserID),
		zap.Any("payload", event.Payload))
	return nil
}
