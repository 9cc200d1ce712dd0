package services

import (
	"go.uber.org/zap"
)

// Event types published after successful mutations.
const (
	EventUserCreated    = "user.created"
	EventUserUpdated    = "user.updated"
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
)

// EventPublisher delivers domain events to an external broker.
type EventPublisher interface {
	Publish(eventType string, data interface{}) error
}

// publishEvent is best effort: a broker failure never fails the request.
func publishEvent(publisher EventPublisher, log *zap.Logger, eventType string, data interface{}) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(eventType, data); err != nil {
		log.Warn("failed to publish event", zap.String("type", eventType), zap.Error(err))
	}
}
