package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/repository"
)

// AuditService records domain events to the structured log and a capped
// trail, so account and offer mutations stay traceable.
type AuditService struct {
	dispatcher events.Dispatcher
	trail      repository.AuditTrail
	logger     *zap.Logger
}

// NewAuditService creates the service. Trail may be nil; events are then
// only logged.
func NewAuditService(dispatcher events.Dispatcher, trail repository.AuditTrail, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, trail: trail, logger: logger}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventUserRegistered, a.record)
	a.dispatcher.Subscribe(events.EventOfferCreated, a.record)
	a.dispatcher.Subscribe(events.EventOfferDeleted, a.record)
}

func (a *AuditService) record(ctx context.Context, event events.Event) error {
	a.logger.Info("audit",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.String("actor", event.Actor.Username),
		zap.Any("payload", event.Payload))

	if a.trail == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		a.logger.Warn("audit record marshal failed", zap.Error(err))
		return err
	}
	if err := a.trail.Append(ctx, payload); err != nil {
		a.logger.Warn("audit trail append failed", zap.Error(err))
		return err
	}
	return nil
}
