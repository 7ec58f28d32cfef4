package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/job-board-service/internal/events"
)

// AuditService records the mutation trail of the job collection.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to job mutation events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventJobCreated, a.handleEvent)
	a.dispatcher.Subscribe(events.EventJobUpdated, a.handleEvent)
	a.dispatcher.Subscribe(events.EventJobDeleted, a.handleEvent)
}

func (a *AuditService) handleEvent(_ context.Context, event events.Event) error {
	a.logger.Info("job mutation",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.Int("job_id", event.JobID),
		zap.String("actor", event.Actor),
		zap.Any("payload", event.Payload),
	)
	return nil
}
