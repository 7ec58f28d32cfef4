package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/job-board-service/internal/domain"
	"github.com/spec-kit/job-board-service/internal/events"
	"github.com/spec-kit/job-board-service/internal/repository"
	apperrors "github.com/spec-kit/job-board-service/pkg/util"
)

// JobInput carries the mutable fields of a job listing.
type JobInput struct {
	Type        string
	CreatedAt   string
	Company     string
	CompanyURL  string
	Location    string
	Title       string
	Description string
}

// JobService validates input and drives the repository, publishing an
// audit event for every successful mutation.
type JobService struct {
	repo       repository.JobRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewJobService builds the service.
func NewJobService(repo repository.JobRepository, dispatcher events.Dispatcher, logger *zap.Logger) *JobService {
	return &JobService{repo: repo, dispatcher: dispatcher, logger: logger}
}

// ListJobs returns one page of the collection. Negative page or
// non-positive perPage is invalid input, not silently clamped.
func (s *JobService) ListJobs(ctx context.Context, page, perPage int) (*domain.JobPage, error) {
	if page < 0 {
		return nil, apperrors.NewValidationError("page must not be negative", map[string]any{"page": page})
	}
	if perPage <= 0 {
		return nil, apperrors.NewValidationError("perPage must be positive", map[string]any{"perPage": perPage})
	}
	result, err := s.repo.List(ctx, page, perPage)
	if err != nil {
		return nil, s.storeError(err)
	}
	return result, nil
}

// CreateJob appends a listing and returns it with its assigned id.
func (s *JobService) CreateJob(ctx context.Context, actor domain.Identity, input JobInput) (*domain.Job, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, jobFromInput(input))
	if err != nil {
		return nil, s.storeError(err)
	}
	s.publish(ctx, events.EventJobCreated, created.ID, actor, events.JobCreatedPayload{Title: created.Title, Company: created.Company})
	return created, nil
}

// UpdateJob replaces the mutable fields of an existing listing.
func (s *JobService) UpdateJob(ctx context.Context, actor domain.Identity, id int, input JobInput) (*domain.Job, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, id, jobFromInput(input))
	if err != nil {
		return nil, s.storeError(err)
	}
	s.publish(ctx, events.EventJobUpdated, updated.ID, actor, events.JobUpdatedPayload{Title: updated.Title, Company: updated.Company})
	return updated, nil
}

// DeleteJob removes a listing by id.
func (s *JobService) DeleteJob(ctx context.Context, actor domain.Identity, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.storeError(err)
	}
	s.publish(ctx, events.EventJobDeleted, id, actor, events.JobDeletedPayload{})
	return nil
}

func validateInput(input JobInput) error {
	details := map[string]any{}
	if input.Title == "" {
		details["title"] = "required"
	}
	if input.Company == "" {
		details["company"] = "required"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("missing required fields", details)
	}
	return nil
}

func jobFromInput(input JobInput) domain.Job {
	return domain.Job{
		Type:        input.Type,
		CreatedAt:   input.CreatedAt,
		Company:     input.Company,
		CompanyURL:  input.CompanyURL,
		Location:    input.Location,
		Title:       input.Title,
		Description: input.Description,
	}
}

// storeError maps repository failures onto the error taxonomy. A
// missing id is a client error; anything else means the backing file
// is unreadable or unwritable and gets logged for the operator.
func (s *JobService) storeError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound("job", nil)
	}
	s.logger.Error("job store failure", zap.Error(err))
	return apperrors.NewStorageFailure(err)
}

func (s *JobService) publish(ctx context.Context, eventType events.EventType, jobID int, actor domain.Identity, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		JobID:     jobID,
		Actor:     actor.Username,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
