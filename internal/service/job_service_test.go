package service

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/job-board-service/internal/config"
	"github.com/spec-kit/job-board-service/internal/domain"
	"github.com/spec-kit/job-board-service/internal/events"
	"github.com/spec-kit/job-board-service/internal/persistence"
	"github.com/spec-kit/job-board-service/internal/repository"
	apperrors "github.com/spec-kit/job-board-service/pkg/util"
)

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) published() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event{}, d.events...)
}

func newTestService(t *testing.T) (*JobService, *recordingDispatcher) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	store := persistence.NewFileStore(config.StoreConfig{Path: path}, zap.NewNop())
	if err := store.Init(repository.EmptyDocument()); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	dispatcher := &recordingDispatcher{}
	return NewJobService(repository.NewJobRepository(store), dispatcher, zap.NewNop()), dispatcher
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %v", err)
	}
	return domainErr.Code
}

var admin = domain.Identity{Username: "admin", Role: domain.RoleAdmin}

func TestListJobsRejectsInvalidPagination(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name          string
		page, perPage int
	}{
		{"zero perPage", 0, 0},
		{"negative perPage", 0, -5},
		{"negative page", -1, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ListJobs(ctx, tc.page, tc.perPage)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if code := domainCode(t, err); code != "VALIDATION_FAILED" {
				t.Errorf("expected VALIDATION_FAILED, got %s", code)
			}
		})
	}
}

func TestCreateJobRequiresTitleAndCompany(t *testing.T) {
	svc, dispatcher := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateJob(ctx, admin, JobInput{Location: "Remote"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if code := domainCode(t, err); code != "VALIDATION_FAILED" {
		t.Errorf("expected VALIDATION_FAILED, got %s", code)
	}
	if len(dispatcher.published()) != 0 {
		t.Error("rejected create must not publish an event")
	}
}

func TestCreateJobPublishesAuditEvent(t *testing.T) {
	svc, dispatcher := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateJob(ctx, admin, JobInput{Title: "Backend Engineer", Company: "Acme"})
	if err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected id 1, got %d", created.ID)
	}

	published := dispatcher.published()
	if len(published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(published))
	}
	event := published[0]
	if event.Type != events.EventJobCreated {
		t.Errorf("expected job_created event, got %s", event.Type)
	}
	if event.JobID != created.ID || event.Actor != "admin" {
		t.Errorf("unexpected event fields: %+v", event)
	}
}

func TestUpdateJobUnknownIDIsNotFound(t *testing.T) {
	svc, dispatcher := newTestService(t)
	ctx := context.Background()

	_, err := svc.UpdateJob(ctx, admin, 42, JobInput{Title: "Ghost", Company: "Nowhere"})
	if err == nil {
		t.Fatal("expected not found error")
	}
	if code := domainCode(t, err); code != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND, got %s", code)
	}
	if len(dispatcher.published()) != 0 {
		t.Error("failed update must not publish an event")
	}
}

func TestDeleteJobLifecycle(t *testing.T) {
	svc, dispatcher := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateJob(ctx, admin, JobInput{Title: "Backend Engineer", Company: "Acme"})
	if err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}

	if err := svc.DeleteJob(ctx, admin, created.ID); err != nil {
		t.Fatalf("DeleteJob failed: %v", err)
	}
	if err := svc.DeleteJob(ctx, admin, created.ID); err == nil {
		t.Fatal("expected not found for second delete")
	}

	published := dispatcher.published()
	if len(published) != 2 {
		t.Fatalf("expected create+delete events, got %d", len(published))
	}
	if published[1].Type != events.EventJobDeleted {
		t.Errorf("expected job_deleted event, got %s", published[1].Type)
	}
}
