package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spec-kit/job-board-service/internal/domain"
	"github.com/spec-kit/job-board-service/internal/persistence"
)

// ErrNotFound reports an absent job id.
var ErrNotFound = errors.New("job not found")

// JobRepository encapsulates job collection persistence.
type JobRepository interface {
	List(ctx context.Context, page, perPage int) (*domain.JobPage, error)
	Create(ctx context.Context, job domain.Job) (*domain.Job, error)
	Update(ctx context.Context, id int, job domain.Job) (*domain.Job, error)
	Delete(ctx context.Context, id int) error
}

// jobDocument is the on-disk layout of the collection.
type jobDocument struct {
	Items []domain.Job `json:"items"`
}

// EmptyDocument is the initial contents of a fresh backing file.
func EmptyDocument() []byte {
	return []byte(`{"items":[]}`)
}

type fileJobRepository struct {
	store *persistence.FileStore
}

// NewJobRepository instantiates the file-backed repository.
func NewJobRepository(store *persistence.FileStore) JobRepository {
	return &fileJobRepository{store: store}
}

// List returns the slice [page*perPage, page*perPage+perPage) of the
// collection along with pagination metadata. Pages past the end are
// empty, the last page may be short. Callers pass page >= 0 and
// perPage > 0.
func (r *fileJobRepository) List(_ context.Context, page, perPage int) (*domain.JobPage, error) {
	var result *domain.JobPage
	err := r.store.View(func(data []byte) error {
		doc, err := decodeDocument(data)
		if err != nil {
			return err
		}
		total := len(doc.Items)
		start := page * perPage
		end := start + perPage
		if start > total {
			start = total
		}
		if end > total {
			end = total
		}
		items := make([]domain.Job, end-start)
		copy(items, doc.Items[start:end])

		result = &domain.JobPage{
			Items:      items,
			Total:      total,
			Page:       page,
			PerPage:    perPage,
			TotalPages: (total + perPage - 1) / perPage,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Create appends a record with id max(existing)+1, or 1 for an empty
// collection, and rewrites the file.
func (r *fileJobRepository) Create(_ context.Context, job domain.Job) (*domain.Job, error) {
	var created domain.Job
	err := r.store.Update(func(data []byte) ([]byte, error) {
		doc, err := decodeDocument(data)
		if err != nil {
			return nil, err
		}
		maxID := 0
		for _, item := range doc.Items {
			if item.ID > maxID {
				maxID = item.ID
			}
		}
		job.ID = maxID + 1
		doc.Items = append(doc.Items, job)
		created = job
		return encodeDocument(doc)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the mutable fields of the record with the given id.
// The id itself is immutable. Returns ErrNotFound, leaving the file
// untouched, when the id is absent.
func (r *fileJobRepository) Update(_ context.Context, id int, job domain.Job) (*domain.Job, error) {
	var updated domain.Job
	err := r.store.Update(func(data []byte) ([]byte, error) {
		doc, err := decodeDocument(data)
		if err != nil {
			return nil, err
		}
		idx := indexOf(doc.Items, id)
		if idx < 0 {
			return nil, ErrNotFound
		}
		job.ID = id
		doc.Items[idx] = job
		updated = job
		return encodeDocument(doc)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the record with the given id. Returns ErrNotFound,
// leaving the file untouched, when the id is absent.
func (r *fileJobRepository) Delete(_ context.Context, id int) error {
	return r.store.Update(func(data []byte) ([]byte, error) {
		doc, err := decodeDocument(data)
		if err != nil {
			return nil, err
		}
		idx := indexOf(doc.Items, id)
		if idx < 0 {
			return nil, ErrNotFound
		}
		doc.Items = append(doc.Items[:idx], doc.Items[idx+1:]...)
		return encodeDocument(doc)
	})
}

func indexOf(items []domain.Job, id int) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func decodeDocument(data []byte) (*jobDocument, error) {
	var doc jobDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode job store: %w", err)
	}
	if doc.Items == nil {
		doc.Items = []domain.Job{}
	}
	return &doc, nil
}

func encodeDocument(doc *jobDocument) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode job store: %w", err)
	}
	return data, nil
}
