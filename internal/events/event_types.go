package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventJobCreated EventType = "job_created"
	EventJobUpdated EventType = "job_updated"
	EventJobDeleted EventType = "job_deleted"
)

// Event represents a job mutation emitted by the service layer.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	JobID     int         `json:"job_id"`
	Actor     string      `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// JobCreatedPayload payload.
type JobCreatedPayload struct {
	Title   string `json:"title"`
	Company string `json:"company"`
}

// JobUpdatedPayload payload.
type JobUpdatedPayload struct {
	Title   string `json:"title"`
	Company string `json:"company"`
}

// JobDeletedPayload payload.
type JobDeletedPayload struct{}
