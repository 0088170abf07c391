package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"

	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"

	JobKindReservationEvent = "reservation_event"
)

type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              uuid.UUID
	Endpoint            string
	Status              string
	RequestHash         string
	ResultReservationID *uuid.UUID
	ExpiresAt           time.Time
}

func (r *IdempotencyRecord) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

type NewNotificationJob struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
	RunAt    time.Time
}

// CompletionScope narrows a completion pass; nil fields match everyone.
type CompletionScope struct {
	GuestID *uuid.UUID
	HostID  *uuid.UUID
	Limit   int32
}

type CompletedReservation struct {
	ID            uuid.UUID
	ListingID     uuid.UUID
	GuestID       uuid.UUID
	HostID        uuid.UUID
	PaymentStatus string
}

type UserCredentials struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

// CalendarCache holds occupied dates per listing and window. Readers take the
// generation before loading from the store and pass it to Get and Set, so a
// result loaded before an Invalidate is stored where no later read looks.
type CalendarCache interface {
	Generation(ctx context.Context, listingID uuid.UUID) (int64, error)
	Get(ctx context.Context, listingID uuid.UUID, gen int64, from, to time.Time) ([]time.Time, bool, error)
	Set(ctx context.Context, listingID uuid.UUID, gen int64, from, to time.Time, dates []time.Time) error
	Invalidate(ctx context.Context, listingID uuid.UUID) error
}

// EventPublisher delivers an already-encoded event to subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}
