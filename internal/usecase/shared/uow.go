package shared

import (
	"context"
	"time"

	"rental-booking/internal/domain/availability"
	"rental-booking/internal/domain/blackout"
	"rental-booking/internal/domain/listing"
	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/domain/review"
	"rental-booking/internal/domain/stay"
	"rental-booking/internal/domain/user"
	sqlc "rental-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Listings() ListingRepository
	Reservations() ReservationRepository
	Blackouts() BlackoutRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	UserByEmail(ctx context.Context, email string) (*UserCredentials, error)
	ReviewEligibility(ctx context.Context, reservationID uuid.UUID) (*review.Eligibility, error)
}

type ListingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error
	Update(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*listing.Listing, error)
	// LockForBooking serialises reservation writes per listing.
	LockForBooking(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*listing.Listing, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	UpdatePayment(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	ListInRange(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID, window stay.Range, statuses []reservation.Status) ([]availability.Booking, error)
	CompleteDue(ctx context.Context, tx sqlc.DBTX, today, now time.Time, scope CompletionScope) ([]CompletedReservation, error)
}

type BlackoutRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *blackout.Blackout) error
	Delete(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID, date time.Time) error
	ListDates(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID, window stay.Range) ([]time.Time, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error
	Update(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error
	Delete(ctx context.Context, tx sqlc.DBTX, reviewID uuid.UUID) error
	FindByID(ctx context.Context, tx sqlc.DBTX, reviewID uuid.UUID) (*review.Review, error)
}

type RatingStatsRepository interface {
	Recalc(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID) error
}

type IdempotencyRepository interface {
	// TryInsert reports false when the key already exists for the user.
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID) (*IdempotencyRecord, error)
	MarkCompleted(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, responseHash string, reservationID uuid.UUID) error
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt, now time.Time) (bool, error)
	DeleteExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}

type NotificationRepository interface {
	Enqueue(ctx context.Context, tx sqlc.DBTX, job NewNotificationJob) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now, leaseUntil time.Time, limit, maxAttempts int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, now time.Time) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, lastError string, retryAt, now time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, at time.Time) error
}
