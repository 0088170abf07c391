//go:build unit

package infra

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr_Classification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want RepositoryErrorKind
	}{
		{"no rows", pgx.ErrNoRows, KindNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, KindDuplicateKey},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, KindForeignKeyViolated},
		{"exclusion violation", &pgconn.PgError{Code: "23P01", ConstraintName: "reservations_no_overlap"}, KindConflict},
		{"check violation", &pgconn.PgError{Code: "23514"}, KindConflict},
		{"other pg error", &pgconn.PgError{Code: "42P01"}, KindDBFailure},
		{"plain error", errors.New("connection reset"), KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapRepoErr("operation failed", tt.err)

			assert.True(t, IsKind(err, tt.want), "got %v", err)
			assert.True(t, errors.Is(err, tt.err), "cause must stay reachable")
		})
	}
}

func TestWrapRepoErr_ExplicitKind(t *testing.T) {
	err := WrapRepoErr("idempotency key expired", nil, KindNotFound)

	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, "NOT_FOUND: idempotency key expired", err.Error())
}

func TestIsKind_NonRepositoryError(t *testing.T) {
	assert.False(t, IsKind(errors.New("x"), KindNotFound))
	assert.False(t, IsKind(nil, KindNotFound))
}
