//go:build unit

package queries_test

import (
	"time"

	"rental-booking/internal/infra"

	"github.com/jackc/pgx/v5"
)

var testNow = time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)

func notFoundErr() error {
	return infra.WrapRepoErr("row not found", pgx.ErrNoRows)
}
