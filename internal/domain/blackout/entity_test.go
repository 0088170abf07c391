//go:build unit

package blackout_test

import (
	"strings"
	"testing"
	"time"

	"rental-booking/internal/domain/blackout"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlackout(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("日付は日単位に丸められる", func(t *testing.T) {
		b, err := blackout.NewBlackout(uuid.New(), time.Date(2024, 3, 5, 18, 30, 0, 0, time.UTC), "", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), b.Date())
		assert.Nil(t, b.Reason())
	})

	t.Run("理由は255文字まで", func(t *testing.T) {
		b, err := blackout.NewBlackout(uuid.New(), now, strings.Repeat("あ", blackout.MaxReasonLength), now)
		require.NoError(t, err)
		require.NotNil(t, b.Reason())

		_, err = blackout.NewBlackout(uuid.New(), now, strings.Repeat("a", blackout.MaxReasonLength+1), now)
		assert.ErrorIs(t, err, blackout.ErrReasonTooLong)
	})
}
