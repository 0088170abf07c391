//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"rental-booking/internal/infra"
	"rental-booking/internal/infra/repository"
	repositorymock "rental-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRatingStatsRepository_Recalc(t *testing.T) {
	ctx := context.Background()
	listingID := uuid.New()

	testCases := []struct {
		name     string
		queryErr error
	}{
		{name: "success: stats recalculated"},
		{name: "error: database failure", queryErr: errors.New("database connection error")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockRatingStatsWriteQueries(ctrl)
			repo := repository.NewRatingStatsRepository(q)

			q.EXPECT().RecalcListingRatingStats(ctx, gomock.Any(), listingID).Return(tc.queryErr)

			err := repo.Recalc(ctx, nil, listingID)
			if tc.queryErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		})
	}
}
