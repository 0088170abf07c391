//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/domain/review"
	"rental-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestNewReview(t *testing.T) {
	t.Run("success: defaults", func(t *testing.T) {
		b := builder.NewReviewBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, b.ID, actual.ID())
		assert.Equal(t, b.ListingID, actual.ListingID())
		assert.Equal(t, b.ReservationID, actual.ReservationID())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Spotless flat, great host", actual.Comment().String())
	})

	t.Run("success: nil id is generated", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().With(func(b *builder.ReviewBuilder) { b.ID = uuid.Nil }).BuildDomain()
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, actual.ID())
	})

	t.Run("rating", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "error: below minimum", mutate: func(b *builder.ReviewBuilder) { b.Rating = 0 }, errIs: review.ErrInvalidRating},
			{name: "success: minimum", mutate: func(b *builder.ReviewBuilder) { b.Rating = 1 }},
			{name: "success: maximum", mutate: func(b *builder.ReviewBuilder) { b.Rating = 5 }},
			{name: "error: above maximum", mutate: func(b *builder.ReviewBuilder) { b.Rating = 6 }, errIs: review.ErrInvalidRating},
		})
	})

	t.Run("comment", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "error: empty", mutate: func(b *builder.ReviewBuilder) { b.Comment = "" }, errIs: review.ErrEmptyComment},
			{name: "error: whitespace only", mutate: func(b *builder.ReviewBuilder) { b.Comment = " \t\n" }, errIs: review.ErrEmptyComment},
			{name: "success: max length", mutate: func(b *builder.ReviewBuilder) { b.Comment = strings.Repeat("a", review.MaxCommentLength) }},
			{name: "error: too long", mutate: func(b *builder.ReviewBuilder) { b.Comment = strings.Repeat("a", review.MaxCommentLength+1) }, errIs: review.ErrCommentTooLong},
			{name: "success: multibyte counted as runes", mutate: func(b *builder.ReviewBuilder) { b.Comment = strings.Repeat("é", review.MaxCommentLength) }},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReviewBuilder()
			tc.mutate(b)
			rev, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, rev)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rev)
		})
	}
}

func TestEligibility(t *testing.T) {
	guestID := uuid.New()

	tests := []struct {
		name     string
		status   reservation.Status
		reviewer uuid.UUID
		errIs    error
	}{
		{name: "success: completed stay by its guest", status: reservation.StatusCompleted, reviewer: guestID},
		{name: "error: confirmed stay", status: reservation.StatusConfirmed, reviewer: guestID, errIs: review.ErrReservationNotEligible},
		{name: "error: cancelled stay", status: reservation.StatusCancelled, reviewer: guestID, errIs: review.ErrReservationNotEligible},
		{name: "error: someone else's stay", status: reservation.StatusCompleted, reviewer: uuid.New(), errIs: review.ErrNotReservationGuest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := review.Eligibility{ReservationID: uuid.New(), ListingID: uuid.New(), GuestID: guestID, Status: tt.status}
			err := e.Check(tt.reviewer)
			if tt.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestReview_Edit(t *testing.T) {
	now := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	rating := 2
	comment := "  Noisy at night  "

	t.Run("success: author edits both fields", func(t *testing.T) {
		b := builder.NewReviewBuilder()
		rev, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, rev.Edit(b.GuestID, &rating, &comment, now))
		assert.Equal(t, 2, rev.Rating().Value())
		assert.Equal(t, "Noisy at night", rev.Comment().String())
		assert.Equal(t, now, rev.UpdatedAt())
	})

	t.Run("success: nil fields are kept", func(t *testing.T) {
		b := builder.NewReviewBuilder()
		rev, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, rev.Edit(b.GuestID, nil, nil, now))
		assert.Equal(t, 5, rev.Rating().Value())
	})

	t.Run("error: not the author", func(t *testing.T) {
		rev, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)

		err = rev.Edit(uuid.New(), &rating, nil, now)
		assert.ErrorIs(t, err, review.ErrNotAuthor)
	})

	t.Run("error: invalid rating leaves review untouched", func(t *testing.T) {
		b := builder.NewReviewBuilder()
		rev, err := b.BuildDomain()
		require.NoError(t, err)

		bad := 0
		err = rev.Edit(b.GuestID, &bad, nil, now)
		assert.ErrorIs(t, err, review.ErrInvalidRating)
		assert.Equal(t, 5, rev.Rating().Value())
	})
}
