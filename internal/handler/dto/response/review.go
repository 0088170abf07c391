package response

import (
	"rental-booking/internal/usecase/queries"
)

type ReviewResponse struct {
	ID            string `json:"id"`
	ReservationID string `json:"reservation_id"`
	ListingID     string `json:"listing_id"`
	ListingTitle  string `json:"listing_title"`
	GuestID       string `json:"guest_id"`
	GuestName     string `json:"guest_name"`
	Rating        int32  `json:"rating"`
	Comment       string `json:"comment"`
	CreatedAt     int64  `json:"created_at"`
	UpdatedAt     int64  `json:"updated_at"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:            v.ID.String(),
		ReservationID: v.ReservationID.String(),
		ListingID:     v.ListingID.String(),
		ListingTitle:  v.ListingTitle,
		GuestID:       v.GuestID.String(),
		GuestName:     v.GuestName,
		Rating:        v.Rating,
		Comment:       v.Comment,
		CreatedAt:     v.CreatedAt.Unix(),
		UpdatedAt:     v.UpdatedAt.Unix(),
	}
}

type ReviewListItemResponse struct {
	ID        string `json:"id"`
	GuestName string `json:"guest_name"`
	Rating    int32  `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt int64  `json:"created_at"`
}

func FromReviewList(items []*queries.ReviewListItem) []*ReviewListItemResponse {
	res := make([]*ReviewListItemResponse, len(items))
	for i, it := range items {
		res[i] = &ReviewListItemResponse{
			ID:        it.ID.String(),
			GuestName: it.GuestName,
			Rating:    it.Rating,
			Comment:   it.Comment,
			CreatedAt: it.CreatedAt.Unix(),
		}
	}
	return res
}

type ListingRatingStatsResponse struct {
	ListingID     string  `json:"listing_id"`
	TotalReviews  int32   `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
	Rating1Count  int32   `json:"rating_1_count"`
	Rating2Count  int32   `json:"rating_2_count"`
	Rating3Count  int32   `json:"rating_3_count"`
	Rating4Count  int32   `json:"rating_4_count"`
	Rating5Count  int32   `json:"rating_5_count"`
	UpdatedAt     int64   `json:"updated_at"`
}

func FromListingRatingStats(s *queries.ListingRatingStats) *ListingRatingStatsResponse {
	return &ListingRatingStatsResponse{
		ListingID:     s.ListingID.String(),
		TotalReviews:  s.TotalReviews,
		AverageRating: s.AverageRating,
		Rating1Count:  s.Rating1Count,
		Rating2Count:  s.Rating2Count,
		Rating3Count:  s.Rating3Count,
		Rating4Count:  s.Rating4Count,
		Rating5Count:  s.Rating5Count,
		UpdatedAt:     s.UpdatedAt.Unix(),
	}
}
