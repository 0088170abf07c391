package api

import (
	"net/http"

	reqdto "rental-booking/internal/handler/dto/request"
	resdto "rental-booking/internal/handler/dto/response"
	"rental-booking/internal/handler/httperr"
	"rental-booking/internal/usecase/commands"
	"rental-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

type reviewListQuery struct {
	MinRating *int   `form:"min_rating" binding:"omitempty,min=1,max=5"`
	MaxRating *int   `form:"max_rating" binding:"omitempty,min=1,max=5"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=200"`
	After     string `form:"after"`
}

// @Summary Create review
// @Description Review a completed stay. One review per reservation.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, _, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	id, err := h.cmds.CreateReview(c.Request.Context(), req.ToInput(), userID)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReviewView(view))
}

// @Summary Get review
// @Description Get a review by ID
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

// @Summary Update review
// @Description Update own review by ID
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Update review request"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, _, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	if err := h.cmds.UpdateReview(c.Request.Context(), id, req.ToInput(), actorID); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

// @Summary Delete review
// @Description Delete own review (admins can delete any)
// @Tags reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, role, ok := actor(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteReview(c.Request.Context(), id, actorID, role.String()); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List listing reviews
// @Description List reviews for a listing with optional rating filters and keyset pagination
// @Tags reviews
// @Produce json
// @Param id path string true "Listing ID"
// @Param min_rating query int false "Minimum rating (1-5)"
// @Param max_rating query int false "Maximum rating (1-5)"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.ReviewListItemResponse
// @Failure 400 {object} httperr.Response
// @Router /listings/{id}/reviews [get]
func (h *ReviewHandler) ListByListing(c *gin.Context) {
	listingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reviewListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	var cursor *queries.Cursor
	if q.After != "" {
		cursor = &queries.Cursor{After: q.After}
	}

	filters := queries.ReviewFilters{MinRating: q.MinRating, MaxRating: q.MaxRating}
	items, next, err := h.q.ListByListing(c.Request.Context(), listingID, filters, cursor, q.Limit)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	resp := gin.H{"reviews": resdto.FromReviewList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Listing rating stats
// @Description Get rating statistics for a listing
// @Tags reviews
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingRatingStatsResponse
// @Failure 400 {object} httperr.Response
// @Router /listings/{id}/rating-stats [get]
func (h *ReviewHandler) RatingStats(c *gin.Context) {
	listingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	stats, err := h.q.GetListingRatingStats(c.Request.Context(), listingID)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingRatingStats(stats))
}
