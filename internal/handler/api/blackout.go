package api

import (
	"net/http"

	"rental-booking/internal/domain/stay"
	reqdto "rental-booking/internal/handler/dto/request"
	resdto "rental-booking/internal/handler/dto/response"
	"rental-booking/internal/handler/httperr"
	"rental-booking/internal/usecase/commands"
	"rental-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BlackoutHandler struct {
	cmds commands.BlackoutCommands
	q    queries.BlackoutQueries
}

func NewBlackoutHandler(cmds commands.BlackoutCommands, q queries.BlackoutQueries) *BlackoutHandler {
	return &BlackoutHandler{cmds: cmds, q: q}
}

// @Summary Block a date
// @Description Host marks a night as unavailable. Existing reservations are not affected.
// @Tags blackouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.BlockDateRequest true "Block request"
// @Success 201 {object} resdto.BlackoutResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /listings/{id}/blackouts [post]
func (h *BlackoutHandler) Block(c *gin.Context) {
	listingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	hostID, _, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.BlockDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	date, err := stay.ParseDate(req.Date)
	if err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	view, err := h.cmds.BlockDate(c.Request.Context(), listingID, hostID, date, req.Reason)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBlackoutView(view))
}

// @Summary Unblock a date
// @Tags blackouts
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param date path string true "Blocked date (YYYY-MM-DD)"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id}/blackouts/{date} [delete]
func (h *BlackoutHandler) Unblock(c *gin.Context) {
	listingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	hostID, _, ok := actor(c)
	if !ok {
		return
	}
	date, err := stay.ParseDate(c.Param("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	if err = h.cmds.UnblockDate(c.Request.Context(), listingID, hostID, date); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List blocked dates
// @Description Blocked dates in [from, to). Visible to the listing's host and admins.
// @Tags blackouts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end, exclusive (YYYY-MM-DD)"
// @Success 200 {array} resdto.BlackoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id}/blackouts [get]
func (h *BlackoutHandler) List(c *gin.Context) {
	listingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, role, ok := actor(c)
	if !ok {
		return
	}
	var q reqdto.WindowQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	from, to, err := parseDates(q.From, q.To)
	if err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	views, err := h.q.List(c.Request.Context(), actorID, role.String(), listingID, from, to)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBlackoutViews(views))
}
