package api

import (
	"net/http"
	"time"

	"rental-booking/internal/domain/stay"
	reqdto "rental-booking/internal/handler/dto/request"
	resdto "rental-booking/internal/handler/dto/response"
	"rental-booking/internal/handler/httperr"
	"rental-booking/internal/usecase/commands"
	"rental-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	cmds         commands.ListingCommands
	q            queries.ListingQueries
	availability queries.AvailabilityQueries
}

func NewListingHandler(cmds commands.ListingCommands, q queries.ListingQueries, availability queries.AvailabilityQueries) *ListingHandler {
	return &ListingHandler{cmds: cmds, q: q, availability: availability}
}

// @Summary Create listing
// @Description Create a listing owned by the calling host
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateListingRequest true "Create listing request"
// @Success 201 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	hostID, _, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	view, err := h.cmds.CreateListing(c.Request.Context(), hostID, req.ToInput())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, view)
}

// @Summary Update listing
// @Description Partially update a listing. Only the owning host may update it.
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.UpdateListingRequest true "Update listing request"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /listings/{id} [patch]
func (h *ListingHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	hostID, _, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	view, err := h.cmds.UpdateListing(c.Request.Context(), id, hostID, req.ToInput())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	h.respond(c, http.StatusOK, view)
}

// @Summary Change listing status
// @Description Hosts toggle active and inactive. Admins may also suspend.
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.ChangeListingStatusRequest true "Status request"
// @Success 200 {object} resdto.ListingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /listings/{id}/status [put]
func (h *ListingHandler) ChangeStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, role, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.ChangeListingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	view, err := h.cmds.ChangeStatus(c.Request.Context(), id, actorID, role.String(), req.Status)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	h.respond(c, http.StatusOK, view)
}

// @Summary Get listing
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	h.respond(c, http.StatusOK, view)
}

// @Summary Search listings
// @Description Pages through active listings. Sorting defaults to newest first.
// @Tags listings
// @Produce json
// @Param guests query int false "Minimum guest capacity"
// @Param minPrice query string false "Minimum nightly price"
// @Param maxPrice query string false "Maximum nightly price"
// @Param hostId query string false "Host ID"
// @Param sortBy query string false "price or created_at"
// @Param sortOrder query string false "asc or desc"
// @Param page query int false "Page number, from 1"
// @Param perPage query int false "Page size"
// @Success 200 {object} resdto.ListingSearchResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /listings [get]
func (h *ListingHandler) Search(c *gin.Context) {
	var q reqdto.ListingSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	search, err := q.ToSearch()
	if err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	page, err := h.q.Search(c.Request.Context(), search, q.Page, q.PerPage)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	out, err := resdto.FromListingPage(page)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary List my listings
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.ListingResponse
// @Failure 401 {object} httperr.Response
// @Router /listings/mine [get]
func (h *ListingHandler) ListMine(c *gin.Context) {
	hostID, _, ok := actor(c)
	if !ok {
		return
	}
	var page reqdto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	views, err := h.q.ListByHost(c.Request.Context(), hostID, page.Limit, page.Offset)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	out, err := resdto.FromListingViews(views)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Check availability
// @Description Reports whether the stay can be booked and quotes its price when it can
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id}/availability [get]
func (h *ListingHandler) Availability(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.StayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	checkIn, checkOut, err := parseDates(q.CheckIn, q.CheckOut)
	if err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	view, err := h.availability.CheckAvailability(c.Request.Context(), id, checkIn, checkOut)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Get calendar
// @Description Lists occupied dates in [from, to). The window length is capped.
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end, exclusive (YYYY-MM-DD)"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id}/calendar [get]
func (h *ListingHandler) Calendar(c *gin.Context) {
	id, ok := pathID(c, "id")
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

	view, err := h.availability.GetCalendar(c.Request.Context(), id, from, to)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarView(view))
}

func (h *ListingHandler) respond(c *gin.Context, status int, view *queries.ListingView) {
	out, err := resdto.FromListingView(view)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(status, out)
}

func parseDates(a, b string) (time.Time, time.Time, error) {
	first, err := stay.ParseDate(a)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	second, err := stay.ParseDate(b)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return first, second, nil
}
