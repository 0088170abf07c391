package api

import (
	"io"
	"net/http"

	reqdto "rental-booking/internal/handler/dto/request"
	resdto "rental-booking/internal/handler/dto/response"
	"rental-booking/internal/handler/httperr"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/usecase/commands"
	"rental-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const IdempotencyKeyHeader = "Idempotency-Key"

var ErrInvalidIdempotencyKey = errs.New("idempotency key must be a UUID")

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Request a stay. The reservation starts PENDING until the host confirms it.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID used to deduplicate retries"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Success 200 {object} resdto.ReservationResponse "Replayed response for a repeated idempotency key"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	guestID, _, ok := actor(c)
	if !ok {
		return
	}

	key, err := idempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid idempotency key", nil)
		return
	}

	var req reqdto.CreateReservationRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	result, err := h.cmds.CreateReservation(c.Request.Context(), in, guestID, key)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromReservationView(result.Reservation))
}

// @Summary Get reservation
// @Description Visible to the guest, the listing's host and admins
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, role, ok := actor(c)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actorID, role.String(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Confirm reservation
// @Description Host accepts a pending request. Fails if another confirmed stay now overlaps.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/confirm [post]
func (h *ReservationHandler) Confirm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	hostID, _, ok := actor(c)
	if !ok {
		return
	}

	view, err := h.cmds.ConfirmReservation(c.Request.Context(), id, hostID)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Reject reservation
// @Description Host declines a pending request
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ReasonRequest false "Optional reason"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/reject [post]
func (h *ReservationHandler) Reject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	hostID, _, ok := actor(c)
	if !ok {
		return
	}
	reason, ok := bindReason(c)
	if !ok {
		return
	}

	view, err := h.cmds.RejectReservation(c.Request.Context(), id, hostID, reason)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Cancel reservation
// @Description Guest or host cancels a pending or confirmed reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ReasonRequest false "Optional reason"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, _, ok := actor(c)
	if !ok {
		return
	}
	reason, ok := bindReason(c)
	if !ok {
		return
	}

	view, err := h.cmds.CancelReservation(c.Request.Context(), id, actorID, reason)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Record payment
// @Description Admin records the payment reference reported by the payment provider
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.PaymentRequest true "Payment request"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/payment [put]
func (h *ReservationHandler) RecordPayment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	view, err := h.cmds.RecordPayment(c.Request.Context(), id, req.Reference, req.Status)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List my reservations
// @Description Guest's reservations. Stays whose checkout has passed are reported as COMPLETED.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Router /reservations/mine [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	guestID, _, ok := actor(c)
	if !ok {
		return
	}
	var page reqdto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	views, err := h.q.ListForGuest(c.Request.Context(), guestID, page.Limit, page.Offset)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary List host reservations
// @Description Host's reservations grouped into pending, ongoing and past
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} resdto.HostReservationsResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reservations/host [get]
func (h *ReservationHandler) ListForHost(c *gin.Context) {
	hostID, _, ok := actor(c)
	if !ok {
		return
	}
	var page reqdto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	grouped, err := h.q.ListForHost(c.Request.Context(), hostID, page.Limit, page.Offset)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHostReservations(grouped))
}

// idempotencyKey returns nil when the header is absent.
func idempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	raw := c.GetHeader(IdempotencyKeyHeader)
	if raw == "" {
		return nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "parse idempotency key"), ErrInvalidIdempotencyKey)
	}
	return &key, nil
}

// bindReason accepts an empty body, including a chunked one with no length.
func bindReason(c *gin.Context) (string, bool) {
	if c.Request.ContentLength == 0 {
		return "", true
	}
	var req reqdto.ReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errs.Is(err, io.EOF) {
			return "", true
		}
		httperr.AbortWithBindError(c, err)
		return "", false
	}
	return req.Reason, true
}
