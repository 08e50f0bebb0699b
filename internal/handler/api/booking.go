package api

import (
	"net/http"

	reqdto "hotel-fastbill/internal/handler/dto/request"
	resdto "hotel-fastbill/internal/handler/dto/response"
	"hotel-fastbill/internal/handler/httperr"
	"hotel-fastbill/internal/usecase/commands"
	"hotel-fastbill/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary List bookings
// @Description Filter and page bookings, newest first. Rows that cannot be priced are flagged.
// @Tags bookings
// @Produce json
// @Param q query string false "Matches booking id, room name or notes"
// @Param from query string false "Keep check-in on or after (YYYY-MM-DD or YYYY-MM-DDTHH:mm)"
// @Param to query string false "Keep check-out on or before"
// @Param page query int false "Page, from 1"
// @Param perPage query int false "Page size, default 12"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	page, err := h.q.List(c.Request.Context(), q.Filter(), q.Page, q.PerPage)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingPage(page))
}

// @Summary Create booking
// @Description Create a booking for an existing room and return its price
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking form"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	result, err := h.cmds.CreateBooking(c.Request.Context(), cmd)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/bookings/"+result.Booking.ID)
	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}

// @Summary Get booking
// @Description Get a booking with its resolved room and price
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingDetailResponse
// @Failure 404 {object} map[string]string
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	row, err := h.q.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRow(row))
}

// @Summary Get booking price
// @Description Get only the price breakdown of a booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.PriceBreakdownResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/bookings/{id}/price [get]
func (h *BookingHandler) Price(c *gin.Context) {
	row, err := h.q.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if row.Breakdown == nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, errNotPriceable(row.Error),
			"Booking cannot be priced", gin.H{"reason": row.Error})
		return
	}
	c.JSON(http.StatusOK, resdto.FromPriceBreakdown(row.Breakdown))
}

// @Summary Delete booking
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.cmds.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
