package api

import (
	"hotel-fastbill/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	q queries.InvoiceQueries
}

func NewInvoiceHandler(q queries.InvoiceQueries) *InvoiceHandler {
	return &InvoiceHandler{q: q}
}

// @Summary Printable invoice
// @Description HTML invoice that opens the print dialog when loaded
// @Tags invoice
// @Produce html
// @Param id path string true "Booking ID"
// @Success 200 {string} string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/bookings/{id}/invoice [get]
func (h *InvoiceHandler) HTML(c *gin.Context) {
	h.render(c, queries.InvoiceHTML, "inline")
}

// @Summary PDF invoice
// @Tags invoice
// @Produce application/pdf
// @Param id path string true "Booking ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/bookings/{id}/invoice/pdf [get]
func (h *InvoiceHandler) PDF(c *gin.Context) {
	h.render(c, queries.InvoicePDF, "attachment")
}

func (h *InvoiceHandler) render(c *gin.Context, format queries.InvoiceFormat, disposition string) {
	f, err := h.q.Render(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	sendFile(c, f, disposition)
}
