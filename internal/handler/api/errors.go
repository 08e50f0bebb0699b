package api

import (
	"errors"
	"net/http"

	"hotel-fastbill/internal/domain/booking"
	"hotel-fastbill/internal/handler/httperr"
	"hotel-fastbill/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// Checked in order. Quantity and duration precede the generic validation mark they also carry.
var errorMappings = []errorMapping{
	{errs.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{errs.ErrRoomExists, http.StatusConflict, "Room already exists"},
	{booking.ErrInvalidQuantity, http.StatusUnprocessableEntity, "Quantities must be whole numbers of at least 0"},
	{errs.ErrInvalidDuration, http.StatusUnprocessableEntity, "Check-out must bill at least one hour after check-in"},
	{errs.ErrNotInvoiceable, http.StatusUnprocessableEntity, "Booking cannot be invoiced"},
	{errs.ErrInvalidBackup, http.StatusBadRequest, "Invalid backup file"},
	{errs.ErrInvalidFilter, http.StatusBadRequest, "Invalid filter"},
	{errs.ErrDomainValidation, http.StatusUnprocessableEntity, "Domain validation failed"},
}

func abortWithUseCaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, detailOf(err, m.target))
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

// detailOf surfaces the domain message when a validation error wraps one, e.g.
// "room name cannot be empty".
func detailOf(err, target error) any {
	if !errors.Is(target, errs.ErrDomainValidation) {
		return nil
	}
	return httperr.Reason(err)
}

func errNotPriceable(reason string) error {
	return errs.New("booking cannot be priced: " + reason)
}
