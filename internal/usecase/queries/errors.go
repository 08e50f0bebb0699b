package queries

import "hotel-fastbill/internal/pkg/errs"

var (
	ErrBookingNotFound = errs.ErrBookingNotFound
	ErrNotInvoiceable  = errs.ErrNotInvoiceable
	ErrInvalidFilter   = errs.ErrInvalidFilter
)
