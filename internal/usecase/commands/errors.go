package commands

import "hotel-fastbill/internal/pkg/errs"

var (
	ErrRoomNotFound     = errs.ErrRoomNotFound
	ErrRoomExists       = errs.ErrRoomExists
	ErrBookingNotFound  = errs.ErrBookingNotFound
	ErrInvalidDuration  = errs.ErrInvalidDuration
	ErrInvalidBackup    = errs.ErrInvalidBackup
	ErrDomainValidation = errs.ErrDomainValidation
)

func validationErr(err error) error {
	return errs.Mark(err, ErrDomainValidation)
}
