package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Room errors
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomExists   = errors.New("room already exists")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidDuration = errors.New("check-out must be after check-in")
	ErrNotInvoiceable  = errors.New("booking cannot be invoiced")
	ErrInvalidFilter   = errors.New("invalid booking filter")

	// Backup errors
	ErrInvalidBackup = errors.New("invalid backup file")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)
