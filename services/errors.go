package services

import "errors"

// Sentinel errors surfaced to controllers. Backend/driver failures are
// wrapped with %w and fall through to a 500.
var (
	ErrBookingNotFound  = errors.New("booking_not_found")
	ErrCheckinNotFound  = errors.New("checkin_not_found")
	ErrRoomTypeNotFound = errors.New("room_type_not_found")
	ErrBnbNotFound      = errors.New("bnb_not_found")

	ErrNegativeAvailability = errors.New("negative_availability")
	ErrInvalidStatus        = errors.New("invalid_status")
	ErrInvalidDateRange     = errors.New("invalid_date_range")
	ErrInvalidRefundStatus  = errors.New("invalid_refund_status")
	ErrMissingStayRefs      = errors.New("missing_stay_refs")
	ErrNothingToUndo        = errors.New("nothing_to_undo")
	ErrValidation           = errors.New("validation")
)
