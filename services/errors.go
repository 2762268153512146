package services

import "errors"

// Business-rule errors. Controllers map these to 4xx responses; anything
// else coming out of a service is a wrapped store failure and maps to 500.
var (
	ErrRoomNotAvailable       = errors.New("room_not_available")
	ErrInvalidDateRange       = errors.New("invalid_date_range")
	ErrPriceNotFound          = errors.New("price_not_found")
	ErrRoomTypeNotFound       = errors.New("room_type_not_found")
	ErrBookingNotFound        = errors.New("booking_not_found")
	ErrAlreadyCheckedOut      = errors.New("already_checked_out")
	ErrRoomNotFound           = errors.New("room_not_found")
	ErrDuplicateRoomNumber    = errors.New("duplicate_room_number")
	ErrStatusChangeNotAllowed = errors.New("status_change_not_allowed")
)
