package appointment

import "errors"

var (
	// ErrSlotUnavailable reports that the requested (date, time) is not
	// among the doctor's open slots.
	ErrSlotUnavailable = errors.New("requested slot is not available")
	// ErrNotFound reports that no appointment matched.
	ErrNotFound = errors.New("appointment not found")
	// ErrForbidden reports that the requester is neither the booking
	// patient nor the booked doctor.
	ErrForbidden = errors.New("not allowed to modify this appointment")
	// ErrInPast rejects bookings whose instant has already passed.
	ErrInPast = errors.New("appointment time is in the past")
	// ErrInvalidDate rejects booking dates that are not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid appointment date, want YYYY-MM-DD")
	// ErrAlreadyCancelled rejects a second cancellation.
	ErrAlreadyCancelled = errors.New("appointment is already cancelled")
)
