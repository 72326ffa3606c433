package confirmation

import "luxestay/internal/hotelapi"

// Request carries the two ways a confirmation page can identify its
// booking: explicit navigation state or an external checkout session id.
type Request struct {
	BookingID string `form:"bookingId"`
	SessionID string `form:"session_id"`
}

// Result is the page payload. State is READY or FAILED; intermediate
// states never leave the service. On FAILED, RedirectAfterSeconds tells
// the client when to return home.
type Result struct {
	State                State             `json:"state"`
	Booking              *hotelapi.Booking `json:"booking,omitempty"`
	Attempts             int               `json:"attempts,omitempty"`
	Message              string            `json:"message,omitempty"`
	RedirectAfterSeconds int               `json:"redirectAfterSeconds,omitempty"`
}
