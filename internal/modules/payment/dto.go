package payment

import "luxestay/internal/domain"

// Context is the payment page view: the draft summary plus the current
// total, recomputed on every request.
type Context struct {
	Draft domain.BookingDraft `json:"draft"`
	Total Total               `json:"total"`
}

type PromoRequest struct {
	Code string `json:"code"`
}

type PayRequest struct {
	PromoCode string `json:"promoCode"`
}

// PayResult reports the submission hand-off. Exactly one of BookingID
// and SessionID is set, depending on the deployment's checkout mode.
type PayResult struct {
	BookingID   string `json:"bookingId,omitempty"`
	SessionID   string `json:"sessionId,omitempty"`
	RedirectURL string `json:"redirectUrl"`
}
