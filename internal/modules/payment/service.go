package payment

import (
	"context"
	"errors"
	"time"

	"luxestay/internal/config"
	"luxestay/internal/domain"
	"luxestay/internal/hotelapi"
	"luxestay/internal/session"
)

// ErrSubmissionInFlight rejects a second submission while the first is
// still running.
var ErrSubmissionInFlight = errors.New("a submission is already in progress")

type Service struct {
	api  BookingSubmitter
	mode config.CheckoutMode
	now  func() time.Time
}

func NewService(api BookingSubmitter, mode config.CheckoutMode) *Service {
	return &Service{api: api, mode: mode, now: time.Now}
}

// WithNow overrides the clock, for tests.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// Context returns the payment view for the session's draft. Entering
// the step without a draft is a broken-navigation guard, not an
// application error.
func (s *Service) Context(flow *session.Flow, promoCode string) (*Context, error) {
	draft, ok := flow.Draft()
	if !ok || !draft.Complete() {
		return nil, domain.FatalStateError{Step: "payment"}
	}
	return &Context{
		Draft: draft,
		Total: Quote(draft.Price, promoCode),
	}, nil
}

// Pay submits the draft. Direct mode creates the booking and fills the
// latest-booking slot; stripe mode opens an external checkout session
// and the booking is created upstream after payment. Either way the
// draft is consumed on success.
func (s *Service) Pay(ctx context.Context, flow *session.Flow, req PayRequest) (*PayResult, error) {
	draft, ok := flow.Draft()
	if !ok || !draft.Complete() {
		return nil, domain.FatalStateError{Step: "payment"}
	}

	if !flow.BeginSubmit() {
		return nil, ErrSubmissionInFlight
	}
	defer flow.EndSubmit()

	payload := hotelapi.BookingRequest{
		CustomerName: draft.CustomerName,
		PhoneNumber:  draft.PhoneNumber,
		Email:        draft.Email,
		CheckIn:      draft.CheckIn,
		CheckOut:     draft.CheckOut,
		BookingTime:  s.now().Format("15:04:05"),
		BranchID:     draft.BranchID,
		RoomType:     draft.RoomType,
	}

	if s.mode == config.CheckoutStripe {
		payload.RoomID = draft.RoomID
		sessionID, err := s.api.CreateCheckoutSession(ctx, payload)
		if err != nil {
			return nil, err
		}
		flow.ClearDraft()
		return &PayResult{
			SessionID:   sessionID,
			RedirectURL: "/confirmation?session_id=" + sessionID,
		}, nil
	}

	bookingID, err := s.api.CreateBooking(ctx, payload)
	if err != nil {
		return nil, err
	}
	flow.SetLatestBookingID(bookingID)
	flow.ClearDraft()
	return &PayResult{
		BookingID:   bookingID,
		RedirectURL: "/confirmation",
	}, nil
}
