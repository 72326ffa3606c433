package confirmation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"luxestay/internal/session"
)

// Bounded redirect delays for the FAILED terminal state.
const (
	failedRedirectSeconds    = 3
	noBookingRedirectSeconds = 3
)

type Service struct {
	api    BookingReader
	poller *Poller
	logger *slog.Logger
}

func NewService(api BookingReader, attempts int, delay time.Duration, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		api:    api,
		poller: NewPoller(api.ConfirmBySession, attempts, delay),
		logger: logger,
	}
}

// WithSleeper overrides the retry delay implementation, for tests.
func (s *Service) WithSleeper(sleep Sleeper) *Service {
	s.poller.WithSleeper(sleep)
	return s
}

// Confirm drives the full state machine for one page load. Resolution
// priority: navigation state, then the checkout session id carried in
// the URL, then the session slot. The session id outranks the slot
// because the slot is never cleared: a fresh checkout must not
// short-circuit on the previous booking's id. Whatever resolves is
// persisted to the slot so a later direct load still finds the booking.
func (s *Service) Confirm(ctx context.Context, flow *session.Flow, req Request) Result {
	state := StateResolvingID

	bookingID := req.BookingID

	var attempts int
	if bookingID == "" && req.SessionID != "" {
		state = StateConfirming
		var err error
		bookingID, attempts, err = s.poller.Resolve(ctx, req.SessionID)
		if err != nil {
			s.logger.Error("session confirmation exhausted", "attempts", attempts, "error", err)
			return Result{
				State:                StateFailed,
				Attempts:             attempts,
				Message:              "We could not confirm your payment. Please contact support.",
				RedirectAfterSeconds: failedRedirectSeconds,
			}
		}
	}

	if bookingID == "" {
		bookingID = flow.LatestBookingID()
	}

	if bookingID == "" {
		s.logger.Warn("confirmation page without booking id", "state", string(state))
		return Result{
			State:                StateFailed,
			Message:              "Invalid confirmation access. Redirecting...",
			RedirectAfterSeconds: noBookingRedirectSeconds,
		}
	}

	flow.SetLatestBookingID(bookingID)

	state = StateFetchingDetails
	booking, err := s.api.BookingStatus(ctx, bookingID)
	if err != nil {
		s.logger.Error("booking detail fetch failed", "state", string(state), "booking_id", bookingID, "error", err)
		return Result{
			State:                StateFailed,
			Attempts:             attempts,
			Message:              "Failed to load booking details.",
			RedirectAfterSeconds: failedRedirectSeconds,
		}
	}

	return Result{
		State:    StateReady,
		Booking:  booking,
		Attempts: attempts,
	}
}

// Receipt fetches the downloadable invoice. A failure here does not
// change the page state; the caller surfaces a transient alert.
func (s *Service) Receipt(ctx context.Context, bookingID string) ([]byte, string, error) {
	pdf, err := s.api.Receipt(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("Invoice_%s.pdf", bookingID), nil
}
