package confirmation

import (
	"context"
	"time"
)

// State is the confirmation pipeline position.
type State string

const (
	StateResolvingID     State = "RESOLVING_ID"
	StateConfirming      State = "CONFIRMING"
	StateFetchingDetails State = "FETCHING_DETAILS"
	StateReady           State = "READY"
	StateFailed          State = "FAILED"
)

// Sleeper waits out the fixed retry delay. Injectable so tests run the
// loop without real time passing; it must honor context cancellation
// so an abandoned page stops retrying.
type Sleeper func(ctx context.Context, d time.Duration) error

func realSleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// ConfirmFunc exchanges an external checkout session id for a booking id.
type ConfirmFunc func(ctx context.Context, sessionID string) (string, error)

// Poller resolves a booking id from a session id with a bounded,
// fixed-delay, sequential retry loop. No jitter, no exponential growth.
type Poller struct {
	confirm  ConfirmFunc
	sleep    Sleeper
	attempts int
	delay    time.Duration
}

func NewPoller(confirm ConfirmFunc, attempts int, delay time.Duration) *Poller {
	if attempts <= 0 {
		attempts = 5
	}
	if delay <= 0 {
		delay = time.Second
	}
	return &Poller{confirm: confirm, sleep: realSleep, attempts: attempts, delay: delay}
}

// WithSleeper overrides the delay implementation, for tests.
func (p *Poller) WithSleeper(s Sleeper) *Poller {
	p.sleep = s
	return p
}

// Resolve runs the CONFIRMING loop: up to p.attempts sequential calls
// with a fixed delay between failures. Exhaustion returns the last
// error; cancellation stops the loop immediately.
func (p *Poller) Resolve(ctx context.Context, sessionID string) (string, int, error) {
	var lastErr error
	for attempt := 1; attempt <= p.attempts; attempt++ {
		bookingID, err := p.confirm(ctx, sessionID)
		if err == nil {
			return bookingID, attempt, nil
		}
		// Every failure retries: right after payment the upstream may
		// not have seen the provider webhook yet, so even a not-found
		// can turn into a booking id on a later attempt.
		lastErr = err
		if attempt == p.attempts {
			break
		}
		if err := p.sleep(ctx, p.delay); err != nil {
			return "", attempt, err
		}
	}
	return "", p.attempts, lastErr
}
