package session

import (
	"sync"

	"luxestay/internal/domain"
)

// Flow holds the navigation-scoped state of one browser session: the
// booking draft hand-off, the latest booking id slot and the
// submission in-flight flag. Nothing here is durable.
type Flow struct {
	mu              sync.Mutex
	draft           *domain.BookingDraft
	latestBookingID string
	submitting      bool
}

// SetDraft installs the draft created by the booking form, replacing
// any previous one.
func (f *Flow) SetDraft(d domain.BookingDraft) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := d
	f.draft = &copied
}

// Draft returns the current draft without consuming it.
func (f *Flow) Draft() (domain.BookingDraft, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.draft == nil {
		return domain.BookingDraft{}, false
	}
	return *f.draft, true
}

// ClearDraft drops the draft. Called once the payment step has handed
// the booking off, or when the flow restarts from the filter page.
func (f *Flow) ClearDraft() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = nil
}

// SetLatestBookingID overwrites the single booking id slot. The slot is
// never merged and never explicitly cleared.
func (f *Flow) SetLatestBookingID(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.latestBookingID = id
}

func (f *Flow) LatestBookingID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latestBookingID
}

// BeginSubmit marks a submission in flight. It reports false when one
// is already running, which is the only concurrency guard the flow
// needs: the submit action stays disabled while its request runs.
func (f *Flow) BeginSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return false
	}
	f.submitting = true
	return true
}

func (f *Flow) EndSubmit() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
}

// Store maps session ids to flows. Each flow is independent; a failure
// in one never touches another.
type Store struct {
	mu    sync.RWMutex
	flows map[string]*Flow
}

func NewStore() *Store {
	return &Store{flows: make(map[string]*Flow)}
}

// Get returns the flow for the session id, creating it on first use.
func (s *Store) Get(id string) *Flow {
	s.mu.RLock()
	f, ok := s.flows[id]
	s.mu.RUnlock()
	if ok {
		return f
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.flows[id]; ok {
		return f
	}
	f = &Flow{}
	s.flows[id] = f
	return f
}
