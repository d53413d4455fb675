package booking

import (
    "sync"
    "time"
)

// ExpiryScheduler arms one single-shot timer per accepted booking.
// When a timer fires it calls the engine's cancellation path with the
// booking id; it holds no inventory state of its own.  Handles are
// kept so the engine can stop a timer when a booking leaves the
// waiting state early, but a fire that loses that race is still safe
// because of the engine's status guard.
type ExpiryScheduler struct {
    mu     sync.Mutex
    timers map[string]*time.Timer
    fire   func(bookingID string)
}

// NewExpiryScheduler returns a scheduler that invokes fire on every
// timer expiration.
func NewExpiryScheduler(fire func(string)) *ExpiryScheduler {
    return &ExpiryScheduler{
        timers: make(map[string]*time.Timer),
        fire:   fire,
    }
}

// Schedule arms the timer for a booking after the given delay.  A
// non-positive delay fires immediately (still on the timer goroutine,
// never on the caller's).  Scheduling the same id twice replaces the
// old timer; the engine only ever arms once per booking.
func (s *ExpiryScheduler) Schedule(bookingID string, delay time.Duration) {
    if delay < 0 {
        delay = 0
    }
    s.mu.Lock()
    defer s.mu.Unlock()
    if old, ok := s.timers[bookingID]; ok {
        old.Stop()
    }
    s.timers[bookingID] = time.AfterFunc(delay, func() {
        s.forget(bookingID)
        s.fire(bookingID)
    })
}

// Stop disarms the timer for a booking if it has not fired yet.  It
// reports whether a pending timer was actually stopped.
func (s *ExpiryScheduler) Stop(bookingID string) bool {
    s.mu.Lock()
    defer s.mu.Unlock()
    t, ok := s.timers[bookingID]
    if !ok {
        return false
    }
    delete(s.timers, bookingID)
    return t.Stop()
}

// StopAll disarms every pending timer.  Used on shutdown.
func (s *ExpiryScheduler) StopAll() {
    s.mu.Lock()
    defer s.mu.Unlock()
    for id, t := range s.timers {
        t.Stop()
        delete(s.timers, id)
    }
}

// Pending returns the number of armed timers.
func (s *ExpiryScheduler) Pending() int {
    s.mu.Lock()
    defer s.mu.Unlock()
    return len(s.timers)
}

func (s *ExpiryScheduler) forget(bookingID string) {
    s.mu.Lock()
    delete(s.timers, bookingID)
    s.mu.Unlock()
}
