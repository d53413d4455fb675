package booking

import (
    "sync"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
)

// fireRecorder collects fired booking ids for scheduler tests.
type fireRecorder struct {
    mu    sync.Mutex
    fired []string
    ch    chan string
}

func newFireRecorder() *fireRecorder {
    return &fireRecorder{ch: make(chan string, 8)}
}

func (r *fireRecorder) fire(id string) {
    r.mu.Lock()
    r.fired = append(r.fired, id)
    r.mu.Unlock()
    r.ch <- id
}

func (r *fireRecorder) count() int {
    r.mu.Lock()
    defer r.mu.Unlock()
    return len(r.fired)
}

func waitFor(t *testing.T, ch chan string, want string) {
    t.Helper()
    select {
    case got := <-ch:
        assert.Equal(t, want, got)
    case <-time.After(2 * time.Second):
        t.Fatalf("timer for %s never fired", want)
    }
}

func TestSchedulerFiresOnce(t *testing.T) {
    rec := newFireRecorder()
    s := NewExpiryScheduler(rec.fire)
    defer s.StopAll()

    s.Schedule("b1", 10*time.Millisecond)
    assert.Equal(t, 1, s.Pending())

    waitFor(t, rec.ch, "b1")
    assert.Equal(t, 0, s.Pending())

    time.Sleep(50 * time.Millisecond)
    assert.Equal(t, 1, rec.count())
}

func TestSchedulerStop(t *testing.T) {
    rec := newFireRecorder()
    s := NewExpiryScheduler(rec.fire)
    defer s.StopAll()

    s.Schedule("b1", 50*time.Millisecond)
    assert.True(t, s.Stop("b1"))
    assert.False(t, s.Stop("b1")) // already disarmed
    assert.Equal(t, 0, s.Pending())

    time.Sleep(120 * time.Millisecond)
    assert.Equal(t, 0, rec.count())
}

func TestSchedulerNonPositiveDelayFires(t *testing.T) {
    rec := newFireRecorder()
    s := NewExpiryScheduler(rec.fire)
    defer s.StopAll()

    // A booking whose grace window already passed expires right away.
    s.Schedule("late", -time.Minute)
    waitFor(t, rec.ch, "late")
}

func TestSchedulerStopAll(t *testing.T) {
    rec := newFireRecorder()
    s := NewExpiryScheduler(rec.fire)

    s.Schedule("a", time.Minute)
    s.Schedule("b", time.Minute)
    assert.Equal(t, 2, s.Pending())

    s.StopAll()
    assert.Equal(t, 0, s.Pending())
}
