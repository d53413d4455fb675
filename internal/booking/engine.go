package booking

import (
    "log"
    "sync"
    "time"

    "github.com/google/uuid"

    "github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// seatsPerTable is how many guests one table seats.  A party of n
// needs ceil(n/4) tables.
const seatsPerTable = 4

// Engine owns the table inventory and the booking ledger and is the
// only component allowed to mutate them.  Every operation runs to
// completion under a single mutex, which also serializes the expiry
// scheduler's re-entry into the cancel path, so a table can never be
// double-allocated or double-released.
type Engine struct {
    mu        sync.Mutex
    inventory *Inventory
    ledger    *Ledger
    scheduler *ExpiryScheduler

    now     func() time.Time
    advance time.Duration // minimum lead time for a reservation
    grace   time.Duration // arrival window after the booking time

    onExpired func(ExpiredBooking)
}

// ExpiredBooking describes a booking that the expiry scheduler
// cancelled because the party never arrived.
type ExpiredBooking struct {
    BookingID       string
    CustomerName    string
    FreedTables     int
    RemainingTables int
}

// ReserveResult is returned by Reserve on success.
type ReserveResult struct {
    BookingID       string
    BookedTables    int
    RemainingTables int
}

// CancelResult is returned by Cancel on success.
type CancelResult struct {
    FreedTables     int
    RemainingTables int
}

// SeatedTable identifies one table handed to an arriving party.
type SeatedTable struct {
    ID   int    `json:"table_id"`
    Name string `json:"table_name"`
}

// ClearResult is returned by Clear on success.
type ClearResult struct {
    FreedTables     int
    RemainingTables int
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithNow overrides the engine's clock.  Used by tests to pin "now".
func WithNow(now func() time.Time) Option {
    return func(e *Engine) { e.now = now }
}

// WithWindows overrides the advance and grace windows.  Production
// keeps the 30/30 minute defaults; tests shrink them.
func WithWindows(advance, grace time.Duration) Option {
    return func(e *Engine) {
        e.advance = advance
        e.grace = grace
    }
}

// WithExpiryObserver registers a hook invoked after the scheduler
// cancels a stale booking.  The hook runs outside the engine lock.
func WithExpiryObserver(fn func(ExpiredBooking)) Option {
    return func(e *Engine) { e.onExpired = fn }
}

// NewEngine constructs an engine with an empty inventory and ledger.
// The restaurant is closed until InitTables succeeds.
func NewEngine(opts ...Option) *Engine {
    e := &Engine{
        inventory: NewInventory(),
        ledger:    NewLedger(),
        now:       func() time.Time { return time.Now().UTC() },
        advance:   30 * time.Minute,
        grace:     30 * time.Minute,
    }
    for _, opt := range opts {
        opt(e)
    }
    e.scheduler = NewExpiryScheduler(e.expire)
    return e
}

// Close stops all armed expiry timers.  Pending no-op fires are
// harmless either way; stopping them just avoids goroutine noise on
// shutdown.
func (e *Engine) Close() { e.scheduler.StopAll() }

// InitTables opens the service period with amount tables, all
// available.  A second call while the pool is non-empty fails with
// ErrAlreadyInitialized and changes nothing.
func (e *Engine) InitTables(amount int) error {
    e.mu.Lock()
    defer e.mu.Unlock()
    return e.inventory.Initialize(amount)
}

// Reserve allocates ceil(partySize/4) of the lowest-id free tables to
// a new waiting booking and arms a single expiry timer that fires at
// bookingTime plus the grace window.  Preconditions are checked in
// order and nothing is mutated when one fails.
func (e *Engine) Reserve(customerName string, partySize int, bookingTime time.Time) (ReserveResult, error) {
    e.mu.Lock()
    defer e.mu.Unlock()

    if e.inventory.Empty() {
        return ReserveResult{}, ErrClosed
    }
    now := e.now()
    // Exactly at the advance boundary is accepted.
    if bookingTime.Sub(now) < e.advance {
        return ReserveResult{}, ErrReserveTooSoon
    }
    required := (partySize + seatsPerTable - 1) / seatsPerTable
    free := e.inventory.Available()
    if required > len(free) {
        return ReserveResult{}, ErrNotEnoughTables
    }

    allocated := free[:required]
    for _, t := range allocated {
        t.Status = model.TableUnavailable
    }
    b := &model.Booking{
        ID:             uuid.NewString(),
        CustomerName:   customerName,
        CustomerAmount: partySize,
        BookingTime:    bookingTime,
        Tables:         allocated,
        Status:         model.BookingWaiting,
        CreatedAt:      now,
    }
    e.ledger.Append(b)

    // The fire time is fixed here; it is never re-evaluated.
    e.scheduler.Schedule(b.ID, bookingTime.Add(e.grace).Sub(now))

    return ReserveResult{
        BookingID:       b.ID,
        BookedTables:    required,
        RemainingTables: len(free) - required,
    }, nil
}

// Cancel releases a waiting booking's tables and marks it cancelled.
// The waiting-status guard makes it naturally idempotent against a
// double fire: the second caller gets ErrCannotCancel, not a
// double-free.
func (e *Engine) Cancel(id string) (CancelResult, error) {
    e.mu.Lock()
    defer e.mu.Unlock()
    return e.cancelLocked(id)
}

// cancelLocked is the shared cancellation path for Cancel and the
// expiry scheduler.  Caller must hold e.mu.
func (e *Engine) cancelLocked(id string) (CancelResult, error) {
    if e.inventory.Empty() {
        return CancelResult{}, ErrClosedCancel
    }
    b := e.ledger.FindByID(id)
    if b == nil {
        return CancelResult{}, ErrBookingNotFound
    }
    if b.Status != model.BookingWaiting {
        return CancelResult{}, ErrCannotCancel
    }

    ids := make([]int, 0, len(b.Tables))
    for _, t := range b.Tables {
        ids = append(ids, t.ID)
    }
    freed := e.inventory.Release(ids)
    b.Status = model.BookingCancelled
    e.scheduler.Stop(id) // optional; a late fire would be a no-op anyway

    return CancelResult{
        FreedTables:     freed,
        RemainingTables: len(e.inventory.Available()),
    }, nil
}

// Use seats an arriving party: the booking becomes completed and the
// caller gets the allocated tables in their original order.  Tables
// stay unavailable until staff clears them; seating and clearing are
// deliberately separate steps.
func (e *Engine) Use(id string) ([]SeatedTable, error) {
    e.mu.Lock()
    defer e.mu.Unlock()

    if e.inventory.Empty() {
        return nil, ErrClosed
    }
    b := e.ledger.FindByID(id)
    if b == nil {
        return nil, ErrBookingNotFound
    }
    if b.Status != model.BookingWaiting {
        return nil, ErrCannotComplete
    }
    now := e.now()
    if now.Before(b.BookingTime) {
        return nil, ErrCameTooEarly
    }
    if now.After(b.BookingTime.Add(e.grace)) {
        return nil, ErrCameTooLate
    }

    b.Status = model.BookingCompleted
    e.scheduler.Stop(id)

    seated := make([]SeatedTable, 0, len(b.Tables))
    for _, t := range b.Tables {
        seated = append(seated, SeatedTable{ID: t.ID, Name: t.Name})
    }
    return seated, nil
}

// Clear force-releases tables regardless of the ledger.  Staff use it
// after a seated party leaves.  Unknown or already-available ids are
// skipped without error and without counting.
func (e *Engine) Clear(tableIDs []int) (ClearResult, error) {
    e.mu.Lock()
    defer e.mu.Unlock()

    if e.inventory.Empty() {
        return ClearResult{}, ErrClosedClear
    }
    freed := e.inventory.Release(tableIDs)
    return ClearResult{
        FreedTables:     freed,
        RemainingTables: len(e.inventory.Available()),
    }, nil
}

// Snapshot returns a copy of every table plus the free count, for the
// read-only status endpoint.
func (e *Engine) Snapshot() ([]model.Table, int) {
    e.mu.Lock()
    defer e.mu.Unlock()
    return e.inventory.Snapshot(), len(e.inventory.Available())
}

// expire is the scheduler's re-entry into the cancel path.  A booking
// that was already cancelled or completed yields ErrCannotCancel,
// which is the expected outcome of a raced timer and is swallowed.
// Anything else is a logic fault and is logged for an operator.
func (e *Engine) expire(id string) {
    e.mu.Lock()
    b := e.ledger.FindByID(id)
    res, err := e.cancelLocked(id)
    e.mu.Unlock()

    if err != nil {
        if !IsKind(err, KindInvalidTransition) {
            log.Printf("booking: expiry of %s failed: %v", id, err)
        }
        return
    }
    if e.onExpired != nil && b != nil {
        e.onExpired(ExpiredBooking{
            BookingID:       id,
            CustomerName:    b.CustomerName,
            FreedTables:     res.FreedTables,
            RemainingTables: res.RemainingTables,
        })
    }
}
