package booking

import "github.com/iliyamo/restaurant-table-reservation/internal/model"

// Ledger is the append-only record of booking transactions.  Entries
// are never removed; cancel and complete are status writes, so the
// ledger keeps an auditable history of the whole service period.
// Like Inventory, it relies on the engine for serialization.
type Ledger struct {
    entries []*model.Booking
    byID    map[string]*model.Booking
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
    return &Ledger{byID: make(map[string]*model.Booking)}
}

// Append records a new booking.  Ids are UUIDv4 so a collision is
// treated as unreachable; the newer entry would simply shadow the
// older one in the index.
func (l *Ledger) Append(b *model.Booking) {
    l.entries = append(l.entries, b)
    l.byID[b.ID] = b
}

// FindByID returns the booking with the given id, or nil when the id
// is unknown.
func (l *Ledger) FindByID(id string) *model.Booking {
    return l.byID[id]
}

// Len returns the number of recorded transactions.
func (l *Ledger) Len() int { return len(l.entries) }
