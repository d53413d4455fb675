package booking

import (
    "fmt"

    "github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// Inventory holds the fixed pool of physical tables for the current
// service period.  It is either empty (restaurant closed) or has a
// fixed, non-zero size set exactly once by Initialize.  Inventory does
// no locking of its own; the engine serializes all access.
type Inventory struct {
    tables []*model.Table // ascending id order, ids are 1-based
}

// NewInventory returns an empty inventory.  The restaurant stays
// closed until Initialize is called.
func NewInventory() *Inventory {
    return &Inventory{}
}

// Initialize populates count tables numbered 1..count, all available.
// Calling it on a non-empty inventory fails with ErrAlreadyInitialized
// and leaves the pool untouched.
func (inv *Inventory) Initialize(count int) error {
    if len(inv.tables) > 0 {
        return ErrAlreadyInitialized
    }
    for i := 1; i <= count; i++ {
        inv.tables = append(inv.tables, &model.Table{
            ID:     i,
            Name:   fmt.Sprintf("Table_%d", i),
            Status: model.TableAvailable,
        })
    }
    return nil
}

// Empty reports whether the service period has not started yet.
func (inv *Inventory) Empty() bool { return len(inv.tables) == 0 }

// Size returns the fixed pool size (0 while closed).
func (inv *Inventory) Size() int { return len(inv.tables) }

// Available returns the available tables in ascending id order.
// Allocation always takes the lowest ids first, which keeps the
// behavior deterministic and testable.
func (inv *Inventory) Available() []*model.Table {
    free := make([]*model.Table, 0, len(inv.tables))
    for _, t := range inv.tables {
        if t.Status == model.TableAvailable {
            free = append(free, t)
        }
    }
    return free
}

// Release marks each referenced table available again and returns how
// many actually changed state.  Unknown ids and tables that are
// already available are ignored on purpose: clear is idempotent.
func (inv *Inventory) Release(tableIDs []int) int {
    freed := 0
    for _, id := range tableIDs {
        if id < 1 || id > len(inv.tables) {
            continue
        }
        t := inv.tables[id-1]
        if t.Status == model.TableUnavailable {
            t.Status = model.TableAvailable
            freed++
        }
    }
    return freed
}

// Snapshot returns a copy of every table so callers can render status
// without holding the engine lock or observing later mutations.
func (inv *Inventory) Snapshot() []model.Table {
    out := make([]model.Table, 0, len(inv.tables))
    for _, t := range inv.tables {
        out = append(out, *t)
    }
    return out
}
