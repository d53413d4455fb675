package booking

import (
    "testing"
    "time"

    "github.com/google/uuid"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/restaurant-table-reservation/internal/model"
)

func TestLedgerAppendAndFind(t *testing.T) {
    l := NewLedger()
    assert.Nil(t, l.FindByID("missing"))
    assert.Equal(t, 0, l.Len())

    b := &model.Booking{
        ID:             uuid.NewString(),
        CustomerName:   "somchai",
        CustomerAmount: 4,
        BookingTime:    time.Now().UTC().Add(time.Hour),
        Status:         model.BookingWaiting,
        CreatedAt:      time.Now().UTC(),
    }
    l.Append(b)

    require.Equal(t, 1, l.Len())
    found := l.FindByID(b.ID)
    require.NotNil(t, found)
    assert.Same(t, b, found)
}

func TestLedgerKeepsCancelledEntries(t *testing.T) {
    l := NewLedger()
    b := &model.Booking{ID: uuid.NewString(), Status: model.BookingWaiting}
    l.Append(b)

    // Cancellation is a status write, never a deletion.
    b.Status = model.BookingCancelled
    require.NotNil(t, l.FindByID(b.ID))
    assert.Equal(t, model.BookingCancelled, l.FindByID(b.ID).Status)
    assert.Equal(t, 1, l.Len())
}
