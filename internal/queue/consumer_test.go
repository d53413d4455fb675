package queue

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestFormatEventLine(t *testing.T) {
    at := "2024-05-10T18:00:00Z"

    line := FormatEventLine(BookingEvent{
        Type: EventTableInitialized, TableAmount: 4, TablesRemaining: 4, OccurredAt: at,
    })
    assert.Equal(t, "[2024-05-10T18:00:00Z] Tables initialized | amount=4\n", line)

    line = FormatEventLine(BookingEvent{
        Type:            EventBookingExpired,
        BookingID:       "4f7e55a3-0e66-47c6-a8e0-6e0f05b340c3",
        CustomerName:    "somchai",
        TableAmount:     3,
        TablesRemaining: 4,
        OccurredAt:      at,
    })
    assert.Contains(t, line, "Booking expired")
    assert.Contains(t, line, "booking_id=4f7e55a3-0e66-47c6-a8e0-6e0f05b340c3")
    assert.Contains(t, line, "freed=3")

    line = FormatEventLine(BookingEvent{Type: "mystery", OccurredAt: at})
    assert.Contains(t, line, `Unknown event "mystery"`)
}
