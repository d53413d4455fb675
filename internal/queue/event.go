// Package queue defines message payloads exchanged over the message broker.
package queue

// Event types published to the booking.events queue.  Every
// successful state change of the table pool emits exactly one event.
const (
    EventTableInitialized = "table.initialized"
    EventBookingReserved  = "booking.reserved"
    EventBookingCancelled = "booking.cancelled"
    EventBookingExpired   = "booking.expired"
    EventBookingSeated    = "booking.seated"
    EventTableCleared     = "table.cleared"
)

// BookingEvent is the single payload shape for all booking events;
// the Type field discriminates.  It carries enough for downstream
// consumers to log or notify without calling back into the service.
type BookingEvent struct {
    Type            string `json:"type"`
    BookingID       string `json:"booking_id,omitempty"`
    CustomerName    string `json:"customer_name,omitempty"`
    CustomerAmount  int    `json:"customer_amount,omitempty"`
    BookingTime     string `json:"booking_time,omitempty"`
    TableIDs        []int  `json:"table_ids,omitempty"`
    TableAmount     int    `json:"table_amount,omitempty"`
    TablesRemaining int    `json:"table_remaining_amount"`
    OccurredAt      string `json:"occurred_at"`
}
