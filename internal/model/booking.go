package model

import "time"

// BookingStatus enumerates the lifecycle states of a booking
// transaction.  A booking starts WAITING and moves to exactly one of
// CANCELLED or COMPLETED; both are terminal.
type BookingStatus string

const (
    BookingWaiting   BookingStatus = "waiting"  // party has not arrived yet
    BookingCancelled BookingStatus = "cancel"   // cancelled by caller or expiry
    BookingCompleted BookingStatus = "complete" // party was seated
)

// Booking records a customer's claim on a block of tables for a
// future arrival time.  Bookings are never deleted; cancel and
// complete are status writes so the ledger stays auditable.
//
// Fields:
//  ID             – UUIDv4 assigned at creation.
//  CustomerName   – name given at reservation time.
//  CustomerAmount – party size; each table seats up to four.
//  BookingTime    – when the party intends to arrive.
//  Tables         – tables allocated to this booking, fixed at creation.
//  Status         – lifecycle status (see BookingStatus).
//  CreatedAt      – when the reservation was accepted.
type Booking struct {
    ID             string        `json:"booking_id"`
    CustomerName   string        `json:"customer_name"`
    CustomerAmount int           `json:"customer_amount"`
    BookingTime    time.Time     `json:"booking_time"`
    Tables         []*Table      `json:"tables"`
    Status         BookingStatus `json:"status"`
    CreatedAt      time.Time     `json:"created_at"`
}
