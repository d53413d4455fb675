// Package booking implements the table inventory, the reservation
// ledger and the engine that orchestrates them.  All business-rule
// failures are reported as *Error values carrying a Kind so that the
// handler layer can map them to HTTP statuses without string matching.
package booking

import "errors"

// Kind classifies a business-rule failure.  Kinds are stable; the
// human message attached to an Error may vary per operation.
type Kind int

const (
    KindConflict          Kind = iota + 1 // inventory already initialized
    KindClosed                            // no active service period
    KindTooSoon                           // reservation inside the advance window
    KindInsufficient                      // not enough free tables
    KindNotFound                          // unknown booking id
    KindInvalidTransition                 // status guard violated
    KindTooEarly                          // party arrived before booking time
    KindTooLate                           // party arrived after the grace window
)

// Error is a terminal, synchronous business-rule failure.  Every
// precondition is checked before any mutation, so an Error implies no
// side effects happened.
type Error struct {
    Kind    Kind
    Message string
}

func (e *Error) Error() string { return e.Message }

// IsKind reports whether err is a booking Error of the given kind.
func IsKind(err error, k Kind) bool {
    var be *Error
    return errors.As(err, &be) && be.Kind == k
}

// Sentinel errors for each rule.  The messages match the ones the
// restaurant staff and customers see, so handlers return them as-is.
var (
    ErrAlreadyInitialized = &Error{KindConflict, "Table already initialize"}

    ErrClosed       = &Error{KindClosed, "The restaurant is closed, please come back again"}
    ErrClosedCancel = &Error{KindClosed, "Cannot cancel booking because the restaurant is closed"}
    ErrClosedClear  = &Error{KindClosed, "The restaurant is closed"}

    ErrReserveTooSoon  = &Error{KindTooSoon, "Please make a reservation 30 minutes in advance"}
    ErrNotEnoughTables = &Error{KindInsufficient, "Table amount not enough"}

    ErrBookingNotFound = &Error{KindNotFound, "Booking id not found"}
    ErrCannotCancel    = &Error{KindInvalidTransition, "Booking status cannot cancel"}
    ErrCannotComplete  = &Error{KindInvalidTransition, "Booking status cannot set to complete"}

    ErrCameTooEarly = &Error{KindTooEarly, "Sorry, You came too early"}
    ErrCameTooLate  = &Error{KindTooLate, "Sorry, You came too late"}
)
