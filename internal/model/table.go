package model

// TableStatus enumerates the occupancy states of a physical table.
// A table is AVAILABLE until the booking engine allocates it to a
// waiting reservation, at which point it becomes UNAVAILABLE.  Only
// the booking engine mutates this value.
type TableStatus string

const (
    TableAvailable   TableStatus = "available"   // table can be allocated
    TableUnavailable TableStatus = "unavailable" // table is held by a booking
)

// Table represents one physical table in the restaurant for the
// current service period.  Tables are created once by the init
// operation and live for the lifetime of the process.
//
// Fields:
//  ID     – sequential identifier assigned at initialization (1..n).
//  Name   – display name derived from the ID ("Table_<id>").
//  Status – current occupancy status.
type Table struct {
    ID     int         `json:"table_id"`
    Name   string      `json:"table_name"`
    Status TableStatus `json:"status"`
}
