package handler

import (
    "context"
    "errors"
    "net/http"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/restaurant-table-reservation/internal/booking"
    "github.com/iliyamo/restaurant-table-reservation/internal/model"
    "github.com/iliyamo/restaurant-table-reservation/internal/queue"
    queue_publisher "github.com/iliyamo/restaurant-table-reservation/internal/service"
)

// BookingHandler exposes the five booking operations plus the
// read-only status endpoint.  Schema checks (positive integers, ISO
// timestamps, UUIDs) happen here; the engine assumes well-formed
// input and enforces only business rules.
type BookingHandler struct {
    Engine *booking.Engine
}

// NewBookingHandler constructs a BookingHandler.  The engine must be non-nil.
func NewBookingHandler(e *booking.Engine) *BookingHandler {
    if e == nil {
        panic("nil engine passed to NewBookingHandler")
    }
    return &BookingHandler{Engine: e}
}

// ----- DTOs -----

type initTableReq struct {
    Amount int `json:"amount"`
}

type reserveReq struct {
    CustomerName   string `json:"customer_name"`
    CustomerAmount int    `json:"customer_amount"`
    BookingTime    string `json:"booking_time"` // ISO 8601
}

type reserveResp struct {
    BookingID            string `json:"booking_id"`
    BookingTableAmount   int    `json:"booking_table_amount"`
    TableRemainingAmount int    `json:"table_remaining_amount"`
}

type bookingIDReq struct {
    BookingID string `json:"booking_id"`
}

type freedResp struct {
    FreedTableAmount     int `json:"freed_table_amount"`
    TableRemainingAmount int `json:"table_remaining_amount"`
}

type clearReq struct {
    TableIDs []int `json:"table_ids"`
}

type statusResp struct {
    Tables               []model.Table `json:"tables"`
    TableRemainingAmount int           `json:"table_remaining_amount"`
}

// businessError maps an engine error onto the HTTP taxonomy: conflict
// 409, unknown booking 404, every other rule violation 400.  Anything
// that is not a booking.Error is a programming fault.
func businessError(c echo.Context, err error) error {
    var be *booking.Error
    if !errors.As(err, &be) {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
    }
    status := http.StatusBadRequest
    switch be.Kind {
    case booking.KindConflict:
        status = http.StatusConflict
    case booking.KindNotFound:
        status = http.StatusNotFound
    }
    return c.JSON(status, echo.Map{"error": be.Message})
}

// publish sends a booking event without blocking the request; a dead
// broker only costs a log line.
func publish(ev queue.BookingEvent) {
    ev.OccurredAt = time.Now().UTC().Format(time.RFC3339)
    go func() { _ = queue_publisher.PublishBookingEvent(context.Background(), ev) }()
}

// InitTables handles POST /v1/booking/table/init.  Requires the
// can_init capability, enforced by middleware.
func (h *BookingHandler) InitTables(c echo.Context) error {
    var req initTableReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.Amount < 1 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount must be a positive integer"})
    }
    if err := h.Engine.InitTables(req.Amount); err != nil {
        return businessError(c, err)
    }
    publish(queue.BookingEvent{Type: queue.EventTableInitialized, TableAmount: req.Amount, TablesRemaining: req.Amount})
    return c.JSON(http.StatusCreated, echo.Map{"message": "Initialize table success"})
}

// Reserve handles POST /v1/booking/table/reserve.
func (h *BookingHandler) Reserve(c echo.Context) error {
    var req reserveReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.CustomerName == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "customer_name is required"})
    }
    if req.CustomerAmount < 1 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "customer_amount must be a positive integer"})
    }
    bookingTime, err := time.Parse(time.RFC3339, req.BookingTime)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "booking_time must be an ISO 8601 timestamp"})
    }

    res, err := h.Engine.Reserve(req.CustomerName, req.CustomerAmount, bookingTime)
    if err != nil {
        return businessError(c, err)
    }
    publish(queue.BookingEvent{
        Type:            queue.EventBookingReserved,
        BookingID:       res.BookingID,
        CustomerName:    req.CustomerName,
        CustomerAmount:  req.CustomerAmount,
        BookingTime:     bookingTime.UTC().Format(time.RFC3339),
        TableAmount:     res.BookedTables,
        TablesRemaining: res.RemainingTables,
    })
    return c.JSON(http.StatusCreated, reserveResp{
        BookingID:            res.BookingID,
        BookingTableAmount:   res.BookedTables,
        TableRemainingAmount: res.RemainingTables,
    })
}

// Cancel handles PATCH /v1/booking/table/cancel.
func (h *BookingHandler) Cancel(c echo.Context) error {
    var req bookingIDReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if _, err := uuid.Parse(req.BookingID); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "booking_id must be a UUID"})
    }

    res, err := h.Engine.Cancel(req.BookingID)
    if err != nil {
        return businessError(c, err)
    }
    publish(queue.BookingEvent{
        Type:            queue.EventBookingCancelled,
        BookingID:       req.BookingID,
        TableAmount:     res.FreedTables,
        TablesRemaining: res.RemainingTables,
    })
    return c.JSON(http.StatusOK, freedResp{
        FreedTableAmount:     res.FreedTables,
        TableRemainingAmount: res.RemainingTables,
    })
}

// Use handles PATCH /v1/booking/table/use.  The response is the list
// of seated tables in their original allocation order.
func (h *BookingHandler) Use(c echo.Context) error {
    var req bookingIDReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if _, err := uuid.Parse(req.BookingID); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "booking_id must be a UUID"})
    }

    seated, err := h.Engine.Use(req.BookingID)
    if err != nil {
        return businessError(c, err)
    }
    ids := make([]int, 0, len(seated))
    for _, s := range seated {
        ids = append(ids, s.ID)
    }
    publish(queue.BookingEvent{
        Type:      queue.EventBookingSeated,
        BookingID: req.BookingID,
        TableIDs:  ids,
    })
    return c.JSON(http.StatusOK, seated)
}

// Clear handles PATCH /v1/booking/table/clear.  Staff-only; a
// low-level inventory override that never consults the ledger.
func (h *BookingHandler) Clear(c echo.Context) error {
    var req clearReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if len(req.TableIDs) == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "table_ids is required"})
    }
    for _, id := range req.TableIDs {
        if id < 1 {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "table_ids must be positive integers"})
        }
    }

    res, err := h.Engine.Clear(req.TableIDs)
    if err != nil {
        return businessError(c, err)
    }
    publish(queue.BookingEvent{
        Type:            queue.EventTableCleared,
        TableIDs:        req.TableIDs,
        TableAmount:     res.FreedTables,
        TablesRemaining: res.RemainingTables,
    })
    return c.JSON(http.StatusOK, freedResp{
        FreedTableAmount:     res.FreedTables,
        TableRemainingAmount: res.RemainingTables,
    })
}

// Status handles GET /v1/booking/table/status.  A read-only snapshot
// for the floor display; sits behind the response cache.
func (h *BookingHandler) Status(c echo.Context) error {
    tables, available := h.Engine.Snapshot()
    return c.JSON(http.StatusOK, statusResp{
        Tables:               tables,
        TableRemainingAmount: available,
    })
}
