package handler

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/restaurant-table-reservation/internal/booking"
)

// call runs one request through a fresh Echo context and returns the
// recorder.  Handlers bind JSON, so the content type matters.
func call(t *testing.T, h echo.HandlerFunc, method, body string) *httptest.ResponseRecorder {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(method, "/", strings.NewReader(body))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    rec := httptest.NewRecorder()
    require.NoError(t, h(e.NewContext(req, rec)))
    return rec
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
    t.Helper()
    var m map[string]any
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
    return m
}

func newHandler(t *testing.T) *BookingHandler {
    t.Helper()
    e := booking.NewEngine()
    t.Cleanup(e.Close)
    return NewBookingHandler(e)
}

func TestInitTablesHandler(t *testing.T) {
    h := newHandler(t)

    rec := call(t, h.InitTables, http.MethodPost, `{"amount":0}`)
    assert.Equal(t, http.StatusBadRequest, rec.Code)

    rec = call(t, h.InitTables, http.MethodPost, `{"amount":4}`)
    assert.Equal(t, http.StatusCreated, rec.Code)
    assert.Equal(t, "Initialize table success", decodeMap(t, rec)["message"])

    rec = call(t, h.InitTables, http.MethodPost, `{"amount":4}`)
    assert.Equal(t, http.StatusConflict, rec.Code)
    assert.Equal(t, "Table already initialize", decodeMap(t, rec)["error"])
}

func TestReserveHandler(t *testing.T) {
    h := newHandler(t)

    // Closed restaurant comes first in the precondition order.
    body := `{"customer_name":"somchai","customer_amount":9,"booking_time":"` +
        time.Now().UTC().Add(time.Hour).Format(time.RFC3339) + `"}`
    rec := call(t, h.Reserve, http.MethodPost, body)
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Equal(t, "The restaurant is closed, please come back again", decodeMap(t, rec)["error"])

    require.NoError(t, h.Engine.InitTables(4))

    rec = call(t, h.Reserve, http.MethodPost, `{"customer_name":"somchai","customer_amount":9,"booking_time":"yesterday"}`)
    assert.Equal(t, http.StatusBadRequest, rec.Code)

    rec = call(t, h.Reserve, http.MethodPost, body)
    require.Equal(t, http.StatusCreated, rec.Code)
    resp := decodeMap(t, rec)
    assert.NotEmpty(t, resp["booking_id"])
    assert.EqualValues(t, 3, resp["booking_table_amount"])
    assert.EqualValues(t, 1, resp["table_remaining_amount"])
}

func TestCancelHandler(t *testing.T) {
    h := newHandler(t)
    require.NoError(t, h.Engine.InitTables(4))

    rec := call(t, h.Cancel, http.MethodPatch, `{"booking_id":"not-a-uuid"}`)
    assert.Equal(t, http.StatusBadRequest, rec.Code)

    rec = call(t, h.Cancel, http.MethodPatch, `{"booking_id":"4f7e55a3-0e66-47c6-a8e0-6e0f05b340c3"}`)
    assert.Equal(t, http.StatusNotFound, rec.Code)
    assert.Equal(t, "Booking id not found", decodeMap(t, rec)["error"])

    res, err := h.Engine.Reserve("somchai", 9, time.Now().UTC().Add(time.Hour))
    require.NoError(t, err)

    rec = call(t, h.Cancel, http.MethodPatch, `{"booking_id":"`+res.BookingID+`"}`)
    require.Equal(t, http.StatusOK, rec.Code)
    resp := decodeMap(t, rec)
    assert.EqualValues(t, 3, resp["freed_table_amount"])
    assert.EqualValues(t, 4, resp["table_remaining_amount"])

    rec = call(t, h.Cancel, http.MethodPatch, `{"booking_id":"`+res.BookingID+`"}`)
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Equal(t, "Booking status cannot cancel", decodeMap(t, rec)["error"])
}

func TestUseHandler(t *testing.T) {
    h := newHandler(t)
    require.NoError(t, h.Engine.InitTables(4))

    res, err := h.Engine.Reserve("somchai", 5, time.Now().UTC().Add(time.Hour))
    require.NoError(t, err)

    // The party shows up an hour early.
    rec := call(t, h.Use, http.MethodPatch, `{"booking_id":"`+res.BookingID+`"}`)
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Equal(t, "Sorry, You came too early", decodeMap(t, rec)["error"])
}

func TestUseHandlerSeatsParty(t *testing.T) {
    // A pinned clock and zero advance window let the test book for
    // right now and seat the party immediately.
    now := time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC)
    e := booking.NewEngine(
        booking.WithNow(func() time.Time { return now }),
        booking.WithWindows(0, 30*time.Minute),
    )
    t.Cleanup(e.Close)
    h := NewBookingHandler(e)
    require.NoError(t, e.InitTables(4))

    res, err := e.Reserve("somchai", 5, now)
    require.NoError(t, err)

    rec := call(t, h.Use, http.MethodPatch, `{"booking_id":"`+res.BookingID+`"}`)
    require.Equal(t, http.StatusOK, rec.Code)

    var seated []map[string]any
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &seated))
    require.Len(t, seated, 2)
    assert.EqualValues(t, 1, seated[0]["table_id"])
    assert.Equal(t, "Table_1", seated[0]["table_name"])
    assert.EqualValues(t, 2, seated[1]["table_id"])
}

func TestClearHandler(t *testing.T) {
    h := newHandler(t)

    rec := call(t, h.Clear, http.MethodPatch, `{"table_ids":[1,2]}`)
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Equal(t, "The restaurant is closed", decodeMap(t, rec)["error"])

    require.NoError(t, h.Engine.InitTables(4))

    rec = call(t, h.Clear, http.MethodPatch, `{"table_ids":[]}`)
    assert.Equal(t, http.StatusBadRequest, rec.Code)

    rec = call(t, h.Clear, http.MethodPatch, `{"table_ids":[1,-2]}`)
    assert.Equal(t, http.StatusBadRequest, rec.Code)

    // Clearing already-available tables frees nothing and is fine.
    rec = call(t, h.Clear, http.MethodPatch, `{"table_ids":[1,2]}`)
    require.Equal(t, http.StatusOK, rec.Code)
    resp := decodeMap(t, rec)
    assert.EqualValues(t, 0, resp["freed_table_amount"])
    assert.EqualValues(t, 4, resp["table_remaining_amount"])
}

func TestStatusHandler(t *testing.T) {
    h := newHandler(t)
    require.NoError(t, h.Engine.InitTables(2))
    _, err := h.Engine.Reserve("somchai", 2, time.Now().UTC().Add(time.Hour))
    require.NoError(t, err)

    rec := call(t, h.Status, http.MethodGet, "")
    require.Equal(t, http.StatusOK, rec.Code)
    resp := decodeMap(t, rec)
    assert.EqualValues(t, 1, resp["table_remaining_amount"])
    tables, ok := resp["tables"].([]any)
    require.True(t, ok)
    assert.Len(t, tables, 2)
}
