// Package queue also contains the background consumer that listens to
// the booking.events queue and writes one line per event to
// logs/booking.log.
package queue

import (
    "encoding/json"
    "errors"
    "fmt"
    "log"
    "os"
    "path/filepath"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
)

const bookingQueueName = "booking.events"

// StartBookingConsumer connects to RabbitMQ, declares the durable
// booking.events queue, and consumes messages forever.  It runs a
// reconnect loop with capped exponential backoff and never brings the
// server down: processing failures are logged and the offending
// message is rejected without requeue to avoid tight loops.
func StartBookingConsumer(url string) error {
    backoff := time.Second
    for {
        conn, err := amqp.Dial(url)
        if err != nil {
            log.Printf("booking-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
            time.Sleep(backoff)
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second // reset after successful connect

        if err := consumeLoop(conn); err != nil {
            log.Printf("booking-consumer: consume loop ended: %v; reconnecting", err)
            time.Sleep(2 * time.Second)
        }
    }
}

func consumeLoop(conn *amqp.Connection) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(50, 0, false); err != nil {
        log.Printf("booking-consumer: set QoS failed: %v", err)
    }

    if _, err := ch.QueueDeclare(bookingQueueName, true, false, false, false, nil); err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }

    msgs, err := ch.Consume(bookingQueueName, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume: %w", err)
    }

    for d := range msgs {
        if err := handleMessage(d.Body); err != nil {
            log.Printf("booking-consumer: handle message failed: %v", err)
            _ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
            continue
        }
        _ = d.Ack(false)
    }
    return errors.New("deliveries channel closed")
}

// handleMessage appends one human-readable line per event to
// logs/booking.log so staff can audit the service period afterwards.
func handleMessage(body []byte) error {
    var ev BookingEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    if err := os.MkdirAll("logs", 0o755); err != nil {
        return fmt.Errorf("mkdir logs: %w", err)
    }
    f, err := os.OpenFile(filepath.Join("logs", "booking.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        return fmt.Errorf("open log file: %w", err)
    }
    defer f.Close()

    if _, err := f.WriteString(FormatEventLine(ev)); err != nil {
        return fmt.Errorf("write log: %w", err)
    }
    return nil
}

// FormatEventLine renders a single audit-log line for an event.
func FormatEventLine(ev BookingEvent) string {
    switch ev.Type {
    case EventTableInitialized:
        return fmt.Sprintf("[%s] Tables initialized | amount=%d\n", ev.OccurredAt, ev.TableAmount)
    case EventBookingReserved:
        return fmt.Sprintf("[%s] Booking reserved | booking_id=%s | customer=%q | party=%d | tables=%d | remaining=%d | booking_time=%s\n",
            ev.OccurredAt, ev.BookingID, ev.CustomerName, ev.CustomerAmount, ev.TableAmount, ev.TablesRemaining, ev.BookingTime)
    case EventBookingCancelled:
        return fmt.Sprintf("[%s] Booking cancelled | booking_id=%s | freed=%d | remaining=%d\n",
            ev.OccurredAt, ev.BookingID, ev.TableAmount, ev.TablesRemaining)
    case EventBookingExpired:
        return fmt.Sprintf("[%s] Booking expired | booking_id=%s | customer=%q | freed=%d | remaining=%d\n",
            ev.OccurredAt, ev.BookingID, ev.CustomerName, ev.TableAmount, ev.TablesRemaining)
    case EventBookingSeated:
        return fmt.Sprintf("[%s] Party seated | booking_id=%s | tables=%v\n", ev.OccurredAt, ev.BookingID, ev.TableIDs)
    case EventTableCleared:
        return fmt.Sprintf("[%s] Tables cleared | table_ids=%v | freed=%d | remaining=%d\n",
            ev.OccurredAt, ev.TableIDs, ev.TableAmount, ev.TablesRemaining)
    }
    return fmt.Sprintf("[%s] Unknown event %q\n", ev.OccurredAt, ev.Type)
}
