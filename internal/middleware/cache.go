package middleware

import (
    "bytes"
    "context"
    "crypto/sha1"
    "fmt"
    "net/http"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/restaurant-table-reservation/internal/config"
)

// captureWriter tees the response body so a successful payload can be
// stored in Redis after it has been sent to the client.
type captureWriter struct {
    http.ResponseWriter
    status int
    buf    bytes.Buffer
}

func (cw *captureWriter) WriteHeader(code int) {
    cw.status = code
    cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
    cw.buf.Write(b)
    return cw.ResponseWriter.Write(b)
}

// NewRedisCache caches GET responses for the table-status endpoint.
// The table snapshot changes with every booking, but a stale answer
// is bounded by the short TTL and costs nothing to serve, so there is
// no invalidation.  Only 200 responses are stored.  With caching
// disabled or no Redis client the middleware is a pass-through.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
    }

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if c.Request().Method != http.MethodGet {
                return next(c)
            }

            sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
            key := fmt.Sprintf("%s:%x", cfg.Prefix, sum[:])

            if body, err := rdb.Get(c.Request().Context(), key).Bytes(); err == nil {
                c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
                c.Response().Header().Set("X-Cache", "HIT")
                c.Response().WriteHeader(http.StatusOK)
                _, _ = c.Response().Write(body)
                return nil
            }

            cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK}
            c.Response().Writer = cw
            c.Response().Header().Set("X-Cache", "MISS")

            if err := next(c); err != nil {
                return err
            }
            if cw.status == http.StatusOK {
                _ = rdb.SetEx(context.Background(), key, cw.buf.Bytes(), cfg.TTL).Err()
            }
            return nil
        }
    }
}
