package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/restaurant-table-reservation/internal/config"
    "github.com/iliyamo/restaurant-table-reservation/internal/handler"
    "github.com/iliyamo/restaurant-table-reservation/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the staff login endpoint under /v1/auth.
// Login is rate limited like the public booking routes.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, rdb *redis.Client) {
    limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
    g := e.Group("/v1/auth", limiter)
    g.POST("/login", a.Login)
}

// RegisterBooking wires the five booking operations and the status
// endpoint.  Customer-facing routes carry the rate limiter; the two
// staff operations require a valid JWT, and init additionally demands
// the can_init capability.  Status sits behind the response cache.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, cfg config.Config, rdb *redis.Client) {
    limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
    cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

    g := e.Group("/v1/booking/table")

    // Customer operations: no authentication, rate limited.
    g.POST("/reserve", b.Reserve, limiter)
    g.PATCH("/cancel", b.Cancel, limiter)
    g.PATCH("/use", b.Use, limiter)

    // Staff operations behind JWT; init also needs can_init.
    auth := middleware.JWTAuth(cfg.JWTSecret)
    g.POST("/init", b.InitTables, auth, middleware.RequireInit())
    g.PATCH("/clear", b.Clear, auth, middleware.RequireStaff())

    // Read-only snapshot for floor displays.
    g.GET("/status", b.Status, cache)
}
