package middleware

import (
    "net/http"

    "github.com/labstack/echo/v4"
)

// RequireStaff ensures the request carries an authenticated staff
// identity.  It assumes JWTAuth already ran and stored "staff_id" in
// the context; a missing id means the token check was bypassed or the
// claims were malformed.
func RequireStaff() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if c.Get("staff_id") == nil {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "You don't have permission to access this api"})
            }
            return next(c)
        }
    }
}

// RequireInit additionally demands the can_init capability, which
// gates the once-per-service-period table initialization.
func RequireInit() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            canInit, _ := c.Get("can_init").(bool)
            if !canInit {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "You don't have permission to access this api"})
            }
            return next(c)
        }
    }
}
