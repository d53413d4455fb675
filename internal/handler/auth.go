package handler

import (
    "context"
    "errors"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/restaurant-table-reservation/internal/config"
    "github.com/iliyamo/restaurant-table-reservation/internal/repository"
    "github.com/iliyamo/restaurant-table-reservation/internal/utils"
)

// AuthHandler bundles dependencies for the staff login endpoint.  The
// booking engine consumes only the capability claims baked into the
// issued token; it never talks to this handler.
type AuthHandler struct {
    Cfg   config.Config
    Staff repository.StaffStore
}

func NewAuthHandler(cfg config.Config, staff repository.StaffStore) *AuthHandler {
    if staff == nil {
        panic("nil staff store passed to NewAuthHandler")
    }
    return &AuthHandler{Cfg: cfg, Staff: staff}
}

// ----- DTOs -----

type loginReq struct {
    Username string `json:"username"`
    Password string `json:"password"`
}

type loginResp struct {
    Token string `json:"token"`
}

// Login verifies staff credentials and returns a signed access token
// carrying the can_init capability.
func (h *AuthHandler) Login(c echo.Context) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Username = strings.TrimSpace(req.Username)
    if req.Username == "" || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    staff, err := h.Staff.GetByUsername(ctx, req.Username)
    if err != nil {
        if errors.Is(err, repository.ErrStaffNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "lookup failed"})
    }
    if !utils.VerifyPassword(staff.PasswordHash, req.Password) {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "password not match"})
    }

    access, err := utils.NewAccessToken(h.Cfg.JWTSecret, staff.ID, staff.CanInit, h.Cfg.AccessTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
    }
    return c.JSON(http.StatusOK, loginResp{Token: access.Token})
}
