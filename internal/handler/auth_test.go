package handler

import (
    "net/http"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "golang.org/x/crypto/bcrypt"

    "github.com/iliyamo/restaurant-table-reservation/internal/config"
    "github.com/iliyamo/restaurant-table-reservation/internal/repository"
)

func newAuthHandler() *AuthHandler {
    cfg := config.Config{JWTSecret: "test-secret", AccessTTLMin: 15}
    return NewAuthHandler(cfg, repository.NewMemoryStaffRepo(bcrypt.MinCost))
}

func TestLoginSuccess(t *testing.T) {
    h := newAuthHandler()

    rec := call(t, h.Login, http.MethodPost, `{"username":"admin1","password":"1234567890"}`)
    require.Equal(t, http.StatusOK, rec.Code)
    assert.NotEmpty(t, decodeMap(t, rec)["token"])
}

func TestLoginUnknownUser(t *testing.T) {
    h := newAuthHandler()

    rec := call(t, h.Login, http.MethodPost, `{"username":"ghost","password":"1234567890"}`)
    assert.Equal(t, http.StatusNotFound, rec.Code)
    assert.Equal(t, "user not found", decodeMap(t, rec)["error"])
}

func TestLoginWrongPassword(t *testing.T) {
    h := newAuthHandler()

    rec := call(t, h.Login, http.MethodPost, `{"username":"admin2","password":"wrong"}`)
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
    assert.Equal(t, "password not match", decodeMap(t, rec)["error"])
}

func TestLoginMissingFields(t *testing.T) {
    h := newAuthHandler()

    rec := call(t, h.Login, http.MethodPost, `{"username":"admin1"}`)
    assert.Equal(t, http.StatusBadRequest, rec.Code)
}
