package handler

import (
	"net/http"

	"expensetracker/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// Ping is a liveness probe; it answers without touching any dependency and is
// reachable without authentication.
func Ping(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "PONG"}, "Service is healthy")
}
