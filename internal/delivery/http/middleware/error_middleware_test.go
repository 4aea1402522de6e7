package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "expensetracker/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder, *ErrorMiddleware) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/expenses/99", nil)
	rec := httptest.NewRecorder()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return e.NewContext(req, rec), rec, NewErrorMiddleware(logger)
}

func TestErrorMiddleware_AppError(t *testing.T) {
	c, rec, m := newErrorTestContext(t)

	m.HandleHTTPError(domainerrors.ErrExpenseNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"success":false`)
	assert.Contains(t, body, "EXPENSE_NOT_FOUND")
	assert.Contains(t, body, "Expense not found")
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	c, rec, m := newErrorTestContext(t)

	m.HandleHTTPError(errors.Wrap(domainerrors.ErrInvalidToken, "middleware rejected request"), c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	c, rec, m := newErrorTestContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

// Unknown errors must not leak internals to the client.
func TestErrorMiddleware_UnexpectedError(t *testing.T) {
	c, rec, m := newErrorTestContext(t)

	m.HandleHTTPError(errors.New("pq: connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "INTERNAL_ERROR")
	assert.NotContains(t, body, "connection refused")
}
