package cookie

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTokenCookie(t *testing.T) {
	ck := NewTokenCookie("signed.token.value", 15*time.Minute)

	assert.Equal(t, TokenCookieName, ck.Name)
	assert.Equal(t, "signed.token.value", ck.Value)
	assert.Equal(t, "/", ck.Path)
	assert.Equal(t, 900, ck.MaxAge)
	assert.True(t, ck.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, ck.SameSite)
}

func TestClearTokenCookie(t *testing.T) {
	ck := ClearTokenCookie()

	assert.Equal(t, TokenCookieName, ck.Name)
	assert.Empty(t, ck.Value)
	assert.Equal(t, "/", ck.Path)
	assert.Equal(t, -1, ck.MaxAge)
	assert.True(t, ck.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, ck.SameSite)
}
