package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ndelorenzo/roomcast/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNameMiddleware(t *testing.T) {
	app := &RoomcastApp{
		log:        testutil.TestLogger(t),
		signingKey: []byte("secret"),
	}

	var gotUsername string
	var called bool
	handler := app.nameMiddleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotUsername, _ = Username(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("missing cookie", func(t *testing.T) {
		called = false
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)

		handler(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, called, "expected handler not to be called without a cookie")
	})

	t.Run("invalid token", func(t *testing.T) {
		called = false
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
		req.AddCookie(&http.Cookie{Name: tokenCookieKey, Value: "garbage"})

		handler(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, called, "expected handler not to be called with an invalid token")
	})

	t.Run("valid token", func(t *testing.T) {
		called = false
		token, err := app.createNameToken("alice", time.Hour)
		assert.NoError(t, err)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
		req.AddCookie(&http.Cookie{Name: tokenCookieKey, Value: token})

		handler(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, called, "expected handler to be called")
		assert.Equal(t, "alice", gotUsername, "expected username from token on the context")
	})
}

func TestErrorHandler(t *testing.T) {
	app := &RoomcastApp{log: testutil.TestLogger(t)}

	handler := app.errorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusInternalServerError, rr.Code, "expected panic to be converted to a 500")
}
