package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"moviebooking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "middleware-secret"

func protected(roles ...string) http.Handler {
	log := zap.NewNop()
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, _ := utils.GetUsernameFromContext(r.Context())
		_, _ = w.Write([]byte(username))
	})
	return AuthJWT(testSecret, log)(RequireRoles(log, roles...)(final))
}

func tokenFor(t *testing.T, username string, roles ...string) string {
	t.Helper()
	tok, _, err := utils.GenerateToken(testSecret, username, roles, time.Hour)
	require.NoError(t, err)
	return tok
}

func TestAuthJWT_RoleGuard(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"wrong role", "Bearer " + tokenFor(t, "gus", "ROLE_GUEST"), http.StatusForbidden},
		{"allowed role", "Bearer " + tokenFor(t, "alice", "ROLE_USER"), http.StatusOK},
		{"one of many", "Bearer " + tokenFor(t, "root", "ROLE_GUEST", "ROLE_ADMIN"), http.StatusOK},
	}

	h := protected("ROLE_USER", "ROLE_ADMIN")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/all", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	tok, _, err := utils.GenerateToken(testSecret, "alice", []string{"ROLE_USER"}, -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/all", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	protected("ROLE_USER").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_PutsUsernameInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/all", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, "alice", "ROLE_USER"))
	rec := httptest.NewRecorder()
	protected("ROLE_USER").ServeHTTP(rec, req)

	assert.Equal(t, "alice", rec.Body.String())
}

func TestRecover(t *testing.T) {
	h := Recover(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func corsRequest(method, requestMethod string) *http.Request {
	req := httptest.NewRequest(method, "/all", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	if requestMethod != "" {
		req.Header.Set("Access-Control-Request-Method", requestMethod)
	}
	return req
}

func TestCORS_Preflight(t *testing.T) {
	called := false
	h := CORS()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, corsRequest(http.MethodOptions, http.MethodPut))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "3600", rec.Header().Get("Access-Control-Max-Age"))
	assert.False(t, called)
}

func TestCORS_PreflightRejectsUnlistedMethod(t *testing.T) {
	h := CORS()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, corsRequest(http.MethodOptions, http.MethodPatch))

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_SimpleRequestPassesThrough(t *testing.T) {
	called := false
	h := CORS()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, corsRequest(http.MethodGet, ""))

	assert.True(t, called)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
