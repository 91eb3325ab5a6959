package gate_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranayama-studio/pranayama-api/internal/gate"
	"github.com/pranayama-studio/pranayama-api/internal/shared"
	"github.com/pranayama-studio/pranayama-api/internal/token"
	_ "github.com/pranayama-studio/pranayama-api/testing"
)

type stubLookup struct {
	roles map[string]gate.Role
	err   error
	calls int
}

func (s *stubLookup) RoleByEmail(ctx context.Context, email string) (gate.Role, error) {
	s.calls++
	if s.err != nil {
		return gate.RoleUnset, s.err
	}
	role, ok := s.roles[email]
	if !ok {
		return gate.RoleUnset, shared.ErrNotFound
	}
	return role, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newGate(lookup gate.RoleLookup) (*gate.RoleGate, *gate.Authenticator, *token.Codec) {
	codec := token.NewCodec([]byte("test-secret"), time.Hour)
	auth := gate.NewAuthenticator(discardLogger(), codec)
	return gate.NewRoleGate(discardLogger(), auth, lookup), auth, codec
}

func mintFor(t *testing.T, codec *token.Codec, email string) string {
	t.Helper()
	signed, err := codec.Mint(token.Claims{Email: email})
	require.NoError(t, err)
	return signed
}

func okHandler(hit *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hit = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticatorMissingHeader(t *testing.T) {
	lookup := &stubLookup{}
	g, _, _ := newGate(lookup)

	var hit bool
	handler := g.Require(gate.RoleAdmin)(okHandler(&hit))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	require.Equal(t, http.StatusUnauthorized, res.Code)
	assert.False(t, hit)
	assert.Zero(t, lookup.calls, "role lookup must not run for unauthenticated requests")

	var body shared.AuthErrorBody
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.True(t, body.Error)
	assert.Equal(t, "unauthorized access", body.Message)
}

func TestAuthenticatorBadToken(t *testing.T) {
	g, _, _ := newGate(&stubLookup{})

	var hit bool
	handler := g.Require(gate.RoleAdmin)(okHandler(&hit))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.False(t, hit)
}

func TestAuthenticatorExpiredTokenSurfacesAsUnauthorized(t *testing.T) {
	expired := token.NewCodec([]byte("test-secret"), -time.Minute)
	g, _, _ := newGate(&stubLookup{})

	var hit bool
	handler := g.Require(gate.RoleAdmin)(okHandler(&hit))

	signed, err := expired.Mint(token.Claims{Email: "alice@x.com"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.False(t, hit)
}

func TestRoleGateWrongRole(t *testing.T) {
	lookup := &stubLookup{roles: map[string]gate.Role{"bob@x.com": gate.RoleStudent}}
	g, _, codec := newGate(lookup)

	var hit bool
	handler := g.Require(gate.RoleInstructor)(okHandler(&hit))

	req := httptest.NewRequest(http.MethodGet, "/classes", nil)
	req.Header.Set("Authorization", "Bearer "+mintFor(t, codec, "bob@x.com"))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	require.Equal(t, http.StatusForbidden, res.Code)
	assert.False(t, hit)

	var body shared.AuthErrorBody
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.True(t, body.Error)
	assert.Equal(t, "Forbidden: Only instructors can access this resource.", body.Message)
}

func TestRoleGateMissingAccount(t *testing.T) {
	lookup := &stubLookup{roles: map[string]gate.Role{}}
	g, _, codec := newGate(lookup)

	var hit bool
	handler := g.Require(gate.RoleInstructor)(okHandler(&hit))

	req := httptest.NewRequest(http.MethodGet, "/classes", nil)
	req.Header.Set("Authorization", "Bearer "+mintFor(t, codec, "alice@x.com"))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	assert.Equal(t, http.StatusForbidden, res.Code)
	assert.False(t, hit)
}

func TestRoleGateLookupError(t *testing.T) {
	lookup := &stubLookup{err: errors.New("connection reset")}
	g, _, codec := newGate(lookup)

	var hit bool
	handler := g.Require(gate.RoleAdmin)(okHandler(&hit))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+mintFor(t, codec, "alice@x.com"))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.False(t, hit)
}

func TestRoleGatePasses(t *testing.T) {
	lookup := &stubLookup{roles: map[string]gate.Role{"admin@x.com": gate.RoleAdmin}}
	g, _, codec := newGate(lookup)

	var hit bool
	handler := g.Require(gate.RoleAdmin)(okHandler(&hit))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+mintFor(t, codec, "admin@x.com"))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.True(t, hit)
	assert.Equal(t, 1, lookup.calls, "exactly one identity read per gated request")
}

func TestAuthenticatorAttachesClaims(t *testing.T) {
	codec := token.NewCodec([]byte("test-secret"), time.Hour)
	auth := gate.NewAuthenticator(discardLogger(), codec)

	var got token.Claims
	handler := auth.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := gate.ClaimsFromContext(r.Context())
		require.True(t, ok)
		got = claims
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+mintFor(t, codec, "alice@x.com"))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "alice@x.com", got.Email)
}
