package app_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranayama-studio/pranayama-api/internal/app"
	"github.com/pranayama-studio/pranayama-api/internal/classes"
	"github.com/pranayama-studio/pranayama-api/internal/enrollments"
	"github.com/pranayama-studio/pranayama-api/internal/gate"
	"github.com/pranayama-studio/pranayama-api/internal/token"
	"github.com/pranayama-studio/pranayama-api/internal/users"
	_ "github.com/pranayama-studio/pranayama-api/testing"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	codec := token.NewCodec([]byte("test-secret"), time.Hour)
	auth := gate.NewAuthenticator(logger, codec)

	usersRepo := users.NewRepository(nil)
	roleGate := gate.NewRoleGate(logger, auth, usersRepo)

	return app.NewRouter(app.RouterParams{
		Logger:             logger,
		Config:             &app.Config{},
		TokenHandler:       token.NewHandler(logger, codec),
		UsersHandler:       users.NewHandler(logger, users.NewService(usersRepo), auth, roleGate),
		ClassesHandler:     classes.NewHandler(logger, classes.NewService(classes.NewRepository(nil)), roleGate),
		EnrollmentsHandler: enrollments.NewHandler(logger, enrollments.NewService(enrollments.NewRepository(nil)), roleGate),
	})
}

func TestLiveness(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Pranayama is sitting", res.Body.String())
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{"status":"ok"}`, res.Body.String())
}

func TestGatedRouteRejectsUnauthenticatedThroughFullStack(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/users", "/classes", "/adminclasses", "/selectclass"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)
		assert.Equal(t, http.StatusUnauthorized, res.Code, "path %s", path)
	}
}
