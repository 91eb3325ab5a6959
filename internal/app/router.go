package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/pranayama-studio/pranayama-api/internal/classes"
	"github.com/pranayama-studio/pranayama-api/internal/enrollments"
	"github.com/pranayama-studio/pranayama-api/internal/token"
	"github.com/pranayama-studio/pranayama-api/internal/users"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger             *slog.Logger
	Config             *Config
	TokenHandler       *token.Handler
	UsersHandler       *users.Handler
	ClassesHandler     *classes.Handler
	EnrollmentsHandler *enrollments.Handler
}

// NewRouter constructs the chi.Router with the studio defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(params.Config, params.Logger) {
		r.Use(mw)
	}
	r.Use(chimw.Logger)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Pranayama is sitting"))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	params.TokenHandler.MountRoutes(r)
	params.UsersHandler.MountRoutes(r)
	params.ClassesHandler.MountRoutes(r)
	params.EnrollmentsHandler.MountRoutes(r)

	return r
}
