package users

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/pranayama-studio/pranayama-api/internal/gate"
	"github.com/pranayama-studio/pranayama-api/internal/shared"
)

// Handler wires HTTP endpoints for account management.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	auth      *gate.Authenticator
	gates     *gate.RoleGate
	validator *validator.Validate
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, auth *gate.Authenticator, gates *gate.RoleGate) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		auth:      auth,
		gates:     gates,
		validator: validator.New(),
	}
}

// MountRoutes registers account routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/users", h.register)
	r.Get("/instructorusers", h.listInstructors)
	r.With(h.gates.Require(gate.RoleAdmin)).Get("/users", h.listAccounts)

	r.Group(func(r chi.Router) {
		r.Use(h.auth.Middleware())
		r.Get("/users/admin/{email}", h.selfRole(gate.RoleAdmin, "admin"))
		r.Get("/users/student/{email}", h.selfRole(gate.RoleStudent, "student"))
		r.Get("/users/instructor/{email}", h.selfRole(gate.RoleInstructor, "instructor"))
	})

	// TODO: add an admin gate here once the dashboard sends credentials
	// on role assignment; the route ships open today.
	r.Patch("/users/role/{id}", h.assignRole)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	id, err := h.service.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			shared.RespondJSON(w, http.StatusOK, map[string]string{"message": "user already exists"})
			return
		}
		h.logger.Error("register user", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	shared.RespondJSON(w, http.StatusOK, shared.InsertResult{Acknowledged: true, InsertedID: id.String()})
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list users", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	shared.RespondJSON(w, http.StatusOK, accounts)
}

// listInstructors serves the public instructor directory. It returns
// every account; the storefront picks out instructors locally.
func (h *Handler) listInstructors(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list instructor users", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	shared.RespondJSON(w, http.StatusOK, accounts)
}

// selfRole answers "does the caller hold role X" for the caller's own
// email. A path email that differs from the authenticated claim always
// reports false; the lookup still runs either way.
func (h *Handler) selfRole(role gate.Role, field string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := chi.URLParam(r, "email")
		claims, _ := gate.ClaimsFromContext(r.Context())
		matches := claims.Email == email

		account, err := h.service.FindByEmail(r.Context(), email)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			h.logger.Error("self role lookup", slog.Any("error", err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		holds := matches && err == nil && account.Role == string(role)
		shared.RespondJSON(w, http.StatusOK, map[string]bool{field: holds})
	}
}

func (h *Handler) assignRole(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Error updating user role", http.StatusInternalServerError)
		return
	}
	var req UpdateRoleRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	matched, err := h.service.AssignRole(r.Context(), id, req.Role)
	if err != nil {
		h.logger.Error("assign role", slog.Any("error", err))
		http.Error(w, "Error updating user role", http.StatusInternalServerError)
		return
	}
	shared.RespondJSON(w, http.StatusOK, shared.UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: matched})
}
