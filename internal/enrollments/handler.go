package enrollments

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/pranayama-studio/pranayama-api/internal/gate"
	"github.com/pranayama-studio/pranayama-api/internal/shared"
)

// Handler wires HTTP endpoints for class selection.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	gates     *gate.RoleGate
	validator *validator.Validate
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, gates *gate.RoleGate) *Handler {
	return &Handler{logger: logger, service: service, gates: gates, validator: validator.New()}
}

// MountRoutes registers enrollment routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.gates.Require(gate.RoleStudent))
		r.Post("/selectclass", h.selectClass)
		r.Get("/selectclass", h.listOwn)
	})
}

func (h *Handler) selectClass(w http.ResponseWriter, r *http.Request) {
	var req SelectClassRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	id, err := h.service.Select(r.Context(), req)
	if err != nil {
		h.logger.Error("select class", slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	shared.RespondJSON(w, http.StatusOK, shared.InsertResult{Acknowledged: true, InsertedID: id.String()})
}

func (h *Handler) listOwn(w http.ResponseWriter, r *http.Request) {
	claims, _ := gate.ClaimsFromContext(r.Context())
	enrollments, err := h.service.ListByUserEmail(r.Context(), claims.Email)
	if err != nil {
		h.logger.Error("list selected classes", slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	shared.RespondJSON(w, http.StatusOK, enrollments)
}
