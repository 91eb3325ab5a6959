package classes

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/pranayama-studio/pranayama-api/internal/gate"
	"github.com/pranayama-studio/pranayama-api/internal/shared"
)

// Handler wires HTTP endpoints for class offerings.
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

// MountRoutes registers class routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/approvedclass", h.listApproved)

	r.Group(func(r chi.Router) {
		r.Use(h.gates.Require(gate.RoleInstructor))
		r.Post("/class", h.create)
		r.Get("/classes", h.listOwn)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.gates.Require(gate.RoleAdmin))
		r.Get("/adminclasses", h.listAll)
		r.Patch("/adminclasses/{id}/status", h.updateStatus)
		r.Post("/adminclasses/{id}/feedback", h.sendFeedback)
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateClassRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create class", slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	shared.RespondJSON(w, http.StatusOK, shared.InsertResult{Acknowledged: true, InsertedID: id.String()})
}

func (h *Handler) listOwn(w http.ResponseWriter, r *http.Request) {
	claims, _ := gate.ClaimsFromContext(r.Context())
	offerings, err := h.service.ListByInstructor(r.Context(), claims.Email)
	if err != nil {
		h.logger.Error("list own classes", slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	shared.RespondJSON(w, http.StatusOK, offerings)
}

func (h *Handler) listAll(w http.ResponseWriter, r *http.Request) {
	offerings, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("list admin classes", slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	shared.RespondJSON(w, http.StatusOK, offerings)
}

// listApproved serves the public storefront listing. It returns every
// offering regardless of status; the storefront filters locally.
func (h *Handler) listApproved(w http.ResponseWriter, r *http.Request) {
	offerings, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("list approved classes", slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	shared.RespondJSON(w, http.StatusOK, offerings)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	var req UpdateStatusRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	matched, err := h.service.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		h.logger.Error("update class status", slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	shared.RespondJSON(w, http.StatusOK, shared.UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: matched})
}

func (h *Handler) sendFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	var req FeedbackRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	matched, err := h.service.SendFeedback(r.Context(), id, req.Feedback)
	if err != nil {
		h.logger.Error("send class feedback", slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	shared.RespondJSON(w, http.StatusOK, shared.UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: matched})
}
