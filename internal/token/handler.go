package token

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pranayama-studio/pranayama-api/internal/shared"
)

// Handler wires the token minting endpoint.
type Handler struct {
	logger *slog.Logger
	codec  *Codec
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, codec *Codec) *Handler {
	return &Handler{logger: logger, codec: codec}
}

// MountRoutes registers token routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/jwt", h.mintToken)
}

func (h *Handler) mintToken(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := shared.DecodeJSON(r, &body); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	email, _ := body["email"].(string)
	delete(body, "email")

	signed, err := h.codec.Mint(Claims{Email: email, Extra: body})
	if err != nil {
		h.logger.Error("mint token", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	shared.RespondJSON(w, http.StatusOK, map[string]string{"token": signed})
}
