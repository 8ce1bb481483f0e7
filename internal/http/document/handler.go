package document

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rizkyhp/gudangpro/internal/document"
	"github.com/rizkyhp/gudangpro/internal/ledger"
)

type Handler struct {
	svc      *ledger.Service
	renderer *document.Renderer
}

func NewHandler(svc *ledger.Service, renderer *document.Renderer) *Handler {
	return &Handler{svc: svc, renderer: renderer}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{id}/documents/{kind}", h.render)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	kind := document.Kind(chi.URLParam(r, "kind"))

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	doc, err := h.renderer.Render(tx, kind)
	if err != nil {
		if errors.Is(err, document.ErrUnsupportedKind) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(doc); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
