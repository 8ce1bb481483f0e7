package ledger

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rizkyhp/gudangpro/internal/ledger"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

type createTransactionRequest struct {
	Type     ledger.Type `json:"type"`
	ItemName string      `json:"itemName"`
	Quantity int64       `json:"quantity"`
	Price    int64       `json:"price"`
	Notes    string      `json:"notes"`
	Customer string      `json:"customer"`
	Supplier string      `json:"supplier"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		// Malformed numeric input is a validation failure, never a
		// silent zero.
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Append(r.Context(), ledger.CreateParams{
		Type:     req.Type,
		ItemName: req.ItemName,
		Quantity: req.Quantity,
		Price:    req.Price,
		Notes:    req.Notes,
		Customer: req.Customer,
		Supplier: req.Supplier,
	})
	if err != nil {
		var vErr *ledger.ValidationError
		if errors.As(err, &vErr) {
			http.Error(w, vErr.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	tab := ledger.TabOverview
	if s := r.URL.Query().Get("tab"); s != "" {
		tab = ledger.Tab(s)
		if !tab.Valid() {
			http.Error(w, "invalid tab", http.StatusBadRequest)
			return
		}
	}

	txs, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	txs = ledger.Filter(txs, tab, r.URL.Query().Get("q"))

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s := ledger.Summarize(txs)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(summaryResponse{
		TotalIn:        s.TotalIn,
		TotalOut:       s.TotalOut,
		TotalBuyValue:  s.TotalBuyValue,
		TotalSellValue: s.TotalSellValue,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
