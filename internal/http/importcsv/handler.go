package importcsv

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rizkyhp/gudangpro/internal/importer"
	"github.com/rizkyhp/gudangpro/internal/ledger"
)

const maxUploadSize = 10 << 20 // 10 MiB

type Handler struct {
	importSvc *importer.Service
	ledgerSvc *ledger.Service
}

func NewHandler(importSvc *importer.Service, ledgerSvc *ledger.Service) *Handler {
	return &Handler{importSvc: importSvc, ledgerSvc: ledgerSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.upload)
}

type importResponse struct {
	Imported int `json:"imported"`
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	source := importer.SourceLegacy
	if s := r.FormValue("source"); s != "" {
		source = importer.Source(s)
	}

	params, err := h.importSvc.Import(source, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	txs, err := h.ledgerSvc.CreateBatch(r.Context(), params)
	if err != nil {
		var vErr *ledger.ValidationError
		if errors.As(err, &vErr) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(importResponse{Imported: len(txs)}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
