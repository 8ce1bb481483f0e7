package document_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizkyhp/gudangpro/internal/document"
	documenthttp "github.com/rizkyhp/gudangpro/internal/http/document"
	"github.com/rizkyhp/gudangpro/internal/ledger"
	"github.com/rizkyhp/gudangpro/internal/ledger/store"
	"github.com/rizkyhp/gudangpro/internal/qrcode"
	"github.com/rizkyhp/gudangpro/internal/storage/memory"
)

func setup(t *testing.T) (http.Handler, *ledger.Service) {
	t.Helper()

	svc := ledger.NewService(store.New(memory.New()))
	h := documenthttp.NewHandler(svc, document.NewRenderer(qrcode.New("", 0)))

	r := chi.NewRouter()
	r.Route("/transactions", h.Routes)

	return r, svc
}

func TestHandler_RenderInvoice(t *testing.T) {
	router, svc := setup(t)

	tx, err := svc.Append(context.Background(), ledger.CreateParams{
		Type:     ledger.TypeSell,
		ItemName: "Laptop ASUS",
		Quantity: 2,
		Price:    7_500_000,
		Customer: "PT Maju Jaya",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/transactions/"+tx.ID.String()+"/documents/invoice", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		Kind      string `json:"kind"`
		Number    string `json:"number"`
		Total     string `json:"total"`
		Recipient string `json:"recipient"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "invoice", doc.Kind)
	assert.Equal(t, tx.Code, doc.Number)
	assert.Equal(t, "Rp 15.000.000", doc.Total)
	assert.Equal(t, "PT Maju Jaya", doc.Recipient)
}

func TestHandler_RenderErrors(t *testing.T) {
	router, svc := setup(t)

	inTx, err := svc.Append(context.Background(), ledger.CreateParams{
		Type:     ledger.TypeIn,
		ItemName: "Keyboard Mechanical",
		Quantity: 25,
		Price:    450_000,
	})
	require.NoError(t, err)

	type testCase struct {
		name       string
		path       string
		wantStatus int
	}

	tests := []testCase{
		{
			name:       "InvalidID",
			path:       "/transactions/not-a-uuid/documents/invoice",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "NotFound",
			path:       "/transactions/00000000-0000-0000-0000-000000000001/documents/invoice",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "InvoiceForStockMovement",
			path:       "/transactions/" + inTx.ID.String() + "/documents/invoice",
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "UnknownKind",
			path:       "/transactions/" + inTx.ID.String() + "/documents/receipt",
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
