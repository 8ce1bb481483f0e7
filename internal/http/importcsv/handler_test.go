package importcsv_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizkyhp/gudangpro/internal/http/importcsv"
	"github.com/rizkyhp/gudangpro/internal/importer"
	"github.com/rizkyhp/gudangpro/internal/ledger"
	"github.com/rizkyhp/gudangpro/internal/ledger/store"
	"github.com/rizkyhp/gudangpro/internal/storage/memory"
)

func setup(t *testing.T) (http.Handler, *ledger.Service) {
	t.Helper()

	ledgerSvc := ledger.NewService(store.New(memory.New()))
	h := importcsv.NewHandler(importer.NewService(), ledgerSvc)

	r := chi.NewRouter()
	r.Route("/import", h.Routes)

	return r, ledgerSvc
}

func uploadCSV(t *testing.T, router http.Handler, csvBody string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", "gudang.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(csvBody))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_Upload(t *testing.T) {
	router, svc := setup(t)

	csvBody := strings.Join([]string{
		"Tanggal;Jenis;Nama Barang;Jumlah;Harga;Keterangan;Customer;Supplier",
		"27/10/2023;Jual;Laptop ASUS;2;7.500.000;;PT Maju Jaya;",
		"26/10/2023;Masuk;Keyboard Mechanical;25;450.000;;;",
	}, "\n")

	rec := uploadCSV(t, router, csvBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Imported int `json:"imported"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Imported)

	txs, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, txs, 2)

	// File order is preserved: the first CSV row is newest.
	assert.Equal(t, ledger.TypeSell, txs[0].Type)
	assert.True(t, strings.HasPrefix(txs[0].Code, "INV-20231027-"))
	assert.True(t, strings.HasPrefix(txs[0].DeliveryCode, "SJ-"))
	assert.Equal(t, ledger.TypeIn, txs[1].Type)
}

func TestHandler_Upload_BadRowRejectsWholeFile(t *testing.T) {
	router, svc := setup(t)

	csvBody := strings.Join([]string{
		"Tanggal;Jenis;Nama Barang;Jumlah;Harga",
		"27/10/2023;Masuk;Keyboard Mechanical;25;450.000",
		"28/10/2023;Pinjam;Monitor LG;3;2.000.000",
	}, "\n")

	rec := uploadCSV(t, router, csvBody)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	txs, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestHandler_Upload_MissingFile(t *testing.T) {
	router, _ := setup(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("source", "legacy"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
