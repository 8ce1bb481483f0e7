package document_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizkyhp/gudangpro/internal/document"
	"github.com/rizkyhp/gudangpro/internal/ledger"
	"github.com/rizkyhp/gudangpro/internal/qrcode"
)

func newRenderer() *document.Renderer {
	return document.NewRenderer(qrcode.New("", 0))
}

func sellTransaction() *ledger.Transaction {
	return &ledger.Transaction{
		ID:           uuid.New(),
		Code:         "INV-20231027-A1B2",
		DeliveryCode: "SJ-20231027-Z9Y8",
		Type:         ledger.TypeSell,
		ItemName:     "Laptop ASUS",
		Quantity:     2,
		Price:        7_500_000,
		Date:         time.Date(2023, 10, 27, 0, 0, 0, 0, time.UTC),
		Customer:     "PT Maju Jaya",
		Notes:        "garansi 1 tahun",
	}
}

func TestRenderer_Invoice(t *testing.T) {
	doc, err := newRenderer().Render(sellTransaction(), document.KindInvoice)
	require.NoError(t, err)

	assert.Equal(t, document.KindInvoice, doc.Kind)
	assert.Equal(t, "INVOICE", doc.Title)
	assert.Equal(t, "INV-20231027-A1B2", doc.Number)
	assert.Equal(t, "SJ-20231027-Z9Y8", doc.DeliveryNumber)
	assert.Equal(t, "27 Oktober 2023", doc.Date)
	assert.Equal(t, "PT Maju Jaya", doc.Recipient)
	assert.Equal(t, "garansi 1 tahun", doc.Notes)

	require.Len(t, doc.Lines, 1)
	line := doc.Lines[0]
	assert.Equal(t, "Laptop ASUS", line.ItemName)
	assert.Equal(t, "2", line.Quantity)
	assert.Equal(t, "Rp 7.500.000", line.UnitPrice)
	assert.Equal(t, "Rp 15.000.000", line.LineTotal)

	assert.Equal(t, "Rp 15.000.000", doc.Subtotal)
	assert.Equal(t, "Rp 15.000.000", doc.Total)
	assert.Contains(t, doc.CodeImageURL, "INV-20231027-A1B2")
}

func TestRenderer_InvoiceIssuerLetterhead(t *testing.T) {
	doc, err := newRenderer().Render(sellTransaction(), document.KindInvoice)
	require.NoError(t, err)

	assert.Equal(t, "GudangPro", doc.Issuer.Name)
	assert.Equal(t, []string{"Jl. Contoh No. 123", "Bandung, Jawa Barat"}, doc.Issuer.AddressLines)
	assert.Equal(t, "(022) 1234567", doc.Issuer.Phone)
}

func TestRenderer_DeliveryForSell(t *testing.T) {
	doc, err := newRenderer().Render(sellTransaction(), document.KindDelivery)
	require.NoError(t, err)

	assert.Equal(t, "SURAT JALAN", doc.Title)
	assert.Equal(t, "SJ-20231027-Z9Y8", doc.Number)
	assert.Equal(t, "INV-20231027-A1B2", doc.InvoiceRef)
	assert.Contains(t, doc.CodeImageURL, "SJ-20231027-Z9Y8")

	// Delivery notes carry no amounts.
	require.Len(t, doc.Lines, 1)
	assert.Empty(t, doc.Lines[0].UnitPrice)
	assert.Empty(t, doc.Lines[0].LineTotal)
	assert.Empty(t, doc.Subtotal)
	assert.Empty(t, doc.Total)
}

func TestRenderer_DeliveryForOut(t *testing.T) {
	tx := &ledger.Transaction{
		ID:       uuid.New(),
		Code:     "OUT-20231024-G7H8",
		Type:     ledger.TypeOut,
		ItemName: "Mouse Logitech",
		Quantity: 4,
		Price:    150_000,
		Date:     time.Date(2023, 10, 24, 0, 0, 0, 0, time.UTC),
	}

	doc, err := newRenderer().Render(tx, document.KindDelivery)
	require.NoError(t, err)

	// No delivery code: the note falls back to the transaction code and
	// carries no invoice reference.
	assert.Equal(t, "OUT-20231024-G7H8", doc.Number)
	assert.Empty(t, doc.InvoiceRef)
	assert.Equal(t, "Customer", doc.Recipient)
}

func TestRenderer_KindContract(t *testing.T) {
	tests := []struct {
		name   string
		txType ledger.Type
		kind   document.Kind
	}{
		{name: "InvoiceForIn", txType: ledger.TypeIn, kind: document.KindInvoice},
		{name: "InvoiceForOut", txType: ledger.TypeOut, kind: document.KindInvoice},
		{name: "InvoiceForBuy", txType: ledger.TypeBuy, kind: document.KindInvoice},
		{name: "DeliveryForIn", txType: ledger.TypeIn, kind: document.KindDelivery},
		{name: "DeliveryForBuy", txType: ledger.TypeBuy, kind: document.KindDelivery},
		{name: "UnknownKind", txType: ledger.TypeSell, kind: document.Kind("receipt")},
	}

	r := newRenderer()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &ledger.Transaction{Type: tt.txType, Code: "X", ItemName: "X", Quantity: 1}

			doc, err := r.Render(tx, tt.kind)

			assert.Nil(t, doc)
			assert.ErrorIs(t, err, document.ErrUnsupportedKind)

			var kindErr *document.UnsupportedKindError
			require.ErrorAs(t, err, &kindErr)
			assert.Equal(t, tt.kind, kindErr.Kind)
			assert.Equal(t, tt.txType, kindErr.Type)
		})
	}
}

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{in: 0, want: "Rp 0"},
		{in: 950, want: "Rp 950"},
		{in: 1_500, want: "Rp 1.500"},
		{in: 1_500_000, want: "Rp 1.500.000"},
		{in: 2_147_483_648, want: "Rp 2.147.483.648"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, document.FormatRupiah(tt.in))
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{in: time.Date(2023, 10, 27, 0, 0, 0, 0, time.UTC), want: "27 Oktober 2023"},
		{in: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), want: "02 Januari 2024"},
		{in: time.Date(2022, 12, 31, 23, 59, 0, 0, time.UTC), want: "31 Desember 2022"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, document.FormatDate(tt.in))
	}
}
