package document

import (
	"errors"
	"fmt"

	"github.com/rizkyhp/gudangpro/internal/ledger"
	"github.com/rizkyhp/gudangpro/internal/qrcode"
)

// Kind selects which printable artifact to render for a transaction.
type Kind string

const (
	KindInvoice  Kind = "invoice"
	KindDelivery Kind = "delivery"
)

// ErrUnsupportedKind is the sentinel behind UnsupportedKindError.
var ErrUnsupportedKind = errors.New("unsupported document kind for transaction type")

// UnsupportedKindError reports a caller contract violation: invoices
// exist only for sell transactions, delivery notes only for sell or out.
type UnsupportedKindError struct {
	Kind Kind
	Type ledger.Type
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("cannot render %s for %s transaction", e.Kind, e.Type)
}

func (e *UnsupportedKindError) Unwrap() error { return ErrUnsupportedKind }

// Party is an issuer or sender block on a printed document.
type Party struct {
	Name         string   `json:"name"`
	AddressLines []string `json:"addressLines"`
	Phone        string   `json:"phone"`
}

// Line is a single line item. Amount fields are pre-formatted so the
// content is deterministic and presentation layers only lay it out.
type Line struct {
	No        int    `json:"no"`
	ItemName  string `json:"itemName"`
	Quantity  string `json:"quantity"`
	Unit      string `json:"unit"`
	UnitPrice string `json:"unitPrice,omitempty"`
	LineTotal string `json:"lineTotal,omitempty"`
}

// Document is the structured content of one printable artifact.
type Document struct {
	Kind           Kind   `json:"kind"`
	Title          string `json:"title"`
	Number         string `json:"number"`
	DeliveryNumber string `json:"deliveryNumber,omitempty"`
	Date           string `json:"date"`
	Issuer         Party  `json:"issuer"`
	Recipient      string `json:"recipient"`
	InvoiceRef     string `json:"invoiceRef,omitempty"`
	Lines          []Line `json:"lines"`
	Subtotal       string `json:"subtotal,omitempty"`
	Total          string `json:"total,omitempty"`
	Notes          string `json:"notes,omitempty"`
	CodeImageURL   string `json:"codeImageUrl"`
}

// Renderer deterministically turns a transaction into document content.
// It never rasterizes anything itself; the code image is delegated to
// the external service via URL.
type Renderer struct {
	qr     *qrcode.Generator
	issuer Party
}

// defaultIssuer matches the letterhead printed on every document.
var defaultIssuer = Party{
	Name: "GudangPro",
	AddressLines: []string{
		"Jl. Contoh No. 123",
		"Bandung, Jawa Barat",
	},
	Phone: "(022) 1234567",
}

func NewRenderer(qr *qrcode.Generator) *Renderer {
	return &Renderer{qr: qr, issuer: defaultIssuer}
}

// Render produces the content for the requested kind. Requesting an
// invoice for a non-sell transaction, or a delivery note for anything
// but sell/out, fails with an UnsupportedKindError; no partial document
// is produced.
func (r *Renderer) Render(tx *ledger.Transaction, kind Kind) (*Document, error) {
	switch kind {
	case KindInvoice:
		if tx.Type != ledger.TypeSell {
			return nil, &UnsupportedKindError{Kind: kind, Type: tx.Type}
		}

		return r.renderInvoice(tx), nil
	case KindDelivery:
		if tx.Type != ledger.TypeSell && tx.Type != ledger.TypeOut {
			return nil, &UnsupportedKindError{Kind: kind, Type: tx.Type}
		}

		return r.renderDelivery(tx), nil
	}

	return nil, &UnsupportedKindError{Kind: kind, Type: tx.Type}
}

func (r *Renderer) renderInvoice(tx *ledger.Transaction) *Document {
	total := FormatRupiah(tx.Total())

	return &Document{
		Kind:           KindInvoice,
		Title:          "INVOICE",
		Number:         tx.Code,
		DeliveryNumber: tx.DeliveryCode,
		Date:           FormatDate(tx.Date),
		Issuer:         r.issuer,
		Recipient:      recipient(tx),
		Lines: []Line{{
			No:        1,
			ItemName:  tx.ItemName,
			Quantity:  FormatQuantity(tx.Quantity),
			Unit:      "Unit",
			UnitPrice: FormatRupiah(tx.Price),
			LineTotal: total,
		}},
		Subtotal:     total,
		Total:        total,
		Notes:        tx.Notes,
		CodeImageURL: r.qr.ImageURL(tx.Code),
	}
}

func (r *Renderer) renderDelivery(tx *ledger.Transaction) *Document {
	// The delivery note carries its own code when the sale stamped one,
	// otherwise it reuses the transaction code.
	number := tx.DeliveryCode
	if number == "" {
		number = tx.Code
	}

	doc := &Document{
		Kind:      KindDelivery,
		Title:     "SURAT JALAN",
		Number:    number,
		Date:      FormatDate(tx.Date),
		Issuer:    r.issuer,
		Recipient: recipient(tx),
		Lines: []Line{{
			No:       1,
			ItemName: tx.ItemName,
			Quantity: FormatQuantity(tx.Quantity),
			Unit:     "Unit",
		}},
		Notes:        tx.Notes,
		CodeImageURL: r.qr.ImageURL(number),
	}

	if tx.Type == ledger.TypeSell {
		doc.InvoiceRef = tx.Code
	}

	return doc
}

func recipient(tx *ledger.Transaction) string {
	if tx.Customer != "" {
		return tx.Customer
	}

	return "Customer"
}
