package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rizkyhp/gudangpro/internal/document"
	"github.com/rizkyhp/gudangpro/internal/ledger"
)

// DocumentModel previews the printable content of an invoice or
// delivery note for one transaction.
type DocumentModel struct {
	CommonModel
	renderer *document.Renderer

	tx   *ledger.Transaction
	kind document.Kind
	doc  *document.Document
	err  error
}

func NewDocumentModel(renderer *document.Renderer, tx *ledger.Transaction, kind document.Kind) DocumentModel {
	m := DocumentModel{renderer: renderer, tx: tx, kind: kind}
	m.render()

	return m
}

func (m DocumentModel) Title() string { return "Dokumen" }

func (m DocumentModel) ShortHelp() string {
	if m.tx.Type == ledger.TypeSell {
		return "i: invoice | d: surat jalan | Esc: back"
	}

	return "Esc: back"
}

func (m *DocumentModel) render() {
	m.doc, m.err = m.renderer.Render(m.tx, m.kind)
}

func (m DocumentModel) Init() tea.Cmd {
	return nil
}

func (m DocumentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		return m, Back
	case "i":
		if m.tx.Type == ledger.TypeSell && m.kind != document.KindInvoice {
			m.kind = document.KindInvoice
			m.render()
		}
	case "d":
		if m.kind != document.KindDelivery {
			m.kind = document.KindDelivery
			m.render()
		}
	}

	return m, nil
}

var (
	docTitleStyle = lipgloss.NewStyle().Bold(true)
	docFaintStyle = lipgloss.NewStyle().Faint(true)
	docBoxStyle   = lipgloss.NewStyle().
			Padding(1, 3).
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(64)
)

func (m DocumentModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	doc := m.doc

	var b strings.Builder

	b.WriteString(docTitleStyle.Render(doc.Title) + "\n")
	b.WriteString("No: " + doc.Number + "\n")

	if doc.DeliveryNumber != "" {
		b.WriteString("No Surat Jalan: " + doc.DeliveryNumber + "\n")
	}

	b.WriteString("Tanggal: " + doc.Date + "\n\n")

	issuer := doc.Issuer.Name + "\n" + strings.Join(doc.Issuer.AddressLines, "\n") + "\nTelp: " + doc.Issuer.Phone
	b.WriteString(docFaintStyle.Render(issuer) + "\n\n")

	b.WriteString("KEPADA: " + doc.Recipient + "\n")

	if doc.InvoiceRef != "" {
		b.WriteString("Referensi Invoice: " + doc.InvoiceRef + "\n")
	}

	b.WriteString("\n")

	for _, line := range doc.Lines {
		row := fmt.Sprintf("%d. %s — %s %s", line.No, line.ItemName, line.Quantity, line.Unit)
		if line.UnitPrice != "" {
			row += fmt.Sprintf(" x %s = %s", line.UnitPrice, line.LineTotal)
		}

		b.WriteString(row + "\n")
	}

	if doc.Total != "" {
		b.WriteString("\nSubtotal: " + doc.Subtotal + "\n")
		b.WriteString(docTitleStyle.Render("TOTAL:    "+doc.Total) + "\n")
	}

	if doc.Notes != "" {
		b.WriteString("\nCatatan: " + doc.Notes + "\n")
	}

	b.WriteString("\n" + docFaintStyle.Render("QR: "+doc.CodeImageURL))

	return lipgloss.NewStyle().Padding(1).Render(docBoxStyle.Render(b.String()))
}
