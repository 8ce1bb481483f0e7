package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rizkyhp/gudangpro/internal/ledger"
	"github.com/rizkyhp/gudangpro/internal/qrcode"
)

// CodeModel shows a transaction's codes and the URLs that render their
// scannable images.
type CodeModel struct {
	CommonModel
	qr *qrcode.Generator
	tx *ledger.Transaction
}

func NewCodeModel(qr *qrcode.Generator, tx *ledger.Transaction) CodeModel {
	return CodeModel{qr: qr, tx: tx}
}

func (m CodeModel) Title() string     { return "QR Code Transaksi" }
func (m CodeModel) ShortHelp() string { return "Esc: back" }

func (m CodeModel) Init() tea.Cmd {
	return nil
}

func (m CodeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q", "enter":
			return m, Back
		}
	}

	return m, nil
}

func (m CodeModel) View() string {
	code := lipgloss.NewStyle().Bold(true).Render(m.tx.Code)

	content := "QR Code Transaksi\n\n" +
		code + "\n" +
		m.tx.ItemName + "\n\n" +
		"Gambar: " + m.qr.ImageURL(m.tx.Code)

	if m.tx.DeliveryCode != "" {
		content += "\n\nSurat Jalan: " + m.tx.DeliveryCode +
			"\nGambar: " + m.qr.ImageURL(m.tx.DeliveryCode)
	}

	box := lipgloss.NewStyle().
		Padding(1, 3).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(content)

	return lipgloss.NewStyle().Padding(1).Render(box)
}
