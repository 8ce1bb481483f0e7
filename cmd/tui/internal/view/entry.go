package view

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rizkyhp/gudangpro/internal/ledger"
)

// EntryModel is the add-transaction form for one transaction type.
type EntryModel struct {
	CommonModel
	ledgerService *ledger.Service
	txType        ledger.Type

	form   *huh.Form
	saving bool
	errMsg string
}

func NewEntryModel(ledgerSvc *ledger.Service, txType ledger.Type) EntryModel {
	m := EntryModel{ledgerService: ledgerSvc, txType: txType}
	m.form = m.newForm()

	return m
}

func (m EntryModel) Title() string     { return "Tambah " + TypeLabel(m.txType) }
func (m EntryModel) ShortHelp() string { return "Enter/Tab: navigate form | Esc: cancel" }

func (m EntryModel) newForm() *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("itemName").
			Title("Nama Barang").
			Placeholder("Contoh: Laptop Dell XPS 13").
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("nama barang cannot be empty")
				}
				return nil
			}),

		huh.NewInput().
			Key("quantity").
			Title("Jumlah (Unit)").
			Validate(func(s string) error {
				n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
				if err != nil || n < 1 {
					return fmt.Errorf("must be a whole number of at least 1")
				}
				return nil
			}),

		huh.NewInput().
			Key("price").
			Title("Harga/Unit (Rp)").
			Validate(func(s string) error {
				n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
				if err != nil || n < 0 {
					return fmt.Errorf("must be a non-negative whole number")
				}
				return nil
			}),
	}

	switch m.txType {
	case ledger.TypeSell:
		fields = append(fields, huh.NewInput().
			Key("customer").
			Title("Nama Customer").
			Placeholder("PT. Example Corp"))
	case ledger.TypeBuy:
		fields = append(fields, huh.NewInput().
			Key("supplier").
			Title("Nama Supplier").
			Placeholder("PT. Supplier Indo"))
	}

	fields = append(fields, huh.NewText().
		Key("notes").
		Title("Catatan"))

	return huh.NewForm(huh.NewGroup(fields...)).WithWidth(50).WithShowHelp(false)
}

func (m EntryModel) Init() tea.Cmd {
	return m.form.Init()
}

type entrySavedMsg struct {
	tx  *ledger.Transaction
	err error
}

func (m EntryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entrySavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.form = m.newForm()

			return m, m.form.Init()
		}

		// Mirror the web flow: show the scannable code right after
		// creating the record.
		tx := msg.tx

		return m, func() tea.Msg { return ShowCodeMsg{Tx: tx} }

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	if m.saving {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.saving = true

	return m, m.saveCmd()
}

func (m EntryModel) saveCmd() tea.Cmd {
	// Read from the completed form: the model circulates by value, so
	// field bindings into a copy would go stale.
	quantity, _ := strconv.ParseInt(strings.TrimSpace(m.form.GetString("quantity")), 10, 64)
	price, _ := strconv.ParseInt(strings.TrimSpace(m.form.GetString("price")), 10, 64)

	params := ledger.CreateParams{
		Type:     m.txType,
		ItemName: m.form.GetString("itemName"),
		Quantity: quantity,
		Price:    price,
		Notes:    m.form.GetString("notes"),
	}

	switch m.txType {
	case ledger.TypeSell:
		params.Customer = m.form.GetString("customer")
	case ledger.TypeBuy:
		params.Supplier = m.form.GetString("supplier")
	}

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		tx, err := m.ledgerService.Append(ctx, params)

		return entrySavedMsg{tx: tx, err: err}
	}
}

func (m EntryModel) View() string {
	if m.saving {
		return lipgloss.NewStyle().Padding(2).Render("Saving...")
	}

	content := m.Title() + "\n\n" + m.form.View()

	if m.errMsg != "" {
		errLine := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.errMsg)
		content = errLine + "\n\n" + content
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}
