package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rizkyhp/gudangpro/internal/document"
	"github.com/rizkyhp/gudangpro/internal/ledger"
)

var tabs = []ledger.Tab{
	ledger.TabOverview,
	ledger.TabIn,
	ledger.TabOut,
	ledger.TabBuy,
	ledger.TabSell,
}

var tabLabels = []string{"Semua Transaksi", "Barang Masuk", "Barang Keluar", "Pembelian", "Penjualan"}

type DashboardModel struct {
	CommonModel
	ledgerService *ledger.Service

	table   table.Model
	search  textinput.Model
	tabIdx  int
	txs     []*ledger.Transaction
	visible []*ledger.Transaction
	summary ledger.Summary

	searching bool
	loading   bool
	err       error
}

func NewDashboardModel(ledgerSvc *ledger.Service) DashboardModel {
	columns := []table.Column{
		{Title: "Tanggal", Width: 10},
		{Title: "Kode", Width: 20},
		{Title: "Jenis", Width: 14},
		{Title: "Barang", Width: 28},
		{Title: "Jumlah", Width: 8},
		{Title: "Total", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	search := textinput.New()
	search.Placeholder = "kode transaksi atau nama barang"
	search.CharLimit = 64

	return DashboardModel{
		ledgerService: ledgerSvc,
		table:         t,
		search:        search,
		loading:       true,
	}
}

func (m DashboardModel) Title() string { return "Dashboard" }

func (m DashboardModel) ShortHelp() string {
	if m.searching {
		return "Enter/Esc: done searching"
	}

	return "Tab: switch tab | /: search | a: add | d: document | c: code | r: refresh | q: quit"
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

type dashboardLoadMsg struct {
	txs []*ledger.Transaction
	err error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		txs, err := m.ledgerService.List(ctx)

		return dashboardLoadMsg{txs: txs, err: err}
	}
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.txs = msg.txs
		m.summary = ledger.Summarize(m.txs)
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.table.SetHeight(msg.Height - 12)

		return m, nil
	}

	if m.searching {
		return m.updateSearch(msg)
	}

	return m.updateBrowse(msg)
}

func (m DashboardModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "esc":
			m.searching = false
			m.search.Blur()
			m.table.Focus()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refreshTable()

	return m, cmd
}

func (m DashboardModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.tabIdx = (m.tabIdx + 1) % len(tabs)
			m.refreshTable()

			return m, nil
		case "shift+tab":
			m.tabIdx = (m.tabIdx + len(tabs) - 1) % len(tabs)
			m.refreshTable()

			return m, nil
		case "/":
			m.searching = true
			m.table.Blur()

			return m, m.search.Focus()
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "a":
			// Entries are always typed; the overview tab has no type to
			// attach one to.
			if tabs[m.tabIdx] == ledger.TabOverview {
				return m, nil
			}

			txType := ledger.Type(tabs[m.tabIdx])

			return m, func() tea.Msg { return ShowEntryMsg{Type: txType} }
		case "d":
			tx := m.selected()
			if tx == nil {
				return m, nil
			}

			kind := document.KindDelivery
			if tx.Type == ledger.TypeSell {
				kind = document.KindInvoice
			} else if tx.Type != ledger.TypeOut {
				return m, nil
			}

			return m, func() tea.Msg { return ShowDocumentMsg{Tx: tx, Kind: kind} }
		case "c":
			tx := m.selected()
			if tx == nil {
				return m, nil
			}

			return m, func() tea.Msg { return ShowCodeMsg{Tx: tx} }
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *DashboardModel) selected() *ledger.Transaction {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.visible) {
		return nil
	}

	return m.visible[idx]
}

func (m *DashboardModel) refreshTable() {
	m.visible = ledger.Filter(m.txs, tabs[m.tabIdx], m.search.Value())

	rows := make([]table.Row, 0, len(m.visible))
	for _, tx := range m.visible {
		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			tx.Code,
			TypeLabel(tx.Type),
			tx.ItemName,
			fmt.Sprintf("%d", tx.Quantity),
			document.FormatRupiah(tx.Total()),
		})
	}

	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	summary := fmt.Sprintf(
		"Masuk: %d unit | Keluar: %d unit | Pembelian: %s | Penjualan: %s",
		m.summary.TotalIn,
		m.summary.TotalOut,
		document.FormatRupiah(m.summary.TotalBuyValue),
		document.FormatRupiah(m.summary.TotalSellValue),
	)

	var tabLine string

	for i, label := range tabLabels {
		if i == m.tabIdx {
			tabLine += lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				Padding(0, 1).
				Render(label)
		} else {
			tabLine += lipgloss.NewStyle().Faint(true).Padding(0, 1).Render(label)
		}

		tabLine += " "
	}

	searchLine := "Cari: " + m.search.View()

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(summary),
		tabLine,
		searchLine,
		tableView,
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}
