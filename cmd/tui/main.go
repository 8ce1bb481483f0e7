package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/rizkyhp/gudangpro/cmd/tui/internal/view"
	"github.com/rizkyhp/gudangpro/internal/auth"
	"github.com/rizkyhp/gudangpro/internal/config"
	"github.com/rizkyhp/gudangpro/internal/document"
	"github.com/rizkyhp/gudangpro/internal/ledger"
	ledgerStore "github.com/rizkyhp/gudangpro/internal/ledger/store"
	"github.com/rizkyhp/gudangpro/internal/qrcode"
	"github.com/rizkyhp/gudangpro/internal/storage"
	fileStorage "github.com/rizkyhp/gudangpro/internal/storage/file"
	memoryStorage "github.com/rizkyhp/gudangpro/internal/storage/memory"
	postgresStorage "github.com/rizkyhp/gudangpro/internal/storage/postgres"
)

type model struct {
	ledgerService *ledger.Service
	renderer      *document.Renderer
	qr            *qrcode.Generator

	currentView View

	loginView     view.LoginModel
	dashboardView view.DashboardModel
	entryView     view.EntryModel
	documentView  view.DocumentModel
	codeView      view.CodeModel
}

type View int

const (
	ViewLogin     View = 0
	ViewDashboard View = 1
	ViewEntry     View = 2
	ViewDocument  View = 3
	ViewCode      View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	kv, err := newKV(cfg)
	if err != nil {
		slog.Error("failed to open storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}

	ledgerSvc := ledger.NewService(ledgerStore.New(kv))
	authSvc := auth.NewService(cfg.Auth.Secret, cfg.Auth.LoginDelay)
	qr := qrcode.New(cfg.QR.BaseURL, cfg.QR.Size)
	renderer := document.NewRenderer(qr)

	return model{
		ledgerService: ledgerSvc,
		renderer:      renderer,
		qr:            qr,
		currentView:   ViewLogin,
		loginView:     view.NewLoginModel(authSvc),
		dashboardView: view.NewDashboardModel(ledgerSvc),
	}
}

func newKV(cfg *config.Config) (storage.KV, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		return postgresStorage.New(cfg.ConnectionString())
	case "file":
		return fileStorage.New(cfg.Storage.Path)
	case "memory":
		return memoryStorage.New(), nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func (m model) Init() tea.Cmd {
	return m.loginView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case view.LoggedInMsg:
		m.currentView = ViewDashboard
		return m, m.dashboardView.Init()

	case view.ShowEntryMsg:
		m.currentView = ViewEntry
		m.entryView = view.NewEntryModel(m.ledgerService, msg.Type)

		return m, m.entryView.Init()

	case view.ShowDocumentMsg:
		m.currentView = ViewDocument
		m.documentView = view.NewDocumentModel(m.renderer, msg.Tx, msg.Kind)

		return m, m.documentView.Init()

	case view.ShowCodeMsg:
		m.currentView = ViewCode
		m.codeView = view.NewCodeModel(m.qr, msg.Tx)

		return m, m.codeView.Init()

	case view.BackMsg:
		m.currentView = ViewDashboard
		// Reload so the list reflects records added while away.
		return m, m.dashboardView.Init()
	}

	switch m.currentView {
	case ViewLogin:
		var newModel tea.Model
		newModel, cmd = m.loginView.Update(msg)
		m.loginView = newModel.(view.LoginModel)
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewEntry:
		var newModel tea.Model
		newModel, cmd = m.entryView.Update(msg)
		m.entryView = newModel.(view.EntryModel)
	case ViewDocument:
		var newModel tea.Model
		newModel, cmd = m.documentView.Update(msg)
		m.documentView = newModel.(view.DocumentModel)
	case ViewCode:
		var newModel tea.Model
		newModel, cmd = m.codeView.Update(msg)
		m.codeView = newModel.(view.CodeModel)
	}

	return m, cmd
}

func (m model) View() string {
	var current view.View

	switch m.currentView {
	case ViewLogin:
		current = m.loginView
	case ViewDashboard:
		current = m.dashboardView
	case ViewEntry:
		current = m.entryView
	case ViewDocument:
		current = m.documentView
	case ViewCode:
		current = m.codeView
	default:
		return "Unknown View"
	}

	help := lipgloss.NewStyle().Faint(true).Padding(0, 1).Render(current.ShortHelp())

	return current.View() + "\n" + help
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
