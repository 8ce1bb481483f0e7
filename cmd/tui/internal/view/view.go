package view

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rizkyhp/gudangpro/internal/auth"
	"github.com/rizkyhp/gudangpro/internal/document"
	"github.com/rizkyhp/gudangpro/internal/ledger"
)

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// LoggedInMsg crosses the session boundary into the dashboard.
type LoggedInMsg struct {
	Session *auth.Session
}

// ShowEntryMsg opens the add-transaction form for a type.
type ShowEntryMsg struct {
	Type ledger.Type
}

// ShowDocumentMsg opens the printable-document preview.
type ShowDocumentMsg struct {
	Tx   *ledger.Transaction
	Kind document.Kind
}

// ShowCodeMsg opens the scannable-code screen for a transaction.
type ShowCodeMsg struct {
	Tx *ledger.Transaction
}

const storeTimeout = 5 * time.Second

// StoreCtx returns a context with a standard timeout for storage
// operations.
func StoreCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), storeTimeout)
}
