package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rizkyhp/gudangpro/internal/auth"
)

type LoginModel struct {
	CommonModel
	authService *auth.Service

	form       *huh.Form
	submitting bool
	errMsg     string
}

func NewLoginModel(authSvc *auth.Service) LoginModel {
	m := LoginModel{authService: authSvc}
	m.form = m.newForm()

	return m
}

func (m LoginModel) Title() string     { return "Sign In" }
func (m LoginModel) ShortHelp() string { return "Enter: sign in | Ctrl+C: quit" }

func (m LoginModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("email").
				Title("Email").
				Placeholder("nama@contoh.com").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("email cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("password cannot be empty")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m LoginModel) Init() tea.Cmd {
	return m.form.Init()
}

type loginResultMsg struct {
	session *auth.Session
	err     error
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = result.err.Error()
			m.form = m.newForm()

			return m, m.form.Init()
		}

		session := result.session

		return m, func() tea.Msg { return LoggedInMsg{Session: session} }
	}

	if m.submitting {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.submitting = true
	m.errMsg = ""

	return m, m.loginCmd()
}

func (m LoginModel) loginCmd() tea.Cmd {
	// Read from the completed form: the model circulates by value, so
	// field bindings into a copy would go stale.
	email := m.form.GetString("email")
	password := m.form.GetString("password")

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		token, err := m.authService.Login(ctx, email, password)
		if err != nil {
			return loginResultMsg{err: err}
		}

		session, err := m.authService.Verify(token)

		return loginResultMsg{session: session, err: err}
	}
}

func (m LoginModel) View() string {
	if m.submitting {
		return lipgloss.NewStyle().Padding(2).Render("Signing in...")
	}

	content := "GudangPro\n\n" + m.form.View()

	if m.errMsg != "" {
		errLine := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.errMsg)
		content = errLine + "\n\n" + content
	}

	return lipgloss.NewStyle().Padding(2).Render(content)
}
