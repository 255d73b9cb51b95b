package tabs

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/queuedesk/core"
	"github.com/jask/queuedesk/internal/service"
	"github.com/jask/queuedesk/widgets"
)

type accountResultMsg struct {
	form    string
	account service.Account
	err     error
}

// AccountTab signs users in and registers new ones.
type AccountTab struct {
	host    PaneHost
	row     PaneRow
	signIn  *FormPane
	signUp  *FormPane
	backend AccountBackend

	signInPassword *TextField
	signUpPassword *TextField
}

func NewAccountTab(backend AccountBackend, roles []core.SelectNode) *AccountTab {
	t := &AccountTab{
		backend:        backend,
		signInPassword: NewTextField("password", "Password", "password").Secret(),
		signUpPassword: NewTextField("password", "Password", "password").Secret(),
	}
	t.signIn = NewFormPane("signin", "Sign in", "pane:account:signin", 's', "Sign in", t.submitSignIn,
		NewTextField("email", "Email", "you@college.edu"),
		t.signInPassword,
	)
	t.signUp = NewFormPane("signup", "Create account", "pane:account:signup", 'r', "Register", t.submitSignUp,
		NewTextField("name", "Full name", "Ada Lovelace"),
		NewTextField("email", "Email", "you@college.edu"),
		t.signUpPassword,
		NewSelectField("role", "Role", roles, "student", func(v string) tea.Cmd {
			return core.StatusCmd("Role: " + v)
		}),
	)
	t.host = NewPaneHost(t.signIn, t.signUp)
	t.row = PaneRow{IDs: []string{"signin", "signup"}, Ratios: []float64{0.45, 0.55}, Gap: 1}
	return t
}

func (t *AccountTab) ID() string              { return "account" }
func (t *AccountTab) Title() string           { return "Account" }
func (t *AccountTab) Scope() string           { return t.host.Scope() }
func (t *AccountTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }
func (t *AccountTab) JumpTargets() []core.JumpTarget {
	return t.host.JumpTargets()
}
func (t *AccountTab) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	return t.host.JumpToTarget(m, key)
}
func (t *AccountTab) InitTab(m *core.Model) tea.Cmd {
	return t.host.Init()
}
func (t *AccountTab) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}

func (t *AccountTab) SessionChanged(m *core.Model) tea.Cmd {
	if s := m.Session(); s.SignedIn() {
		t.signIn.SetNote("Signed in as " + s.Email + ". Sign out from the command palette.")
	} else {
		t.signIn.SetNote("")
	}
	return nil
}

func (t *AccountTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case accountResultMsg:
		if msg.err != nil {
			m.SetError(msg.err)
			return nil
		}
		form := t.signIn
		if msg.form == "signup" {
			form = t.signUp
		}
		return tea.Batch(form.Reset(), core.SessionCmd(sessionOf(msg.account)))
	case tea.MouseMsg:
		return t.host.HandleMouse(m, msg, t.row)
	}
	return t.host.UpdateActive(m, msg)
}

func (t *AccountTab) Build(m *core.Model) widgets.Widget {
	return t.row.Build(&t.host, m)
}

func (t *AccountTab) submitSignIn(m *core.Model, values map[string]string) tea.Cmd {
	email, password := values["email"], t.signInPassword.Raw()
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		acct, err := t.backend.Login(ctx, email, password)
		return accountResultMsg{form: "signin", account: acct, err: err}
	}
}

func (t *AccountTab) submitSignUp(m *core.Model, values map[string]string) tea.Cmd {
	in := service.RegisterInput{
		Name:     values["name"],
		Email:    values["email"],
		Password: t.signUpPassword.Raw(),
		Role:     values["role"],
	}
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		acct, err := t.backend.Register(ctx, in)
		return accountResultMsg{form: "signup", account: acct, err: err}
	}
}
