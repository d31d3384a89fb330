package manage

import (
	"context"
	"errors"

	"uadm/internal/application"
	"uadm/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the interactive management view. It owns the roster store and the
// selection set for its lifetime and delegates every mutation to the batch
// action orchestrator. All action keys are ignored while a unit of work is
// in flight, so a double-press can never submit twice.
type Model struct {
	session   *application.Session
	roster    *application.Roster
	selection *application.Selection
	actions   *application.Actions

	accounts  []domain.Account
	cursor    int
	busy      bool
	busyLabel string
	spin      spinner.Model
	styles    styles
	errMsg    string
	okMsg     string
	finalErr  error
}

type refreshDoneMsg struct {
	accounts []domain.Account
	err      error
}

type actionDoneMsg struct {
	message string
	err     error
}

func New(session *application.Session, roster *application.Roster, selection *application.Selection, actions *application.Actions) Model {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return Model{
		session:   session,
		roster:    roster,
		selection: selection,
		actions:   actions,
		busy:      true,
		busyLabel: "loading roster",
		spin:      s,
		styles:    newStyles(),
	}
}

// Err reports why the view quit, nil on a plain exit. An auth-denied quit
// carries an error matching domain.ErrAuthDenied so the caller can point the
// operator back at login.
func (m Model) Err() error {
	return m.finalErr
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.refreshCmd())
}

func (m Model) refreshCmd() tea.Cmd {
	roster := m.roster
	return func() tea.Msg {
		accounts, err := roster.Refresh(context.Background())
		return refreshDoneMsg{accounts: accounts, err: err}
	}
}

func (m Model) applyCmd(kind domain.ActionKind) tea.Cmd {
	actions := m.actions
	selection := m.selection
	return func() tea.Msg {
		message, err := actions.Apply(context.Background(), kind, selection)
		return actionDoneMsg{message: message, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case refreshDoneMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.accounts = msg.accounts
		m.pruneSelection()
		m.clampCursor()
		return m, nil

	case actionDoneMsg:
		m.busy = false
		if msg.err != nil {
			if errors.Is(msg.err, domain.ErrNoSelection) {
				m.errMsg = "Please select at least one user."
				m.okMsg = ""
				return m, nil
			}
			return m.fail(msg.err)
		}
		m.okMsg = msg.message
		m.errMsg = ""
		m.accounts = m.roster.Snapshot()
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.roster.Close()
		return m, tea.Quit
	case "esc":
		m.errMsg = ""
		m.okMsg = ""
		return m, nil
	}

	if m.busy {
		// A unit of work is in flight; triggering controls are disabled.
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.accounts)-1 {
			m.cursor++
		}
	case " ":
		if len(m.accounts) > 0 {
			m.selection.Toggle(m.accounts[m.cursor].ID)
		}
	case "a":
		ids := currentIDs(m.accounts)
		if m.selection.IsAllSelected(ids) {
			m.selection.ClearAll()
		} else {
			m.selection.SelectAll(ids)
		}
	case "r":
		return m.start("refreshing roster", m.refreshCmd())
	case "b":
		return m.start("blocking users", m.applyCmd(domain.ActionBlock))
	case "u":
		return m.start("unblocking users", m.applyCmd(domain.ActionUnblock))
	case "x":
		return m.start("deleting users", m.applyCmd(domain.ActionDelete))
	}

	return m, nil
}

func (m Model) start(label string, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.busy = true
	m.busyLabel = label
	return m, tea.Batch(m.spin.Tick, cmd)
}

func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	if domain.IsAuthDenied(err) {
		// The orchestrator logs out on its own bulk-apply path, but a roster
		// refresh propagates auth-denied untouched; force the logout here if
		// it has not happened yet.
		if m.session.Current().State == domain.SessionAuthenticated {
			_ = m.session.Logout(context.Background())
		}
		m.finalErr = err
		m.roster.Close()
		return m, tea.Quit
	}

	m.errMsg = err.Error()
	m.okMsg = ""
	return m, nil
}

// pruneSelection drops ids no longer present after a manual refresh; stale
// ids must never silently persist into the next bulk action.
func (m *Model) pruneSelection() {
	present := map[domain.AccountID]struct{}{}
	for _, account := range m.accounts {
		present[account.ID] = struct{}{}
	}

	kept := make([]domain.AccountID, 0, m.selection.Len())
	for _, id := range m.selection.IDs() {
		if _, ok := present[id]; ok {
			kept = append(kept, id)
		}
	}
	m.selection.SelectAll(kept)
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.accounts) {
		m.cursor = len(m.accounts) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func currentIDs(accounts []domain.Account) []domain.AccountID {
	ids := make([]domain.AccountID, 0, len(accounts))
	for _, account := range accounts {
		ids = append(ids, account.ID)
	}

	return ids
}
