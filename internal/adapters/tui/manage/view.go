package manage

import (
	"fmt"
	"strings"
	"time"

	"uadm/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const lastLoginLayout = "Jan 2, 2006 15:04"

func (m Model) View() string {
	if m.finalErr != nil {
		return ""
	}

	lines := []string{
		m.styles.title.Render("User Management"),
	}

	if m.okMsg != "" {
		lines = append(lines, m.styles.success.Render(m.okMsg+"  (esc to dismiss)"))
	}
	if m.errMsg != "" {
		lines = append(lines, m.styles.failure.Render(m.errMsg+"  (esc to dismiss)"))
	}

	lines = append(lines, m.renderTable()...)

	if m.busy {
		lines = append(lines, m.styles.busy.Render(m.spin.View()+m.busyLabel+"..."))
	} else {
		lines = append(lines, m.styles.help.Render(m.helpLine()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

func (m Model) renderTable() []string {
	if len(m.accounts) == 0 {
		return []string{m.styles.empty.Render("No accounts in the roster.")}
	}

	widths := m.columnWidths()
	allMark := "[ ]"
	if m.selection.IsAllSelected(currentIDs(m.accounts)) {
		allMark = "[x]"
	}

	lines := []string{
		m.styles.header.Render("  " + renderRow(widths, allMark, "ID", "NAME", "EMAIL", "LAST LOGIN", "STATUS")),
	}

	for i, account := range m.accounts {
		lines = append(lines, m.renderAccountRow(i, account, widths))
	}

	return lines
}

func (m Model) renderAccountRow(index int, account domain.Account, widths [6]int) string {
	mark := "[ ]"
	if m.selection.Contains(account.ID) {
		mark = "[x]"
	}

	prefix := "  "
	rowStyle := m.styles.cell
	if account.Status == domain.StatusBlocked {
		rowStyle = m.styles.blockedRow
	}
	if index == m.cursor {
		prefix = "> "
		rowStyle = m.styles.cursorRow
	}

	row := renderRow(widths,
		mark,
		string(account.ID),
		account.Name,
		account.Email,
		formatLastLogin(account.LastLogin),
		"",
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, rowStyle.Render(prefix+row), m.statusBadge(account.Status))
}

func (m Model) statusBadge(status domain.AccountStatus) string {
	if status == domain.StatusBlocked {
		return m.styles.blockedBadge.Render(string(domain.StatusBlocked))
	}

	return m.styles.activeBadge.Render(string(domain.StatusActive))
}

func (m Model) helpLine() string {
	return fmt.Sprintf("%d selected · space toggle · a all · b block · u unblock · x delete · r refresh · q quit", m.selection.Len())
}

func (m Model) columnWidths() [6]int {
	widths := [6]int{len("[ ]"), len("ID"), len("NAME"), len("EMAIL"), len("LAST LOGIN"), len("STATUS")}
	for _, account := range m.accounts {
		widths[1] = max(widths[1], len(account.ID))
		widths[2] = max(widths[2], len(account.Name))
		widths[3] = max(widths[3], len(account.Email))
		widths[4] = max(widths[4], len(formatLastLogin(account.LastLogin)))
	}

	return widths
}

func renderRow(widths [6]int, cells ...string) string {
	var b strings.Builder
	for i, cell := range cells {
		if i == len(cells)-1 {
			b.WriteString(cell)
			break
		}
		fmt.Fprintf(&b, "%-*s  ", widths[i], cell)
	}

	return b.String()
}

func formatLastLogin(value time.Time) string {
	if value.IsZero() {
		return "never"
	}

	return value.Local().Format(lastLoginLayout)
}
