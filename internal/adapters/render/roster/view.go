package roster

import (
	"fmt"
	"time"

	"uadm/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
}

const lastLoginLayout = "Jan 2, 2006 15:04"

func renderView(accounts []domain.Account, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("User Management"),
		s.header.Render(fmt.Sprintf("accounts: %d", len(accounts))),
	}

	if len(accounts) == 0 {
		lines = append(lines, s.empty.Render("No accounts in the roster."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	widths := columnWidths(accounts)
	lines = append(lines, s.header.Render(renderRow(widths, "ID", "NAME", "EMAIL", "LAST LOGIN", "STATUS")))

	for _, account := range accounts {
		lines = append(lines, renderAccountRow(account, widths, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAccountRow(account domain.Account, widths [5]int, opts RenderOptions, s styles) string {
	row := renderRow(widths,
		string(account.ID),
		account.Name,
		account.Email,
		formatLastLogin(account.LastLogin),
		"",
	)

	cellStyle := s.cell
	if account.Status == domain.StatusBlocked {
		cellStyle = s.blockedRow
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cellStyle.Render(row), statusBadge(account.Status, s))
}

func statusBadge(status domain.AccountStatus, s styles) string {
	if status == domain.StatusBlocked {
		return s.blockedBadge.Render(string(domain.StatusBlocked))
	}

	return s.activeBadge.Render(string(domain.StatusActive))
}

func formatLastLogin(value time.Time) string {
	if value.IsZero() {
		return "never"
	}

	return value.Local().Format(lastLoginLayout)
}

func columnWidths(accounts []domain.Account) [5]int {
	widths := [5]int{len("ID"), len("NAME"), len("EMAIL"), len("LAST LOGIN"), len("STATUS")}
	for _, account := range accounts {
		widths[0] = max(widths[0], len(account.ID))
		widths[1] = max(widths[1], len(account.Name))
		widths[2] = max(widths[2], len(account.Email))
		widths[3] = max(widths[3], len(formatLastLogin(account.LastLogin)))
	}

	return widths
}

func renderRow(widths [5]int, cells ...string) string {
	out := ""
	for i, cell := range cells {
		if i == len(cells)-1 {
			out += cell
			break
		}
		out += fmt.Sprintf("%-*s  ", widths[i], cell)
	}

	return out
}
