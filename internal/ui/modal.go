package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.KeyMsg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// resetModal asks before clearing the counter.
type resetModal struct {
	total int
}

func newResetModal(total int) Modal {
	return resetModal{total: total}
}

func (r resetModal) Update(msg tea.KeyMsg, keys keyMap) (Modal, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Confirm):
		return r, func() tea.Msg { return resetConfirmedMsg{} }, true
	case key.Matches(msg, keys.Cancel), key.Matches(msg, keys.Quit):
		return r, nil, true
	}
	return r, nil, false
}

func (r resetModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("रीसेट करें?"))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("This will clear your total count of %d jaaps.", r.total)))
	b.WriteString("\n\n")
	b.WriteString(styles.AccentText.Render("[y] रीसेट"))
	b.WriteString("   ")
	b.WriteString(styles.Text.Render("[n] रद्द करें"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(56).
		Render(b.String())

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(theme.Background)),
	)
}
