package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderQuote renders the daily message card, or a placeholder while the
// first fetch is still running.
func (m Model) renderQuote(styles Styles, width int) string {
	cardWidth := max(width-2, 20)
	card := styles.Card.Width(cardWidth).Align(lipgloss.Center)

	if !m.quote.Loaded {
		return card.Render(styles.MutedText.Render("…"))
	}

	msg := m.quote.Message
	return card.Render(lipgloss.JoinVertical(lipgloss.Center,
		styles.Text.Bold(true).Render(msg.Hindi),
		"",
		styles.MutedText.Italic(true).Render(`"`+msg.English+`"`),
		"",
		styles.PrimaryText.Render("— "+msg.Author),
	))
}
