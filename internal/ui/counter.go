package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/five82/jaap/internal/counter"
)

func (m Model) renderHeader(styles Styles, bg BgStyle, width int) string {
	title := lipgloss.JoinVertical(lipgloss.Left,
		bg.Render("श्री राधा", styles.PrimaryText),
		bg.Render("Jaap Counter", styles.MutedText),
	)

	sound := bg.Render("♪ on", styles.PrimaryText)
	if !m.snapshot.Prefs.Sound {
		sound = bg.Render("♪ off", styles.MutedText)
	}
	status := lipgloss.JoinVertical(lipgloss.Right,
		sound,
		bg.Render(m.snapshot.Prefs.Mode.Label(), styles.MutedText),
		bg.Render(m.snapshot.Prefs.Theme.Label(), styles.MutedText),
	)

	gap := width - lipgloss.Width(title) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Background(bg.bg).Width(gap).Render("")
	return lipgloss.JoinHorizontal(lipgloss.Top, title, spacer, status)
}

func (m Model) renderModeSwitch(styles Styles, bg BgStyle) string {
	cycle, unbounded := styles.ModeInactive, styles.ModeInactive
	if m.snapshot.Prefs.Mode == counter.ModeCycle {
		cycle = styles.ModeActive
	} else {
		unbounded = styles.ModeActive
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		cycle.Render("माला (108)"),
		bg.Render(" ", styles.Text),
		unbounded.Render("असीमित"),
	)
}

func (m Model) renderTotal(styles Styles, bg BgStyle) string {
	label := "कुल जाप"
	if m.snapshot.Prefs.Mode == counter.ModeUnbounded {
		label = "अनंत जाप"
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		bg.Render(humanize.Comma(int64(m.snapshot.Counter.TotalCount)), styles.Count),
		bg.Render(label, styles.MutedText),
	)
}

func (m Model) renderBead(styles Styles) string {
	style := styles.Bead
	if m.pulsing {
		style = styles.BeadPulse
	}
	return style.Align(lipgloss.Center).Render("राधा\nराधा\n\nTAP BEAD")
}

// renderCycleCard shows completed malas and progress; empty in unlimited mode.
func (m Model) renderCycleCard(styles Styles, bg BgStyle, width int) string {
	if m.snapshot.Prefs.Mode != counter.ModeCycle {
		return ""
	}
	c := m.snapshot.Counter

	completed := lipgloss.JoinVertical(lipgloss.Left,
		bg.Render("माला पूर्ण", styles.MutedText),
		bg.Render(humanize.Comma(int64(c.CyclesCompleted)), styles.PrimaryText),
	)
	current := lipgloss.JoinVertical(lipgloss.Right,
		bg.Render("वर्तमान माला", styles.MutedText),
		bg.Render(fmt.Sprintf("%d / %d", c.CurrentCycleCount, counter.CycleTarget), styles.Text),
	)
	barWidth := min(ProgressBarWidth, max(width-4, 10))
	gap := max(barWidth-lipgloss.Width(completed)-lipgloss.Width(current), 1)
	spacer := lipgloss.NewStyle().Background(bg.bg).Width(gap).Render("")

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Bottom, completed, spacer, current),
		renderProgressBar(c.Progress(), barWidth, styles, bg),
	}
	if m.cycleCompleted {
		lines = append(lines, bg.Render("॥ माला पूर्ण ॥", styles.AccentText))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m Model) renderFooter(styles Styles, bg BgStyle) string {
	text := "१०८ जाप = १ माला"
	if m.snapshot.Prefs.Mode == counter.ModeUnbounded {
		text = "असीमित जाप मोड"
	}
	hint := "space tap • m mode • T theme • s sound • r reset • ? help"
	return lipgloss.JoinVertical(lipgloss.Center,
		bg.Render(text, styles.MutedText),
		bg.Render(hint, styles.MutedText),
	)
}

// renderProgressBar renders a text-based progress bar for fraction in [0, 1].
func renderProgressBar(fraction float64, width int, styles Styles, bg BgStyle) string {
	fraction = max(0, min(fraction, 1))
	filled := min(int(float64(width)*fraction), width)
	return bg.Render(strings.Repeat("█", filled), styles.PrimaryText) +
		bg.Render(strings.Repeat("░", width-filled), styles.MutedText)
}
