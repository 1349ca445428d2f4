package ui

import (
	"strings"

	"roverdeck/internal/state"
)

// renderHeader renders the top status bar: logo, selection summary, the
// in-flight spinner, and the last terminal failure if any. Pure in all of
// its inputs; the spinner frame is passed in rather than read from a clock.
func renderHeader(snap state.Snapshot, spinView, lastErr string, width int, styles Styles) string {
	parts := []string{
		styles.Logo.Render("ROVERDECK"),
		styles.MutedText.Render("Mars rover photos"),
	}

	if snap.Active != "" {
		parts = append(parts, styles.AccentText.Render(snap.Active))
	}
	if spinView != "" {
		parts = append(parts, spinView+styles.WarningText.Render(" fetching..."))
	}
	if lastErr != "" {
		parts = append(parts, styles.DangerText.Render("ERROR ")+styles.MutedText.Render(truncate(lastErr, 60)))
	}

	return styles.Header.Width(width).Render(strings.Join(parts, "  "))
}

// renderFooter renders the key hint bar.
func renderFooter(keys keyMap, width int, styles Styles) string {
	hints := []string{
		keys.Up.Help().Key + "/" + keys.Down.Help().Key + " move",
		keys.Select.Help().Key + " fetch",
		keys.CycleTheme.Help().Key + " theme",
		keys.Help.Help().Key + " help",
		keys.Quit.Help().Key + " quit",
	}
	return styles.Footer.Width(width).Render(strings.Join(hints, "  •  "))
}

// renderHelp renders the full-screen help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	bindings := []struct{ key, desc string }{
		{m.keys.Up.Help().Key, m.keys.Up.Help().Desc},
		{m.keys.Down.Help().Key, m.keys.Down.Help().Desc},
		{m.keys.Select.Help().Key, m.keys.Select.Help().Desc},
		{m.keys.PageUp.Help().Key, m.keys.PageUp.Help().Desc},
		{m.keys.PageDown.Help().Key, m.keys.PageDown.Help().Desc},
		{m.keys.CycleTheme.Help().Key, m.keys.CycleTheme.Help().Desc},
		{m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc},
	}

	var b strings.Builder
	b.WriteString(styles.SectionTitle.Render("Keys"))
	b.WriteString("\n\n")
	for _, binding := range bindings {
		b.WriteString(styles.AccentText.Render("<"+binding.key+">") + " " + styles.Text.Render(binding.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Press any key to close"))
	return b.String()
}

func truncate(value string, limit int) string {
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit-1]) + "…"
}
