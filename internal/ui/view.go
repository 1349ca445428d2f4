package ui

import (
	"fmt"
	"strings"

	"roverdeck/internal/nasa"
	"roverdeck/internal/state"
)

// The render functions in this file are pure: markup is derived from the
// snapshot and style inputs alone, with no clock, no randomness, and no
// hidden globals. Identical inputs produce byte-identical output.

// renderNav renders the rover navigation list. The cursor row carries the
// pointer; the entry matching the active selection is marked selected, and
// the event layer treats a re-selection of it as a no-op.
func renderNav(snap state.Snapshot, cursor int, styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.SectionTitle.Render("Rovers"))
	b.WriteString("\n")

	for i, rover := range snap.Rovers {
		slug := nasa.Slug(rover)

		pointer := "  "
		if i == cursor {
			pointer = "▸ "
		}

		var entry string
		switch {
		case slug == snap.Active:
			entry = styles.Selected.Render(" "+rover+" ") + styles.MutedText.Render(" ●")
		case i == cursor:
			entry = styles.AccentText.Render(rover)
		default:
			entry = styles.Text.Render(rover)
		}

		b.WriteString(pointer + entry)
		if i < len(snap.Rovers)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderAttributes renders the selected rover's metadata section. An empty
// attribute set renders nothing.
func renderAttributes(attrs state.Attributes, styles Styles) string {
	if attrs.IsZero() {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.SectionTitle.Render(attrs.Name + " Rover"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Launch date: ") + styles.Text.Render(formatEarthDateOrRaw(attrs.LaunchDate)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Landing date: ") + styles.Text.Render(formatEarthDateOrRaw(attrs.LandingDate)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Date of last photo transmission: ") + styles.Text.Render(formatEarthDateOrRaw(attrs.EarthDate)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Status: ") + styles.StatusStyle(attrs.Status).Render(attrs.Status))
	return b.String()
}

// renderGallery renders one labeled entry per image URL, in input order with
// 1-based positions. An empty image list renders the selection prompt.
func renderGallery(images []string, styles Styles) string {
	if len(images) == 0 {
		return styles.MutedText.Render("Select a rover to view images")
	}

	var b strings.Builder
	b.WriteString(styles.SectionTitle.Render(fmt.Sprintf("Photos (%d)", len(images))))
	b.WriteString("\n")
	for i, src := range images {
		b.WriteString(styles.AccentText.Render(fmt.Sprintf("Rover image %d", i+1)))
		b.WriteString("  ")
		b.WriteString(styles.FaintText.Render(src))
		if i < len(images)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
