package ui

import (
	"strings"
	"testing"

	"roverdeck/internal/state"
)

var testStyles = GetTheme("Nightfox").Styles()

func testSnapshot() state.Snapshot {
	return state.Snapshot{
		Active: "curiosity",
		Rovers: []string{"Curiosity", "Opportunity", "Spirit"},
		Images: []string{"a.jpg", "b.jpg", "c.jpg"},
		Attributes: state.Attributes{
			Name:        "Curiosity",
			LaunchDate:  "2011-11-26",
			LandingDate: "2012-08-06",
			EarthDate:   "2020-01-01",
			Status:      "active",
		},
	}
}

func TestRender_Idempotent(t *testing.T) {
	snap := testSnapshot()

	if renderNav(snap, 1, testStyles) != renderNav(snap, 1, testStyles) {
		t.Fatal("renderNav is not idempotent for a fixed snapshot")
	}
	if renderAttributes(snap.Attributes, testStyles) != renderAttributes(snap.Attributes, testStyles) {
		t.Fatal("renderAttributes is not idempotent for a fixed snapshot")
	}
	if renderGallery(snap.Images, testStyles) != renderGallery(snap.Images, testStyles) {
		t.Fatal("renderGallery is not idempotent for a fixed snapshot")
	}
	if renderHeader(snap, "", "", 100, testStyles) != renderHeader(snap, "", "", 100, testStyles) {
		t.Fatal("renderHeader is not idempotent for a fixed snapshot")
	}
}

func TestRenderNav_ListsEveryRoverAndMarksActive(t *testing.T) {
	snap := testSnapshot()
	out := renderNav(snap, 0, testStyles)

	for _, rover := range snap.Rovers {
		if !strings.Contains(out, rover) {
			t.Errorf("nav is missing rover %q", rover)
		}
	}
	// The active entry carries the selected marker.
	if !strings.Contains(out, "●") {
		t.Error("nav does not mark the active selection")
	}
	// The cursor row carries the pointer.
	if !strings.Contains(out, "▸") {
		t.Error("nav does not render the cursor pointer")
	}
}

func TestRenderAttributes_EmptyRendersNothing(t *testing.T) {
	if out := renderAttributes(state.Attributes{}, testStyles); out != "" {
		t.Fatalf("empty attributes rendered %q, want empty string", out)
	}
}

func TestRenderAttributes_FormatsDatesAndFields(t *testing.T) {
	out := renderAttributes(testSnapshot().Attributes, testStyles)

	for _, want := range []string{
		"Curiosity Rover",
		"Launch date:",
		"November 26, 2011",
		"Landing date:",
		"August 6, 2012",
		"Date of last photo transmission:",
		"January 1, 2020",
		"Status:",
		"active",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("attributes section is missing %q\n%s", want, out)
		}
	}
}

func TestRenderGallery_LabelsInInputOrder(t *testing.T) {
	images := []string{"z.jpg", "a.jpg", "m.jpg"}
	out := renderGallery(images, testStyles)

	// 1-based labels, one per image.
	for i, src := range images {
		if !strings.Contains(out, src) {
			t.Errorf("gallery is missing %q", src)
		}
		label := "Rover image " + string(rune('1'+i))
		if !strings.Contains(out, label) {
			t.Errorf("gallery is missing label %q", label)
		}
	}

	// Input order preserved: z.jpg appears before a.jpg, a.jpg before m.jpg.
	if strings.Index(out, "z.jpg") > strings.Index(out, "a.jpg") ||
		strings.Index(out, "a.jpg") > strings.Index(out, "m.jpg") {
		t.Error("gallery does not preserve input order")
	}
}

func TestRenderGallery_EmptyRendersPrompt(t *testing.T) {
	out := renderGallery(nil, testStyles)
	if !strings.Contains(out, "Select a rover to view images") {
		t.Fatalf("empty gallery rendered %q, want selection prompt", out)
	}
}
