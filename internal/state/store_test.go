package state

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var roster = []string{"Curiosity", "Opportunity", "Spirit"}

func TestStore_ApplyMergesOverPrevious(t *testing.T) {
	s := NewStore(roster)

	active := "curiosity"
	images := []string{"a.jpg", "b.jpg"}
	attrs := Attributes{Name: "Curiosity", LaunchDate: "2011-11-26", LandingDate: "2012-08-06", EarthDate: "2020-01-01", Status: "active"}

	snap := s.Apply(Patch{Active: &active, Images: &images, Attributes: &attrs})
	if snap.Active != "curiosity" {
		t.Fatalf("Active = %q, want curiosity", snap.Active)
	}
	if len(snap.Images) != 2 || snap.Images[0] != "a.jpg" {
		t.Fatalf("Images = %#v, want [a.jpg b.jpg]", snap.Images)
	}
	if snap.Attributes != attrs {
		t.Fatalf("Attributes = %#v, want %#v", snap.Attributes, attrs)
	}

	// A patch setting only Active carries everything else over.
	next := "spirit"
	snap = s.Apply(Patch{Active: &next})
	if snap.Active != "spirit" {
		t.Fatalf("Active = %q, want spirit", snap.Active)
	}
	if len(snap.Images) != 2 || snap.Attributes != attrs {
		t.Fatalf("unpatched fields changed: %#v", snap)
	}

	// The empty patch is a no-op.
	again := s.Apply(Patch{})
	if again.Active != snap.Active || len(again.Images) != len(snap.Images) || again.Attributes != snap.Attributes {
		t.Fatalf("empty patch changed snapshot: %#v", again)
	}
}

func TestStore_RosterIsImmutable(t *testing.T) {
	s := NewStore(roster)

	snap := s.Snapshot()
	if len(snap.Rovers) != 3 || snap.Rovers[0] != "Curiosity" {
		t.Fatalf("Rovers = %#v, want seeded roster", snap.Rovers)
	}

	// Mutating a returned snapshot must not leak into the store.
	snap.Rovers[0] = "Perseverance"
	if s.Snapshot().Rovers[0] != "Curiosity" {
		t.Fatal("Snapshot should clone the roster")
	}

	images := []string{"x.jpg"}
	s.Apply(Patch{Images: &images})
	images[0] = "mutated.jpg"
	if s.Snapshot().Images[0] != "x.jpg" {
		t.Fatal("Apply should clone patched images")
	}
}

func TestStore_ZeroValueAttributes(t *testing.T) {
	s := NewStore(roster)
	snap := s.Snapshot()
	if !snap.Attributes.IsZero() {
		t.Fatalf("fresh store attributes = %#v, want zero", snap.Attributes)
	}
	if snap.Active != "" || len(snap.Images) != 0 {
		t.Fatalf("fresh store snapshot = %#v, want empty selection", snap)
	}
}

func genAttributes() gopter.Gen {
	return gopter.CombineGens(
		gen.AlphaString(), gen.AlphaString(), gen.AlphaString(), gen.AlphaString(), gen.AlphaString(),
	).Map(func(vs []interface{}) Attributes {
		return Attributes{
			Name:        vs[0].(string),
			LaunchDate:  vs[1].(string),
			LandingDate: vs[2].(string),
			EarthDate:   vs[3].(string),
			Status:      vs[4].(string),
		}
	})
}

// Merge correctness: for all previous states and patches, the result agrees
// with the patch on present fields and with the previous snapshot on absent
// fields.
func TestStore_MergeCorrectness_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("patched fields win, absent fields carry over", prop.ForAll(
		func(prevActive string, prevImages []string, prevAttrs Attributes,
			setActive bool, newActive string,
			setImages bool, newImages []string,
			setAttrs bool, newAttrs Attributes) bool {

			s := NewStore(roster)
			s.Apply(Patch{Active: &prevActive, Images: &prevImages, Attributes: &prevAttrs})

			var p Patch
			if setActive {
				p.Active = &newActive
			}
			if setImages {
				p.Images = &newImages
			}
			if setAttrs {
				p.Attributes = &newAttrs
			}
			got := s.Apply(p)

			wantActive := prevActive
			if setActive {
				wantActive = newActive
			}
			wantImages := prevImages
			if setImages {
				wantImages = newImages
			}
			wantAttrs := prevAttrs
			if setAttrs {
				wantAttrs = newAttrs
			}

			if got.Active != wantActive || got.Attributes != wantAttrs {
				return false
			}
			if len(got.Images) != len(wantImages) {
				return false
			}
			for i := range wantImages {
				if got.Images[i] != wantImages[i] {
					return false
				}
			}
			return true
		},
		gen.AlphaString(),
		gen.SliceOf(gen.AlphaString()),
		genAttributes(),
		gen.Bool(),
		gen.AlphaString(),
		gen.Bool(),
		gen.SliceOf(gen.AlphaString()),
		gen.Bool(),
		genAttributes(),
	))

	properties.TestingRun(t)
}
