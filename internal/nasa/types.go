package nasa

import "strings"

// Rovers is the fixed roster the dashboard exposes. It is set once at
// startup and never mutated.
var Rovers = []string{"Curiosity", "Opportunity", "Spirit"}

// Slug returns the lower-case path segment used for a rover on the wire.
func Slug(rover string) string {
	return strings.ToLower(rover)
}

// KnownSlug reports whether slug names one of the fixed rovers.
func KnownSlug(slug string) bool {
	for _, r := range Rovers {
		if Slug(r) == slug {
			return true
		}
	}
	return false
}

// ManifestResponse mirrors the upstream manifest payload. Only max_date is
// consumed; the rest of the manifest is a collaborator contract.
type ManifestResponse struct {
	PhotoManifest *PhotoManifest `json:"photo_manifest"`
}

// PhotoManifest carries the latest date for which photo data exists.
type PhotoManifest struct {
	MaxDate string `json:"max_date"`
}

// PhotoPayload mirrors the upstream photos payload for a rover and date.
type PhotoPayload struct {
	Photos []Photo `json:"photos"`
}

// Photo describes a single photo entry. Beyond img_src, only the first
// photo's earth_date and rover metadata are consumed downstream.
type Photo struct {
	ImgSrc    string    `json:"img_src"`
	EarthDate string    `json:"earth_date"`
	Rover     RoverInfo `json:"rover"`
}

// RoverInfo carries the rover-descriptive fields shown in the dashboard.
type RoverInfo struct {
	Name        string `json:"name"`
	LaunchDate  string `json:"launch_date"`
	LandingDate string `json:"landing_date"`
	Status      string `json:"status"`
}
