package ui

import (
	"errors"
	"testing"
)

func TestFormatEarthDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2021-07-04", "July 4, 2021"},
		{"2004-01-25", "January 25, 2004"},
		{"2012-08-06", "August 6, 2012"},
		{"2018-12-31", "December 31, 2018"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := FormatEarthDate(tt.in)
			if err != nil {
				t.Fatalf("FormatEarthDate(%q) returned error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("FormatEarthDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatEarthDate_Malformed(t *testing.T) {
	malformed := []string{
		"",
		"2021",
		"2021-07",
		"2021-07-04-05",
		"20xx-07-04",
		"2021-ab-04",
		"2021-07-cd",
		"2021-00-04",
		"2021-13-04",
		"2021-07-00",
		"2021-07-32",
	}

	for _, in := range malformed {
		if _, err := FormatEarthDate(in); !errors.Is(err, ErrDateFormat) {
			t.Errorf("FormatEarthDate(%q) error = %v, want ErrDateFormat", in, err)
		}
	}
}

func TestFormatEarthDateOrRaw_FallsBack(t *testing.T) {
	if got := formatEarthDateOrRaw("2021-07-04"); got != "July 4, 2021" {
		t.Fatalf("formatEarthDateOrRaw = %q, want formatted", got)
	}
	if got := formatEarthDateOrRaw("unknown"); got != "unknown" {
		t.Fatalf("formatEarthDateOrRaw = %q, want raw passthrough", got)
	}
}
