// Package theme picks the day or night look of the page from the local hour.
package theme

import (
	"time"

	"weather-widget/page"
)

// Theme is one visual variant of the page
type Theme struct {
	Name  string `json:"name"`
	Class string `json:"class"`
	Icon  string `json:"icon"`
}

var (
	Day   = Theme{Name: "day", Class: "", Icon: "./images/favicon.png"}
	Night = Theme{Name: "night", Class: "night", Icon: "./images/favicon-night.png"}
)

const (
	dayStartHour = 6
	dayEndHour   = 18
)

// Select returns the day theme for hours in [6,18) and night otherwise
func Select(hour int) Theme {
	if hour >= dayStartHour && hour < dayEndHour {
		return Day
	}
	return Night
}

// Apply selects the theme for now and writes it to the document.
// Callers keep the result; it is not recomputed during a session.
func Apply(doc page.Document, now time.Time) Theme {
	t := Select(now.Hour())
	doc.SetIcon(t.Icon)
	doc.SetThemeClass(t.Class)
	return t
}
