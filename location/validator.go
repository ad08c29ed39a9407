// Package location classifies search input before it is sent to a provider.
package location

import (
	"regexp"
)

// Classification is the outcome of validating one input string
type Classification int

const (
	Invalid Classification = iota
	SingleRegion
	CityCountry
)

func (c Classification) String() string {
	switch c {
	case SingleRegion:
		return "single-region"
	case CityCountry:
		return "city-country"
	default:
		return "invalid"
	}
}

var (
	singleRegionRe = regexp.MustCompile(`^[A-Za-z]{3,}$`)
	cityCountryRe  = regexp.MustCompile(`^[A-Za-z]{3,}\s+[A-Za-z]{3,}$`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

// Result holds the classification and the query key derived from the input
type Result struct {
	Classification Classification
	Query          string
}

// Valid reports whether the input can be sent to a provider
func (r Result) Valid() bool {
	return r.Classification != Invalid
}

// Classify checks an already trimmed input against the accepted formats.
// The first matching rule wins.
func Classify(input string) Result {
	switch {
	case singleRegionRe.MatchString(input):
		return Result{Classification: SingleRegion, Query: input}
	case cityCountryRe.MatchString(input):
		return Result{Classification: CityCountry, Query: whitespaceRe.ReplaceAllString(input, ",")}
	default:
		return Result{Classification: Invalid}
	}
}
