package handlers

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var countryTitleCaser = cases.Title(language.English)

// NormalizeCountryName maps an all-lowercase country query value to its
// title-cased form so "united states" matches stored data. Mixed-case input
// is passed through untouched: the caller already chose a casing, and names
// like "United Kingdom" must not be mangled.
func NormalizeCountryName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if name == strings.ToLower(name) {
		return countryTitleCaser.String(name)
	}
	return name
}
