package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Sport is the category of a mock sporting event
type Sport string

const (
	SportFootball   Sport = "football"
	SportBasketball Sport = "basketball"
	SportTennis     Sport = "tennis"
	SportHockey     Sport = "hockey"
	SportBaseball   Sport = "baseball"
)

// AllSports lists every sport category in declaration order
var AllSports = []Sport{SportFootball, SportBasketball, SportTennis, SportHockey, SportBaseball}

var titleCaser = cases.Title(language.English)

// Valid reports whether s is a known sport
func (s Sport) Valid() bool {
	for _, sport := range AllSports {
		if s == sport {
			return true
		}
	}
	return false
}

// Title returns the display name, e.g. "Football"
func (s Sport) Title() string {
	return titleCaser.String(string(s))
}
