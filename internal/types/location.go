package types

import "strings"

// AdministrativeLevel is a rung of the GADM hierarchy. Country is 0 and the
// most specific supported level is 3. Continent has no representation in
// the reference data and is never matched.
type AdministrativeLevel int

const (
	LevelContinent AdministrativeLevel = -1
	LevelCountry   AdministrativeLevel = 0
	LevelState     AdministrativeLevel = 1
	LevelCounty    AdministrativeLevel = 2
	LevelLocality  AdministrativeLevel = 3

	MaxLevel = LevelLocality
)

func (l AdministrativeLevel) Label() string {
	switch l {
	case LevelContinent:
		return "continent"
	case LevelCountry:
		return "country"
	case LevelState:
		return "state"
	case LevelCounty:
		return "county"
	case LevelLocality:
		return "locality"
	default:
		return "unknown"
	}
}

// Matchable reports whether the level exists in the reference dataset.
func (l AdministrativeLevel) Matchable() bool {
	return l >= LevelCountry && l <= MaxLevel
}

// PlaceHierarchy is a partially filled address as extracted from user text.
// An empty string means the level is absent.
type PlaceHierarchy struct {
	Continent     string `yaml:"continent,omitempty" json:"continent,omitempty"`
	Country       string `yaml:"country,omitempty" json:"country,omitempty"`
	CountryISO    string `yaml:"country_iso,omitempty" json:"country_iso,omitempty"`
	State         string `yaml:"state,omitempty" json:"state,omitempty"`
	StateISO      string `yaml:"state_iso,omitempty" json:"state_iso,omitempty"`
	County        string `yaml:"county,omitempty" json:"county,omitempty"`
	Locality      string `yaml:"locality,omitempty" json:"locality,omitempty"`
	ProtectedArea string `yaml:"protected_area,omitempty" json:"protected_area,omitempty"`
}

// LevelEntry pairs a level with the caller supplied name for it.
type LevelEntry struct {
	Level AdministrativeLevel
	Name  string
}

// Entries lists the present levels from most specific to least specific.
func (p PlaceHierarchy) Entries() []LevelEntry {
	candidates := []LevelEntry{
		{Level: LevelLocality, Name: p.Locality},
		{Level: LevelCounty, Name: p.County},
		{Level: LevelState, Name: p.State},
		{Level: LevelCountry, Name: p.Country},
		{Level: LevelContinent, Name: p.Continent},
	}
	entries := make([]LevelEntry, 0, len(candidates))
	for _, entry := range candidates {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			continue
		}
		entries = append(entries, LevelEntry{Level: entry.Level, Name: name})
	}
	return entries
}

// MostSpecific returns the deepest present level. ok is false for an empty
// hierarchy.
func (p PlaceHierarchy) MostSpecific() (LevelEntry, bool) {
	entries := p.Entries()
	if len(entries) == 0 {
		return LevelEntry{}, false
	}
	return entries[0], true
}

func (p PlaceHierarchy) IsEmpty() bool {
	return len(p.Entries()) == 0 && strings.TrimSpace(p.ProtectedArea) == ""
}

func (p PlaceHierarchy) String() string {
	var parts []string
	for _, value := range []string{p.Locality, p.County, p.ProtectedArea, p.State, p.Country, p.Continent} {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if len(parts) == 0 {
		return "Empty Location"
	}
	return strings.Join(parts, ", ")
}
