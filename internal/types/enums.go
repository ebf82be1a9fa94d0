package types

import "strings"

type MatchType string

const (
	MatchComplete MatchType = "complete"
	MatchPartial  MatchType = "partial"
	MatchNone     MatchType = "none"
)

type PredicateKind string

const (
	PredicateAlways     PredicateKind = "always"
	PredicateImpossible PredicateKind = "impossible"
	PredicateAnyFold    PredicateKind = "any_fold"
	PredicateEqual      PredicateKind = "equal"
)

type OutputFormat string

const (
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatJSON OutputFormat = "json"
)

// ParseOutputFormat accepts the format names case-insensitively. An empty
// value selects YAML.
func ParseOutputFormat(value string) (OutputFormat, bool) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(value))) {
	case "", OutputFormatYAML, "yml":
		return OutputFormatYAML, true
	case OutputFormatJSON:
		return OutputFormatJSON, true
	default:
		return "", false
	}
}
