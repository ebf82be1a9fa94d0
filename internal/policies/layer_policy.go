package policies

import (
	"strings"

	"github.com/nitingoyal0996/gbif-sub000/internal/ports"
)

// LayerPolicy restricts which dataset layers take part in a search. An
// empty include list admits every layer; exclusions always win. Patterns are
// exact names, prefixes ending in "*", or "*".
type LayerPolicy struct {
	Include []string
	Exclude []string
	include []layerPattern
	exclude []layerPattern
}

type layerPattern struct {
	kind patternKind
	name string
}

type patternKind int

const (
	patternExact patternKind = iota
	patternPrefix
	patternWildcard
	patternInvalid
)

func NewLayerPolicy(include []string, exclude []string) LayerPolicy {
	policy := LayerPolicy{Include: include, Exclude: exclude}
	policy.include = compilePatterns(include)
	policy.exclude = compilePatterns(exclude)
	return policy
}

// SelectLayers filters layers, keeping their enumeration order.
func (p LayerPolicy) SelectLayers(layers []string) []string {
	selected := make([]string, 0, len(layers))
	for _, layer := range layers {
		if p.Allows(layer) {
			selected = append(selected, layer)
		}
	}
	return selected
}

func (p LayerPolicy) Allows(layer string) bool {
	if matchesAny(p.exclude, layer) {
		return false
	}
	if len(p.include) == 0 {
		return true
	}
	return matchesAny(p.include, layer)
}

func compilePatterns(patterns []string) []layerPattern {
	var compiled []layerPattern
	for _, pattern := range patterns {
		parsed := parsePattern(pattern)
		if parsed.kind == patternInvalid {
			continue
		}
		compiled = append(compiled, parsed)
	}
	return compiled
}

func parsePattern(value string) layerPattern {
	pattern := strings.TrimSpace(value)
	if pattern == "" {
		return layerPattern{kind: patternInvalid}
	}
	if pattern == "*" {
		return layerPattern{kind: patternWildcard}
	}
	if strings.HasSuffix(pattern, "*") {
		return layerPattern{kind: patternPrefix, name: strings.TrimSuffix(pattern, "*")}
	}
	return layerPattern{kind: patternExact, name: pattern}
}

func matchesAny(patterns []layerPattern, layer string) bool {
	for _, pattern := range patterns {
		switch pattern.kind {
		case patternWildcard:
			return true
		case patternExact:
			if layer == pattern.name {
				return true
			}
		case patternPrefix:
			if strings.HasPrefix(layer, pattern.name) {
				return true
			}
		}
	}
	return false
}

var _ ports.LayerPolicyPort = LayerPolicy{}
