package types

// MatchedLevel is one confirmed rung of a hierarchy.
type MatchedLevel struct {
	Level AdministrativeLevel `yaml:"level" json:"level"`
	Name  string              `yaml:"name" json:"name"`
	GID   string              `yaml:"gid" json:"gid"`
}

// Hierarchy holds matched levels indexed by level, contiguous from 0.
type Hierarchy []MatchedLevel

func (h Hierarchy) Deepest() (MatchedLevel, bool) {
	if len(h) == 0 {
		return MatchedLevel{}, false
	}
	return h[len(h)-1], true
}

func (h Hierarchy) Level(level AdministrativeLevel) (MatchedLevel, bool) {
	if level < 0 || int(level) >= len(h) {
		return MatchedLevel{}, false
	}
	return h[level], true
}

type MatchResult struct {
	MatchType  MatchType `yaml:"match_type" json:"match_type"`
	Hierarchy  Hierarchy `yaml:"hierarchy,omitempty" json:"hierarchy,omitempty"`
	QueryTrace []string  `yaml:"query_trace" json:"query_trace"`
}

// ResolvedPlace is the caller's hierarchy merged with its match result.
type ResolvedPlace struct {
	PlaceHierarchy `yaml:",inline"`
	MatchResult    `yaml:",inline"`
	Note           string `yaml:"note,omitempty" json:"note,omitempty"`
}

// ResolutionFile is the on-disk form of a batch result.
type ResolutionFile struct {
	Dataset string          `yaml:"dataset" json:"dataset"`
	Places  []ResolvedPlace `yaml:"places" json:"places"`
}
