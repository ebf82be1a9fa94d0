package types

// ReferenceFile is a small, hand-curated stand-in for a GeoPackage. It is
// loaded entirely into memory and served with the same predicate semantics.
type ReferenceFile struct {
	Layers []ReferenceLayer `yaml:"layers"`
}

type ReferenceLayer struct {
	Name string `yaml:"name"`
	// Columns is optional; when empty the union of row keys is used.
	Columns []string             `yaml:"columns,omitempty"`
	Rows    []map[string]*string `yaml:"rows"`
}
