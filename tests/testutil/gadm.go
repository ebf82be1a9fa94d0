package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"

	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

// GADMLayer is the single feature table of the reference fixture.
const GADMLayer = "gadm"

var gadmColumns = []string{
	"UID",
	"GID_0", "NAME_0", "VARNAME_0",
	"GID_1", "NAME_1", "VARNAME_1", "NL_NAME_1",
	"GID_2", "NAME_2", "VARNAME_2", "NL_NAME_2",
	"GID_3", "NAME_3", "VARNAME_3", "NL_NAME_3",
}

func str(value string) *string {
	return &value
}

func gadmRow(uid string, values ...string) map[string]*string {
	row := map[string]*string{"UID": str(uid)}
	for i := 0; i+1 < len(values); i += 2 {
		if values[i+1] == "" {
			row[values[i]] = nil
			continue
		}
		row[values[i]] = str(values[i+1])
	}
	return row
}

// GADMDataset is a small slice of GADM: two US states that share a county
// name, a Mexican branch with a localized name, and a row with no county
// identifier.
func GADMDataset() types.ReferenceFile {
	return types.ReferenceFile{Layers: []types.ReferenceLayer{{
		Name:    GADMLayer,
		Columns: append([]string(nil), gadmColumns...),
		Rows: []map[string]*string{
			gadmRow("1",
				"GID_0", "USA", "NAME_0", "United States", "VARNAME_0", "USA",
				"GID_1", "USA.10_1", "NAME_1", "Florida", "VARNAME_1", "FL",
				"GID_2", "USA.10.1_1", "NAME_2", "Alachua",
				"GID_3", "USA.10.1.3_1", "NAME_3", "Gainesville"),
			gadmRow("2",
				"GID_0", "USA", "NAME_0", "United States", "VARNAME_0", "USA",
				"GID_1", "USA.10_1", "NAME_1", "Florida", "VARNAME_1", "FL",
				"GID_2", "USA.10.48_1", "NAME_2", "Orange",
				"GID_3", "USA.10.48.2_1", "NAME_3", "Orlando"),
			gadmRow("3",
				"GID_0", "USA", "NAME_0", "United States", "VARNAME_0", "USA",
				"GID_1", "USA.44_1", "NAME_1", "Texas", "VARNAME_1", "TX",
				"GID_2", "USA.44.181_1", "NAME_2", "Orange",
				"GID_3", "USA.44.181.1_1", "NAME_3", "Orange"),
			gadmRow("4",
				"GID_0", "MEX", "NAME_0", "Mexico", "VARNAME_0", "México",
				"GID_1", "MEX.9_1", "NAME_1", "Distrito Federal", "VARNAME_1", "Ciudad de México", "NL_NAME_1", "CDMX",
				"GID_2", "MEX.9.1_1", "NAME_2", "Álvaro Obregón"),
			gadmRow("5",
				"GID_0", "ATA", "NAME_0", "Antarctica",
				"GID_1", "ATA.1_1", "NAME_1", "Ross Dependency",
				"GID_2", "", "NAME_2", "Ross Ice Shelf"),
		},
	}}}
}

// WriteReferenceFixture stores a dataset as a YAML reference fixture.
func WriteReferenceFixture(t *testing.T, dir string, dataset types.ReferenceFile) string {
	t.Helper()
	data, err := yaml.Marshal(dataset)
	require.NoError(t, err)
	path := filepath.Join(dir, "gadm.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

// WriteGeoPackage stores a dataset as a minimal GeoPackage: a gpkg_contents
// table registering each layer as features, plus one non-feature table that
// must never be searched.
func WriteGeoPackage(t *testing.T, dir string, dataset types.ReferenceFile) string {
	t.Helper()
	path := filepath.Join(dir, "gadm.gpkg")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE gpkg_contents (
		table_name TEXT NOT NULL PRIMARY KEY,
		data_type TEXT NOT NULL,
		identifier TEXT UNIQUE,
		description TEXT DEFAULT '',
		last_change DATETIME NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now')),
		min_x DOUBLE, min_y DOUBLE, max_x DOUBLE, max_y DOUBLE,
		srs_id INTEGER
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE "metadata_notes" ("GID_0" TEXT, "NAME_0" TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO "metadata_notes" VALUES ('XXX', 'USA')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO gpkg_contents (table_name, data_type, identifier) VALUES ('metadata_notes', 'attributes', 'metadata_notes')`)
	require.NoError(t, err)

	for _, layer := range dataset.Layers {
		columns := layer.Columns
		if len(columns) == 0 {
			columns = rowKeys(layer.Rows)
		}
		definitions := []string{`"fid" INTEGER PRIMARY KEY AUTOINCREMENT`, `"geom" BLOB`}
		for _, column := range columns {
			definitions = append(definitions, types.QuoteIdentifier(column)+" TEXT")
		}
		_, err = db.Exec("CREATE TABLE " + types.QuoteIdentifier(layer.Name) + " (" + strings.Join(definitions, ", ") + ")")
		require.NoError(t, err)

		quoted := make([]string, 0, len(columns)+1)
		placeholders := make([]string, 0, len(columns)+1)
		quoted = append(quoted, `"geom"`)
		placeholders = append(placeholders, "?")
		for _, column := range columns {
			quoted = append(quoted, types.QuoteIdentifier(column))
			placeholders = append(placeholders, "?")
		}
		insert := "INSERT INTO " + types.QuoteIdentifier(layer.Name) +
			" (" + strings.Join(quoted, ", ") + ") VALUES (" + strings.Join(placeholders, ", ") + ")"
		for _, row := range layer.Rows {
			args := []any{[]byte{0x47, 0x50, 0x00, 0x01, 0xff, 0xfe}}
			for _, column := range columns {
				if value := row[column]; value != nil {
					args = append(args, *value)
				} else {
					args = append(args, nil)
				}
			}
			_, err = db.Exec(insert, args...)
			require.NoError(t, err)
		}
		_, err = db.Exec(`INSERT INTO gpkg_contents (table_name, data_type, identifier) VALUES (?, 'features', ?)`, layer.Name, layer.Name)
		require.NoError(t, err)
	}
	return path
}

func rowKeys(rows []map[string]*string) []string {
	seen := map[string]struct{}{}
	var keys []string
	for _, row := range rows {
		for key := range row {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
