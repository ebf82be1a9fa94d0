package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

func TestFormatStatement(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		args      []any
		want      string
	}{
		{
			name:      "inlines arguments in order",
			statement: `SELECT * FROM "gadm" WHERE (UPPER("NAME_1") = UPPER(?)) AND "GID_0" = ? LIMIT 1`,
			args:      []any{"Florida", "USA"},
			want:      `SELECT * FROM "gadm" WHERE (UPPER("NAME_1") = UPPER('Florida')) AND "GID_0" = 'USA' LIMIT 1`,
		},
		{
			name:      "escapes single quotes",
			statement: `SELECT * FROM "gadm" WHERE "NAME_0" = ?`,
			args:      []any{"Côte d'Ivoire"},
			want:      `SELECT * FROM "gadm" WHERE "NAME_0" = 'Côte d''Ivoire'`,
		},
		{
			name:      "ignores placeholders inside identifiers",
			statement: `SELECT * FROM "what?" WHERE "NAME_0" = ?`,
			args:      []any{"USA"},
			want:      `SELECT * FROM "what?" WHERE "NAME_0" = 'USA'`,
		},
		{
			name:      "renders nil as NULL",
			statement: `SELECT ?`,
			args:      []any{nil},
			want:      `SELECT NULL`,
		},
		{
			name:      "leaves surplus placeholders",
			statement: `SELECT ?, ?`,
			args:      []any{"a"},
			want:      `SELECT 'a', ?`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatStatement(tt.statement, tt.args))
		})
	}
}

func TestTraceLinesNeverNil(t *testing.T) {
	trace := &Trace{}
	assert.NotNil(t, trace.Lines())
	assert.Empty(t, trace.Lines())

	query := types.LayerQuery{
		Layer:  "gadm",
		Name:   types.Predicate{Kind: types.PredicateAnyFold, Columns: []string{"NAME_0", "VARNAME_0"}, Value: "USA"},
		Parent: types.AlwaysPredicate(),
		Limit:  1,
	}
	statement, args := query.Statement()
	trace.Record(statement, args)
	assert.Equal(t, []string{
		`SELECT * FROM "gadm" WHERE (UPPER("NAME_0") = UPPER('USA') OR UPPER("VARNAME_0") = UPPER('USA')) AND 1=1 LIMIT 1`,
	}, trace.Lines())

	lines := trace.Lines()
	lines[0] = "mutated"
	assert.NotEqual(t, "mutated", trace.Lines()[0])
}
