package core

import (
	"strings"

	"github.com/nitingoyal0996/gbif-sub000/internal/shared"
)

// Trace collects the executed queries of one resolution in order.
type Trace struct {
	lines []string
}

func (t *Trace) Record(statement string, args []any) {
	t.lines = append(t.lines, FormatStatement(statement, args))
}

// Lines returns a copy of the recorded queries; never nil.
func (t *Trace) Lines() []string {
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

// FormatStatement inlines bound arguments into a statement for display.
// Placeholders inside quoted identifiers are left untouched.
func FormatStatement(statement string, args []any) string {
	var builder strings.Builder
	builder.Grow(len(statement) + 16*len(args))
	next := 0
	quoted := false
	for _, r := range statement {
		switch {
		case r == '"':
			quoted = !quoted
			builder.WriteRune(r)
		case r == '?' && !quoted && next < len(args):
			builder.WriteString(shared.QuoteLiteral(args[next]))
			next++
		default:
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
