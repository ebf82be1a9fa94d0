package types

import (
	"fmt"
	"strings"
)

// Predicate is one WHERE-clause term over introspected columns. Column names
// are structural; Value is always passed as a bound parameter.
type Predicate struct {
	Kind    PredicateKind
	Columns []string
	Value   string
}

func AlwaysPredicate() Predicate {
	return Predicate{Kind: PredicateAlways}
}

func ImpossiblePredicate() Predicate {
	return Predicate{Kind: PredicateImpossible}
}

func (p Predicate) Impossible() bool {
	return p.Kind == PredicateImpossible
}

// SQL renders the predicate with '?' placeholders.
func (p Predicate) SQL() (string, []any) {
	switch p.Kind {
	case PredicateAlways:
		return "1=1", nil
	case PredicateAnyFold:
		terms := make([]string, 0, len(p.Columns))
		args := make([]any, 0, len(p.Columns))
		for _, column := range p.Columns {
			terms = append(terms, fmt.Sprintf("UPPER(%s) = UPPER(?)", QuoteIdentifier(column)))
			args = append(args, p.Value)
		}
		return "(" + strings.Join(terms, " OR ") + ")", args
	case PredicateEqual:
		if len(p.Columns) == 0 {
			return "1=0", nil
		}
		return fmt.Sprintf("%s = ?", QuoteIdentifier(p.Columns[0])), []any{p.Value}
	default:
		return "1=0", nil
	}
}

// Matches evaluates the predicate against an in-memory row with the same
// semantics as SQL: NULL never equals anything and UPPER folds ASCII only.
func (p Predicate) Matches(row Row) bool {
	switch p.Kind {
	case PredicateAlways:
		return true
	case PredicateAnyFold:
		want := asciiUpper(p.Value)
		for _, column := range p.Columns {
			value, ok := row[column]
			if ok && asciiUpper(value) == want {
				return true
			}
		}
		return false
	case PredicateEqual:
		if len(p.Columns) == 0 {
			return false
		}
		value, ok := row[p.Columns[0]]
		return ok && value == p.Value
	default:
		return false
	}
}

// LayerQuery is a bounded lookup in one layer: Name AND Parent.
type LayerQuery struct {
	Layer  string
	Name   Predicate
	Parent Predicate
	Limit  int
}

// Impossible reports whether the query can be skipped without executing.
func (q LayerQuery) Impossible() bool {
	return q.Name.Impossible() || q.Parent.Impossible()
}

// Statement renders the SELECT with placeholders and its bound arguments.
func (q LayerQuery) Statement() (string, []any) {
	nameSQL, nameArgs := q.Name.SQL()
	parentSQL, parentArgs := q.Parent.SQL()
	limit := q.Limit
	if limit <= 0 {
		limit = 1
	}
	statement := fmt.Sprintf("SELECT * FROM %s WHERE %s AND %s LIMIT %d",
		QuoteIdentifier(q.Layer), nameSQL, parentSQL, limit)
	args := make([]any, 0, len(nameArgs)+len(parentArgs))
	args = append(args, nameArgs...)
	args = append(args, parentArgs...)
	return statement, args
}

// QuoteIdentifier double-quotes an SQL identifier.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func asciiUpper(value string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, value)
}
