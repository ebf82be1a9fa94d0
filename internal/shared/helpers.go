// Package shared provides small helpers used by several packages of the
// resolver.
package shared

import (
	"fmt"
	"strings"
)

// QuoteLiteral renders a value as an SQL string literal. It is only used to
// make traces readable; queries always bind values as parameters.
func QuoteLiteral(value any) string {
	if value == nil {
		return "NULL"
	}
	return "'" + strings.ReplaceAll(fmt.Sprint(value), "'", "''") + "'"
}

// ExtensionOf returns the lower-cased file extension without the dot.
func ExtensionOf(path string) string {
	idx := strings.LastIndex(path, ".")
	if idx < 0 || idx == len(path)-1 || strings.ContainsAny(path[idx:], `/\`) {
		return ""
	}
	return strings.ToLower(path[idx+1:])
}
