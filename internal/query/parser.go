// Package query implements the cell-selection language: a comma-separated
// list of non-negative integers and inclusive integer ranges.
package query

import (
	"strconv"
	"strings"

	"eisview/domain/eis"
)

// Parse expands a free-text id expression into an identifier set. Tokens are
// trimmed; a token is either an integer literal or "a-b", expanded to every
// integer between the bounds. Reversed bounds ("10-5") normalize to the same
// range as "5-10". Malformed tokens are dropped without failing the query, so
// one typo never blanks the whole selection.
func Parse(text string) eis.IdentifierSet {
	ids := eis.IdentifierSet{}
	for _, token := range strings.Split(text, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if n, err := strconv.Atoi(token); err == nil && n >= 0 {
			ids.Add(strconv.Itoa(n))
			continue
		}
		lo, hi, ok := parseRange(token)
		if !ok {
			continue
		}
		for n := lo; n <= hi; n++ {
			ids.Add(strconv.Itoa(n))
		}
	}
	return ids
}

// parseRange parses "a-b" with the bounds taken as (min, max) regardless of
// order. Anything with more than two hyphen-joined parts is malformed.
func parseRange(token string) (lo, hi int, ok bool) {
	parts := strings.Split(token, "-")
	if len(parts) != 2 {
		return 0, 0, false
	}
	a, errA := strconv.Atoi(strings.TrimSpace(parts[0]))
	b, errB := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errA != nil || errB != nil || a < 0 || b < 0 {
		return 0, 0, false
	}
	if a > b {
		a, b = b, a
	}
	return a, b, true
}
