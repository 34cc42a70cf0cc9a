// Package denylist fetches and applies the offensive-term list used to
// exclude catalog entries by name.
package denylist

import "strings"

// Denylist is an ordered set of lowercase terms. Membership testing is the
// only operation downstream code performs; order is kept purely because the
// source list is ordered.
type Denylist []string

// Parse splits raw newline-delimited text into denylist entries. Each line is
// trimmed of surrounding whitespace and lowercased; lines that are empty
// after trimming are discarded.
func Parse(raw string) Denylist {
	var terms Denylist
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		terms = append(terms, strings.ToLower(line))
	}
	return terms
}

// Matches reports whether any term occurs inside the lowercased name.
// Matching is substring-based, not whole-word, so a short term can match
// inside an unrelated word. That mirrors how the upstream word list is
// applied by the original updater and is kept as-is; see DESIGN.md for the
// false-positive trade-off.
func (d Denylist) Matches(name string) bool {
	lower := strings.ToLower(name)
	for _, term := range d {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
