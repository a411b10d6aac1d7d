// Package position derives a coarse position tag from a free-text
// archetype label such as "Stretch 4" or "Scoring PG".
package position

import "strings"

// rules are tested in order; the first matching substring wins. "pf/c"
// must precede the bare "c" rule.
var rules = []struct {
	substr   string
	position string
}{
	{"pg", "PG"},
	{"combo", "G"},
	{"wing", "G/F"},
	{"pf/c", "F/C"},
	{"stretch", "PF"},
	{"c", "C"},
}

// Infer returns the position implied by archetype, or false when no rule
// matches. Callers must tolerate an unset position.
func Infer(archetype string) (string, bool) {
	a := strings.ToLower(archetype)
	for _, r := range rules {
		if strings.Contains(a, r.substr) {
			return r.position, true
		}
	}
	return "", false
}
