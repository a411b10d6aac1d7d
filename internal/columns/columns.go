// Package columns maps raw CSV rows with inconsistent headers onto the
// canonical player fields.
package columns

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/vijay-prabhu/portalfit/internal/numeric"
)

// ErrMalformedRow is returned when a row is not a mapping at all.
var ErrMalformedRow = errors.New("row is not a column mapping")

// Row is one tokenized CSV record keyed by header name.
type Row map[string]string

// Generation identifies which CSV header shape a batch was exported with.
type Generation string

const (
	// Legacy files carry counting stats and a precomputed fit score.
	Legacy Generation = "legacy"
	// Current files add advanced metrics; the fit score is derived.
	Current Generation = "current"
)

// Canonical is a row after alias resolution and defaulting.
type Canonical struct {
	index   int
	text    map[string]string
	numbers map[string]float64
	present map[string]bool
	invalid []string
}

// Lookup returns the first alias present in row with a non-blank value.
func Lookup(row Row, aliases []string) (string, bool) {
	for _, alias := range aliases {
		v, ok := row[alias]
		if !ok {
			continue
		}
		if v = strings.TrimSpace(v); v != "" {
			return v, true
		}
	}
	return "", false
}

// Resolve builds the canonical view of row. index is the 1-based position
// of the row in the source file and seeds the placeholder name.
func Resolve(row Row, index int) (Canonical, error) {
	if row == nil {
		return Canonical{}, fmt.Errorf("row %d: %w", index, ErrMalformedRow)
	}

	c := Canonical{
		index:   index,
		text:    make(map[string]string),
		numbers: make(map[string]float64),
		present: make(map[string]bool),
	}

	for _, f := range Fields {
		raw, ok := Lookup(row, f.Aliases)
		c.present[f.Name] = ok

		switch f.Kind {
		case KindString:
			if !ok {
				raw = f.DefaultText
				if f.Name == Name {
					raw = fmt.Sprintf("Player %d", index)
				}
			}
			c.text[f.Name] = raw
		case KindNumber:
			if !ok {
				c.numbers[f.Name] = f.DefaultNumber
				continue
			}
			v, parsed := numeric.Parse(raw)
			if !parsed {
				v = f.DefaultNumber
				c.present[f.Name] = false
			}
			c.numbers[f.Name] = v
		case KindAdvanced:
			if !ok {
				c.numbers[f.Name] = f.DefaultNumber
				continue
			}
			v := numeric.ParseOrNaN(raw)
			if math.IsNaN(v) {
				c.invalid = append(c.invalid, f.Name)
			}
			c.numbers[f.Name] = v
		}
	}

	if !c.present[ReboundingPercent] {
		c.numbers[ReboundingPercent] = numeric.Mean(
			c.numbers[OffensiveReboundingPercent],
			c.numbers[DefensiveReboundingPercent],
		)
	}

	return c, nil
}

// Index returns the 1-based source row index.
func (c Canonical) Index() int { return c.index }

// String returns a resolved string field.
func (c Canonical) String(field string) string { return c.text[field] }

// Number returns a resolved numeric field.
func (c Canonical) Number(field string) float64 { return c.numbers[field] }

// Present reports whether field came from the row rather than a default.
func (c Canonical) Present(field string) bool { return c.present[field] }

// Invalid lists advanced fields that were present but failed to parse.
func (c Canonical) Invalid() []string { return c.invalid }

// DetectGeneration inspects a header row. Any advanced-metric column marks
// the file as the current generation.
func DetectGeneration(headers []string) Generation {
	seen := make(map[string]bool, len(headers))
	for _, h := range headers {
		seen[strings.TrimSpace(h)] = true
	}

	for _, f := range Fields {
		if f.Kind != KindAdvanced {
			continue
		}
		for _, alias := range f.Aliases {
			if seen[alias] {
				return Current
			}
		}
	}
	return Legacy
}
