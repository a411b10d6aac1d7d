package scoring

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Similarity maps an exact team or player name to a precomputed 0-100 score.
type Similarity map[string]float64

// Lookup returns the score for name and whether it was present.
func (s Similarity) Lookup(name string) (float64, bool) {
	v, ok := s[name]
	return v, ok
}

// ParseSimilarity decodes a JSON object of name to score.
func ParseSimilarity(r io.Reader) (Similarity, error) {
	var s Similarity
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode similarity table: %w", err)
	}
	if s == nil {
		s = Similarity{}
	}
	return s, nil
}

// LoadSimilarity reads a similarity table from a JSON file. An empty path
// yields an empty table, so every lookup falls back to the miss score.
func LoadSimilarity(path string) (Similarity, error) {
	if path == "" {
		return Similarity{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open similarity table: %w", err)
	}
	defer f.Close()

	s, err := ParseSimilarity(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
