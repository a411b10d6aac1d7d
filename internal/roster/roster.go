package roster

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vijay-prabhu/portalfit/internal/columns"
)

// Roster is one loaded batch of candidates. It is replaced wholesale on
// reload and never mutated in place.
type Roster struct {
	ID         string             `json:"id"`
	Source     string             `json:"source"`
	Generation columns.Generation `json:"generation"`
	LoadedAt   time.Time          `json:"loaded_at"`
	Players    []Player           `json:"players"`
	Excluded   int                `json:"excluded"`
}

// Find looks a player up by id, exact name, then case-insensitive name
// prefix. The first match in roster order wins.
func (r *Roster) Find(identifier string) (*Player, bool) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, false
	}

	if id, err := strconv.Atoi(identifier); err == nil {
		for i := range r.Players {
			if r.Players[i].ID == id {
				return &r.Players[i], true
			}
		}
	}

	for i := range r.Players {
		if r.Players[i].Name == identifier {
			return &r.Players[i], true
		}
	}

	prefix := strings.ToLower(identifier)
	for i := range r.Players {
		if strings.HasPrefix(strings.ToLower(r.Players[i].Name), prefix) {
			return &r.Players[i], true
		}
	}
	return nil, false
}

// Load reads and builds a roster from CSV text.
func (b *Builder) Load(r io.Reader) (*Roster, error) {
	headers, rows, err := ReadCSV(r)
	if err != nil {
		return nil, err
	}
	return b.Build(headers, rows)
}

// LoadFile reads a .csv file from disk.
func (b *Builder) LoadFile(path string) (*Roster, error) {
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		return nil, fmt.Errorf("%w: %s is not a .csv file", ErrParse, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster: %w", err)
	}
	defer f.Close()

	r, err := b.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r.Source = path
	return r, nil
}
