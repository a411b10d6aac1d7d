package roster

import (
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vijay-prabhu/portalfit/internal/columns"
	"github.com/vijay-prabhu/portalfit/internal/scoring"
)

const legacyCSV = `Name,Position,Height,Previous Team,Conference,Archetype,Usage Rate,Fit Score
Amir Cole,PG,6'2",Duke,ACC,Scoring PG,24.5,81.2
Ben Ortiz,G/F,6'7",Kansas,B12,Wing F,,66
Cal Reyes,C,6'11",Gonzaga,WCC,C,18,70
`

func load(t *testing.T, b *Builder, csv string) *Roster {
	t.Helper()
	r, err := b.Load(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return r
}

func TestLoadLegacyDefaultsMissingUsage(t *testing.T) {
	r := load(t, NewBuilder(nil), legacyCSV)

	if r.Generation != columns.Legacy {
		t.Errorf("Generation = %q, want %q", r.Generation, columns.Legacy)
	}
	if len(r.Players) != 3 {
		t.Fatalf("len(Players) = %d, want 3", len(r.Players))
	}
	if got := r.Players[1].UsageRate; got != 20 {
		t.Errorf("missing usage = %v, want 20", got)
	}
	if got := r.Players[0].FitScore; got != 81.2 {
		t.Errorf("legacy FitScore = %v, want 81.2", got)
	}
	if got := r.Players[0].Position; got != "PG" {
		t.Errorf("legacy Position = %q, want PG", got)
	}
	if got := r.Players[0].Height; got != `6'2"` {
		t.Errorf("Height = %q, want 6'2\"", got)
	}
	if r.ID == "" {
		t.Error("roster ID should be set")
	}
	for i, p := range r.Players {
		if p.ID != i+1 {
			t.Errorf("Players[%d].ID = %d, want %d", i, p.ID, i+1)
		}
	}
}

func TestBuildExclusion(t *testing.T) {
	csv := `Name,Previous Team,TS%
Ann,Illinois State,55
Bo,Duke,55
,Illinoisian College,55
,Purdue,55
`
	r := load(t, NewBuilder(nil), csv)

	if r.Excluded != 2 {
		t.Errorf("Excluded = %d, want 2", r.Excluded)
	}
	if len(r.Players) != 2 {
		t.Fatalf("len(Players) = %d, want 2", len(r.Players))
	}

	want := []struct {
		id   int
		name string
	}{
		{1, "Bo"},
		{2, "Player 4"},
	}
	for i, w := range want {
		if r.Players[i].ID != w.id || r.Players[i].Name != w.name {
			t.Errorf("Players[%d] = (%d, %q), want (%d, %q)",
				i, r.Players[i].ID, r.Players[i].Name, w.id, w.name)
		}
	}
}

func TestBuildExclusionDisabled(t *testing.T) {
	csv := "Name,Previous Team\nAnn,Illinois State\n"
	r := load(t, NewBuilder(nil, WithExclude("")), csv)
	if len(r.Players) != 1 {
		t.Errorf("len(Players) = %d, want 1", len(r.Players))
	}
}

func TestBuildCurrentNeutralPlayerScoresFifty(t *testing.T) {
	csv := `Name,Previous Team,PPG,eFG%,3P%,FT%,APG,Steal %,Block %,Defensive Rating,RPG,TS%
Dee Neutral,Nowhere,12.5,47.5,32.5,72.5,3,1.75,1.75,102.5,6,52.5
`
	r := load(t, NewBuilder(nil), csv)

	if r.Generation != columns.Current {
		t.Fatalf("Generation = %q, want %q", r.Generation, columns.Current)
	}
	p := r.Players[0]
	if math.Abs(p.FitScore-50) > 1e-9 {
		t.Errorf("FitScore = %v, want 50", p.FitScore)
	}
	if math.Abs(p.PES-50) > 1e-9 {
		t.Errorf("PES = %v, want 50", p.PES)
	}
	if len(p.Warnings) != 2 {
		t.Errorf("Warnings = %v, want team and player miss", p.Warnings)
	}
}

func TestBuildPositionInference(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want string
	}{
		{"inferred from archetype", "Name,Archetype,Position,BPM\nA,Stretch 4,C,1\n", "PF"},
		{"falls back to column", "Name,Archetype,Position,BPM\nA,Shooter,SG,1\n", "SG"},
		{"unset", "Name,Archetype,BPM\nA,Shooter,1\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := load(t, NewBuilder(nil), tt.csv)
			if got := r.Players[0].Position; got != tt.want {
				t.Errorf("Position = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildNaNFitScore(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	b := NewBuilder(nil, WithLogger(zap.New(core)))

	r := load(t, b, "Name,BPM\nGlitch,n/a\n")
	p := r.Players[0]

	if !math.IsNaN(p.FitScore) {
		t.Fatalf("FitScore = %v, want NaN", p.FitScore)
	}
	if !containsWarning(p.Warnings, "boxPlusMinus is not a number") {
		t.Errorf("Warnings = %v, want invalid field note", p.Warnings)
	}
	if !containsWarning(p.Warnings, "fit score is NaN") {
		t.Errorf("Warnings = %v, want NaN note", p.Warnings)
	}

	entries := logs.FilterMessage("fit score is not a number").All()
	if len(entries) != 1 {
		t.Fatalf("NaN warnings logged = %d, want 1", len(entries))
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Errorf("level = %v, want warn", entries[0].Level)
	}
}

func TestBuildLogsLookupMisses(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	engine := scoring.NewEngine(scoring.Similarity{"Duke": 80}, nil)
	b := NewBuilder(engine, WithLogger(zap.New(core)))

	load(t, b, "Name,Previous Team,BPM\nA,Duke,1\nB,Kansas,1\n")

	entries := logs.FilterMessage("similarity lookups missed").All()
	if len(entries) != 1 {
		t.Fatalf("miss summaries logged = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["team_misses"] != int64(1) {
		t.Errorf("team_misses = %v, want 1", fields["team_misses"])
	}
	if fields["player_misses"] != int64(2) {
		t.Errorf("player_misses = %v, want 2", fields["player_misses"])
	}
	if logs.FilterMessage("roster built").Len() != 1 {
		t.Error("expected one load summary")
	}
}

func TestBuildMalformedRow(t *testing.T) {
	_, err := NewBuilder(nil).Build([]string{"Name"}, []columns.Row{{"Name": "A"}, nil})
	if !errors.Is(err, columns.ErrMalformedRow) {
		t.Errorf("Build() error = %v, want ErrMalformedRow", err)
	}
}

func TestReadCSV(t *testing.T) {
	input := "\xEF\xBB\xBF Name , Height ,PPG\nAmir,6'2\",14\n\nBen\n,,\nCal,\"6'9\"\"\",8,extra\n"

	headers, rows, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if strings.Join(headers, "|") != "Name|Height|PPG" {
		t.Errorf("headers = %q", headers)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	if rows[0]["Height"] != `6'2"` {
		t.Errorf("bare quote height = %q", rows[0]["Height"])
	}
	if _, ok := rows[1]["Height"]; ok {
		t.Error("short row should not carry a Height value")
	}
	if rows[2]["Height"] != `6'9"` {
		t.Errorf("quoted height = %q", rows[2]["Height"])
	}
}

func TestReadCSVRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"invalid utf8", "Name\n\xff\xfe\n"},
		{"unnamed header", " , \nA,B\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ReadCSV(strings.NewReader(tt.input))
			if !errors.Is(err, ErrParse) {
				t.Errorf("ReadCSV() error = %v, want ErrParse", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "players.txt")
	if err := os.WriteFile(txt, []byte(legacyCSV), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewBuilder(nil).LoadFile(txt); !errors.Is(err, ErrParse) {
		t.Errorf("LoadFile(.txt) error = %v, want ErrParse", err)
	}

	path := filepath.Join(dir, "players.CSV")
	if err := os.WriteFile(path, []byte(legacyCSV), 0644); err != nil {
		t.Fatal(err)
	}
	r, err := NewBuilder(nil).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if r.Source != path {
		t.Errorf("Source = %q, want %q", r.Source, path)
	}
}

func TestFind(t *testing.T) {
	r := load(t, NewBuilder(nil), legacyCSV)

	tests := []struct {
		identifier string
		want       string
		found      bool
	}{
		{"2", "Ben Ortiz", true},
		{"Cal Reyes", "Cal Reyes", true},
		{"amir", "Amir Cole", true},
		{"99", "", false},
		{"Zed", "", false},
		{"  ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			p, ok := r.Find(tt.identifier)
			if ok != tt.found {
				t.Fatalf("Find(%q) found = %v, want %v", tt.identifier, ok, tt.found)
			}
			if ok && p.Name != tt.want {
				t.Errorf("Find(%q) = %q, want %q", tt.identifier, p.Name, tt.want)
			}
		})
	}
}

func TestPlayerJSONNaN(t *testing.T) {
	p := Player{ID: 1, Name: "Glitch", FitScore: math.NaN(), PES: math.NaN()}
	p.Advanced.BoxPlusMinus = math.NaN()
	p.Advanced.TrueShootingPercent = 55

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got["fitScore"] != nil {
		t.Errorf("fitScore = %v, want null", got["fitScore"])
	}
	if got["name"] != "Glitch" {
		t.Errorf("name = %v, want Glitch", got["name"])
	}
	adv := got["advanced"].(map[string]any)
	if adv["boxPlusMinus"] != nil {
		t.Errorf("advanced.boxPlusMinus = %v, want null", adv["boxPlusMinus"])
	}
	if adv["trueShootingPercent"] != 55.0 {
		t.Errorf("advanced.trueShootingPercent = %v, want 55", adv["trueShootingPercent"])
	}
}

func containsWarning(warnings []string, want string) bool {
	for _, w := range warnings {
		if w == want {
			return true
		}
	}
	return false
}
