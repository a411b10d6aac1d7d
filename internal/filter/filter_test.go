package filter

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/vijay-prabhu/portalfit/internal/roster"
)

func samplePlayers() []roster.Player {
	return []roster.Player{
		{ID: 1, Name: "Amir Cole", Position: "PG", Height: `6'2"`, PreviousTeam: "Duke", Conference: "ACC", Archetype: "Scoring PG", Committed: "No", UsageRate: 24, FitScore: 81},
		{ID: 2, Name: "Ben Ortiz", Position: "G/F", Height: `6'7"`, PreviousTeam: "Kansas", Conference: "B12", Archetype: "Wing F", Committed: "Yes", UsageRate: 19, FitScore: 66},
		{ID: 3, Name: "Cal Reyes", Position: "C", Height: `7'1"`, PreviousTeam: "Gonzaga", Conference: "WCC", Archetype: "C", Committed: "No", UsageRate: 18, FitScore: 70},
		{ID: 4, Name: "Dev Park", Position: "PG", Height: `5'11"`, PreviousTeam: "Duquesne", Conference: "A10", Archetype: "Pure PG", Committed: "No", UsageRate: 36, FitScore: 58},
	}
}

func ids(players []roster.Player) []int {
	out := make([]int, len(players))
	for i, p := range players {
		out[i] = p.ID
	}
	return out
}

func TestParseHeight(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{`6'7"`, 79},
		{`7'0"`, 84},
		{`5'11"`, 71},
		{"", 72},
		{"6-7", 72},
		{`6'`, 72},
		{`about 6'4" tall`, 76},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseHeight(tt.in); got != tt.want {
				t.Errorf("ParseHeight(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatHeight(t *testing.T) {
	if got := FormatHeight(79); got != `6'7"` {
		t.Errorf("FormatHeight(79) = %q", got)
	}
	if got := FormatHeight(ParseHeight(`5'6"`)); got != `5'6"` {
		t.Errorf("round trip = %q", got)
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Spec)
		want   []int
	}{
		{"defaults drop out-of-range height and usage", func(s *Spec) {}, []int{1, 2}},
		{"position", func(s *Spec) { s.Position = "PG"; s.MaxUsage = 40 }, []int{1, 4}},
		{"conference", func(s *Spec) { s.Conference = "B12" }, []int{2}},
		{"archetype", func(s *Spec) { s.Archetype = "Wing F" }, []int{2}},
		{"committed", func(s *Spec) { s.Committed = "Yes" }, []int{2}},
		{"min fit inclusive", func(s *Spec) { s.MinFitScore = 81 }, []int{1}},
		{"height range widened", func(s *Spec) { s.MaxHeight = 85 }, []int{1, 2, 3}},
		{"search name", func(s *Spec) { s.Search = "ORTIZ"; s.MaxUsage = 40 }, []int{2}},
		{"search team", func(s *Spec) { s.Search = "du"; s.MaxUsage = 40 }, []int{1, 4}},
		{"empty categorical acts as All", func(s *Spec) { s.Position = "" }, []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := DefaultSpec()
			tt.modify(&spec)
			got := ids(Apply(samplePlayers(), spec))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply() ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyIdempotent(t *testing.T) {
	spec := DefaultSpec()
	spec.MinFitScore = 60
	once := Apply(samplePlayers(), spec)
	twice := Apply(once, spec)
	if !reflect.DeepEqual(ids(once), ids(twice)) {
		t.Errorf("Apply twice = %v, want %v", ids(twice), ids(once))
	}
}

func TestMatchNaNFitScore(t *testing.T) {
	p := samplePlayers()[0]
	p.FitScore = math.NaN()
	if Match(p, DefaultSpec()) {
		t.Error("NaN fit score should not pass the minimum")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultSpec().Validate(); err != nil {
		t.Fatalf("DefaultSpec().Validate() = %v", err)
	}

	spec := DefaultSpec()
	spec.Position = "SF"
	spec.Conference = "Big Ten"
	spec.MinHeight, spec.MaxHeight = 80, 70
	spec.MinUsage, spec.MaxUsage = 30, 10

	err := spec.Validate()
	if !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("Validate() error = %v, want ErrInvalidSpec", err)
	}
	if n := len(err.(interface{ Unwrap() []error }).Unwrap()); n != 4 {
		t.Errorf("joined errors = %d, want 4", n)
	}
}

func TestSort(t *testing.T) {
	players := samplePlayers()

	tests := []struct {
		name  string
		field SortField
		dir   Direction
		want  []int
	}{
		{"fit desc", DefaultSortField, Desc, []int{1, 3, 2, 4}},
		{"fit asc", DefaultSortField, Asc, []int{4, 2, 3, 1}},
		{"name asc", "name", Asc, []int{1, 2, 3, 4}},
		{"team desc", "previousTeam", Desc, []int{2, 3, 4, 1}},
		{"usage asc", "usageRate", Asc, []int{3, 2, 1, 4}},
		{"height is lexical", "height", Asc, []int{4, 1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Sort(players, tt.field, tt.dir))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sort(%s, %s) = %v, want %v", tt.field, tt.dir, got, tt.want)
			}
		})
	}

	if !reflect.DeepEqual(ids(players), []int{1, 2, 3, 4}) {
		t.Error("Sort mutated its input")
	}
}

func TestSortStable(t *testing.T) {
	players := samplePlayers()
	for i := range players {
		players[i].Conference = "ACC"
	}
	for _, dir := range []Direction{Asc, Desc} {
		got := ids(Sort(players, "conference", dir))
		if !reflect.DeepEqual(got, []int{1, 2, 3, 4}) {
			t.Errorf("%s: equal keys reordered: %v", dir, got)
		}
	}
}

func TestSortNaNLast(t *testing.T) {
	players := samplePlayers()
	players[0].FitScore = math.NaN()

	desc := ids(Sort(players, DefaultSortField, Desc))
	if desc[len(desc)-1] != 1 {
		t.Errorf("desc = %v, want NaN player last", desc)
	}
	asc := ids(Sort(players, DefaultSortField, Asc))
	if asc[0] != 1 {
		t.Errorf("asc = %v, want NaN player first", asc)
	}
}

func TestParseSortField(t *testing.T) {
	tests := []struct {
		in      string
		want    SortField
		wantErr bool
	}{
		{"", DefaultSortField, false},
		{"FitScore", "fitScore", false},
		{"ppg", "ppg", false},
		{"boxPlusMinus", "boxPlusMinus", false},
		{"salary", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSortField(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSortField(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSortField(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSortFieldsAreResolvable(t *testing.T) {
	var p roster.Player
	for _, f := range SortFields {
		_, isNum := p.Number(string(f))
		_, isText := p.Text(string(f))
		if isNum == isText {
			t.Errorf("field %q: number=%v text=%v, want exactly one", f, isNum, isText)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{"": Desc, "DESC": Desc, "asc": Asc} {
		got, err := ParseDirection(in)
		if err != nil || got != want {
			t.Errorf("ParseDirection(%q) = %q, %v, want %q", in, got, err, want)
		}
	}
	if _, err := ParseDirection("up"); !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("ParseDirection(up) error = %v", err)
	}
}
