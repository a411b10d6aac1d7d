package position

import "testing"

func TestInfer(t *testing.T) {
	tests := []struct {
		archetype string
		want      string
		wantOK    bool
	}{
		{"Scoring PG", "PG", true},
		{"Pure PG", "PG", true},
		{"Combo G", "G", true},
		{"Wing G", "G/F", true},
		{"Wing F", "G/F", true},
		{"PF/C", "F/C", true},
		{"Stretch 4", "PF", true},
		{"C", "C", true},
		{"stretch c", "PF", true},
		{"Balanced Player", "C", true}, // substring heuristic: "balanced" contains "c"
		{"Shooter", "", false},
		{"Big Man", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.archetype, func(t *testing.T) {
			got, ok := Infer(tt.archetype)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Infer(%q) = (%q, %v), want (%q, %v)", tt.archetype, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
