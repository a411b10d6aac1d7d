package filter

import (
	"math"
	"reflect"
	"testing"

	"github.com/vijay-prabhu/portalfit/internal/roster"
)

func TestSummarize(t *testing.T) {
	players := samplePlayers()
	got := Summarize(players, 10, DefaultHighFit)

	want := Stats{
		Visible:            4,
		Total:              10,
		AverageFitScore:    68.75,
		HighFitThreshold:   75,
		HighFitCount:       1,
		TopPosition:        "PG",
		TopPositionCount:   2,
		TopConference:      "ACC",
		TopConferenceCount: 1,
		Quality:            "average",
		MatchQuality:       "Average",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Summarize() = %+v, want %+v", got, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil, 5, DefaultHighFit)
	if got.AverageFitScore != 0 {
		t.Errorf("AverageFitScore = %v, want 0", got.AverageFitScore)
	}
	if got.TopPosition != "N/A" || got.TopConference != "N/A" {
		t.Errorf("modes = %q/%q, want N/A", got.TopPosition, got.TopConference)
	}
	if got.Quality != "low-quality" {
		t.Errorf("Quality = %q, want low-quality", got.Quality)
	}
}

func TestSummarizeSkipsNaN(t *testing.T) {
	players := []roster.Player{
		{FitScore: 80},
		{FitScore: math.NaN()},
		{FitScore: 60},
	}
	got := Summarize(players, 3, DefaultHighFit)
	if got.AverageFitScore != 70 {
		t.Errorf("AverageFitScore = %v, want 70", got.AverageFitScore)
	}
	if got.Quality != "high-quality" {
		t.Errorf("Quality = %q, want high-quality", got.Quality)
	}
	if got.HighFitCount != 1 {
		t.Errorf("HighFitCount = %d, want 1", got.HighFitCount)
	}
}

func TestSummarizeModeTieFirstWins(t *testing.T) {
	players := []roster.Player{
		{Position: "C", Conference: "SEC"},
		{Position: "PG", Conference: "ACC"},
		{Position: "PG", Conference: "ACC"},
		{Position: "C", Conference: "SEC"},
	}
	got := Summarize(players, 4, DefaultHighFit)
	if got.TopPosition != "C" {
		t.Errorf("TopPosition = %q, want C", got.TopPosition)
	}
	if got.TopConference != "SEC" {
		t.Errorf("TopConference = %q, want SEC", got.TopConference)
	}
}

func TestInsights(t *testing.T) {
	s := Stats{
		Visible:          12,
		AverageFitScore:  71.26,
		HighFitThreshold: 75,
		HighFitCount:     3,
		TopPosition:      "PG",
		TopConference:    "B10",
		Quality:          "high-quality",
	}
	want := []string{
		"3 players have fit scores above 75, indicating strong alignment with team needs.",
		"Most candidates are PGs, suggesting depth in this position within the portal.",
		"Big 10 leads in candidate count, showing strong talent pipeline from this conference.",
		"Average fit score of 71.3 indicates high-quality candidate pool.",
	}
	if got := Insights(s); !reflect.DeepEqual(got, want) {
		t.Errorf("Insights() =\n%q\nwant\n%q", got, want)
	}

	s.Visible = 0
	if got := Insights(s); len(got) != 3 {
		t.Errorf("empty pool insights = %d, want 3", len(got))
	}
}

func TestConferenceName(t *testing.T) {
	if got := ConferenceName("SB"); got != "Sun Belt" {
		t.Errorf("ConferenceName(SB) = %q", got)
	}
	if got := ConferenceName("SEC"); got != "SEC" {
		t.Errorf("ConferenceName(SEC) = %q", got)
	}
}

func TestGradeOf(t *testing.T) {
	tests := []struct {
		field string
		value float64
		want  Grade
	}{
		{"fitScore", 75, GradeHigh},
		{"fitScore", 70, GradeMid},
		{"fitScore", 64.9, GradeLow},
		{"defensiveRating", 94, GradeHigh},
		{"defensiveRating", 100, GradeMid},
		{"defensiveRating", 106, GradeLow},
		{"threePtPercent", 31, GradeMid},
		{"reboundingPercent", 15, GradeHigh},
		{"ppg", 30, GradeNone},
		{"fitScore", math.NaN(), GradeNone},
	}

	for _, tt := range tests {
		if got := GradeOf(tt.field, tt.value); got != tt.want {
			t.Errorf("GradeOf(%s, %v) = %v, want %v", tt.field, tt.value, got, tt.want)
		}
	}
}
