package filter

import (
	"fmt"
	"math"

	"github.com/vijay-prabhu/portalfit/internal/numeric"
	"github.com/vijay-prabhu/portalfit/internal/roster"
)

// DefaultHighFit is the fit score at which a candidate counts as high-fit.
const DefaultHighFit = 75.0

// Quality thresholds on the mean fit score.
const (
	QualityHighMin    = 70.0
	QualityAverageMin = 55.0
)

// Stats summarizes the visible candidates.
type Stats struct {
	Visible            int     `json:"visible"`
	Total              int     `json:"total"`
	AverageFitScore    float64 `json:"average_fit_score"`
	HighFitThreshold   float64 `json:"high_fit_threshold"`
	HighFitCount       int     `json:"high_fit_count"`
	TopPosition        string  `json:"top_position"`
	TopPositionCount   int     `json:"top_position_count"`
	TopConference      string  `json:"top_conference"`
	TopConferenceCount int     `json:"top_conference_count"`
	Quality            string  `json:"quality"`
	MatchQuality       string  `json:"match_quality"`
}

// Summarize computes Stats over visible. total is the size of the full
// roster. Only finite fit scores enter the mean.
func Summarize(visible []roster.Player, total int, highFit float64) Stats {
	s := Stats{
		Visible:          len(visible),
		Total:            total,
		HighFitThreshold: highFit,
	}

	scores := make([]float64, 0, len(visible))
	positions := newTally()
	conferences := newTally()
	for _, p := range visible {
		if numeric.Finite(p.FitScore) {
			scores = append(scores, p.FitScore)
		}
		if p.FitScore >= highFit {
			s.HighFitCount++
		}
		positions.add(p.Position)
		conferences.add(p.Conference)
	}

	s.AverageFitScore = numeric.Mean(scores...)
	s.TopPosition, s.TopPositionCount = positions.mode()
	s.TopConference, s.TopConferenceCount = conferences.mode()
	s.Quality = qualityLabel(s.AverageFitScore)
	s.MatchQuality = matchQualityLabel(s.AverageFitScore)
	return s
}

func qualityLabel(avg float64) string {
	switch {
	case avg >= QualityHighMin:
		return "high-quality"
	case avg >= QualityAverageMin:
		return "average"
	}
	return "low-quality"
}

func matchQualityLabel(avg float64) string {
	switch {
	case avg >= QualityHighMin:
		return "Good"
	case avg >= QualityAverageMin:
		return "Average"
	}
	return "Subpar"
}

// tally counts values while remembering first-seen order, so ties in mode
// go to the earliest value.
type tally struct {
	order  []string
	counts map[string]int
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(v string) {
	if _, ok := t.counts[v]; !ok {
		t.order = append(t.order, v)
	}
	t.counts[v]++
}

func (t *tally) mode() (string, int) {
	best, n := "N/A", 0
	for _, v := range t.order {
		if t.counts[v] > n {
			best, n = v, t.counts[v]
		}
	}
	return best, n
}

// Insights returns short recruiting observations about the visible pool.
func Insights(s Stats) []string {
	insights := []string{
		fmt.Sprintf("%d players have fit scores above %s, indicating strong alignment with team needs.",
			s.HighFitCount, trimFloat(s.HighFitThreshold)),
		fmt.Sprintf("Most candidates are %ss, suggesting depth in this position within the portal.",
			s.TopPosition),
		fmt.Sprintf("%s leads in candidate count, showing strong talent pipeline from this conference.",
			ConferenceName(s.TopConference)),
	}
	if s.Visible > 0 {
		insights = append(insights, fmt.Sprintf("Average fit score of %.1f indicates %s candidate pool.",
			s.AverageFitScore, s.Quality))
	}
	return insights
}

func trimFloat(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
