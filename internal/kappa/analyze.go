package kappa

import (
	"math"

	"github.com/banshee-data/agreement.report/internal/survey"
	"gonum.org/v1/gonum/stat"
)

// Result is the terminal per-question record: the kappa value (NaN when
// undefined), the response counts it was computed from, and the
// agreement band it falls into.
type Result struct {
	Question   string
	Kappa      float64
	NResponses int
	CountA     int
	CountB     int
	CountC     int
	Level      Level
}

// Analyze computes one Result per question summary, in input order.
// Production results come from the closed-form reduction; the explicit
// matrix path exists as a reference oracle so large questions never
// allocate a per-respondent matrix here.
func Analyze(summaries []survey.QuestionSummary) []Result {
	results := make([]Result, 0, len(summaries))
	for _, s := range summaries {
		k := ComputeCounts(Counts{A: s.CountA, B: s.CountB, C: s.CountC})
		results = append(results, Result{
			Question:   s.Question,
			Kappa:      k,
			NResponses: s.TotalResponses,
			CountA:     s.CountA,
			CountB:     s.CountB,
			CountC:     s.CountC,
			Level:      Interpret(k),
		})
	}
	return results
}

// Summary aggregates a result set: how many questions landed in each
// agreement band and the mean kappa across questions with a defined
// value. MeanKappa is NaN when no question has a defined kappa.
type Summary struct {
	TotalQuestions int
	MeanKappa      float64
	BandCounts     map[Level]int
}

// Summarize builds the aggregate summary for a result set. Undefined
// kappa values are excluded from the mean but counted under NoData.
func Summarize(results []Result) Summary {
	bands := make(map[Level]int)
	var defined []float64
	for _, r := range results {
		bands[r.Level]++
		if !math.IsNaN(r.Kappa) {
			defined = append(defined, r.Kappa)
		}
	}

	mean := math.NaN()
	if len(defined) > 0 {
		mean = stat.Mean(defined, nil)
	}

	return Summary{
		TotalQuestions: len(results),
		MeanKappa:      mean,
		BandCounts:     bands,
	}
}

// Bands lists the agreement levels in reporting order, highest first,
// with NoData last.
func Bands() []Level {
	return []Level{AlmostPerfect, Substantial, Moderate, Fair, Slight, Poor, NoData}
}
