package kappa

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/agreement.report/internal/survey"
)

func TestAnalyze(t *testing.T) {
	summaries := []survey.QuestionSummary{
		{Question: "Q1", CountA: 5, CountB: 5, CountC: 0, TotalResponses: 10},
		{Question: "Q2", CountA: 10, CountB: 0, CountC: 0, TotalResponses: 10},
		{Question: "Q3", CountA: 0, CountB: 0, CountC: 0, TotalResponses: 0},
	}

	results := Analyze(summaries)
	require.Len(t, results, 3)

	assert.Equal(t, "Q1", results[0].Question)
	assert.InDelta(t, -7.0/9.0, results[0].Kappa, 1e-9)
	assert.Equal(t, Poor, results[0].Level)
	assert.Equal(t, 10, results[0].NResponses)
	assert.Equal(t, 5, results[0].CountA)

	// Unanimous agreement is undefined under this formula (Pe == 1).
	assert.True(t, math.IsNaN(results[1].Kappa))
	assert.Equal(t, NoData, results[1].Level)

	assert.True(t, math.IsNaN(results[2].Kappa))
	assert.Equal(t, NoData, results[2].Level)
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Question: "Q1", Kappa: 0.9, Level: AlmostPerfect},
		{Question: "Q2", Kappa: 0.5, Level: Moderate},
		{Question: "Q3", Kappa: math.NaN(), Level: NoData},
	}

	s := Summarize(results)
	assert.Equal(t, 3, s.TotalQuestions)
	// NaN excluded from the mean.
	assert.InDelta(t, 0.7, s.MeanKappa, 1e-12)
	assert.Equal(t, 1, s.BandCounts[AlmostPerfect])
	assert.Equal(t, 1, s.BandCounts[Moderate])
	assert.Equal(t, 1, s.BandCounts[NoData])
	assert.Equal(t, 0, s.BandCounts[Poor])
}

func TestSummarizeAllUndefined(t *testing.T) {
	results := []Result{
		{Question: "Q1", Kappa: math.NaN(), Level: NoData},
	}
	s := Summarize(results)
	assert.True(t, math.IsNaN(s.MeanKappa))
	assert.Equal(t, 1, s.BandCounts[NoData])
}

func TestBandsOrder(t *testing.T) {
	bands := Bands()
	require.Len(t, bands, 7)
	assert.Equal(t, AlmostPerfect, bands[0])
	assert.Equal(t, NoData, bands[6])
}
