// Package survey loads aggregated categorical survey responses from
// delimited text or spreadsheet sources and regroups them into
// per-question category counts.
package survey

// Response is one source row: the total number of respondents who chose
// the given categorical answer for the given question. Rows are read-only
// once loaded.
type Response struct {
	Question string
	Category string
	Total    int
}

// QuestionSummary holds the per-category response counts for one
// question. Summaries are immutable after Aggregate builds them.
type QuestionSummary struct {
	Question       string
	CountA         int
	CountB         int
	CountC         int
	TotalResponses int
}
