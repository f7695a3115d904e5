package survey

import "log"

// Aggregate regroups response rows into one summary per distinct
// question, in the order questions first appear. Categories may arrive
// in any order and need not all be present: a missing category counts as
// zero. When a question repeats a category, the first row wins. Rows
// with an unrecognised category label are skipped with a warning.
func Aggregate(rows []Response) []QuestionSummary {
	type counts struct {
		a, b, c             int
		seenA, seenB, seenC bool
	}

	byQuestion := make(map[string]*counts)
	var order []string

	for _, row := range rows {
		qc, ok := byQuestion[row.Question]
		if !ok {
			qc = &counts{}
			byQuestion[row.Question] = qc
			order = append(order, row.Question)
		}

		switch row.Category {
		case "A":
			if !qc.seenA {
				qc.a, qc.seenA = row.Total, true
			}
		case "B":
			if !qc.seenB {
				qc.b, qc.seenB = row.Total, true
			}
		case "C":
			if !qc.seenC {
				qc.c, qc.seenC = row.Total, true
			}
		default:
			log.Printf("WARNING: skipping unknown category %q for question %q", row.Category, row.Question)
		}
	}

	summaries := make([]QuestionSummary, 0, len(order))
	for _, q := range order {
		qc := byQuestion[q]
		summaries = append(summaries, QuestionSummary{
			Question:       q,
			CountA:         qc.a,
			CountB:         qc.b,
			CountC:         qc.c,
			TotalResponses: qc.a + qc.b + qc.c,
		})
	}

	return summaries
}
