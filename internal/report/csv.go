package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/banshee-data/agreement.report/internal/kappa"
)

// resultsHeader mirrors the console table's per-question fields. The
// output carries no row-index column.
var resultsHeader = []string{
	"Question",
	"Fleiss_Kappa",
	"N_Responses",
	"Answer_A_Count",
	"Answer_B_Count",
	"Answer_C_Count",
	"Agreement_Level",
}

// WriteCSV persists one row per question to w as comma-separated text.
func WriteCSV(w io.Writer, results []kappa.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(resultsHeader); err != nil {
		return fmt.Errorf("failed to write results header: %v", err)
	}

	for _, r := range results {
		row := []string{
			r.Question,
			formatKappa(r.Kappa, 6),
			strconv.Itoa(r.NResponses),
			strconv.Itoa(r.CountA),
			strconv.Itoa(r.CountB),
			strconv.Itoa(r.CountC),
			r.Level.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row for question %q: %v", r.Question, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
