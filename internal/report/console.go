// Package report renders per-question agreement results as a console
// table, a delimited results file, and optional charts.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/banshee-data/agreement.report/internal/kappa"
)

// bandDescriptions gives the threshold wording used in the summary block.
var bandDescriptions = map[kappa.Level]string{
	kappa.AlmostPerfect: "almost perfect agreement (κ ≥ 0.81)",
	kappa.Substantial:   "substantial agreement (0.61 ≤ κ < 0.81)",
	kappa.Moderate:      "moderate agreement (0.41 ≤ κ < 0.61)",
	kappa.Fair:          "fair agreement (0.21 ≤ κ < 0.41)",
	kappa.Slight:        "slight agreement (0.01 ≤ κ < 0.21)",
	kappa.Poor:          "poor agreement (κ < 0.01)",
	kappa.NoData:        "no data (κ undefined)",
}

// WriteConsole prints the per-question result table followed by the
// aggregate summary block.
func WriteConsole(w io.Writer, results []kappa.Result, summary kappa.Summary) error {
	fmt.Fprintln(w, "Agreement Analysis Results:")
	fmt.Fprintln(w, strings.Repeat("=", 80))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Question\tFleiss_Kappa\tN_Responses\tAnswer_A_Count\tAnswer_B_Count\tAnswer_C_Count\tAgreement_Level")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			r.Question, formatKappa(r.Kappa, 3), r.NResponses, r.CountA, r.CountB, r.CountC, r.Level)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush result table: %v", err)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary Statistics:")
	fmt.Fprintf(w, "Total questions analyzed: %d\n", summary.TotalQuestions)
	fmt.Fprintf(w, "Average Fleiss' Kappa: %s\n", formatKappa(summary.MeanKappa, 3))
	for _, band := range kappa.Bands() {
		fmt.Fprintf(w, "Questions with %s: %d\n", bandDescriptions[band], summary.BandCounts[band])
	}

	return nil
}

// formatKappa renders a kappa value to the given precision, or "NaN" for
// an undefined value.
func formatKappa(k float64, precision int) string {
	if math.IsNaN(k) {
		return "NaN"
	}
	return fmt.Sprintf("%.*f", precision, k)
}
