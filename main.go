// Command agreement-report computes Fleiss' Kappa inter-rater agreement
// for aggregated three-category survey responses. It loads a response
// table, regroups it into per-question category counts, computes each
// question's kappa, classifies it against the Landis & Koch bands, and
// writes a console report plus a results CSV. Charts and sqlite
// persistence are optional.
//
// Run with no arguments it analyses Students-ValidationAnalysis-EN.csv
// (falling back to the .xlsx of the same name) and writes
// fleiss_kappa_agreement_results.csv.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/banshee-data/agreement.report/internal/db"
	"github.com/banshee-data/agreement.report/internal/kappa"
	"github.com/banshee-data/agreement.report/internal/report"
	"github.com/banshee-data/agreement.report/internal/survey"
)

// Config holds configuration for an analysis run.
type Config struct {
	InputCSV  string
	InputXLSX string
	OutputCSV string
	ChartHTML string
	ChartPNG  string
	DBPath    string
}

func parseFlags() Config {
	var cfg Config
	flag.StringVar(&cfg.InputCSV, "input", "Students-ValidationAnalysis-EN.csv", "Semicolon-delimited response table")
	flag.StringVar(&cfg.InputXLSX, "xlsx", "Students-ValidationAnalysis-EN.xlsx", "Spreadsheet fallback when the CSV is absent")
	flag.StringVar(&cfg.OutputCSV, "output", "fleiss_kappa_agreement_results.csv", "Results CSV path")
	flag.StringVar(&cfg.ChartHTML, "chart", "", "Optional: write a kappa bar chart as HTML to this path")
	flag.StringVar(&cfg.ChartPNG, "plot", "", "Optional: write a kappa bar chart as PNG to this path")
	flag.StringVar(&cfg.DBPath, "db", "", "Optional: record the run in this sqlite database")
	flag.Parse()
	return cfg
}

func main() {
	cfg := parseFlags()

	log.Println("=== Fleiss' Kappa Agreement Analysis ===")
	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}
	log.Println("=== Analysis Complete ===")
}

// run executes the batch pipeline: load, aggregate, compute, report,
// persist. A load failure returns before any output file is touched.
func run(cfg Config, out io.Writer) error {
	rows, source, err := survey.Load(cfg.InputCSV, cfg.InputXLSX)
	if err != nil {
		return err
	}

	summaries := survey.Aggregate(rows)
	log.Printf("Prepared %d questions for Fleiss' Kappa calculation", len(summaries))

	results := kappa.Analyze(summaries)
	summary := kappa.Summarize(results)

	if err := report.WriteConsole(out, results, summary); err != nil {
		return err
	}

	if err := writeResultsCSV(cfg.OutputCSV, results); err != nil {
		return err
	}
	log.Printf("Results saved to %s", cfg.OutputCSV)

	if cfg.ChartHTML != "" {
		if err := writeChartHTML(cfg.ChartHTML, results); err != nil {
			return err
		}
		log.Printf("Chart saved to %s", cfg.ChartHTML)
	}

	if cfg.ChartPNG != "" {
		if err := report.SaveChartPNG(cfg.ChartPNG, results); err != nil {
			return err
		}
		log.Printf("Plot saved to %s", cfg.ChartPNG)
	}

	if cfg.DBPath != "" {
		store, err := db.NewDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open results database: %v", err)
		}
		defer store.Close()

		runID, err := store.RecordRun(source, results, summary)
		if err != nil {
			return err
		}
		log.Printf("Run %s recorded in %s", runID, cfg.DBPath)
	}

	return nil
}

func writeResultsCSV(path string, results []kappa.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create results file: %v", err)
	}

	if err := report.WriteCSV(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeChartHTML(path string, results []kappa.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %v", err)
	}

	if err := report.WriteChartHTML(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
