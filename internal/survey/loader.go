package survey

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Column headers the input table must carry. Extra columns are ignored.
const (
	questionColumn = "Question"
	categoryColumn = "Categorical Answers"
	totalColumn    = "Total"
)

// Load reads the response table from the semicolon-delimited file at
// csvPath, falling back to the spreadsheet at xlsxPath when the delimited
// file does not exist. It returns the rows and the path actually read,
// and fails with a diagnostic naming both sources when neither is
// readable.
func Load(csvPath, xlsxPath string) ([]Response, string, error) {
	if _, err := os.Stat(csvPath); err == nil {
		rows, err := LoadCSV(csvPath)
		if err != nil {
			return nil, "", err
		}
		log.Printf("Loaded %d response rows from %s", len(rows), csvPath)
		return rows, csvPath, nil
	}

	log.Printf("CSV file %s not found, trying spreadsheet %s", csvPath, xlsxPath)
	if _, err := os.Stat(xlsxPath); err == nil {
		rows, err := LoadXLSX(xlsxPath)
		if err != nil {
			return nil, "", err
		}
		log.Printf("Loaded %d response rows from %s", len(rows), xlsxPath)
		return rows, xlsxPath, nil
	}

	return nil, "", fmt.Errorf("no readable input: neither %s nor %s exists", csvPath, xlsxPath)
}

// LoadCSV reads the response table from a semicolon-separated file.
func LoadCSV(path string) ([]Response, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file %s: %v", path, err)
	}

	return parseRows(records)
}

// LoadXLSX reads the same logical table from the first sheet of a
// spreadsheet file.
func LoadXLSX(path string) ([]Response, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %v", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet %s has no sheets", path)
	}

	records, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %v", sheets[0], err)
	}

	return parseRows(records)
}

// parseRows converts raw table records into responses (shared by the CSV
// and spreadsheet loaders). The first record must be a header naming the
// Question, Categorical Answers and Total columns; column order is not
// assumed.
func parseRows(records [][]string) ([]Response, error) {
	if len(records) < 2 {
		return nil, fmt.Errorf("insufficient data: expected a header row and at least one data row")
	}

	qIdx, cIdx, tIdx := -1, -1, -1
	for i, name := range records[0] {
		switch strings.TrimSpace(name) {
		case questionColumn:
			qIdx = i
		case categoryColumn:
			cIdx = i
		case totalColumn:
			tIdx = i
		}
	}
	if qIdx < 0 || cIdx < 0 || tIdx < 0 {
		return nil, fmt.Errorf("invalid header: expected columns %q, %q and %q, got %v",
			questionColumn, categoryColumn, totalColumn, records[0])
	}

	rows := make([]Response, 0, len(records)-1)
	for i, record := range records[1:] {
		line := i + 2
		if len(record) <= qIdx || len(record) <= cIdx || len(record) <= tIdx {
			return nil, fmt.Errorf("invalid record at line %d: expected at least %d fields, got %d",
				line, max(qIdx, cIdx, tIdx)+1, len(record))
		}

		total, err := strconv.Atoi(strings.TrimSpace(record[tIdx]))
		if err != nil {
			return nil, fmt.Errorf("invalid total at line %d: %v", line, err)
		}
		if total < 0 {
			return nil, fmt.Errorf("negative total %d at line %d", total, line)
		}

		rows = append(rows, Response{
			Question: strings.TrimSpace(record[qIdx]),
			Category: strings.TrimSpace(record[cIdx]),
			Total:    total,
		})
	}

	return rows, nil
}
