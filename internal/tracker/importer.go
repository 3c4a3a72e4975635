package tracker

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ImportConfig maps spreadsheet columns to problem fields. Columns are
// letters as shown in a spreadsheet ("A", "B", ...). An empty optional
// column is not read.
type ImportConfig struct {
	IDColumn         string
	TitleColumn      string
	TopicColumn      string
	DifficultyColumn string
	SolvedColumn     string
	TimeColumn       string
	AttemptsColumn   string
	ConfidenceColumn string
	SolvedAtColumn   string
	SheetName        string // first sheet when empty
	StartRow         int    // 1-based
}

// DefaultImportConfig reads A..I with a header row.
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		IDColumn:         "A",
		TitleColumn:      "B",
		TopicColumn:      "C",
		DifficultyColumn: "D",
		SolvedColumn:     "E",
		TimeColumn:       "F",
		AttemptsColumn:   "G",
		ConfidenceColumn: "H",
		SolvedAtColumn:   "I",
		StartRow:         2,
	}
}

// ImportResult holds the parsed problems and per-row errors.
type ImportResult struct {
	Problems []Problem
	Skipped  int
	Errors   []string
}

// Import reads problems from an .xlsx or .csv file. Rows that fail
// validation are reported in Errors and skipped.
func Import(path string, cfg ImportConfig) (*ImportResult, error) {
	if cfg.StartRow < 1 {
		cfg.StartRow = 1
	}

	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx", ".xlsm":
		rows, err = readExcel(path, cfg.SheetName)
	default:
		return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	for i, row := range rows {
		rowNum := i + 1
		if rowNum < cfg.StartRow || isBlank(row) {
			continue
		}
		p, err := parseRow(row, cfg)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		result.Problems = append(result.Problems, p)
	}
	return result, nil
}

func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(row []string, cfg ImportConfig) (Problem, error) {
	cell := func(col string) string {
		if col == "" {
			return ""
		}
		idx := columnToIndex(col)
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	p := Problem{
		ID:    cell(cfg.IDColumn),
		Title: cell(cfg.TitleColumn),
		Topic: cell(cfg.TopicColumn),
	}
	if p.ID == "" {
		p.ID = importedID(p.Title, p.Topic)
	}

	d, err := ParseDifficulty(cell(cfg.DifficultyColumn))
	if err != nil {
		return Problem{}, err
	}
	p.Difficulty = d

	if v := cell(cfg.SolvedColumn); v != "" {
		solved, err := parseBool(v)
		if err != nil {
			return Problem{}, fmt.Errorf("solved: %w", err)
		}
		p.Solved = solved
	}

	for _, f := range []struct {
		name string
		col  string
		dst  **int
	}{
		{"timeTaken", cfg.TimeColumn, &p.TimeTaken},
		{"attemptCount", cfg.AttemptsColumn, &p.AttemptCount},
		{"confidence", cfg.ConfidenceColumn, &p.Confidence},
	} {
		v := cell(f.col)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Problem{}, fmt.Errorf("%s: %q is not a number", f.name, v)
		}
		*f.dst = intPtr(n)
	}

	if v := cell(cfg.SolvedAtColumn); v != "" {
		p.SolvedAt = stringPtr(v)
	}

	if err := p.Validate(); err != nil {
		return Problem{}, err
	}
	return p, nil
}

// importedID derives an id for a row without one, so importing the same
// sheet twice updates rows instead of duplicating them.
func importedID(title, topic string) string {
	name := strings.ToLower(title) + "\x00" + strings.ToLower(topic)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "y", "x":
		return true, nil
	case "no", "n", "-":
		return false, nil
	}
	return strconv.ParseBool(s)
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// columnToIndex converts a column letter to a zero-based index.
func columnToIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	index := 0
	for i := 0; i < len(column); i++ {
		c := column[i]
		if c < 'A' || c > 'Z' {
			return -1
		}
		index = index*26 + int(c-'A'+1)
	}
	return index - 1
}
