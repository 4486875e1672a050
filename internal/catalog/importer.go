package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/thaivocab/pkg/models"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath          string // Path to the Excel or CSV file
	IDColumn          string // Column with the item id
	TextColumn        string // Column with the Thai text
	TranslationColumn string // Column with the translation
	DifficultyColumn  string // Column with the difficulty
	SheetName         string // Name of the sheet to import
	StartRow          int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		IDColumn:          "A",
		TextColumn:        "B",
		TranslationColumn: "C",
		DifficultyColumn:  "D",
		SheetName:         "Sheet1",
		StartRow:          2, // skip header
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Imported       int
	Skipped        int
	Errors         []string
}

// Import reads a deck from an Excel or CSV file. Bad rows are skipped and
// reported in the result; only unreadable files fail the import.
func Import(config ImportConfig) (*Catalog, *ImportResult, error) {
	var (
		rows [][]string
		err  error
	)
	if strings.ToLower(filepath.Ext(config.FilePath)) == ".csv" {
		rows, err = readCSV(config.FilePath)
	} else {
		rows, err = readExcel(config.FilePath, config.SheetName)
	}
	if err != nil {
		return nil, nil, err
	}

	c, _ := New(nil)
	result := &ImportResult{}
	for i, row := range rows {
		rowNum := i + 1
		if rowNum < config.StartRow || isBlank(row) {
			continue
		}
		result.TotalProcessed++

		item, err := parseRow(row, config)
		if err == nil {
			err = c.add(item)
		}
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		result.Imported++
	}
	return c, result, nil
}

func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseRow extracts an item from a row. A missing id falls back to the text.
func parseRow(row []string, config ImportConfig) (models.VocabularyItem, error) {
	item := models.VocabularyItem{
		ID:          cell(row, config.IDColumn),
		Text:        cell(row, config.TextColumn),
		Translation: cell(row, config.TranslationColumn),
	}
	if item.Text == "" {
		return item, fmt.Errorf("text cannot be empty")
	}
	if item.Translation == "" {
		return item, fmt.Errorf("translation cannot be empty")
	}
	if item.ID == "" {
		item.ID = item.Text
	}

	raw := cell(row, config.DifficultyColumn)
	if raw == "" {
		item.Difficulty = models.Beginner
		return item, nil
	}
	d, err := models.ParseDifficulty(raw)
	if err != nil {
		return item, err
	}
	item.Difficulty = d
	return item, nil
}

func cell(row []string, column string) string {
	if column == "" {
		return ""
	}
	if idx := columnToIndex(column); idx >= 0 && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Helper function to convert Excel column letter to index
func columnToIndex(column string) int {
	column = strings.ToUpper(column)
	index := 0
	for i := 0; i < len(column); i++ {
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}
