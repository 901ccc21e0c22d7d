// Package excel imports vocabulary lists from Excel or CSV files.
package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/grevocab/internal/database"
	"github.com/example/grevocab/pkg/models"
	"github.com/xuri/excelize/v2"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath         string // Path to the Excel or CSV file
	ListColumn       string // Column with the word list name
	WordColumn       string // Column with the word
	DefinitionColumn string // Column with the definition
	SheetName        string // Name of the sheet to import
	StartRow         int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		ListColumn:       "A",
		WordColumn:       "B",
		DefinitionColumn: "C",
		SheetName:        "Sheet1",
		StartRow:         2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	ListsCreated   int
	Created        int
	Skipped        int
	Errors         []string
}

// Importer loads word lists into the word store
type Importer struct {
	words *database.WordRepository
}

// NewImporter creates an importer backed by the given word repository
func NewImporter(words *database.WordRepository) *Importer {
	return &Importer{words: words}
}

// ImportWords imports words from an Excel or CSV file. Rows whose word
// already exists in the target list are skipped, so re-running an import
// is harmless.
func (imp *Importer) ImportWords(ctx context.Context, config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return imp.importFromCSV(ctx, config)
	}
	return imp.importFromExcel(ctx, config)
}

func (imp *Importer) importFromExcel(ctx context.Context, config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	listIDs := make(map[string]int64)

	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++

		if err := imp.processRow(ctx, excelRow(row, config), listIDs, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}
	return result, nil
}

func (imp *Importer) importFromCSV(ctx context.Context, config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	result := &ImportResult{Errors: make([]string, 0)}
	listIDs := make(map[string]int64)

	for rowNum := 1; ; rowNum++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		if rowNum < config.StartRow {
			continue
		}
		result.TotalProcessed++

		if err := imp.processRow(ctx, csvRow(row, config), listIDs, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}
	return result, nil
}

// rowData is a single parsed import row
type rowData struct {
	list       string
	word       string
	definition string
}

func (imp *Importer) processRow(ctx context.Context, data rowData, listIDs map[string]int64, result *ImportResult) error {
	if data.word == "" {
		result.Skipped++
		return nil
	}
	if data.list == "" {
		data.list = "Imported"
	}

	listID, ok := listIDs[strings.ToLower(data.list)]
	if !ok {
		id, created, err := imp.words.GetOrCreateList(ctx, data.list, "")
		if err != nil {
			return fmt.Errorf("failed to resolve list %q: %v", data.list, err)
		}
		if created {
			result.ListsCreated++
		}
		listID = id
		listIDs[strings.ToLower(data.list)] = listID
	}

	created, err := imp.words.CreateWord(ctx, &models.Word{
		ListID:     listID,
		Word:       data.word,
		Definition: data.definition,
	})
	if err != nil {
		return fmt.Errorf("failed to create word %q: %v", data.word, err)
	}
	if created {
		result.Created++
	} else {
		result.Skipped++
	}
	return nil
}

// excelRow picks cells out of an Excel row by the configured column letters
func excelRow(row []string, config ImportConfig) rowData {
	return rowData{
		list:       cellByColumn(row, config.ListColumn),
		word:       cellByColumn(row, config.WordColumn),
		definition: cellByColumn(row, config.DefinitionColumn),
	}
}

// csvRow picks cells out of a CSV record, mapping column letters to indexes
func csvRow(row []string, config ImportConfig) rowData {
	return excelRow(row, config)
}

func cellByColumn(row []string, column string) string {
	idx := columnIndex(column)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// columnIndex converts a spreadsheet column letter ("A", "B", ...) to a
// zero-based index
func columnIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	if column == "" {
		return -1
	}
	idx := 0
	for _, r := range column {
		if r < 'A' || r > 'Z' {
			return -1
		}
		idx = idx*26 + int(r-'A') + 1
	}
	return idx - 1
}
