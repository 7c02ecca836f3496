// Package export regenerates the spreadsheet copy of the assignment
// history. The workbook is rebuilt in full after every mutation; an
// empty history still produces a header-only sheet.
package export

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jdramirez/giftmatch/internal/models"
)

const sheetName = "Sheet1"

// timestampLayout is the cell format for assignment timestamps
const timestampLayout = "2006-01-02 15:04:05"

// header is the fixed column order of the export
var header = []string{"Timestamp", "Name", "Partner"}

// Config holds configuration for the Excel exporter
type Config struct {
	// Path of the workbook to (re)generate
	Path string
}

// Exporter writes the assignment history as an xlsx workbook
type Exporter struct {
	path string
}

// New creates a new Excel exporter
func New(cfg *Config) (*Exporter, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("export path cannot be empty")
	}

	return &Exporter{
		path: cfg.Path,
	}, nil
}

// Path returns the workbook location
func (e *Exporter) Path() string {
	return e.path
}

// Rows derives the tabular form of the history: the header row followed
// by one row per assignment, in history order.
func Rows(assignments []*models.Assignment) [][]string {
	rows := make([][]string, 0, len(assignments)+1)
	rows = append(rows, header)
	for _, a := range assignments {
		rows = append(rows, []string{
			a.Timestamp.Format(timestampLayout),
			a.Name,
			a.Partner.Display(),
		})
	}
	return rows
}

// Regenerate writes the workbook for the given history, replacing any
// previous file
func (e *Exporter) Regenerate(assignments []*models.Assignment) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range Rows(assignments) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to set row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(e.path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}
