// Package export writes pipeline snapshots to XLSX files, one sheet
// per stage.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/casaflow/casaflow/pkg/access"
	"github.com/casaflow/casaflow/pkg/board"
	"github.com/casaflow/casaflow/pkg/models"
)

// Service handles pipeline exports.
type Service struct {
	board       *board.Service
	storagePath string
}

// NewService creates a new export service.
func NewService(boardService *board.Service, storagePath string) *Service {
	// Ensure storage directory exists
	os.MkdirAll(storagePath, 0755)

	return &Service{
		board:       boardService,
		storagePath: storagePath,
	}
}

// Result describes a finished export.
type Result struct {
	FileName  string `json:"file_name"`
	FilePath  string `json:"-"`
	RowCount  int    `json:"row_count"`
	CreatedAt string `json:"created_at"`
}

// ExportBoard writes the caller's visible pipeline to an XLSX file and
// returns the file location. Uses the board's maximum page size, so
// very large stages are truncated like the board itself.
func (s *Service) ExportBoard(ctx context.Context, p access.Principal) (*Result, error) {
	b, err := s.board.BuildBoard(ctx, p, board.Options{LimitPerColumn: board.MaxLimit})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	total := 0
	for i, col := range b.Columns {
		sheet := sheetName(col.Stage)
		if i == 0 {
			f.SetSheetName("Sheet1", sheet)
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, fmt.Errorf("failed to create sheet: %w", err)
			}
		}

		writeSheet(f, sheet, headerStyle, col)
		total += len(col.Opportunities)
	}

	name := fmt.Sprintf("pipeline_%s.xlsx", time.Now().Format("20060102_150405"))
	path := filepath.Join(s.storagePath, name)

	if err := f.SaveAs(path); err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	return &Result{
		FileName:  name,
		FilePath:  path,
		RowCount:  total,
		CreatedAt: time.Now().Format(time.RFC3339),
	}, nil
}

func writeSheet(f *excelize.File, sheet string, headerStyle int, col models.BoardColumn) {
	headers := []string{
		"Opportunity ID", "Lead", "Email", "Phone", "Agent ID",
		"Expected Value", "Entered Stage", "Outcome", "Property",
	}

	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for rowIdx, card := range col.Opportunities {
		row := rowIdx + 2 // Start from row 2 (after header)
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), card.Opportunity.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), card.Lead.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), card.Lead.Email)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), card.Lead.Phone)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), card.Opportunity.AssignedAgentID)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), card.Opportunity.ExpectedValue)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), card.Opportunity.StageEnteredAt)
		if card.Opportunity.Outcome != nil {
			f.SetCellValue(sheet, fmt.Sprintf("H%d", row), *card.Opportunity.Outcome)
		}
		if card.Property != nil {
			f.SetCellValue(sheet, fmt.Sprintf("I%d", row), card.Property.Title)
		}
	}

	for i := range headers {
		c := string(rune('A' + i))
		f.SetColWidth(sheet, c, c, 18)
	}
}

// sheetName builds a sheet title safe for Excel's 31-char limit.
func sheetName(st models.Stage) string {
	name := st.Name
	if name == "" {
		name = st.ID
	}
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
