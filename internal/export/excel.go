package export

import (
	"fmt"
	"io"

	"github.com/fadilmartias/recruit-assistant/internal/model"
	"github.com/xuri/excelize/v2"
)

// WriteExcel renders the candidates as a single styled sheet.
func WriteExcel(w io.Writer, layout Layout, candidates []model.Candidate) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := layout.sheetName()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}
	if err := fillSheet(f, sheetName, layout, candidates); err != nil {
		return fmt.Errorf("failed to create %s sheet: %w", sheetName, err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write excel file: %w", err)
	}
	return nil
}

func fillSheet(f *excelize.File, sheetName string, layout Layout, candidates []model.Candidate) error {
	cols := layout.columns()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}

	for i, col := range cols {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, name, name, col.width); err != nil {
			return err
		}
	}

	header := make([]any, len(cols))
	for i, col := range cols {
		header[i] = col.header
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(cols))
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	for i := range candidates {
		for j, col := range cols {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			// Text is always stored as a string cell, never as a formula.
			switch v := col.xlsx(&candidates[i]).(type) {
			case string:
				err = f.SetCellStr(sheetName, cell, v)
			default:
				err = f.SetCellValue(sheetName, cell, v)
			}
			if err != nil {
				return err
			}
		}
	}

	// Freeze top row
	return f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
