package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mumpitzstuff/goodTimes/internal/contract"
)

const sheetName = "Working Time"

var columnWidths = []float64{14, 14, 12, 10, 40}

// writeExcel writes the report as a styled xlsx workbook.
func writeExcel(path string, resp *contract.ReportResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4F6228"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	weekendStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"EEECE1"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("creating weekend style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: []excelize.Border{{Type: "top", Color: "000000", Style: 1}},
	})
	if err != nil {
		return fmt.Errorf("creating total style: %w", err)
	}

	for col, h := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("naming header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("writing header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("styling header cell %s: %w", cell, err)
		}
	}
	for col, w := range columnWidths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("naming column: %w", err)
		}
		if err := f.SetColWidth(sheetName, name, name, w); err != nil {
			return fmt.Errorf("sizing column %s: %w", name, err)
		}
	}

	for i, e := range resp.Entries {
		rowNum := i + 2
		if err := writeRow(f, rowNum, row(e)); err != nil {
			return err
		}
		if e.Weekend {
			first, _ := excelize.CoordinatesToCellName(1, rowNum)
			last, _ := excelize.CoordinatesToCellName(len(header), rowNum)
			if err := f.SetCellStyle(sheetName, first, last, weekendStyle); err != nil {
				return fmt.Errorf("styling weekend row %d: %w", rowNum, err)
			}
		}
	}

	totalRowNum := len(resp.Entries) + 2
	if err := writeRow(f, totalRowNum, totalsRow(resp)); err != nil {
		return err
	}
	first, _ := excelize.CoordinatesToCellName(1, totalRowNum)
	last, _ := excelize.CoordinatesToCellName(len(header), totalRowNum)
	if err := f.SetCellStyle(sheetName, first, last, totalStyle); err != nil {
		return fmt.Errorf("styling totals row: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, rowNum int, cells []string) error {
	for col, v := range cells {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return fmt.Errorf("naming cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return fmt.Errorf("writing cell %s: %w", cell, err)
		}
	}
	return nil
}
