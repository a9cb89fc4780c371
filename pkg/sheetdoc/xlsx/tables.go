package xlsx

import (
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc"
	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/config"
	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/models"
)

// UsedRange returns the bounding range of the non-empty cells of a sheet,
// e.g. "B2:D10", or "" for an empty sheet.
func UsedRange(f *excelize.File, sheetName string) (string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return "", err
	}
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return "", nil
	}
	return sheetdoc.FormatRange(models.PrintArea{
		R1: minRow + 1,
		C1: minCol + 1,
		R2: maxRow + 1,
		C2: maxCol + 1,
	}), nil
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// readTables imports the structured tables, merged ranges and auto filter of
// a sheet.
func readTables(f *excelize.File, ws *sheetdoc.Worksheet) error {
	sheet := ws.Name()

	tables, err := f.GetTables(sheet)
	if err != nil {
		return err
	}
	for _, t := range tables {
		table := models.Table{
			Name:           t.Name,
			Ref:            t.Range,
			Style:          t.StyleName,
			HeaderRow:      config.FromPtr(t.ShowHeaderRow),
			ShowRowStripes: config.FromPtr(t.ShowRowStripes),
		}
		if err := ws.AddTable(table); err != nil {
			return err
		}
	}

	merged, err := f.GetMergeCells(sheet)
	if err != nil {
		return err
	}
	for _, mc := range merged {
		if err := ws.MergeCells(mc.GetStartAxis() + ":" + mc.GetEndAxis()); err != nil {
			return err
		}
	}
	return nil
}
