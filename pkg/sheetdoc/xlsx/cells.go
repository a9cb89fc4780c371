package xlsx

import (
	"math"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/config"
	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/models"
)

// widthTolerance absorbs the padding spreadsheet applications add to the
// default column width.
const widthTolerance = 0.25

// ExtractHeaders reads the first headerRows rows of a sheet and returns the
// header lines of each column, indexed from column 1. Trailing empty lines
// are dropped.
func ExtractHeaders(f *excelize.File, sheetName string, headerRows int) ([][]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if headerRows < len(rows) {
		rows = rows[:headerRows]
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	headers := make([][]string, width)
	for col := range width {
		var lines []string
		for _, row := range rows {
			cell := ""
			if col < len(row) {
				cell = strings.TrimSpace(row[col])
			}
			lines = append(lines, cell)
		}
		for len(lines) > 0 && lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}
		headers[col] = lines
	}
	return headers, nil
}

// extractColumns builds a column definition for every column that carries a
// header or formatting, up to the last such column.
func extractColumns(f *excelize.File, sheetName string, headers [][]string, lastCol int) ([]models.ColumnDefn, error) {
	var defs []models.ColumnDefn
	last := 0
	for col := 1; col <= max(lastCol, len(headers)); col++ {
		letter, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return nil, err
		}

		var defn models.ColumnDefn
		if col <= len(headers) {
			switch lines := headers[col-1]; len(lines) {
			case 0:
			case 1:
				defn.Header = lines[0]
			default:
				defn.Headers = lines
			}
		}

		w, err := f.GetColWidth(sheetName, letter)
		if err != nil {
			return nil, err
		}
		if math.Abs(w-models.DefaultColumnWidth) > widthTolerance {
			defn.Width = config.Some(w)
		}

		visible, err := f.GetColVisible(sheetName, letter)
		if err != nil {
			return nil, err
		}
		defn.Hidden = !visible

		level, err := f.GetColOutlineLevel(sheetName, letter)
		if err != nil {
			return nil, err
		}
		defn.OutlineLevel = int(level)

		defs = append(defs, defn)
		if defn.HeaderCount() > 0 || defn.Width.IsSet() || defn.Hidden || defn.OutlineLevel > 0 {
			last = col
		}
	}
	return defs[:last], nil
}
