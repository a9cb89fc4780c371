package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc"
	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/models"
)

const (
	printAreaName   = "_xlnm.Print_Area"
	printTitlesName = "_xlnm.Print_Titles"
)

// writePrintAreas stores the print area and print titles of ws as sheet
// scoped defined names.
func writePrintAreas(f *excelize.File, ws *sheetdoc.Worksheet) error {
	ps := ws.PageSetup()
	sheet := ws.Name()

	if ref, ok := ps.PrintArea.Get(); ok && ref != "" {
		var parts []string
		for _, r := range strings.Split(ref, ",") {
			area, err := sheetdoc.ParseRange(strings.TrimSpace(r))
			if err != nil {
				return err
			}
			parts = append(parts, quoteSheet(sheet)+"!"+absoluteRange(area))
		}
		if err := f.SetDefinedName(&excelize.DefinedName{
			Name:     printAreaName,
			RefersTo: strings.Join(parts, ","),
			Scope:    sheet,
		}); err != nil {
			return err
		}
	}

	var titles []string
	if rows, ok := ps.PrintTitlesRow.Get(); ok && rows != "" {
		titles = append(titles, quoteSheet(sheet)+"!"+absoluteSpan(rows))
	}
	if cols, ok := ps.PrintTitlesColumn.Get(); ok && cols != "" {
		titles = append(titles, quoteSheet(sheet)+"!"+absoluteSpan(cols))
	}
	if len(titles) == 0 {
		return nil
	}
	return f.SetDefinedName(&excelize.DefinedName{
		Name:     printTitlesName,
		RefersTo: strings.Join(titles, ","),
		Scope:    sheet,
	})
}

// ExtractPrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of print areas.
func ExtractPrintAreas(f *excelize.File) map[string][]models.PrintArea {
	result := make(map[string][]models.PrintArea)
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}
	return result
}

// ExtractPrintTitles returns the repeated rows ("1:3") and columns ("A:B")
// of every sheet that defines print titles.
func ExtractPrintTitles(f *excelize.File) map[string][2]string {
	result := make(map[string][2]string)
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printTitlesName) {
			continue
		}
		for _, part := range strings.Split(dn.RefersTo, ",") {
			idx := strings.LastIndex(part, "!")
			if idx < 0 {
				continue
			}
			sheet := strings.Trim(strings.TrimSpace(part[:idx]), "'")
			span := strings.ReplaceAll(part[idx+1:], "$", "")
			titles := result[sheet]
			if isRowSpan(span) {
				titles[0] = span
			} else {
				titles[1] = span
			}
			result[sheet] = titles
		}
	}
	return result
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10
func parsePrintAreaReference(ref string) (string, []models.PrintArea) {
	var areas []models.PrintArea
	var sheetName string
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		sheet := strings.Trim(part[:idx], "'")
		if sheetName == "" {
			sheetName = sheet
		}
		if area, err := sheetdoc.ParseRange(part[idx+1:]); err == nil {
			areas = append(areas, area)
		}
	}
	return sheetName, areas
}

// absoluteRange renders bounds as "$A$1:$D$10".
func absoluteRange(area models.PrintArea) string {
	c1, _ := excelize.ColumnNumberToName(area.C1)
	c2, _ := excelize.ColumnNumberToName(area.C2)
	return fmt.Sprintf("$%s$%d:$%s$%d", c1, area.R1, c2, area.R2)
}

// absoluteSpan renders a row span "1:3" as "$1:$3" and a column span "A:C"
// as "$A:$C".
func absoluteSpan(span string) string {
	parts := strings.Split(strings.ReplaceAll(span, "$", ""), ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	return "$" + parts[0] + ":$" + parts[1]
}

func isRowSpan(span string) bool {
	return strings.Trim(span, "0123456789:") == ""
}

// quoteSheet renders a sheet name for use in a reference.
func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
