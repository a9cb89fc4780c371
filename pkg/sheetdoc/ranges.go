package sheetdoc

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/models"
)

// ParseRange parses a reference such as "A1:D10", "$A$1:$D$10" or a single
// cell "B2" into coordinate bounds. Reversed corners are normalized.
func ParseRange(ref string) (models.PrintArea, error) {
	return parseRange(ref)
}

func parseRange(ref string) (models.PrintArea, error) {
	clean := strings.ReplaceAll(ref, "$", "")
	parts := strings.Split(clean, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.PrintArea{}, fmt.Errorf("%w: %q", ErrInvalidRange, ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.PrintArea{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, ref, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.PrintArea{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, ref, err)
	}

	return models.PrintArea{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}, nil
}

// FormatRange renders bounds as a reference such as "A1:D10".
func FormatRange(area models.PrintArea) string {
	start, _ := excelize.CoordinatesToCellName(area.C1, area.R1)
	end, _ := excelize.CoordinatesToCellName(area.C2, area.R2)
	return fmt.Sprintf("%s:%s", start, end)
}

func overlaps(a, b models.PrintArea) bool {
	return a.R1 <= b.R2 && b.R1 <= a.R2 && a.C1 <= b.C2 && b.C1 <= a.C2
}
