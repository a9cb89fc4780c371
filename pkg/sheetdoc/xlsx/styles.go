package xlsx

import (
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/models"
)

// toStyle converts a model style into an excelize style definition.
func toStyle(s models.Style) *excelize.Style {
	style := &excelize.Style{
		Font: toFont(s.Font),
	}
	if s.NumFmt != "" {
		numFmt := s.NumFmt
		style.CustomNumFmt = &numFmt
	}
	if s.Fill != nil && s.Fill.Color != "" {
		style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{s.Fill.Color}}
	}
	if s.Alignment != nil {
		style.Alignment = &excelize.Alignment{
			Horizontal: s.Alignment.Horizontal,
			Vertical:   s.Alignment.Vertical,
			WrapText:   s.Alignment.WrapText,
		}
	}
	return style
}

func toFont(f *models.Font) *excelize.Font {
	if f == nil {
		return nil
	}
	font := &excelize.Font{
		Bold:   f.Bold,
		Italic: f.Italic,
		Family: f.Name,
		Size:   f.Size,
		Color:  f.Color,
	}
	if f.Underline {
		font.Underline = "single"
	}
	return font
}

func fromFont(f *excelize.Font) *models.Font {
	if f == nil {
		return nil
	}
	return &models.Font{
		Name:      f.Family,
		Size:      f.Size,
		Bold:      f.Bold,
		Italic:    f.Italic,
		Underline: f.Underline != "" && f.Underline != "none",
		Color:     f.Color,
	}
}
