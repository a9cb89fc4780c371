package models

import "github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/config"

// PrintArea represents cell coordinate bounds for a print area or any other
// rectangular range.
type PrintArea struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// PageMargins are page margins in inches.
type PageMargins struct {
	Left   config.Optional[float64] `json:"left,omitzero" yaml:"left"`
	Right  config.Optional[float64] `json:"right,omitzero" yaml:"right"`
	Top    config.Optional[float64] `json:"top,omitzero" yaml:"top"`
	Bottom config.Optional[float64] `json:"bottom,omitzero" yaml:"bottom"`
	Header config.Optional[float64] `json:"header,omitzero" yaml:"header"`
	Footer config.Optional[float64] `json:"footer,omitzero" yaml:"footer"`
}

// Merge overlays the margins set in o onto m.
func (m PageMargins) Merge(o PageMargins) PageMargins {
	return PageMargins{
		Left:   o.Left.Or(m.Left),
		Right:  o.Right.Or(m.Right),
		Top:    o.Top.Or(m.Top),
		Bottom: o.Bottom.Or(m.Bottom),
		Header: o.Header.Or(m.Header),
		Footer: o.Footer.Or(m.Footer),
	}
}

// PageSetup holds everything that controls printing.
type PageSetup struct {
	Margins     PageMargins             `json:"margins" yaml:"margins"`
	Orientation config.Optional[string] `json:"orientation,omitzero" yaml:"orientation"`

	HorizontalDpi config.Optional[uint32] `json:"horizontalDpi,omitzero" yaml:"horizontalDpi"`
	VerticalDpi   config.Optional[uint32] `json:"verticalDpi,omitzero" yaml:"verticalDpi"`

	// FitToPage selects FitToWidth/FitToHeight over Scale.
	FitToPage   config.Optional[bool] `json:"fitToPage,omitzero" yaml:"fitToPage"`
	FitToWidth  config.Optional[int]  `json:"fitToWidth,omitzero" yaml:"fitToWidth"`
	FitToHeight config.Optional[int]  `json:"fitToHeight,omitzero" yaml:"fitToHeight"`
	Scale       config.Optional[int]  `json:"scale,omitzero" yaml:"scale"`

	PageOrder     config.Optional[string] `json:"pageOrder,omitzero" yaml:"pageOrder"`
	BlackAndWhite config.Optional[bool]   `json:"blackAndWhite,omitzero" yaml:"blackAndWhite"`
	Draft         config.Optional[bool]   `json:"draft,omitzero" yaml:"draft"`
	CellComments  config.Optional[string] `json:"cellComments,omitzero" yaml:"cellComments"`
	Errors        config.Optional[string] `json:"errors,omitzero" yaml:"errors"`
	PaperSize     config.Optional[int]    `json:"paperSize,omitzero" yaml:"paperSize"`

	ShowRowColHeaders  config.Optional[bool] `json:"showRowColHeaders,omitzero" yaml:"showRowColHeaders"`
	ShowGridLines      config.Optional[bool] `json:"showGridLines,omitzero" yaml:"showGridLines"`
	FirstPageNumber    config.Optional[int]  `json:"firstPageNumber,omitzero" yaml:"firstPageNumber"`
	HorizontalCentered config.Optional[bool] `json:"horizontalCentered,omitzero" yaml:"horizontalCentered"`
	VerticalCentered   config.Optional[bool] `json:"verticalCentered,omitzero" yaml:"verticalCentered"`

	RowBreaks config.Optional[[]int] `json:"rowBreaks,omitzero" yaml:"rowBreaks"`
	ColBreaks config.Optional[[]int] `json:"colBreaks,omitzero" yaml:"colBreaks"`

	// PrintArea is a range such as "A1:G20".
	PrintArea config.Optional[string] `json:"printArea,omitzero" yaml:"printArea"`
	// PrintTitlesRow repeats rows on every page, e.g. "1:3".
	PrintTitlesRow config.Optional[string] `json:"printTitlesRow,omitzero" yaml:"printTitlesRow"`
	// PrintTitlesColumn repeats columns on every page, e.g. "A:C".
	PrintTitlesColumn config.Optional[string] `json:"printTitlesColumn,omitzero" yaml:"printTitlesColumn"`
}

// Merge overlays the page options set in o onto p. Margins merge field by field.
func (p PageSetup) Merge(o PageSetup) PageSetup {
	return PageSetup{
		Margins:            p.Margins.Merge(o.Margins),
		Orientation:        o.Orientation.Or(p.Orientation),
		HorizontalDpi:      o.HorizontalDpi.Or(p.HorizontalDpi),
		VerticalDpi:        o.VerticalDpi.Or(p.VerticalDpi),
		FitToPage:          o.FitToPage.Or(p.FitToPage),
		FitToWidth:         o.FitToWidth.Or(p.FitToWidth),
		FitToHeight:        o.FitToHeight.Or(p.FitToHeight),
		Scale:              o.Scale.Or(p.Scale),
		PageOrder:          o.PageOrder.Or(p.PageOrder),
		BlackAndWhite:      o.BlackAndWhite.Or(p.BlackAndWhite),
		Draft:              o.Draft.Or(p.Draft),
		CellComments:       o.CellComments.Or(p.CellComments),
		Errors:             o.Errors.Or(p.Errors),
		PaperSize:          o.PaperSize.Or(p.PaperSize),
		ShowRowColHeaders:  o.ShowRowColHeaders.Or(p.ShowRowColHeaders),
		ShowGridLines:      o.ShowGridLines.Or(p.ShowGridLines),
		FirstPageNumber:    o.FirstPageNumber.Or(p.FirstPageNumber),
		HorizontalCentered: o.HorizontalCentered.Or(p.HorizontalCentered),
		VerticalCentered:   o.VerticalCentered.Or(p.VerticalCentered),
		RowBreaks:          o.RowBreaks.Or(p.RowBreaks),
		ColBreaks:          o.ColBreaks.Or(p.ColBreaks),
		PrintArea:          o.PrintArea.Or(p.PrintArea),
		PrintTitlesRow:     o.PrintTitlesRow.Or(p.PrintTitlesRow),
		PrintTitlesColumn:  o.PrintTitlesColumn.Or(p.PrintTitlesColumn),
	}
}

// DefaultPageSetup returns the page setup defaults for a worksheet about to
// be configured with overrides. FitToPage defaults to true only when the
// overrides ask for a fit to width or height without a scale.
func DefaultPageSetup(overrides *PageSetup) PageSetup {
	fit := false
	if overrides != nil {
		fitTo := overrides.FitToWidth.Value() != 0 || overrides.FitToHeight.Value() != 0
		fit = fitTo && overrides.Scale.Value() == 0
	}
	return PageSetup{
		Margins: PageMargins{
			Left:   config.Some(0.7),
			Right:  config.Some(0.7),
			Top:    config.Some(0.75),
			Bottom: config.Some(0.75),
			Header: config.Some(0.3),
			Footer: config.Some(0.3),
		},
		Orientation:        config.Some("portrait"),
		HorizontalDpi:      config.Some(uint32(4294967295)),
		VerticalDpi:        config.Some(uint32(4294967295)),
		FitToPage:          config.Some(fit),
		FitToWidth:         config.Some(1),
		FitToHeight:        config.Some(1),
		Scale:              config.Some(100),
		PageOrder:          config.Some("downThenOver"),
		BlackAndWhite:      config.Some(false),
		Draft:              config.Some(false),
		CellComments:       config.Some("None"),
		Errors:             config.Some("displayed"),
		ShowRowColHeaders:  config.Some(false),
		ShowGridLines:      config.Some(false),
		HorizontalCentered: config.Some(false),
		VerticalCentered:   config.Some(false),
		RowBreaks:          config.Null[[]int](),
		ColBreaks:          config.Null[[]int](),
	}
}

// PrintAreaView is the part of a worksheet that falls inside one print area.
type PrintAreaView struct {
	BookName    string                    `json:"book_name,omitempty"`
	SheetName   string                    `json:"sheet_name"`
	Area        PrintArea                 `json:"area"`
	Columns     []ColumnModel             `json:"columns,omitempty"`
	Validations map[string]DataValidation `json:"validations,omitempty"`
	Notes       map[string]NoteConfig     `json:"notes,omitempty"`
	Merges      []string                  `json:"merges,omitempty"`
}
