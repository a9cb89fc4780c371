package models

import "github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/config"

// WorksheetState is the visibility of a worksheet tab.
type WorksheetState string

const (
	StateVisible    WorksheetState = "visible"
	StateHidden     WorksheetState = "hidden"
	StateVeryHidden WorksheetState = "veryHidden"
)

// Valid reports whether s is a known state.
func (s WorksheetState) Valid() bool {
	switch s {
	case StateVisible, StateHidden, StateVeryHidden:
		return true
	}
	return false
}

// WorksheetProperties holds sheet-wide formatting properties.
type WorksheetProperties struct {
	// TabColor is an ARGB hex string.
	TabColor         config.Optional[string]  `json:"tabColor,omitzero" yaml:"tabColor"`
	DefaultRowHeight config.Optional[float64] `json:"defaultRowHeight,omitzero" yaml:"defaultRowHeight"`
	DefaultColWidth  config.Optional[float64] `json:"defaultColWidth,omitzero" yaml:"defaultColWidth"`
	DyDescent        config.Optional[int]     `json:"dyDescent,omitzero" yaml:"dyDescent"`
	OutlineLevelCol  config.Optional[int]     `json:"outlineLevelCol,omitzero" yaml:"outlineLevelCol"`
	OutlineLevelRow  config.Optional[int]     `json:"outlineLevelRow,omitzero" yaml:"outlineLevelRow"`
}

// Merge overlays the properties set in o onto p.
func (p WorksheetProperties) Merge(o WorksheetProperties) WorksheetProperties {
	return WorksheetProperties{
		TabColor:         o.TabColor.Or(p.TabColor),
		DefaultRowHeight: o.DefaultRowHeight.Or(p.DefaultRowHeight),
		DefaultColWidth:  o.DefaultColWidth.Or(p.DefaultColWidth),
		DyDescent:        o.DyDescent.Or(p.DyDescent),
		OutlineLevelCol:  o.OutlineLevelCol.Or(p.OutlineLevelCol),
		OutlineLevelRow:  o.OutlineLevelRow.Or(p.OutlineLevelRow),
	}
}

// DefaultWorksheetProperties returns the property defaults of a new sheet.
func DefaultWorksheetProperties() WorksheetProperties {
	return WorksheetProperties{
		DefaultRowHeight: config.Some(15.0),
		DyDescent:        config.Some(55),
		OutlineLevelCol:  config.Some(0),
		OutlineLevelRow:  config.Some(0),
	}
}

// HeaderFooter holds the printed page headers and footers.
type HeaderFooter struct {
	DifferentFirst   config.Optional[bool]   `json:"differentFirst,omitzero" yaml:"differentFirst"`
	DifferentOddEven config.Optional[bool]   `json:"differentOddEven,omitzero" yaml:"differentOddEven"`
	OddHeader        config.Optional[string] `json:"oddHeader,omitzero" yaml:"oddHeader"`
	OddFooter        config.Optional[string] `json:"oddFooter,omitzero" yaml:"oddFooter"`
	EvenHeader       config.Optional[string] `json:"evenHeader,omitzero" yaml:"evenHeader"`
	EvenFooter       config.Optional[string] `json:"evenFooter,omitzero" yaml:"evenFooter"`
	FirstHeader      config.Optional[string] `json:"firstHeader,omitzero" yaml:"firstHeader"`
	FirstFooter      config.Optional[string] `json:"firstFooter,omitzero" yaml:"firstFooter"`
}

// Merge overlays the header and footer options set in o onto h.
func (h HeaderFooter) Merge(o HeaderFooter) HeaderFooter {
	return HeaderFooter{
		DifferentFirst:   o.DifferentFirst.Or(h.DifferentFirst),
		DifferentOddEven: o.DifferentOddEven.Or(h.DifferentOddEven),
		OddHeader:        o.OddHeader.Or(h.OddHeader),
		OddFooter:        o.OddFooter.Or(h.OddFooter),
		EvenHeader:       o.EvenHeader.Or(h.EvenHeader),
		EvenFooter:       o.EvenFooter.Or(h.EvenFooter),
		FirstHeader:      o.FirstHeader.Or(h.FirstHeader),
		FirstFooter:      o.FirstFooter.Or(h.FirstFooter),
	}
}

// DefaultHeaderFooter returns the header/footer defaults of a new sheet.
func DefaultHeaderFooter() HeaderFooter {
	return HeaderFooter{
		DifferentFirst:   config.Some(false),
		DifferentOddEven: config.Some(false),
		OddHeader:        config.Null[string](),
		OddFooter:        config.Null[string](),
		EvenHeader:       config.Null[string](),
		EvenFooter:       config.Null[string](),
		FirstHeader:      config.Null[string](),
		FirstFooter:      config.Null[string](),
	}
}

// View states.
const (
	ViewNormal = "normal"
	ViewFrozen = "frozen"
	ViewSplit  = "split"
)

// WorksheetView describes how a sheet window is shown: panes, zoom and
// gridlines.
type WorksheetView struct {
	State             string                `json:"state,omitempty" yaml:"state"`
	XSplit            int                   `json:"xSplit,omitempty" yaml:"xSplit"`
	YSplit            int                   `json:"ySplit,omitempty" yaml:"ySplit"`
	TopLeftCell       string                `json:"topLeftCell,omitempty" yaml:"topLeftCell"`
	ActiveCell        string                `json:"activeCell,omitempty" yaml:"activeCell"`
	ShowRuler         config.Optional[bool] `json:"showRuler,omitzero" yaml:"showRuler"`
	ShowRowColHeaders config.Optional[bool] `json:"showRowColHeaders,omitzero" yaml:"showRowColHeaders"`
	ShowGridLines     config.Optional[bool] `json:"showGridLines,omitzero" yaml:"showGridLines"`
	ZoomScale         config.Optional[int]  `json:"zoomScale,omitzero" yaml:"zoomScale"`
	RightToLeft       config.Optional[bool] `json:"rightToLeft,omitzero" yaml:"rightToLeft"`
}

// AutoFilter is a filter range such as "A1:C1".
type AutoFilter struct {
	Ref string `json:"ref" yaml:"ref"`
}

// SheetProtection lists what users may still do on a protected sheet.
type SheetProtection struct {
	Password            string                `json:"-" yaml:"password"`
	SelectLockedCells   config.Optional[bool] `json:"selectLockedCells,omitzero" yaml:"selectLockedCells"`
	SelectUnlockedCells config.Optional[bool] `json:"selectUnlockedCells,omitzero" yaml:"selectUnlockedCells"`
	FormatCells         config.Optional[bool] `json:"formatCells,omitzero" yaml:"formatCells"`
	FormatColumns       config.Optional[bool] `json:"formatColumns,omitzero" yaml:"formatColumns"`
	FormatRows          config.Optional[bool] `json:"formatRows,omitzero" yaml:"formatRows"`
	InsertColumns       config.Optional[bool] `json:"insertColumns,omitzero" yaml:"insertColumns"`
	InsertRows          config.Optional[bool] `json:"insertRows,omitzero" yaml:"insertRows"`
	InsertHyperlinks    config.Optional[bool] `json:"insertHyperlinks,omitzero" yaml:"insertHyperlinks"`
	DeleteColumns       config.Optional[bool] `json:"deleteColumns,omitzero" yaml:"deleteColumns"`
	DeleteRows          config.Optional[bool] `json:"deleteRows,omitzero" yaml:"deleteRows"`
	Sort                config.Optional[bool] `json:"sort,omitzero" yaml:"sort"`
	AutoFilter          config.Optional[bool] `json:"autoFilter,omitzero" yaml:"autoFilter"`
	PivotTables         config.Optional[bool] `json:"pivotTables,omitzero" yaml:"pivotTables"`
}

// Merge overlays the protection options set in o onto p.
func (p SheetProtection) Merge(o SheetProtection) SheetProtection {
	password := p.Password
	if o.Password != "" {
		password = o.Password
	}
	return SheetProtection{
		Password:            password,
		SelectLockedCells:   o.SelectLockedCells.Or(p.SelectLockedCells),
		SelectUnlockedCells: o.SelectUnlockedCells.Or(p.SelectUnlockedCells),
		FormatCells:         o.FormatCells.Or(p.FormatCells),
		FormatColumns:       o.FormatColumns.Or(p.FormatColumns),
		FormatRows:          o.FormatRows.Or(p.FormatRows),
		InsertColumns:       o.InsertColumns.Or(p.InsertColumns),
		InsertRows:          o.InsertRows.Or(p.InsertRows),
		InsertHyperlinks:    o.InsertHyperlinks.Or(p.InsertHyperlinks),
		DeleteColumns:       o.DeleteColumns.Or(p.DeleteColumns),
		DeleteRows:          o.DeleteRows.Or(p.DeleteRows),
		Sort:                o.Sort.Or(p.Sort),
		AutoFilter:          o.AutoFilter.Or(p.AutoFilter),
		PivotTables:         o.PivotTables.Or(p.PivotTables),
	}
}

// DefaultSheetProtection allows cell selection and nothing else.
func DefaultSheetProtection() SheetProtection {
	f := config.Some(false)
	return SheetProtection{
		SelectLockedCells:   config.Some(true),
		SelectUnlockedCells: config.Some(true),
		FormatCells:         f,
		FormatColumns:       f,
		FormatRows:          f,
		InsertColumns:       f,
		InsertRows:          f,
		InsertHyperlinks:    f,
		DeleteColumns:       f,
		DeleteRows:          f,
		Sort:                f,
		AutoFilter:          f,
		PivotTables:         f,
	}
}

// Image places a picture on the sheet, either over a cell range or as the
// sheet background.
type Image struct {
	// Type is "image" or "background".
	Type string `json:"type" yaml:"type"`
	// Path is the picture file.
	Path string `json:"path" yaml:"path"`
	// Range is the top-left cell the image is anchored to.
	Range string `json:"range,omitempty" yaml:"range"`
}

// Table is a named, structured range.
type Table struct {
	Name           string                `json:"name" yaml:"name"`
	Ref            string                `json:"ref" yaml:"ref"`
	Style          string                `json:"style,omitempty" yaml:"style"`
	HeaderRow      config.Optional[bool] `json:"headerRow,omitzero" yaml:"headerRow"`
	ShowRowStripes config.Optional[bool] `json:"showRowStripes,omitzero" yaml:"showRowStripes"`
}

// ConditionalFormattingRule is one rule of a conditional format.
type ConditionalFormattingRule struct {
	Type     string   `json:"type" yaml:"type"`
	Operator string   `json:"operator,omitempty" yaml:"operator"`
	Formulae []string `json:"formulae,omitempty" yaml:"formulae"`
	Priority int      `json:"priority,omitempty" yaml:"priority"`
	Style    Style    `json:"style,omitzero" yaml:"style"`
}

// ConditionalFormatting applies rules to a range.
type ConditionalFormatting struct {
	Ref   string                      `json:"ref" yaml:"ref"`
	Rules []ConditionalFormattingRule `json:"rules" yaml:"rules"`
}

// PivotTable summarizes a source range into a target location.
type PivotTable struct {
	SourceRef string   `json:"sourceRef" yaml:"sourceRef"`
	Ref       string   `json:"ref" yaml:"ref"`
	Rows      []string `json:"rows,omitempty" yaml:"rows"`
	Columns   []string `json:"columns,omitempty" yaml:"columns"`
	Values    []string `json:"values,omitempty" yaml:"values"`
}
