// Package models defines the data records of the worksheet document model.
package models

import "github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/config"

// DefaultColumnWidth is the width given to a defined column without one.
const DefaultColumnWidth = 9.0

// MaxOutlineLevel is the deepest column or row grouping a worksheet supports.
const MaxOutlineLevel = 7

// ColumnDefn is the definition of one worksheet column.
type ColumnDefn struct {
	// Header is a single header label written to the first row.
	Header string `json:"header,omitempty" yaml:"header"`
	// Headers are stacked header labels, one per header row.
	// Ignored for header accounting when Header is set.
	Headers []string `json:"headers,omitempty" yaml:"headers"`
	// Key is an optional lookup alias for the column.
	Key string `json:"key,omitempty" yaml:"key"`
	// Width is the column width in characters.
	Width config.Optional[float64] `json:"width,omitzero" yaml:"width"`
	// Style is the default formatting of the column's cells.
	Style Style `json:"style,omitzero" yaml:"style"`
	// Hidden hides the column.
	Hidden bool `json:"hidden,omitempty" yaml:"hidden"`
	// OutlineLevel is the grouping level (0 to 7).
	OutlineLevel int `json:"outlineLevel,omitempty" yaml:"outlineLevel"`
}

// HeaderCount is the number of header rows this definition occupies.
func (d ColumnDefn) HeaderCount() int {
	if d.Header != "" {
		return 1
	}
	return len(d.Headers)
}

// Style is a formatting reference for cells, rows and columns.
type Style struct {
	NumFmt    string     `json:"numFmt,omitempty" yaml:"numFmt"`
	Font      *Font      `json:"font,omitempty" yaml:"font"`
	Fill      *Fill      `json:"fill,omitempty" yaml:"fill"`
	Alignment *Alignment `json:"alignment,omitempty" yaml:"alignment"`
}

// IsEmpty reports whether the style sets nothing.
func (s Style) IsEmpty() bool {
	return s.NumFmt == "" && s.Font == nil && s.Fill == nil && s.Alignment == nil
}

// Font describes a font face.
type Font struct {
	Name      string  `json:"name,omitempty" yaml:"name"`
	Size      float64 `json:"size,omitempty" yaml:"size"`
	Bold      bool    `json:"bold,omitempty" yaml:"bold"`
	Italic    bool    `json:"italic,omitempty" yaml:"italic"`
	Underline bool    `json:"underline,omitempty" yaml:"underline"`
	// Color is an ARGB or RGB hex string.
	Color string `json:"color,omitempty" yaml:"color"`
}

// Fill is a solid pattern fill.
type Fill struct {
	Pattern string `json:"pattern,omitempty" yaml:"pattern"`
	Color   string `json:"color,omitempty" yaml:"color"`
}

// Alignment positions cell content.
type Alignment struct {
	Horizontal string `json:"horizontal,omitempty" yaml:"horizontal"`
	Vertical   string `json:"vertical,omitempty" yaml:"vertical"`
	WrapText   bool   `json:"wrapText,omitempty" yaml:"wrapText"`
}
