// Package models defines the data structures of a worksheet document: column
// definitions, validations, notes and layout records.
package models

// WorkbookModel is a snapshot of a workbook and its worksheets.
type WorkbookModel struct {
	// BookName is the workbook file name (no path), when known.
	BookName string `json:"book_name,omitempty"`
	// Worksheets are ordered by order number.
	Worksheets []WorksheetModel `json:"worksheets"`
}

// ColumnModel is a snapshot of one column.
type ColumnModel struct {
	Number int        `json:"number"`
	Letter string     `json:"letter"`
	Defn   ColumnDefn `json:"defn"`
}

// WorksheetModel is a snapshot of a worksheet.
type WorksheetModel struct {
	ID             string         `json:"id"`
	OrderNo        int            `json:"orderNo"`
	Name           string         `json:"name"`
	State          WorksheetState `json:"state"`
	HeaderRowCount int            `json:"headerRowCount"`
	Columns        []ColumnModel  `json:"columns,omitempty"`
	// ColumnKeys maps each key to its column number.
	ColumnKeys  map[string]int            `json:"columnKeys,omitempty"`
	Validations map[string]DataValidation `json:"validations,omitempty"`
	Notes       map[string]NoteConfig     `json:"notes,omitempty"`

	Properties   WorksheetProperties `json:"properties"`
	PageSetup    PageSetup           `json:"pageSetup"`
	HeaderFooter HeaderFooter        `json:"headerFooter"`
	Views        []WorksheetView     `json:"views,omitempty"`
	AutoFilter   *AutoFilter         `json:"autoFilter,omitempty"`
	Protection   *SheetProtection    `json:"sheetProtection,omitempty"`

	Merges                 []string                `json:"merges,omitempty"`
	RowBreaks              []int                   `json:"rowBreaks,omitempty"`
	Media                  []Image                 `json:"media,omitempty"`
	Tables                 []Table                 `json:"tables,omitempty"`
	PivotTables            []PivotTable            `json:"pivotTables,omitempty"`
	ConditionalFormattings []ConditionalFormatting `json:"conditionalFormattings,omitempty"`

	// UsedRange is the bounding range of non-empty cells, set on import.
	UsedRange string `json:"usedRange,omitempty"`
}
