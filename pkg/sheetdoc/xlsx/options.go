// Package xlsx projects worksheet documents onto .xlsx files through excelize
// and imports them back.
package xlsx

// ReadOptions configures how a worksheet is imported.
type ReadOptions struct {
	// HeaderRows is the number of leading rows read as column headers.
	HeaderRows int
	// IncludeValidations specifies whether to import data validations.
	// If nil, defaults to true.
	IncludeValidations *bool
	// IncludeNotes specifies whether to import comments as notes.
	// If nil, defaults to true.
	IncludeNotes *bool
	// IncludePrintAreas specifies whether to import print areas.
	// If nil, defaults to true.
	IncludePrintAreas *bool
}

// DefaultReadOptions returns default import options: one header row and
// everything included.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{
		HeaderRows: 1,
	}
}

// ShouldIncludeValidations returns whether to import data validations.
func (o ReadOptions) ShouldIncludeValidations() bool {
	return o.IncludeValidations == nil || *o.IncludeValidations
}

// ShouldIncludeNotes returns whether to import comments.
func (o ReadOptions) ShouldIncludeNotes() bool {
	return o.IncludeNotes == nil || *o.IncludeNotes
}

// ShouldIncludePrintAreas returns whether to import print areas.
func (o ReadOptions) ShouldIncludePrintAreas() bool {
	return o.IncludePrintAreas == nil || *o.IncludePrintAreas
}
