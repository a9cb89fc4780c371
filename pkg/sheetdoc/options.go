// Package sheetdoc is the in-memory document model of a spreadsheet
// worksheet: its columns, data validations, notes and layout configuration.
package sheetdoc

import (
	"log"

	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/models"
)

// WorksheetOptions is the configuration bag a workbook builds a worksheet
// from. Every record is partial: unset options take the built-in defaults.
type WorksheetOptions struct {
	// ID is assigned by the workbook. It names the worksheet when Name is nil.
	ID string
	// OrderNo is the position among sibling worksheets.
	OrderNo int
	// Name is the display name. Nil means unset; a non-string value is
	// rejected with ErrInvalidNameType.
	Name any
	// State defaults to visible.
	State models.WorksheetState

	Properties   *models.WorksheetProperties
	PageSetup    *models.PageSetup
	HeaderFooter *models.HeaderFooter
	Views        []models.WorksheetView
	AutoFilter   *models.AutoFilter

	// Logger receives warnings, e.g. name truncation. Nil means log.Default().
	Logger *log.Logger
}

func (o WorksheetOptions) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}
