package xlsx

import (
	"errors"
	"fmt"
)

// ErrNoWorksheets indicates a workbook without worksheets to save.
var ErrNoWorksheets = errors.New("workbook has no worksheets")

// AdapterError represents a failure moving one part of a worksheet to or
// from an xlsx file.
type AdapterError struct {
	SheetName string
	Component string // "sheet", "columns", "headers", "validations", "notes", "layout", "print_areas", ...
	Err       error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("xlsx error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *AdapterError) Unwrap() error {
	return e.Err
}

func newAdapterError(sheetName, component string, err error) *AdapterError {
	return &AdapterError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
