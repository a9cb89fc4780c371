package sheetdoc

import (
	"errors"
	"fmt"
)

// Name legality errors.
var (
	// ErrInvalidNameType indicates a worksheet name that is not a string.
	ErrInvalidNameType = errors.New("the name has to be a string")
	// ErrEmptyName indicates an empty worksheet name.
	ErrEmptyName = errors.New("the name can't be empty")
	// ErrReservedName indicates the protected name "History".
	ErrReservedName = errors.New(`the name "History" is protected, please use a different name`)
	// ErrIllegalCharacter indicates a name containing * ? : \ / [ or ].
	ErrIllegalCharacter = errors.New(`worksheet name cannot include any of the following characters: * ? : \ / [ ]`)
	// ErrIllegalQuoting indicates a name starting or ending with a single quote.
	ErrIllegalQuoting = errors.New("the first or last character of worksheet name cannot be a single quotation mark")
	// ErrDuplicateName indicates a name already used by a sibling worksheet.
	ErrDuplicateName = errors.New("worksheet name already exists")
)

// ErrInvalidColumn indicates a column definition that cannot be applied.
var ErrInvalidColumn = errors.New("invalid column definition")

// ErrWorksheetNotFound indicates a lookup for a worksheet the workbook does not own.
var ErrWorksheetNotFound = errors.New("worksheet not found")

// ErrInvalidState indicates an unknown worksheet state.
var ErrInvalidState = errors.New("invalid worksheet state")

// ErrInvalidRange indicates a malformed cell range reference.
var ErrInvalidRange = errors.New("invalid range reference")

// ErrMergeOverlap indicates a merge overlapping an existing one.
var ErrMergeOverlap = errors.New("cannot merge already merged cells")

// NameError reports a rejected worksheet name.
type NameError struct {
	Name string
	Err  error
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Name)
}

func (e *NameError) Unwrap() error {
	return e.Err
}

func newNameError(name string, err error) *NameError {
	return &NameError{Name: name, Err: err}
}

// ColumnError reports a rejected column definition.
type ColumnError struct {
	Number int
	Reason string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%v: column %d: %s", ErrInvalidColumn, e.Number, e.Reason)
}

func (e *ColumnError) Unwrap() error {
	return ErrInvalidColumn
}
