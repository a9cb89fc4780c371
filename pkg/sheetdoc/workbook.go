package sheetdoc

import (
	"fmt"
	"log"
	"sort"
	"strconv"

	"golang.org/x/text/cases"

	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/models"
)

// Workbook owns a set of worksheets and assigns their ids and order.
type Workbook struct {
	worksheets []*Worksheet
	logger     *log.Logger
}

// WorkbookOption configures a Workbook.
type WorkbookOption func(*Workbook)

// WithLogger sets the logger handed to every worksheet the workbook creates.
func WithLogger(l *log.Logger) WorkbookOption {
	return func(wb *Workbook) { wb.logger = l }
}

// NewWorkbook returns an empty workbook.
func NewWorkbook(opts ...WorkbookOption) *Workbook {
	wb := &Workbook{}
	for _, opt := range opts {
		opt(wb)
	}
	return wb
}

// AddWorksheet creates a worksheet from opts. The workbook assigns the id and
// order number, overriding any given in opts.
func (wb *Workbook) AddWorksheet(opts WorksheetOptions) (*Worksheet, error) {
	nextID, nextOrder := 1, 1
	for _, ws := range wb.worksheets {
		if id, err := strconv.Atoi(ws.id); err == nil && id >= nextID {
			nextID = id + 1
		}
		if ws.orderNo >= nextOrder {
			nextOrder = ws.orderNo + 1
		}
	}
	opts.ID = strconv.Itoa(nextID)
	opts.OrderNo = nextOrder
	if opts.Logger == nil {
		opts.Logger = wb.logger
	}

	ws, err := NewWorksheet(wb, opts)
	if err != nil {
		return nil, err
	}
	wb.worksheets = append(wb.worksheets, ws)
	return ws, nil
}

// AddSheet creates a worksheet called name. An empty name gives the default
// "sheet<id>".
func (wb *Workbook) AddSheet(name string) (*Worksheet, error) {
	opts := WorksheetOptions{}
	if name != "" {
		opts.Name = name
	}
	return wb.AddWorksheet(opts)
}

// Worksheets returns the worksheets ordered by order number.
func (wb *Workbook) Worksheets() []*Worksheet {
	out := append([]*Worksheet(nil), wb.worksheets...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].orderNo < out[j].orderNo })
	return out
}

// Worksheet finds a worksheet by name, ignoring case.
func (wb *Workbook) Worksheet(name string) (*Worksheet, error) {
	fold := cases.Fold()
	want := fold.String(name)
	for _, ws := range wb.worksheets {
		if fold.String(ws.name) == want {
			return ws, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrWorksheetNotFound, name)
}

// WorksheetByID finds a worksheet by id.
func (wb *Workbook) WorksheetByID(id string) (*Worksheet, error) {
	for _, ws := range wb.worksheets {
		if ws.id == id {
			return ws, nil
		}
	}
	return nil, fmt.Errorf("%w: id %s", ErrWorksheetNotFound, id)
}

// RemoveWorksheet drops the worksheet with the given id.
func (wb *Workbook) RemoveWorksheet(id string) error {
	for i, ws := range wb.worksheets {
		if ws.id == id {
			wb.worksheets = append(wb.worksheets[:i], wb.worksheets[i+1:]...)
			ws.workbook = nil
			return nil
		}
	}
	return fmt.Errorf("%w: id %s", ErrWorksheetNotFound, id)
}

// Model returns a snapshot of every worksheet.
func (wb *Workbook) Model() models.WorkbookModel {
	m := models.WorkbookModel{Worksheets: []models.WorksheetModel{}}
	for _, ws := range wb.Worksheets() {
		m.Worksheets = append(m.Worksheets, ws.Model())
	}
	return m
}
