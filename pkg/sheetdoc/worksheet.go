package sheetdoc

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"

	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/config"
	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/models"
)

// MaxNameLength is the longest worksheet name a workbook accepts. Longer
// names are truncated.
const MaxNameLength = 31

// ReservedName is the worksheet name the application keeps for itself.
const ReservedName = "History"

const illegalNameChars = `*?:/\[]`

// Siblings is the view a worksheet has of its owning workbook.
type Siblings interface {
	Worksheets() []*Worksheet
}

// Worksheet is one sheet of a workbook: its columns, validations, notes and
// layout configuration.
type Worksheet struct {
	workbook Siblings
	logger   *log.Logger

	id      string
	orderNo int
	name    string
	named   bool
	state   models.WorksheetState

	columns        []*Column
	keys           columnKeys
	headerRowCount int

	validations *DataValidations
	notes       *Notes

	properties   models.WorksheetProperties
	pageSetup    models.PageSetup
	headerFooter models.HeaderFooter
	views        []models.WorksheetView
	autoFilter   *models.AutoFilter
	protection   *models.SheetProtection

	merges                 []string
	rowBreaks              []int
	media                  []models.Image
	tables                 map[string]models.Table
	pivotTables            []models.PivotTable
	conditionalFormattings []models.ConditionalFormatting
}

// NewWorksheet builds a worksheet owned by wb from opts. wb may be nil for a
// detached worksheet. The name goes through the same checks as SetName.
func NewWorksheet(wb Siblings, opts WorksheetOptions) (*Worksheet, error) {
	state := opts.State
	if state == "" {
		state = models.StateVisible
	}
	if !state.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidState, state)
	}

	ws := &Worksheet{
		workbook:     wb,
		logger:       opts.logger(),
		id:           opts.ID,
		orderNo:      opts.OrderNo,
		state:        state,
		keys:         make(columnKeys),
		validations:  NewRegistry[models.DataValidation](),
		notes:        NewRegistry[*Note](),
		properties:   config.Merge(models.DefaultWorksheetProperties(), opts.Properties),
		pageSetup:    config.Merge(models.DefaultPageSetup(opts.PageSetup), opts.PageSetup),
		headerFooter: config.Merge(models.DefaultHeaderFooter(), opts.HeaderFooter),
		views:        append([]models.WorksheetView(nil), opts.Views...),
		tables:       make(map[string]models.Table),
	}
	if opts.AutoFilter != nil {
		af := *opts.AutoFilter
		ws.autoFilter = &af
	}
	if err := ws.AssignName(opts.Name); err != nil {
		return nil, err
	}
	return ws, nil
}

// ID is the identifier assigned by the workbook.
func (ws *Worksheet) ID() string { return ws.id }

// OrderNo is the position of the worksheet among its siblings.
func (ws *Worksheet) OrderNo() int { return ws.orderNo }

// SetOrderNo moves the worksheet among its siblings.
func (ws *Worksheet) SetOrderNo(n int) { ws.orderNo = n }

// Name is the display name.
func (ws *Worksheet) Name() string { return ws.name }

// AssignName sets the name from a dynamically typed value, as decoded from a
// definition file. Nil resets the name to its default; values that are not
// strings fail with ErrInvalidNameType.
func (ws *Worksheet) AssignName(v any) error {
	switch name := v.(type) {
	case nil:
		return ws.ResetName()
	case string:
		return ws.SetName(name)
	default:
		return newNameError(fmt.Sprint(v), ErrInvalidNameType)
	}
}

// ResetName names the worksheet "sheet" followed by its id.
func (ws *Worksheet) ResetName() error {
	return ws.SetName("sheet" + ws.id)
}

// SetName validates and commits a new name. Assigning the current name is a
// no-op. Names longer than MaxNameLength are truncated with a warning. On
// error the name is unchanged.
func (ws *Worksheet) SetName(name string) error {
	if ws.named && name == ws.name {
		return nil
	}
	if name == "" {
		return newNameError(name, ErrEmptyName)
	}
	if name == ReservedName {
		return newNameError(name, ErrReservedName)
	}
	if strings.ContainsAny(name, illegalNameChars) {
		return newNameError(name, ErrIllegalCharacter)
	}
	if strings.HasPrefix(name, "'") || strings.HasSuffix(name, "'") {
		return newNameError(name, ErrIllegalQuoting)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		ws.logger.Printf("[Worksheet] name %q exceeds %d chars and will be truncated", name, MaxNameLength)
		name = truncateRunes(name, MaxNameLength)
	}
	if ws.nameTaken(name) {
		return newNameError(name, ErrDuplicateName)
	}
	ws.name, ws.named = name, true
	return nil
}

func (ws *Worksheet) nameTaken(name string) bool {
	if ws.workbook == nil {
		return false
	}
	fold := cases.Fold()
	folded := fold.String(name)
	for _, other := range ws.workbook.Worksheets() {
		if other == nil || other == ws {
			continue
		}
		if fold.String(other.name) == folded {
			return true
		}
	}
	return false
}

func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// State is the tab visibility.
func (ws *Worksheet) State() models.WorksheetState { return ws.state }

// SetState changes the tab visibility.
func (ws *Worksheet) SetState(state models.WorksheetState) error {
	if !state.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidState, state)
	}
	ws.state = state
	return nil
}

// Columns returns the columns in position order.
func (ws *Worksheet) Columns() []*Column {
	return append([]*Column(nil), ws.columns...)
}

// ColumnCount is the number of columns defined or touched.
func (ws *Worksheet) ColumnCount() int { return len(ws.columns) }

// HeaderRowCount is the number of stacked header rows declared by the
// columns.
func (ws *Worksheet) HeaderRowCount() int { return ws.headerRowCount }

// SetColumns replaces every column with one built from each definition, in
// order, numbered from 1. Existing columns and keys are discarded.
// Definitions are normalized as by Column.SetDefn. More than MaxColumns
// definitions is an error and leaves the worksheet unchanged.
func (ws *Worksheet) SetColumns(defs []models.ColumnDefn) error {
	if len(defs) > excelize.MaxColumns {
		return &ColumnError{Number: len(defs), Reason: "too many columns"}
	}

	keys := make(columnKeys)
	columns := make([]*Column, 0, len(defs))
	for i, d := range defs {
		c := newColumn(ws, keys, i+1, nil)
		c.SetDefn(d)
		columns = append(columns, c)
	}

	ws.columns, ws.keys = columns, keys
	ws.headerRowCount = countHeaderRows(defs)
	return nil
}

func countHeaderRows(defs []models.ColumnDefn) int {
	n := 0
	for _, d := range defs {
		n = max(n, d.HeaderCount())
	}
	return n
}

// recount refreshes the header row count after a column changed.
func (ws *Worksheet) recount() {
	n := 0
	for _, c := range ws.columns {
		n = max(n, len(c.Headers()))
	}
	ws.headerRowCount = n
}

// Column returns column n, creating undefined columns up to n as needed.
func (ws *Worksheet) Column(n int) (*Column, error) {
	if n < 1 || n > excelize.MaxColumns {
		return nil, &ColumnError{Number: n, Reason: "column number out of range"}
	}
	for len(ws.columns) < n {
		ws.columns = append(ws.columns, newColumn(ws, ws.keys, len(ws.columns)+1, nil))
	}
	return ws.columns[n-1], nil
}

// ColumnByLetter returns the column named letter, e.g. "C".
func (ws *Worksheet) ColumnByLetter(letter string) (*Column, error) {
	n, err := excelize.ColumnNameToNumber(letter)
	if err != nil {
		return nil, &ColumnError{Reason: err.Error()}
	}
	return ws.Column(n)
}

// ColumnByKey returns the column registered under key.
func (ws *Worksheet) ColumnByKey(key string) (*Column, bool) {
	c, ok := ws.keys[key]
	return c, ok
}

// SetColumnKey registers key as an alias of c, shadowing any earlier holder.
func (ws *Worksheet) SetColumnKey(key string, c *Column) {
	ws.keys[key] = c
}

// DeleteColumnKey removes key.
func (ws *Worksheet) DeleteColumnKey(key string) {
	delete(ws.keys, key)
}

// EachColumnKey calls fn for every key in sorted key order.
func (ws *Worksheet) EachColumnKey(fn func(key string, c *Column)) {
	keys := make([]string, 0, len(ws.keys))
	for k := range ws.keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fn(k, ws.keys[k])
	}
}

// AddValidation sets the validation rule at address.
func (ws *Worksheet) AddValidation(address string, rule models.DataValidation) models.DataValidation {
	return ws.validations.Add(address, rule)
}

// Validation returns the validation rule at address.
func (ws *Worksheet) Validation(address string) (models.DataValidation, bool) {
	return ws.validations.Find(address)
}

// RemoveValidation clears the validation rule at address.
func (ws *Worksheet) RemoveValidation(address string) {
	ws.validations.Remove(address)
}

// Validations returns the validation registry.
func (ws *Worksheet) Validations() *DataValidations { return ws.validations }

// AddNote sets the note at address.
func (ws *Worksheet) AddNote(address string, note *Note) *Note {
	return ws.notes.Add(address, note)
}

// Note returns the note at address.
func (ws *Worksheet) Note(address string) (*Note, bool) {
	return ws.notes.Find(address)
}

// RemoveNote clears the note at address.
func (ws *Worksheet) RemoveNote(address string) {
	ws.notes.Remove(address)
}

// Notes returns the note registry.
func (ws *Worksheet) Notes() *Notes { return ws.notes }

// Properties returns the sheet properties.
func (ws *Worksheet) Properties() models.WorksheetProperties { return ws.properties }

// UpdateProperties overlays p onto the current properties.
func (ws *Worksheet) UpdateProperties(p models.WorksheetProperties) {
	ws.properties = ws.properties.Merge(p)
}

// PageSetup returns the print configuration.
func (ws *Worksheet) PageSetup() models.PageSetup { return ws.pageSetup }

// UpdatePageSetup overlays p onto the current page setup.
func (ws *Worksheet) UpdatePageSetup(p models.PageSetup) {
	ws.pageSetup = ws.pageSetup.Merge(p)
}

// HeaderFooter returns the printed headers and footers.
func (ws *Worksheet) HeaderFooter() models.HeaderFooter { return ws.headerFooter }

// UpdateHeaderFooter overlays h onto the current headers and footers.
func (ws *Worksheet) UpdateHeaderFooter(h models.HeaderFooter) {
	ws.headerFooter = ws.headerFooter.Merge(h)
}

// Views returns the sheet views.
func (ws *Worksheet) Views() []models.WorksheetView {
	return append([]models.WorksheetView(nil), ws.views...)
}

// AddView appends a sheet view.
func (ws *Worksheet) AddView(v models.WorksheetView) {
	ws.views = append(ws.views, v)
}

// AutoFilter returns the filter range, or nil.
func (ws *Worksheet) AutoFilter() *models.AutoFilter { return ws.autoFilter }

// SetAutoFilter sets the filter range. An empty ref removes the filter.
func (ws *Worksheet) SetAutoFilter(ref string) error {
	if ref == "" {
		ws.autoFilter = nil
		return nil
	}
	if _, err := parseRange(ref); err != nil {
		return err
	}
	ws.autoFilter = &models.AutoFilter{Ref: ref}
	return nil
}

// Protection returns the sheet protection, or nil when unprotected.
func (ws *Worksheet) Protection() *models.SheetProtection { return ws.protection }

// Protect protects the sheet. Options left unset take the defaults, which
// only allow selecting cells.
func (ws *Worksheet) Protect(password string, opts *models.SheetProtection) {
	p := config.Merge(models.DefaultSheetProtection(), opts)
	if password != "" {
		p.Password = password
	}
	ws.protection = &p
}

// Unprotect removes sheet protection.
func (ws *Worksheet) Unprotect() { ws.protection = nil }

// MergeCells merges the range ref, e.g. "A1:C2". Ranges may not overlap an
// existing merge.
func (ws *Worksheet) MergeCells(ref string) error {
	area, err := parseRange(ref)
	if err != nil {
		return err
	}
	for _, m := range ws.merges {
		other, _ := parseRange(m)
		if overlaps(area, other) {
			return fmt.Errorf("%w: %s overlaps %s", ErrMergeOverlap, ref, m)
		}
	}
	ws.merges = append(ws.merges, ref)
	return nil
}

// UnmergeCells removes the merge covering the cell or range ref.
func (ws *Worksheet) UnmergeCells(ref string) {
	area, err := parseRange(ref)
	if err != nil {
		return
	}
	kept := ws.merges[:0]
	for _, m := range ws.merges {
		other, _ := parseRange(m)
		if !overlaps(area, other) {
			kept = append(kept, m)
		}
	}
	ws.merges = kept
}

// Merges returns the merged ranges in the order they were merged.
func (ws *Worksheet) Merges() []string {
	return append([]string(nil), ws.merges...)
}

// AddRowBreak adds a page break after row.
func (ws *Worksheet) AddRowBreak(row int) {
	for _, r := range ws.rowBreaks {
		if r == row {
			return
		}
	}
	ws.rowBreaks = append(ws.rowBreaks, row)
	sort.Ints(ws.rowBreaks)
}

// RowBreaks returns the rows followed by a page break.
func (ws *Worksheet) RowBreaks() []int {
	return append([]int(nil), ws.rowBreaks...)
}

// AddImage places an image and returns its index in Media.
func (ws *Worksheet) AddImage(img models.Image) int {
	ws.media = append(ws.media, img)
	return len(ws.media) - 1
}

// Media returns the placed images.
func (ws *Worksheet) Media() []models.Image {
	return append([]models.Image(nil), ws.media...)
}

// AddTable adds or replaces the table named t.Name.
func (ws *Worksheet) AddTable(t models.Table) error {
	if _, err := parseRange(t.Ref); err != nil {
		return err
	}
	ws.tables[t.Name] = t
	return nil
}

// Table returns the table called name.
func (ws *Worksheet) Table(name string) (models.Table, bool) {
	t, ok := ws.tables[name]
	return t, ok
}

// RemoveTable deletes the table called name.
func (ws *Worksheet) RemoveTable(name string) {
	delete(ws.tables, name)
}

// Tables returns the tables sorted by name.
func (ws *Worksheet) Tables() []models.Table {
	out := make([]models.Table, 0, len(ws.tables))
	for _, t := range ws.tables {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// AddPivotTable records a pivot table.
func (ws *Worksheet) AddPivotTable(p models.PivotTable) {
	ws.pivotTables = append(ws.pivotTables, p)
}

// PivotTables returns the pivot tables.
func (ws *Worksheet) PivotTables() []models.PivotTable {
	return append([]models.PivotTable(nil), ws.pivotTables...)
}

// AddConditionalFormatting appends a conditional format.
func (ws *Worksheet) AddConditionalFormatting(cf models.ConditionalFormatting) {
	ws.conditionalFormattings = append(ws.conditionalFormattings, cf)
}

// ConditionalFormattings returns the conditional formats.
func (ws *Worksheet) ConditionalFormattings() []models.ConditionalFormatting {
	return append([]models.ConditionalFormatting(nil), ws.conditionalFormattings...)
}

// Model returns a snapshot of the worksheet.
func (ws *Worksheet) Model() models.WorksheetModel {
	m := models.WorksheetModel{
		ID:                     ws.id,
		OrderNo:                ws.orderNo,
		Name:                   ws.name,
		State:                  ws.state,
		HeaderRowCount:         ws.headerRowCount,
		Properties:             ws.properties,
		PageSetup:              ws.pageSetup,
		HeaderFooter:           ws.headerFooter,
		Views:                  ws.Views(),
		Merges:                 ws.Merges(),
		RowBreaks:              ws.RowBreaks(),
		Media:                  ws.Media(),
		PivotTables:            ws.PivotTables(),
		ConditionalFormattings: ws.ConditionalFormattings(),
	}
	if len(ws.tables) > 0 {
		m.Tables = ws.Tables()
	}
	if ws.autoFilter != nil {
		af := *ws.autoFilter
		m.AutoFilter = &af
	}
	if ws.protection != nil {
		p := *ws.protection
		m.Protection = &p
	}
	for _, c := range ws.columns {
		m.Columns = append(m.Columns, models.ColumnModel{Number: c.number, Letter: c.Letter(), Defn: c.Defn()})
	}
	if len(ws.keys) > 0 {
		m.ColumnKeys = make(map[string]int, len(ws.keys))
		for k, c := range ws.keys {
			m.ColumnKeys[k] = c.number
		}
	}
	if ws.validations.Len() > 0 {
		m.Validations = make(map[string]models.DataValidation)
		ws.validations.Each(func(addr string, v models.DataValidation) {
			m.Validations[addr] = v
		})
	}
	if ws.notes.Len() > 0 {
		m.Notes = make(map[string]models.NoteConfig)
		ws.notes.Each(func(addr string, n *Note) {
			m.Notes[addr] = n.Config()
		})
	}
	return m
}
