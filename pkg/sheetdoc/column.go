package sheetdoc

import (
	"reflect"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/config"
	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/models"
)

// columnKeys maps lookup keys to columns. Several keys may name one column.
type columnKeys map[string]*Column

// Column is one worksheet column. Columns are created and owned by their
// worksheet.
type Column struct {
	ws     *Worksheet
	keys   columnKeys
	number int

	header       string
	headers      []string
	key          string
	width        config.Optional[float64]
	style        models.Style
	hidden       bool
	outlineLevel int
}

// newColumn creates column number of ws. A nil defn leaves the column
// undefined: nothing is merged and every property reads as unset.
func newColumn(ws *Worksheet, keys columnKeys, number int, defn *models.ColumnDefn) *Column {
	c := &Column{ws: ws, keys: keys, number: number}
	if defn != nil {
		c.SetDefn(*defn)
	}
	return c
}

// Number is the 1-based position of the column.
func (c *Column) Number() int { return c.number }

// Letter is the column name, e.g. "A" or "AB".
func (c *Column) Letter() string {
	name, _ := excelize.ColumnNumberToName(c.number)
	return name
}

// Worksheet returns the owning worksheet.
func (c *Column) Worksheet() *Worksheet { return c.ws }

// Defn returns the definition view of the column.
func (c *Column) Defn() models.ColumnDefn {
	return models.ColumnDefn{
		Header:       c.header,
		Headers:      c.Headers(),
		Key:          c.key,
		Width:        c.width,
		Style:        c.style,
		Hidden:       c.hidden,
		OutlineLevel: c.outlineLevel,
	}
}

// SetDefn configures the column in one call. The key is registered with the
// worksheet. An unset or negative width takes DefaultColumnWidth and the
// outline level is clamped like SetOutlineLevel.
func (c *Column) SetDefn(d models.ColumnDefn) {
	c.SetKey(d.Key)
	if w, ok := d.Width.Get(); ok && w < 0 {
		d.Width = config.Optional[float64]{}
	}
	c.width = d.Width.Or(config.Some(models.DefaultColumnWidth))
	c.SetOutlineLevel(d.OutlineLevel)
	c.style = d.Style
	c.header = d.Header
	c.headers = nil
	if d.Header == "" && len(d.Headers) > 0 {
		c.headers = append([]string(nil), d.Headers...)
	}
	c.hidden = d.Hidden
	c.changed()
}

// Header returns the single header label, if one was set.
func (c *Column) Header() string { return c.header }

// SetHeader sets a single header label.
func (c *Column) SetHeader(h string) {
	c.header, c.headers = h, nil
	c.changed()
}

// Headers returns the header lines, one per header row.
func (c *Column) Headers() []string {
	if c.header != "" {
		return []string{c.header}
	}
	if len(c.headers) == 0 {
		return nil
	}
	return append([]string(nil), c.headers...)
}

// SetHeaders sets stacked header labels.
func (c *Column) SetHeaders(lines []string) {
	c.header, c.headers = "", append([]string(nil), lines...)
	c.changed()
}

// Key returns the lookup key of the column.
func (c *Column) Key() string { return c.key }

// SetKey changes the lookup key. The old key is released only when it still
// names this column; a later column claiming the same key shadows this one.
func (c *Column) SetKey(key string) {
	if c.key != "" && c.keys[c.key] == c {
		delete(c.keys, c.key)
	}
	c.key = key
	if key != "" {
		c.keys[key] = c
	}
}

// Width returns the column width, if set.
func (c *Column) Width() (float64, bool) { return c.width.Get() }

// SetWidth sets the column width.
func (c *Column) SetWidth(w float64) { c.width = config.Some(w) }

// Style returns the column style.
func (c *Column) Style() models.Style { return c.style }

// SetStyle sets the column style.
func (c *Column) SetStyle(s models.Style) { c.style = s }

// Hidden reports whether the column is hidden.
func (c *Column) Hidden() bool { return c.hidden }

// SetHidden hides or shows the column.
func (c *Column) SetHidden(h bool) { c.hidden = h }

// OutlineLevel returns the grouping level.
func (c *Column) OutlineLevel() int { return c.outlineLevel }

// SetOutlineLevel sets the grouping level, clamped to 0..MaxOutlineLevel.
func (c *Column) SetOutlineLevel(level int) {
	c.outlineLevel = min(max(level, 0), models.MaxOutlineLevel)
}

// Collapsed reports whether the column is grouped deeper than the
// worksheet's column outline level.
func (c *Column) Collapsed() bool {
	return c.outlineLevel > c.ws.properties.OutlineLevelCol.Value()
}

// IsCustomWidth reports whether the width differs from the default.
func (c *Column) IsCustomWidth() bool {
	w, ok := c.width.Get()
	return ok && w != models.DefaultColumnWidth
}

// IsDefault reports whether the column carries no formatting of its own.
func (c *Column) IsDefault() bool {
	return !c.IsCustomWidth() && !c.hidden && c.outlineLevel == 0 && c.style.IsEmpty()
}

// EquivalentTo reports whether other formats identically. Headers and keys
// are not compared.
func (c *Column) EquivalentTo(other *Column) bool {
	return c.width == other.width &&
		c.hidden == other.hidden &&
		c.outlineLevel == other.outlineLevel &&
		reflect.DeepEqual(c.style, other.style)
}

// changed refreshes the worksheet's derived state once the column is part of
// it. Columns still being built for SetColumns are skipped.
func (c *Column) changed() {
	if c.number <= len(c.ws.columns) && c.ws.columns[c.number-1] == c {
		c.ws.recount()
	}
}
