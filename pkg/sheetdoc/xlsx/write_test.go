package xlsx

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc"
	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/config"
	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/models"
)

func buildWorkbook(t *testing.T) *sheetdoc.Workbook {
	t.Helper()
	wb := sheetdoc.NewWorkbook()

	orders, err := wb.AddWorksheet(sheetdoc.WorksheetOptions{
		Name:      "Orders",
		PageSetup: &models.PageSetup{Orientation: config.Some("landscape"), PrintArea: config.Some("A1:C20")},
	})
	require.NoError(t, err)
	require.NoError(t, orders.SetColumns([]models.ColumnDefn{
		{Header: "Id", Key: "id", Width: config.Some(6.0)},
		{Headers: []string{"Customer", "Name"}, Key: "customer", Width: config.Some(30.0)},
		{Header: "Total", Key: "total", Hidden: true, OutlineLevel: 1, Style: models.Style{NumFmt: "0.00"}},
	}))
	orders.AddValidation("C3", models.DataValidation{
		Type:     models.ValidationDecimal,
		Operator: models.OperatorGreaterThanOrEqual,
		Formulae: []string{"0"},
	})
	orders.AddNote("A1", sheetdoc.NewNote("order number"))
	require.NoError(t, orders.MergeCells("D1:E1"))

	archive, err := wb.AddWorksheet(sheetdoc.WorksheetOptions{Name: "Archive", State: models.StateHidden})
	require.NoError(t, err)
	require.NoError(t, archive.SetColumns([]models.ColumnDefn{{Header: "Year"}}))
	return wb
}

func TestSaveWorkbookRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.xlsx")
	require.NoError(t, SaveWorkbook(buildWorkbook(t), path))

	res, err := Open(path, ReadOptions{HeaderRows: 2})
	require.NoError(t, err)
	assert.Equal(t, "orders.xlsx", res.BookName)

	sheets := res.Workbook.Worksheets()
	require.Len(t, sheets, 2)
	orders, archive := sheets[0], sheets[1]
	assert.Equal(t, "Orders", orders.Name())
	assert.Equal(t, "Archive", archive.Name())
	assert.Equal(t, models.StateHidden, archive.State())

	require.Equal(t, 3, orders.ColumnCount())
	assert.Equal(t, 2, orders.HeaderRowCount())
	cols := orders.Columns()
	assert.Equal(t, "Id", cols[0].Header())
	assert.Equal(t, []string{"Customer", "Name"}, cols[1].Headers())
	w, ok := cols[1].Width()
	require.True(t, ok)
	assert.InDelta(t, 30.0, w, 1.0)
	assert.True(t, cols[2].Hidden())
	assert.Equal(t, 1, cols[2].OutlineLevel())

	rule, ok := orders.Validation("C3")
	require.True(t, ok)
	assert.Equal(t, models.ValidationDecimal, rule.Type)

	note, ok := orders.Note("A1")
	require.True(t, ok)
	assert.Contains(t, note.String(), "order number")

	assert.Equal(t, []string{"D1:E1"}, orders.Merges())
	assert.Equal(t, "landscape", orders.PageSetup().Orientation.Value())
	assert.Equal(t, "A1:C20", orders.PageSetup().PrintArea.Value())

	m := res.Model()
	require.Len(t, m.Worksheets, 2)
	assert.Equal(t, "orders.xlsx", m.BookName)
	assert.Equal(t, "A1:C2", m.Worksheets[0].UsedRange)
}

func TestSaveWorkbookEmpty(t *testing.T) {
	err := SaveWorkbook(sheetdoc.NewWorkbook(), filepath.Join(t.TempDir(), "empty.xlsx"))
	assert.ErrorIs(t, err, ErrNoWorksheets)
}

func TestWriteIntoExistingFile(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	wb := sheetdoc.NewWorkbook()
	ws, err := wb.AddSheet("Extra")
	require.NoError(t, err)
	c, err := ws.Column(2)
	require.NoError(t, err)
	c.SetHeader("Amount")

	require.NoError(t, Write(f, ws))
	assert.Equal(t, []string{"Sheet1", "Extra"}, f.GetSheetList())

	v, err := f.GetCellValue("Extra", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Amount", v)
}

func TestWriteReportsComponent(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	wb := sheetdoc.NewWorkbook()
	ws, err := wb.AddSheet("Bad")
	require.NoError(t, err)
	ws.AddValidation("A1", models.DataValidation{Type: "bogus"})

	err = Write(f, ws)
	var adapterErr *AdapterError
	require.True(t, errors.As(err, &adapterErr))
	assert.Equal(t, "Bad", adapterErr.SheetName)
	assert.Equal(t, "validations", adapterErr.Component)
}

func TestReadOptionsExclude(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.xlsx")
	require.NoError(t, SaveWorkbook(buildWorkbook(t), path))

	no := false
	res, err := Open(path, ReadOptions{HeaderRows: 1, IncludeValidations: &no, IncludeNotes: &no, IncludePrintAreas: &no})
	require.NoError(t, err)

	orders, err := res.Workbook.Worksheet("Orders")
	require.NoError(t, err)
	assert.Zero(t, orders.Validations().Len())
	assert.Zero(t, orders.Notes().Len())
	assert.False(t, orders.PageSetup().PrintArea.IsSet())
	assert.Equal(t, 1, orders.HeaderRowCount())
}
