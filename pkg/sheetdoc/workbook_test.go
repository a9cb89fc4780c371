package sheetdoc

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkbookAssignsIDsAndOrder(t *testing.T) {
	wb := NewWorkbook()
	a, err := wb.AddSheet("")
	require.NoError(t, err)
	b, err := wb.AddSheet("Summary")
	require.NoError(t, err)

	assert.Equal(t, "1", a.ID())
	assert.Equal(t, "sheet1", a.Name())
	assert.Equal(t, 1, a.OrderNo())
	assert.Equal(t, "2", b.ID())
	assert.Equal(t, 2, b.OrderNo())
}

func TestWorkbookWorksheetsOrdered(t *testing.T) {
	wb := NewWorkbook()
	a, _ := wb.AddSheet("A")
	b, _ := wb.AddSheet("B")
	a.SetOrderNo(5)

	got := wb.Worksheets()
	require.Len(t, got, 2)
	assert.Same(t, b, got[0])
	assert.Same(t, a, got[1])

	c, err := wb.AddSheet("C")
	require.NoError(t, err)
	assert.Equal(t, 6, c.OrderNo())
}

func TestWorkbookLookup(t *testing.T) {
	wb := NewWorkbook()
	ws, _ := wb.AddSheet("Inventory")

	got, err := wb.Worksheet("inventory")
	require.NoError(t, err)
	assert.Same(t, ws, got)

	got, err = wb.WorksheetByID(ws.ID())
	require.NoError(t, err)
	assert.Same(t, ws, got)

	_, err = wb.Worksheet("missing")
	assert.ErrorIs(t, err, ErrWorksheetNotFound)
}

func TestWorkbookRemoveFreesName(t *testing.T) {
	wb := NewWorkbook()
	ws, _ := wb.AddSheet("Temp")
	require.NoError(t, wb.RemoveWorksheet(ws.ID()))
	assert.ErrorIs(t, wb.RemoveWorksheet(ws.ID()), ErrWorksheetNotFound)

	again, err := wb.AddSheet("TEMP")
	require.NoError(t, err)
	assert.Equal(t, "1", again.ID(), "ids restart from the highest remaining id")
}

func TestWorkbookLogger(t *testing.T) {
	var buf bytes.Buffer
	wb := NewWorkbook(WithLogger(log.New(&buf, "", 0)))
	ws, err := wb.AddSheet(strings.Repeat("x", 35))
	require.NoError(t, err)
	assert.Len(t, ws.Name(), 31)
	assert.Contains(t, buf.String(), "truncated")
}

func TestWorkbookModel(t *testing.T) {
	wb := NewWorkbook()
	_, _ = wb.AddSheet("One")
	_, _ = wb.AddSheet("Two")

	m := wb.Model()
	require.Len(t, m.Worksheets, 2)
	assert.Equal(t, "One", m.Worksheets[0].Name)
	assert.Equal(t, "Two", m.Worksheets[1].Name)
}
