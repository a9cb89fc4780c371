package sheetdoc

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"pgregory.net/rapid"

	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/config"
	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/models"
)

func TestNewWorksheetDefaults(t *testing.T) {
	ws, err := NewWorksheet(nil, WorksheetOptions{ID: "4"})
	require.NoError(t, err)

	assert.Equal(t, "sheet4", ws.Name())
	assert.Equal(t, models.StateVisible, ws.State())
	assert.Equal(t, 15.0, ws.Properties().DefaultRowHeight.Value())
	assert.Equal(t, 55, ws.Properties().DyDescent.Value())

	ps := ws.PageSetup()
	assert.Equal(t, 0.7, ps.Margins.Left.Value())
	assert.Equal(t, 0.3, ps.Margins.Footer.Value())
	assert.Equal(t, "portrait", ps.Orientation.Value())
	assert.Equal(t, uint32(4294967295), ps.HorizontalDpi.Value())
	assert.False(t, ps.FitToPage.Value())
	assert.Equal(t, 100, ps.Scale.Value())
	assert.True(t, ps.RowBreaks.IsNull())
	assert.False(t, ps.PaperSize.IsDefined())

	hf := ws.HeaderFooter()
	assert.False(t, hf.DifferentFirst.Value())
	assert.True(t, hf.OddHeader.IsNull())
	assert.Nil(t, ws.AutoFilter())
	assert.Nil(t, ws.Protection())
	assert.Zero(t, ws.HeaderRowCount())
}

func TestNewWorksheetMergesOptions(t *testing.T) {
	ws, err := NewWorksheet(nil, WorksheetOptions{
		ID:    "1",
		Name:  "Report",
		State: models.StateHidden,
		Properties: &models.WorksheetProperties{
			TabColor: config.Some("FF00FF00"),
		},
		PageSetup: &models.PageSetup{
			Orientation: config.Some("landscape"),
			FitToWidth:  config.Some(2),
			Margins:     models.PageMargins{Left: config.Some(1.0)},
		},
		HeaderFooter: &models.HeaderFooter{OddFooter: config.Some("&P of &N")},
		AutoFilter:   &models.AutoFilter{Ref: "A1:C1"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.StateHidden, ws.State())
	assert.Equal(t, "FF00FF00", ws.Properties().TabColor.Value())
	assert.Equal(t, 15.0, ws.Properties().DefaultRowHeight.Value())

	ps := ws.PageSetup()
	assert.Equal(t, "landscape", ps.Orientation.Value())
	assert.True(t, ps.FitToPage.Value(), "fit to width without scale implies fit to page")
	assert.Equal(t, 2, ps.FitToWidth.Value())
	assert.Equal(t, 1, ps.FitToHeight.Value())
	assert.Equal(t, 1.0, ps.Margins.Left.Value())
	assert.Equal(t, 0.7, ps.Margins.Right.Value())

	assert.Equal(t, "&P of &N", ws.HeaderFooter().OddFooter.Value())
	require.NotNil(t, ws.AutoFilter())
	assert.Equal(t, "A1:C1", ws.AutoFilter().Ref)
}

func TestFitToPageWithScale(t *testing.T) {
	ws, err := NewWorksheet(nil, WorksheetOptions{
		ID:        "1",
		PageSetup: &models.PageSetup{FitToHeight: config.Some(1), Scale: config.Some(80)},
	})
	require.NoError(t, err)
	assert.False(t, ws.PageSetup().FitToPage.Value())
}

func TestNewWorksheetRejectsState(t *testing.T) {
	_, err := NewWorksheet(nil, WorksheetOptions{ID: "1", State: "gone"})
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestSetNameErrors(t *testing.T) {
	tests := []struct {
		name string
		want error
	}{
		{"", ErrEmptyName},
		{"History", ErrReservedName},
		{"a*b", ErrIllegalCharacter},
		{"what?", ErrIllegalCharacter},
		{"12:30", ErrIllegalCharacter},
		{"in/out", ErrIllegalCharacter},
		{`back\slash`, ErrIllegalCharacter},
		{"[draft]", ErrIllegalCharacter},
		{"'quoted", ErrIllegalQuoting},
		{"quoted'", ErrIllegalQuoting},
	}

	for _, tt := range tests {
		ws := newTestSheet(t)
		err := ws.SetName(tt.name)
		if !errors.Is(err, tt.want) {
			t.Errorf("SetName(%q) = %v, expected %v", tt.name, err, tt.want)
		}
		if ws.Name() != "Data" {
			t.Errorf("SetName(%q) changed the name to %q", tt.name, ws.Name())
		}
	}
}

func TestSetNameErrorCarriesName(t *testing.T) {
	ws := newTestSheet(t)
	err := ws.SetName("a/b")
	var nameErr *NameError
	require.ErrorAs(t, err, &nameErr)
	assert.Equal(t, "a/b", nameErr.Name)
	assert.Contains(t, err.Error(), "a/b")
}

func TestSetNameAllowsInnerQuote(t *testing.T) {
	ws := newTestSheet(t)
	require.NoError(t, ws.SetName("Bob's data"))
	assert.Equal(t, "Bob's data", ws.Name())
	require.NoError(t, ws.SetName("history"))
}

func TestSetNameTruncates(t *testing.T) {
	var buf bytes.Buffer
	ws, err := NewWorksheet(nil, WorksheetOptions{ID: "1", Logger: log.New(&buf, "", 0)})
	require.NoError(t, err)

	long := strings.Repeat("abcdefghij", 4)
	require.NoError(t, ws.SetName(long))
	assert.Equal(t, long[:31], ws.Name())
	assert.Contains(t, buf.String(), "will be truncated")
}

func TestSetNameTruncatesRunes(t *testing.T) {
	ws := newTestSheet(t)
	ws.logger = log.New(&bytes.Buffer{}, "", 0)
	long := strings.Repeat("é", 40)
	require.NoError(t, ws.SetName(long))
	assert.Equal(t, strings.Repeat("é", 31), ws.Name())
}

func TestAssignName(t *testing.T) {
	ws, err := NewWorksheet(nil, WorksheetOptions{ID: "7", Name: "Start"})
	require.NoError(t, err)

	err = ws.AssignName(2024)
	assert.ErrorIs(t, err, ErrInvalidNameType)
	assert.Equal(t, "Start", ws.Name())

	require.NoError(t, ws.AssignName(nil))
	assert.Equal(t, "sheet7", ws.Name())

	require.NoError(t, ws.AssignName("Again"))
	assert.Equal(t, "Again", ws.Name())
}

func TestSetNameSameIsNoop(t *testing.T) {
	wb := NewWorkbook()
	a, err := wb.AddSheet("Sheet1")
	require.NoError(t, err)

	// Even with a colliding sibling the identical name is never re-validated.
	b, err := wb.AddSheet("Other")
	require.NoError(t, err)
	b.name = "SHEET1"
	assert.NoError(t, a.SetName("Sheet1"))
}

func TestSetNameDuplicate(t *testing.T) {
	wb := NewWorkbook()
	_, err := wb.AddSheet("Sheet1")
	require.NoError(t, err)
	b, err := wb.AddSheet("Second")
	require.NoError(t, err)

	err = b.SetName("sheet1")
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, "Second", b.Name())

	_, err = wb.AddSheet("SHEET1")
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestSetNameCaseChangeOfSelf(t *testing.T) {
	wb := NewWorkbook()
	ws, err := wb.AddSheet("Totals")
	require.NoError(t, err)
	require.NoError(t, ws.SetName("TOTALS"))
	assert.Equal(t, "TOTALS", ws.Name())
}

func TestSetNameDuplicateUnicodeFold(t *testing.T) {
	wb := NewWorkbook()
	_, err := wb.AddSheet("Straße")
	require.NoError(t, err)
	_, err = wb.AddSheet("STRASSE")
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestValidNamesAccepted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`[a-z0-9 _.-]{1,31}`).Draw(t, "name")

		wb := NewWorkbook()
		if _, err := wb.AddSheet("Z!"); err != nil {
			t.Fatalf("seed sheet: %v", err)
		}
		ws, err := wb.AddSheet("Y!")
		if err != nil {
			t.Fatalf("second sheet: %v", err)
		}
		if err := ws.SetName(name); err != nil {
			t.Fatalf("SetName(%q): %v", name, err)
		}
		if ws.Name() != name {
			t.Fatalf("name = %q, want %q", ws.Name(), name)
		}
	})
}

func TestIllegalCharactersRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prefix := rapid.StringMatching(`[A-Za-z0-9 ]{0,10}`).Draw(t, "prefix")
		bad := rapid.SampledFrom([]string{"*", "?", ":", "/", `\`, "[", "]"}).Draw(t, "bad")
		suffix := rapid.StringMatching(`[A-Za-z0-9 ]{0,10}`).Draw(t, "suffix")

		ws, err := NewWorksheet(nil, WorksheetOptions{ID: "1", Name: "Keep"})
		if err != nil {
			t.Fatalf("new: %v", err)
		}
		err = ws.SetName(prefix + bad + suffix)
		if !errors.Is(err, ErrIllegalCharacter) {
			t.Fatalf("got %v, want ErrIllegalCharacter", err)
		}
		if ws.Name() != "Keep" {
			t.Fatalf("name changed to %q", ws.Name())
		}
	})
}

func TestLongNamesTruncated(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`[a-z]{32,80}`).Draw(t, "name")
		ws, err := NewWorksheet(nil, WorksheetOptions{ID: "1", Logger: log.New(&bytes.Buffer{}, "", 0)})
		if err != nil {
			t.Fatalf("new: %v", err)
		}
		if err := ws.SetName(name); err != nil {
			t.Fatalf("SetName: %v", err)
		}
		if ws.Name() != name[:31] {
			t.Fatalf("name = %q, want %q", ws.Name(), name[:31])
		}
	})
}

func TestSetColumns(t *testing.T) {
	ws := newTestSheet(t)
	err := ws.SetColumns([]models.ColumnDefn{
		{Header: "Name"},
		{Header: "Age", Key: "age"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, ws.HeaderRowCount())
	cols := ws.Columns()
	require.Len(t, cols, 2)
	assert.Equal(t, 1, cols[0].Number())
	assert.Equal(t, 2, cols[1].Number())

	c, ok := ws.ColumnByKey("age")
	require.True(t, ok)
	assert.Same(t, cols[1], c)
	assert.Equal(t, "Age", c.Header())
}

func TestSetColumnsReplacesKeys(t *testing.T) {
	ws := newTestSheet(t)
	require.NoError(t, ws.SetColumns([]models.ColumnDefn{{Key: "old"}}))
	require.NoError(t, ws.SetColumns([]models.ColumnDefn{{Key: "new"}, {}}))

	_, ok := ws.ColumnByKey("old")
	assert.False(t, ok)
	_, ok = ws.ColumnByKey("new")
	assert.True(t, ok)
	assert.Equal(t, 2, ws.ColumnCount())
	assert.Zero(t, ws.HeaderRowCount())
}

func TestSetColumnsEmpty(t *testing.T) {
	ws := newTestSheet(t)
	require.NoError(t, ws.SetColumns([]models.ColumnDefn{{Headers: []string{"a", "b"}}}))
	require.NoError(t, ws.SetColumns(nil))
	assert.Zero(t, ws.HeaderRowCount())
	assert.Zero(t, ws.ColumnCount())
}

func TestSetColumnsHeaderWinsOverHeaders(t *testing.T) {
	ws := newTestSheet(t)
	require.NoError(t, ws.SetColumns([]models.ColumnDefn{
		{Header: "Single", Headers: []string{"x", "y", "z"}},
	}))
	assert.Equal(t, 1, ws.HeaderRowCount())
}

func TestSetColumnsAtomic(t *testing.T) {
	ws := newTestSheet(t)
	require.NoError(t, ws.SetColumns([]models.ColumnDefn{{Header: "Keep", Key: "keep"}}))
	before := ws.Columns()

	err := ws.SetColumns(make([]models.ColumnDefn, excelize.MaxColumns+1))
	var colErr *ColumnError
	require.ErrorAs(t, err, &colErr)
	assert.ErrorIs(t, err, ErrInvalidColumn)

	assert.Equal(t, before, ws.Columns())
	assert.Equal(t, 1, ws.HeaderRowCount())
	_, ok := ws.ColumnByKey("keep")
	assert.True(t, ok)
}

func TestSetColumnsNormalizes(t *testing.T) {
	ws := newTestSheet(t)
	require.NoError(t, ws.SetColumns([]models.ColumnDefn{
		{Header: "A", Key: "a", OutlineLevel: 8},
		{Header: "B", OutlineLevel: -1},
		{Header: "C", Width: config.Some(-1.0)},
	}))
	require.Equal(t, 3, ws.ColumnCount())

	cols := ws.Columns()
	assert.Equal(t, models.MaxOutlineLevel, cols[0].OutlineLevel())
	assert.Equal(t, 0, cols[1].OutlineLevel())
	w, ok := cols[2].Width()
	assert.True(t, ok)
	assert.Equal(t, models.DefaultColumnWidth, w)
	assert.False(t, cols[2].IsCustomWidth())

	_, ok = ws.ColumnByKey("a")
	assert.True(t, ok)
}

func TestHeaderRowCountProperty(t *testing.T) {
	defnGen := rapid.Custom(func(t *rapid.T) models.ColumnDefn {
		var d models.ColumnDefn
		switch rapid.IntRange(0, 2).Draw(t, "kind") {
		case 1:
			d.Header = rapid.StringMatching(`[A-Za-z]{1,8}`).Draw(t, "header")
		case 2:
			d.Headers = rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,5}`), 0, 5).Draw(t, "headers")
		}
		return d
	})

	rapid.Check(t, func(t *rapid.T) {
		defs := rapid.SliceOfN(defnGen, 0, 12).Draw(t, "defs")

		want := 0
		for _, d := range defs {
			var n int
			if d.Header != "" {
				n = 1
			} else {
				n = len(d.Headers)
			}
			want = max(want, n)
		}

		ws, err := NewWorksheet(nil, WorksheetOptions{ID: "1"})
		if err != nil {
			t.Fatalf("new: %v", err)
		}
		if err := ws.SetColumns(defs); err != nil {
			t.Fatalf("SetColumns: %v", err)
		}
		if got := ws.HeaderRowCount(); got != want {
			t.Fatalf("HeaderRowCount = %d, want %d", got, want)
		}
		if ws.ColumnCount() != len(defs) {
			t.Fatalf("ColumnCount = %d, want %d", ws.ColumnCount(), len(defs))
		}
	})
}

func TestEachColumnKey(t *testing.T) {
	ws := newTestSheet(t)
	require.NoError(t, ws.SetColumns([]models.ColumnDefn{{Key: "b"}, {Key: "a"}}))
	ws.SetColumnKey("alias", ws.Columns()[0])

	var keys []string
	var numbers []int
	ws.EachColumnKey(func(k string, c *Column) {
		keys = append(keys, k)
		numbers = append(numbers, c.Number())
	})
	assert.Equal(t, []string{"a", "alias", "b"}, keys)
	assert.Equal(t, []int{2, 1, 1}, numbers)

	ws.DeleteColumnKey("alias")
	_, ok := ws.ColumnByKey("alias")
	assert.False(t, ok)
}

func TestWorksheetValidations(t *testing.T) {
	ws := newTestSheet(t)
	rule := models.DataValidation{
		Type:     models.ValidationWhole,
		Operator: models.OperatorBetween,
		Formulae: []string{"1", "10"},
	}
	ws.AddValidation("B7", rule)

	got, ok := ws.Validation("B7")
	require.True(t, ok)
	assert.Equal(t, rule, got)

	ws.RemoveValidation("B7")
	_, ok = ws.Validation("B7")
	assert.False(t, ok)
	assert.Zero(t, ws.Validations().Len())
}

func TestWorksheetNotes(t *testing.T) {
	ws := newTestSheet(t)
	n := ws.AddNote("A1", NewNote("header row"))

	got, ok := ws.Note("A1")
	require.True(t, ok)
	assert.Same(t, n, got)

	ws.RemoveNote("A1")
	_, ok = ws.Note("A1")
	assert.False(t, ok)
}

func TestMergeCells(t *testing.T) {
	ws := newTestSheet(t)
	require.NoError(t, ws.MergeCells("A1:C1"))
	require.NoError(t, ws.MergeCells("$A$3:$B$4"))

	err := ws.MergeCells("B1:B2")
	assert.ErrorIs(t, err, ErrMergeOverlap)
	assert.ErrorIs(t, ws.MergeCells("nope"), ErrInvalidRange)

	ws.UnmergeCells("B1")
	assert.Equal(t, []string{"$A$3:$B$4"}, ws.Merges())
}

func TestRowBreaksSortedUnique(t *testing.T) {
	ws := newTestSheet(t)
	ws.AddRowBreak(20)
	ws.AddRowBreak(10)
	ws.AddRowBreak(20)
	assert.Equal(t, []int{10, 20}, ws.RowBreaks())
}

func TestProtect(t *testing.T) {
	ws := newTestSheet(t)
	ws.Protect("secret", &models.SheetProtection{Sort: config.Some(true)})

	p := ws.Protection()
	require.NotNil(t, p)
	assert.Equal(t, "secret", p.Password)
	assert.True(t, p.SelectLockedCells.Value())
	assert.True(t, p.Sort.Value())
	assert.False(t, p.FormatCells.Value())

	ws.Unprotect()
	assert.Nil(t, ws.Protection())
}

func TestTablesAndAutoFilter(t *testing.T) {
	ws := newTestSheet(t)
	require.NoError(t, ws.AddTable(models.Table{Name: "Sales", Ref: "A1:D20"}))
	require.NoError(t, ws.AddTable(models.Table{Name: "Costs", Ref: "F1:G5"}))
	assert.ErrorIs(t, ws.AddTable(models.Table{Name: "Bad", Ref: "1A"}), ErrInvalidRange)

	tables := ws.Tables()
	require.Len(t, tables, 2)
	assert.Equal(t, "Costs", tables[0].Name)

	ws.RemoveTable("Costs")
	_, ok := ws.Table("Costs")
	assert.False(t, ok)

	require.NoError(t, ws.SetAutoFilter("A1:D1"))
	assert.Equal(t, "A1:D1", ws.AutoFilter().Ref)
	require.NoError(t, ws.SetAutoFilter(""))
	assert.Nil(t, ws.AutoFilter())
}

func TestUpdatePageSetupMergesNested(t *testing.T) {
	ws := newTestSheet(t)
	ws.UpdatePageSetup(models.PageSetup{
		Margins:   models.PageMargins{Top: config.Some(1.25)},
		PrintArea: config.Some("A1:G20"),
	})
	ps := ws.PageSetup()
	assert.Equal(t, 1.25, ps.Margins.Top.Value())
	assert.Equal(t, 0.75, ps.Margins.Bottom.Value())
	assert.Equal(t, "A1:G20", ps.PrintArea.Value())
	assert.Equal(t, "portrait", ps.Orientation.Value())
}

func TestWorksheetModel(t *testing.T) {
	ws := newTestSheet(t)
	require.NoError(t, ws.SetColumns([]models.ColumnDefn{{Header: "Name"}, {Header: "Age", Key: "age"}}))
	ws.AddValidation("B2", models.DataValidation{Type: models.ValidationWhole})
	ws.AddValidation("B3", models.DataValidation{Type: models.ValidationWhole})
	ws.RemoveValidation("B3")
	ws.AddNote("A1", NewNote("names"))

	m := ws.Model()
	assert.Equal(t, "Data", m.Name)
	assert.Equal(t, 1, m.HeaderRowCount)
	require.Len(t, m.Columns, 2)
	assert.Equal(t, "B", m.Columns[1].Letter)
	assert.Equal(t, map[string]int{"age": 2}, m.ColumnKeys)
	assert.Len(t, m.Validations, 1)
	assert.Contains(t, m.Validations, "B2")
	require.Contains(t, m.Notes, "A1")
	assert.Equal(t, "names", m.Notes["A1"].Texts[0].Text)
}

func TestWorksheetCollections(t *testing.T) {
	ws := newTestSheet(t)

	ws.AddView(models.WorksheetView{State: models.ViewFrozen, YSplit: 1})
	views := ws.Views()
	require.Len(t, views, 1)
	views[0].YSplit = 5
	assert.Equal(t, 1, ws.Views()[0].YSplit, "views are returned by copy")

	assert.Equal(t, 0, ws.AddImage(models.Image{Type: "image", Path: "logo.png", Range: "A1"}))
	assert.Equal(t, 1, ws.AddImage(models.Image{Type: "background", Path: "bg.png"}))
	assert.Len(t, ws.Media(), 2)

	ws.AddPivotTable(models.PivotTable{SourceRef: "A1:C10", Ref: "E1", Rows: []string{"Region"}, Values: []string{"Sales"}})
	ws.AddConditionalFormatting(models.ConditionalFormatting{
		Ref:   "C2:C10",
		Rules: []models.ConditionalFormattingRule{{Type: "cellIs", Operator: "greaterThan", Formulae: []string{"100"}}},
	})

	m := ws.Model()
	assert.Len(t, m.Views, 1)
	assert.Len(t, m.Media, 2)
	require.Len(t, m.PivotTables, 1)
	assert.Equal(t, "E1", m.PivotTables[0].Ref)
	require.Len(t, m.ConditionalFormattings, 1)
	assert.Equal(t, "C2:C10", m.ConditionalFormattings[0].Ref)
}

func TestSetState(t *testing.T) {
	ws := newTestSheet(t)
	require.NoError(t, ws.SetState(models.StateVeryHidden))
	assert.Equal(t, models.StateVeryHidden, ws.State())
	assert.ErrorIs(t, ws.SetState("gone"), ErrInvalidState)
	assert.Equal(t, models.StateVeryHidden, ws.State())
}
