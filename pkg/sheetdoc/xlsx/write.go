package xlsx

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc"
	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/models"
)

// defaultSheet is the sheet every new excelize file starts with.
const defaultSheet = "Sheet1"

// SaveWorkbook writes every worksheet of wb into a new file at path.
func SaveWorkbook(wb *sheetdoc.Workbook, path string) error {
	sheets := wb.Worksheets()
	if len(sheets) == 0 {
		return ErrNoWorksheets
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, sheets[0].Name()); err != nil {
		return newAdapterError(sheets[0].Name(), "sheet", err)
	}
	for _, ws := range sheets {
		if err := Write(f, ws); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

// Write projects ws onto the sheet of the same name in f, creating the sheet
// when it does not exist.
func Write(f *excelize.File, ws *sheetdoc.Worksheet) error {
	name := ws.Name()
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return newAdapterError(name, "sheet", err)
	}
	if idx == -1 {
		if _, err := f.NewSheet(name); err != nil {
			return newAdapterError(name, "sheet", err)
		}
	}

	steps := []struct {
		component string
		fn        func(*excelize.File, *sheetdoc.Worksheet) error
	}{
		{"columns", writeColumns},
		{"headers", writeHeaders},
		{"validations", writeValidations},
		{"notes", writeNotes},
		{"merges", writeMerges},
		{"layout", writeLayout},
		{"views", writeViews},
		{"print_areas", writePrintAreas},
		{"tables", writeTables},
		{"pivot_tables", writePivotTables},
		{"media", writeMedia},
		{"protection", writeProtection},
		{"state", writeState},
	}
	for _, step := range steps {
		if err := step.fn(f, ws); err != nil {
			return newAdapterError(name, step.component, err)
		}
	}
	return nil
}

func writeColumns(f *excelize.File, ws *sheetdoc.Worksheet) error {
	sheet := ws.Name()
	for _, c := range ws.Columns() {
		letter := c.Letter()
		if w, ok := c.Width(); ok {
			if err := f.SetColWidth(sheet, letter, letter, w); err != nil {
				return err
			}
		}
		if c.Hidden() {
			if err := f.SetColVisible(sheet, letter, false); err != nil {
				return err
			}
		}
		if lvl := c.OutlineLevel(); lvl > 0 {
			if err := f.SetColOutlineLevel(sheet, letter, uint8(lvl)); err != nil {
				return err
			}
		}
		if style := c.Style(); !style.IsEmpty() {
			id, err := f.NewStyle(toStyle(style))
			if err != nil {
				return err
			}
			if err := f.SetColStyle(sheet, letter, id); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeHeaders writes each column's header lines into rows 1..HeaderRowCount.
func writeHeaders(f *excelize.File, ws *sheetdoc.Worksheet) error {
	for _, c := range ws.Columns() {
		for i, line := range c.Headers() {
			cell, err := excelize.CoordinatesToCellName(c.Number(), i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(ws.Name(), cell, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeValidations(f *excelize.File, ws *sheetdoc.Worksheet) error {
	var err error
	ws.Validations().Each(func(address string, rule models.DataValidation) {
		if err != nil {
			return
		}
		var dv *excelize.DataValidation
		if dv, err = toDataValidation(address, rule); err != nil {
			return
		}
		err = f.AddDataValidation(ws.Name(), dv)
	})
	return err
}

func writeNotes(f *excelize.File, ws *sheetdoc.Worksheet) error {
	var err error
	ws.Notes().Each(func(address string, n *sheetdoc.Note) {
		if err != nil {
			return
		}
		cfg := n.Config()
		comment := excelize.Comment{Cell: address}
		for _, t := range cfg.Texts {
			comment.Paragraph = append(comment.Paragraph, excelize.RichTextRun{
				Text: t.Text,
				Font: toFont(t.Font),
			})
		}
		err = f.AddComment(ws.Name(), comment)
	})
	return err
}

func writeMerges(f *excelize.File, ws *sheetdoc.Worksheet) error {
	for _, ref := range ws.Merges() {
		area, err := sheetdoc.ParseRange(ref)
		if err != nil {
			return err
		}
		start, _ := excelize.CoordinatesToCellName(area.C1, area.R1)
		end, _ := excelize.CoordinatesToCellName(area.C2, area.R2)
		if err := f.MergeCell(ws.Name(), start, end); err != nil {
			return err
		}
	}
	return nil
}

func writeLayout(f *excelize.File, ws *sheetdoc.Worksheet) error {
	sheet := ws.Name()
	ps := ws.PageSetup()
	m := ps.Margins

	if err := f.SetPageMargins(sheet, &excelize.PageLayoutMarginsOptions{
		Left:         m.Left.Ptr(),
		Right:        m.Right.Ptr(),
		Top:          m.Top.Ptr(),
		Bottom:       m.Bottom.Ptr(),
		Header:       m.Header.Ptr(),
		Footer:       m.Footer.Ptr(),
		Horizontally: ps.HorizontalCentered.Ptr(),
		Vertically:   ps.VerticalCentered.Ptr(),
	}); err != nil {
		return err
	}

	layout := &excelize.PageLayoutOptions{
		Size:          ps.PaperSize.Ptr(),
		Orientation:   ps.Orientation.Ptr(),
		BlackAndWhite: ps.BlackAndWhite.Ptr(),
	}
	if n, ok := ps.FirstPageNumber.Get(); ok && n > 0 {
		first := uint(n)
		layout.FirstPageNumber = &first
	}
	if ps.FitToPage.Value() {
		layout.FitToWidth = ps.FitToWidth.Ptr()
		layout.FitToHeight = ps.FitToHeight.Ptr()
	} else if scale, ok := ps.Scale.Get(); ok && scale >= 10 && scale <= 400 {
		adjust := uint(scale)
		layout.AdjustTo = &adjust
	}
	if err := f.SetPageLayout(sheet, layout); err != nil {
		return err
	}

	props := ws.Properties()
	fit := ps.FitToPage.Value()
	if err := f.SetSheetProps(sheet, &excelize.SheetPropsOptions{
		TabColorRGB:      props.TabColor.Ptr(),
		DefaultRowHeight: props.DefaultRowHeight.Ptr(),
		DefaultColWidth:  props.DefaultColWidth.Ptr(),
		FitToPage:        &fit,
	}); err != nil {
		return err
	}

	hf := ws.HeaderFooter()
	if err := f.SetHeaderFooter(sheet, &excelize.HeaderFooterOptions{
		DifferentFirst:   hf.DifferentFirst.Value(),
		DifferentOddEven: hf.DifferentOddEven.Value(),
		OddHeader:        hf.OddHeader.Value(),
		OddFooter:        hf.OddFooter.Value(),
		EvenHeader:       hf.EvenHeader.Value(),
		EvenFooter:       hf.EvenFooter.Value(),
		FirstHeader:      hf.FirstHeader.Value(),
		FirstFooter:      hf.FirstFooter.Value(),
	}); err != nil {
		return err
	}

	for _, row := range ws.RowBreaks() {
		cell, err := excelize.CoordinatesToCellName(1, row+1)
		if err != nil {
			return err
		}
		if err := f.InsertPageBreak(sheet, cell); err != nil {
			return err
		}
	}
	return nil
}

func writeViews(f *excelize.File, ws *sheetdoc.Worksheet) error {
	sheet := ws.Name()
	views := ws.Views()
	if len(views) == 0 {
		return nil
	}
	v := views[0]

	opts := &excelize.ViewOptions{
		ShowGridLines:     v.ShowGridLines.Ptr(),
		ShowRowColHeaders: v.ShowRowColHeaders.Ptr(),
		ShowRuler:         v.ShowRuler.Ptr(),
		RightToLeft:       v.RightToLeft.Ptr(),
	}
	if zoom, ok := v.ZoomScale.Get(); ok {
		z := float64(zoom)
		opts.ZoomScale = &z
	}
	if err := f.SetSheetView(sheet, 0, opts); err != nil {
		return err
	}

	if v.State != models.ViewFrozen || (v.XSplit == 0 && v.YSplit == 0) {
		return nil
	}
	topLeft := v.TopLeftCell
	if topLeft == "" {
		topLeft, _ = excelize.CoordinatesToCellName(v.XSplit+1, v.YSplit+1)
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      v.XSplit,
		YSplit:      v.YSplit,
		TopLeftCell: topLeft,
		ActivePane:  activePane(v.XSplit, v.YSplit),
	})
}

func activePane(xSplit, ySplit int) string {
	switch {
	case xSplit > 0 && ySplit > 0:
		return "bottomRight"
	case ySplit > 0:
		return "bottomLeft"
	default:
		return "topRight"
	}
}

func writeTables(f *excelize.File, ws *sheetdoc.Worksheet) error {
	sheet := ws.Name()
	if af := ws.AutoFilter(); af != nil {
		if err := f.AutoFilter(sheet, af.Ref, nil); err != nil {
			return err
		}
	}
	for _, t := range ws.Tables() {
		if err := f.AddTable(sheet, &excelize.Table{
			Range:          t.Ref,
			Name:           t.Name,
			StyleName:      t.Style,
			ShowHeaderRow:  t.HeaderRow.Ptr(),
			ShowRowStripes: t.ShowRowStripes.Ptr(),
		}); err != nil {
			return err
		}
	}
	return nil
}

// writePivotTables adds the pivot tables of ws. Source and target ranges
// without a sheet prefix refer to ws.
func writePivotTables(f *excelize.File, ws *sheetdoc.Worksheet) error {
	qualify := func(ref string) string {
		if strings.Contains(ref, "!") {
			return ref
		}
		return ws.Name() + "!" + ref
	}
	for _, p := range ws.PivotTables() {
		opts := &excelize.PivotTableOptions{
			DataRange:       qualify(p.SourceRef),
			PivotTableRange: qualify(p.Ref),
		}
		for _, r := range p.Rows {
			opts.Rows = append(opts.Rows, excelize.PivotTableField{Data: r})
		}
		for _, c := range p.Columns {
			opts.Columns = append(opts.Columns, excelize.PivotTableField{Data: c})
		}
		for _, v := range p.Values {
			opts.Data = append(opts.Data, excelize.PivotTableField{Data: v, Subtotal: "Sum"})
		}
		if err := f.AddPivotTable(opts); err != nil {
			return err
		}
	}
	return nil
}

func writeMedia(f *excelize.File, ws *sheetdoc.Worksheet) error {
	sheet := ws.Name()
	for _, img := range ws.Media() {
		switch img.Type {
		case "background":
			if err := f.SetSheetBackground(sheet, img.Path); err != nil {
				return err
			}
		default:
			if err := f.AddPicture(sheet, img.Range, img.Path, nil); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeProtection(f *excelize.File, ws *sheetdoc.Worksheet) error {
	p := ws.Protection()
	if p == nil {
		return nil
	}
	return f.ProtectSheet(ws.Name(), &excelize.SheetProtectionOptions{
		Password:            p.Password,
		SelectLockedCells:   p.SelectLockedCells.Value(),
		SelectUnlockedCells: p.SelectUnlockedCells.Value(),
		FormatCells:         p.FormatCells.Value(),
		FormatColumns:       p.FormatColumns.Value(),
		FormatRows:          p.FormatRows.Value(),
		InsertColumns:       p.InsertColumns.Value(),
		InsertRows:          p.InsertRows.Value(),
		InsertHyperlinks:    p.InsertHyperlinks.Value(),
		DeleteColumns:       p.DeleteColumns.Value(),
		DeleteRows:          p.DeleteRows.Value(),
		Sort:                p.Sort.Value(),
		AutoFilter:          p.AutoFilter.Value(),
		PivotTables:         p.PivotTables.Value(),
	})
}

func writeState(f *excelize.File, ws *sheetdoc.Worksheet) error {
	switch ws.State() {
	case models.StateHidden:
		return f.SetSheetVisible(ws.Name(), false)
	case models.StateVeryHidden:
		return f.SetSheetVisible(ws.Name(), false, true)
	}
	return nil
}
