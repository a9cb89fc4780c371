package xlsx

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc"
	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/config"
	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/models"
)

// Result is a workbook imported from a file.
type Result struct {
	// BookName is the file name without its directory.
	BookName string
	Workbook *sheetdoc.Workbook
	// UsedRanges maps sheet names to the bounding range of their data.
	UsedRanges map[string]string
}

// Model returns a snapshot of the imported workbook.
func (r *Result) Model() models.WorkbookModel {
	m := r.Workbook.Model()
	m.BookName = r.BookName
	for i := range m.Worksheets {
		m.Worksheets[i].UsedRange = r.UsedRanges[m.Worksheets[i].Name]
	}
	return m
}

// Open imports every worksheet of the xlsx file at path.
func Open(path string, opts ReadOptions, wbOpts ...sheetdoc.WorkbookOption) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	res := &Result{
		BookName:   filepath.Base(path),
		Workbook:   sheetdoc.NewWorkbook(wbOpts...),
		UsedRanges: make(map[string]string),
	}
	for _, sheetName := range f.GetSheetList() {
		if _, err := ReadWorksheet(f, res.Workbook, sheetName, opts); err != nil {
			return nil, err
		}
		used, err := UsedRange(f, sheetName)
		if err != nil {
			log.Printf("[xlsx] used range of %q: %v", sheetName, err)
			continue
		}
		res.UsedRanges[sheetName] = used
	}
	return res, nil
}

// ReadWorksheet imports sheetName from f as a new worksheet of wb.
func ReadWorksheet(f *excelize.File, wb *sheetdoc.Workbook, sheetName string, opts ReadOptions) (*sheetdoc.Worksheet, error) {
	visible, err := f.GetSheetVisible(sheetName)
	if err != nil {
		return nil, newAdapterError(sheetName, "sheet", err)
	}
	state := models.StateVisible
	if !visible {
		state = models.StateHidden
	}

	ws, err := wb.AddWorksheet(sheetdoc.WorksheetOptions{Name: sheetName, State: state})
	if err != nil {
		return nil, newAdapterError(sheetName, "sheet", err)
	}

	steps := []struct {
		component string
		enabled   bool
		fn        func(*excelize.File, *sheetdoc.Worksheet, ReadOptions) error
	}{
		{"columns", true, readColumns},
		{"validations", opts.ShouldIncludeValidations(), readValidations},
		{"notes", opts.ShouldIncludeNotes(), readNotes},
		{"layout", true, readLayout},
		{"views", true, readViews},
		{"print_areas", opts.ShouldIncludePrintAreas(), readPrintAreas},
		{"tables", true, func(f *excelize.File, ws *sheetdoc.Worksheet, _ ReadOptions) error {
			return readTables(f, ws)
		}},
	}
	for _, step := range steps {
		if !step.enabled {
			continue
		}
		if err := step.fn(f, ws, opts); err != nil {
			return nil, newAdapterError(sheetName, step.component, err)
		}
	}
	return ws, nil
}

func readColumns(f *excelize.File, ws *sheetdoc.Worksheet, opts ReadOptions) error {
	headers, err := ExtractHeaders(f, ws.Name(), opts.HeaderRows)
	if err != nil {
		return err
	}
	cols, err := f.GetCols(ws.Name())
	if err != nil {
		return err
	}
	defs, err := extractColumns(f, ws.Name(), headers, len(cols))
	if err != nil {
		return err
	}
	return ws.SetColumns(defs)
}

func readValidations(f *excelize.File, ws *sheetdoc.Worksheet, _ ReadOptions) error {
	dvs, err := f.GetDataValidations(ws.Name())
	if err != nil {
		return err
	}
	for _, dv := range dvs {
		rule := fromDataValidation(dv)
		for _, address := range strings.Fields(dv.Sqref) {
			ws.AddValidation(address, rule)
		}
	}
	return nil
}

func readNotes(f *excelize.File, ws *sheetdoc.Worksheet, _ ReadOptions) error {
	comments, err := f.GetComments(ws.Name())
	if err != nil {
		return err
	}
	for _, c := range comments {
		var cfg models.NoteConfig
		for _, run := range c.Paragraph {
			cfg.Texts = append(cfg.Texts, models.NoteText{Text: run.Text, Font: fromFont(run.Font)})
		}
		if len(cfg.Texts) == 0 {
			cfg.Texts = []models.NoteText{{Text: c.Text}}
		}
		note := sheetdoc.NewNote("")
		note.SetConfig(cfg)
		ws.AddNote(c.Cell, note)
	}
	return nil
}

func readLayout(f *excelize.File, ws *sheetdoc.Worksheet, _ ReadOptions) error {
	sheet := ws.Name()

	margins, err := f.GetPageMargins(sheet)
	if err != nil {
		return err
	}
	layout, err := f.GetPageLayout(sheet)
	if err != nil {
		return err
	}
	ps := models.PageSetup{
		Margins: models.PageMargins{
			Left:   config.FromPtr(margins.Left),
			Right:  config.FromPtr(margins.Right),
			Top:    config.FromPtr(margins.Top),
			Bottom: config.FromPtr(margins.Bottom),
			Header: config.FromPtr(margins.Header),
			Footer: config.FromPtr(margins.Footer),
		},
		HorizontalCentered: config.FromPtr(margins.Horizontally),
		VerticalCentered:   config.FromPtr(margins.Vertically),
		Orientation:        config.FromPtr(layout.Orientation),
		PaperSize:          config.FromPtr(layout.Size),
		BlackAndWhite:      config.FromPtr(layout.BlackAndWhite),
		FitToWidth:         config.FromPtr(layout.FitToWidth),
		FitToHeight:        config.FromPtr(layout.FitToHeight),
	}
	if layout.AdjustTo != nil {
		ps.Scale = config.Some(int(*layout.AdjustTo))
	}
	if layout.FirstPageNumber != nil {
		ps.FirstPageNumber = config.Some(int(*layout.FirstPageNumber))
	}

	props, err := f.GetSheetProps(sheet)
	if err != nil {
		return err
	}
	ps.FitToPage = config.FromPtr(props.FitToPage)
	ws.UpdatePageSetup(ps)
	ws.UpdateProperties(models.WorksheetProperties{
		TabColor:         config.FromPtr(props.TabColorRGB),
		DefaultRowHeight: config.FromPtr(props.DefaultRowHeight),
		DefaultColWidth:  config.FromPtr(props.DefaultColWidth),
	})
	return nil
}

func readViews(f *excelize.File, ws *sheetdoc.Worksheet, _ ReadOptions) error {
	panes, err := f.GetPanes(ws.Name())
	if err != nil {
		return err
	}
	if !panes.Freeze && !panes.Split {
		return nil
	}
	state := models.ViewSplit
	if panes.Freeze {
		state = models.ViewFrozen
	}
	ws.AddView(models.WorksheetView{
		State:       state,
		XSplit:      panes.XSplit,
		YSplit:      panes.YSplit,
		TopLeftCell: panes.TopLeftCell,
	})
	return nil
}

func readPrintAreas(f *excelize.File, ws *sheetdoc.Worksheet, _ ReadOptions) error {
	var ps models.PageSetup
	if areas := ExtractPrintAreas(f)[ws.Name()]; len(areas) > 0 {
		refs := make([]string, 0, len(areas))
		for _, a := range areas {
			refs = append(refs, sheetdoc.FormatRange(a))
		}
		ps.PrintArea = config.Some(strings.Join(refs, ","))
	}
	if titles, ok := ExtractPrintTitles(f)[ws.Name()]; ok {
		ps.PrintTitlesRow = nonEmpty(titles[0])
		ps.PrintTitlesColumn = nonEmpty(titles[1])
	}
	ws.UpdatePageSetup(ps)
	return nil
}

func nonEmpty(s string) config.Optional[string] {
	if s == "" {
		return config.Optional[string]{}
	}
	return config.Some(s)
}
