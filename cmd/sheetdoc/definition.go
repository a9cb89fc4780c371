package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc"
	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/models"
)

// definition is the YAML description of a workbook.
type definition struct {
	Sheets []sheetDef `yaml:"sheets"`
}

type sheetDef struct {
	// Name is left untyped so a non-string name reaches the worksheet's own
	// type check.
	Name                   any                              `yaml:"name"`
	State                  models.WorksheetState            `yaml:"state"`
	Properties             *models.WorksheetProperties      `yaml:"properties"`
	PageSetup              *models.PageSetup                `yaml:"pageSetup"`
	HeaderFooter           *models.HeaderFooter             `yaml:"headerFooter"`
	Views                  []models.WorksheetView           `yaml:"views"`
	AutoFilter             *models.AutoFilter               `yaml:"autoFilter"`
	Columns                []models.ColumnDefn              `yaml:"columns"`
	Validations            map[string]models.DataValidation `yaml:"validations"`
	Notes                  map[string]noteDef               `yaml:"notes"`
	Merges                 []string                         `yaml:"merges"`
	RowBreaks              []int                            `yaml:"rowBreaks"`
	Tables                 []models.Table                   `yaml:"tables"`
	Images                 []models.Image                   `yaml:"images"`
	Protection             *models.SheetProtection          `yaml:"protection"`
	PivotTables            []models.PivotTable              `yaml:"pivotTables"`
	ConditionalFormattings []models.ConditionalFormatting   `yaml:"conditionalFormattings"`
}

// noteDef accepts either a plain string or a structured note.
type noteDef struct {
	note *sheetdoc.Note
}

func (n *noteDef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var text string
		if err := node.Decode(&text); err != nil {
			return err
		}
		n.note = sheetdoc.NewNote(text)
		return nil
	}
	var cfg models.NoteConfig
	if err := node.Decode(&cfg); err != nil {
		return err
	}
	n.note = sheetdoc.NewNote("")
	n.note.SetConfig(cfg)
	return nil
}

func loadDefinition(path string) (*definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var def definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &def, nil
}

// build creates a workbook from def. Every sheet is attempted; the returned
// error joins the failures of all sheets.
func build(def *definition, opts ...sheetdoc.WorkbookOption) (*sheetdoc.Workbook, error) {
	wb := sheetdoc.NewWorkbook(opts...)
	var errs []error
	for i, sd := range def.Sheets {
		if err := buildSheet(wb, sd); err != nil {
			errs = append(errs, fmt.Errorf("sheet %d: %w", i+1, err))
		}
	}
	return wb, errors.Join(errs...)
}

func buildSheet(wb *sheetdoc.Workbook, sd sheetDef) error {
	ws, err := wb.AddWorksheet(sheetdoc.WorksheetOptions{
		Name:         sd.Name,
		State:        sd.State,
		Properties:   sd.Properties,
		PageSetup:    sd.PageSetup,
		HeaderFooter: sd.HeaderFooter,
		Views:        sd.Views,
		AutoFilter:   sd.AutoFilter,
	})
	if err != nil {
		return err
	}

	if err := ws.SetColumns(sd.Columns); err != nil {
		return err
	}
	for addr, rule := range sd.Validations {
		ws.AddValidation(addr, rule)
	}
	for addr, n := range sd.Notes {
		if n.note != nil {
			ws.AddNote(addr, n.note)
		}
	}
	for _, ref := range sd.Merges {
		if err := ws.MergeCells(ref); err != nil {
			return err
		}
	}
	for _, row := range sd.RowBreaks {
		ws.AddRowBreak(row)
	}
	for _, t := range sd.Tables {
		if err := ws.AddTable(t); err != nil {
			return err
		}
	}
	for _, img := range sd.Images {
		ws.AddImage(img)
	}
	for _, p := range sd.PivotTables {
		ws.AddPivotTable(p)
	}
	for _, cf := range sd.ConditionalFormattings {
		ws.AddConditionalFormatting(cf)
	}
	if sd.Protection != nil {
		ws.Protect(sd.Protection.Password, sd.Protection)
	}
	return nil
}
