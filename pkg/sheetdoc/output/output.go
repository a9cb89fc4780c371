// Package output serializes worksheet document snapshots.
package output

import (
	"bytes"
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc"
	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/models"
)

// ToJSON serializes a workbook snapshot.
func ToJSON(wb models.WorkbookModel, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON serializes a worksheet snapshot.
func SheetToJSON(ws *models.WorksheetModel, pretty bool) ([]byte, error) {
	return marshal(ws, pretty)
}

// PrintAreaViewToJSON serializes a print area view.
func PrintAreaViewToJSON(view *models.PrintAreaView, pretty bool) ([]byte, error) {
	return marshal(view, pretty)
}

// ToYAML serializes a workbook snapshot as YAML.
func ToYAML(wb models.WorkbookModel) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(wb); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// PrintAreaViews splits a worksheet snapshot into one view per print area.
// Columns, validations, notes and merges are kept when they intersect the
// area.
func PrintAreaViews(bookName string, ws models.WorksheetModel) []models.PrintAreaView {
	ref, ok := ws.PageSetup.PrintArea.Get()
	if !ok || ref == "" {
		return nil
	}

	var views []models.PrintAreaView
	for _, part := range strings.Split(ref, ",") {
		area, err := sheetdoc.ParseRange(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		view := models.PrintAreaView{
			BookName:  bookName,
			SheetName: ws.Name,
			Area:      area,
		}
		for _, c := range ws.Columns {
			if c.Number >= area.C1 && c.Number <= area.C2 {
				view.Columns = append(view.Columns, c)
			}
		}
		for addr, v := range ws.Validations {
			if intersects(addr, area) {
				if view.Validations == nil {
					view.Validations = make(map[string]models.DataValidation)
				}
				view.Validations[addr] = v
			}
		}
		for addr, n := range ws.Notes {
			if intersects(addr, area) {
				if view.Notes == nil {
					view.Notes = make(map[string]models.NoteConfig)
				}
				view.Notes[addr] = n
			}
		}
		for _, m := range ws.Merges {
			if intersects(m, area) {
				view.Merges = append(view.Merges, m)
			}
		}
		views = append(views, view)
	}
	return views
}

func intersects(ref string, area models.PrintArea) bool {
	r, err := sheetdoc.ParseRange(ref)
	if err != nil {
		return false
	}
	return r.R1 <= area.R2 && area.R1 <= r.R2 && r.C1 <= area.C2 && area.C1 <= r.C2
}
