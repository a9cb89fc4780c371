package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/models"
	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/output"
)

func writeSheetFiles(sheets []models.WorksheetModel, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for i := range sheets {
		jsonData, err := output.SheetToJSON(&sheets[i], pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheets[i].Name+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}

func writePrintAreaFiles(bookName string, sheets []models.WorksheetModel, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, ws := range sheets {
		for i, view := range output.PrintAreaViews(bookName, ws) {
			jsonData, err := output.PrintAreaViewToJSON(&view, pretty)
			if err != nil {
				return err
			}

			filename := filepath.Join(dir, fmt.Sprintf("%s_area%d.json", ws.Name, i+1))
			if err := os.WriteFile(filename, jsonData, 0644); err != nil {
				return err
			}
		}
	}

	return nil
}
