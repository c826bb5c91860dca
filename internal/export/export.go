// Package export renders one comparison result region as downloadable file
// content: plain text (items joined by line breaks), CSV with a single "Item"
// column, or a one-column xlsx sheet.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	excelize "github.com/xuri/excelize/v2"

	"listcompare-service/internal/compare/model"
)

const (
	FormatTXT  = "txt"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

const (
	RegionAOnly        = "a_only"
	RegionIntersection = "intersection"
	RegionBOnly        = "b_only"
)

// File is rendered download content plus the headers a handler needs.
type File struct {
	Data        []byte
	ContentType string
	Ext         string
}

// Region picks one result region by its wire name.
func Region(res model.Result, name string) ([]string, error) {
	switch name {
	case RegionAOnly:
		return res.AOnly, nil
	case RegionIntersection:
		return res.Intersection, nil
	case RegionBOnly:
		return res.BOnly, nil
	default:
		return nil, fmt.Errorf("unknown region: %q", name)
	}
}

// Render produces the file body for one region in the requested format.
func Render(items []string, format string) (File, error) {
	switch format {
	case FormatTXT, "":
		return File{
			Data:        []byte(strings.Join(items, "\n")),
			ContentType: "text/plain; charset=utf-8",
			Ext:         "txt",
		}, nil
	case FormatCSV:
		return renderCSV(items)
	case FormatXLSX:
		return renderXLSX(items)
	default:
		return File{}, fmt.Errorf("unknown format: %q", format)
	}
}

func renderCSV(items []string) (File, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Item"}); err != nil {
		return File{}, err
	}
	for _, it := range items {
		if err := w.Write([]string{it}); err != nil {
			return File{}, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return File{}, err
	}
	return File{
		Data:        buf.Bytes(),
		ContentType: "text/csv; charset=utf-8",
		Ext:         "csv",
	}, nil
}

func renderXLSX(items []string) (File, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetCellValue(sheet, "A1", "Item"); err != nil {
		return File{}, err
	}
	for i, it := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return File{}, err
		}
		if err := f.SetCellValue(sheet, cell, it); err != nil {
			return File{}, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return File{}, err
	}
	return File{
		Data:        buf.Bytes(),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Ext:         "xlsx",
	}, nil
}
