package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ReadListText extracts raw list text from an uploaded file, picking the
// parser by extension. Plain text comes back as-is (decoded to UTF-8);
// spreadsheet formats come back one cell per line, ready for newline
// splitting downstream.
func ReadListText(r io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return readTXT(r)
	case ".csv":
		return readCSV(r)
	case ".xlsx":
		return readXLSX(r)
	case ".xls":
		return readXLS(r)
	default:
		return "", fmt.Errorf("unsupported file: %s", filename)
	}
}

// cellsToText flattens spreadsheet rows into newline-joined items, dropping
// blank cells.
func cellsToText(rows [][]string) string {
	var b strings.Builder
	for _, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(cell)
		}
	}
	return b.String()
}
