package fileio

import (
	"bytes"
	"errors"
	"io"

	xls "github.com/extrame/xls"
)

// readXLS reads a legacy workbook. Old .xls exports are frequently cp1251, so
// a couple of charsets are tried before giving up.
func readXLS(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	var wb *xls.WorkBook
	var lastErr error
	for _, cs := range []string{"utf-8", "windows-1251"} {
		wb, err = xls.OpenReader(bytes.NewReader(b), cs)
		if err == nil && wb != nil {
			lastErr = nil
			break
		}
		lastErr = err
	}
	if wb == nil {
		if lastErr == nil {
			lastErr = errors.New("xls: failed to open workbook")
		}
		return "", lastErr
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return "", nil
	}

	// Row.LastCol is unreliable on sparse sheets; probe a fixed width instead
	const probeMax = 256
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		cols := make([]string, probeMax)
		for j := 0; j < probeMax; j++ {
			cols[j] = row.Col(j)
		}
		rows = append(rows, cols)
	}
	return cellsToText(rows), nil
}
