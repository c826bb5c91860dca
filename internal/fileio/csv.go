package fileio

import (
	"encoding/csv"
	"io"
)

// readCSV reads every cell of the file, auto-detecting encoding. Ragged rows
// are fine: a list is a list whether it came as one column or one row.
func readCSV(r io.Reader) (string, error) {
	cr := csv.NewReader(decodeReader(r))
	cr.FieldsPerRecord = -1

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		rows = append(rows, rec)
	}
	return cellsToText(rows), nil
}
