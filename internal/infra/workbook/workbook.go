// Package workbook decodes the xlsx documents served by the portal and the
// feed storage into raw tables. Column interpretation stays with the callers.
package workbook

import (
	"bytes"

	"chainsync/internal/domain/entity"
	"chainsync/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Decode reads the first sheet of an xlsx document. skipRows decorative rows
// are dropped, the next row becomes the column header, and the remaining
// non-empty rows become data. A document with no rows past the header decodes
// to an empty table rather than an error; emptiness policy belongs to the
// normalizers.
func Decode(data []byte, skipRows int) (*entity.RawTable, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "open workbook")
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, "read workbook rows")
	}

	if len(rows) <= skipRows {
		return &entity.RawTable{}, nil
	}
	rows = rows[skipRows:]

	table := &entity.RawTable{Columns: trimCells(rows[0])}
	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

func trimCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		out[i] = trimCell(cell)
	}

	return out
}

func trimCell(cell string) string {
	return string(bytes.TrimSpace([]byte(cell)))
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if trimCell(cell) != "" {
			return false
		}
	}

	return true
}
