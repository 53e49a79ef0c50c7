package codec

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/jeanpaul/rolodex/internal/book"
)

const xlsxSheet = "Contacts"

// WriteXLSX writes the book as a spreadsheet with the same columns as the
// CSV form: name, semicolon-joined phones, birthday.
func WriteXLSX(ab *book.AddressBook, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return err
	}
	header := []any{"name", "phones", "birthday"}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return err
	}
	for i, rec := range ab.Records() {
		birthday := ""
		if b, ok := rec.Birthday(); ok {
			birthday = b.String()
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{string(rec.Name()), joinPhones(rec), birthday}
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			return err
		}
	}
	_, err := f.WriteTo(w)
	return err
}

// ReadXLSX rebuilds a book from a spreadsheet, applying the same header
// check and all-or-nothing row validation as the CSV import.
func ReadXLSX(r io.Reader) (*book.AddressBook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", book.ErrFormat, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", book.ErrFormat)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", book.ErrFormat, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing header row", book.ErrFormat)
	}
	for i, col := range csvHeader {
		if i >= len(rows[0]) || rows[0][i] != col {
			return nil, fmt.Errorf("%w: header mismatch: want %v, got %v", book.ErrFormat, csvHeader, rows[0])
		}
	}

	ab := book.New()
	for i, row := range rows[1:] {
		// GetRows trims trailing empty cells, so pad the row back out.
		for len(row) < len(csvHeader) {
			row = append(row, "")
		}
		rec, err := recordFrom(row[0], splitPhones(row[1]), row[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := ab.Add(rec); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	return ab, nil
}
