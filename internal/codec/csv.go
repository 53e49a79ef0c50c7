package codec

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jeanpaul/rolodex/internal/book"
)

// phoneSep joins phones inside a single CSV field. It must never be a
// comma or csv quoting would be the only thing keeping rows parseable.
const phoneSep = ";"

var csvHeader = []string{"name", "phones", "birthday"}

// EncodeCSV renders the book as name,phones,birthday rows with a header
// line. Phones are joined with a semicolon; an unset birthday is an empty
// field.
func EncodeCSV(ab *book.AddressBook) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, rec := range ab.Records() {
		row := []string{string(rec.Name()), joinPhones(rec), ""}
		if b, ok := rec.Birthday(); ok {
			row[2] = b.String()
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func joinPhones(rec *book.Record) string {
	parts := make([]string, 0, len(rec.Phones()))
	for _, p := range rec.Phones() {
		parts = append(parts, string(p))
	}
	return strings.Join(parts, phoneSep)
}

// DecodeCSV rebuilds a book from CSV. The import is all-or-nothing: a
// missing or mismatched header fails with ErrFormat, and any row with an
// invalid phone or date fails the whole import with ErrValidation naming
// the row. Row numbers count the header as row 1.
func DecodeCSV(data []byte) (*book.AddressBook, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = len(csvHeader)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing csv header: %v", book.ErrFormat, err)
	}
	for i, col := range csvHeader {
		if header[i] != col {
			return nil, fmt.Errorf("%w: csv header mismatch: want %v, got %v", book.ErrFormat, csvHeader, header)
		}
	}

	ab := book.New()
	for row := 2; ; row++ {
		fields, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: csv row %d: %v", book.ErrFormat, row, err)
		}
		rec, err := recordFrom(fields[0], splitPhones(fields[1]), fields[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		if err := ab.Add(rec); err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
	}
	return ab, nil
}

func splitPhones(field string) []string {
	if strings.TrimSpace(field) == "" {
		return nil
	}
	parts := strings.Split(field, phoneSep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
