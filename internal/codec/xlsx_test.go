package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jeanpaul/rolodex/internal/book"
)

func TestXLSXRoundTrip(t *testing.T) {
	ab := buildBook(t)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(ab, &buf))

	got, err := ReadXLSX(&buf)
	require.NoError(t, err)
	assertSameBook(t, ab, got)
}

func TestReadXLSX_NotASpreadsheet(t *testing.T) {
	_, err := ReadXLSX(bytes.NewReader([]byte("name,phones,birthday\n")))
	assert.ErrorIs(t, err, book.ErrFormat)
}

func TestReadXLSX_BadRowFailsWholeImport(t *testing.T) {
	ab := book.New()
	rec, err := book.NewRecord("Good")
	require.NoError(t, err)
	require.NoError(t, rec.AddPhone("1111111111"))
	require.NoError(t, ab.Add(rec))

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(ab, &buf))

	// Corrupt one cell through the xlsx layer itself, then re-read.
	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue(xlsxSheet, "B2", "not-a-phone"))
	var edited bytes.Buffer
	_, err = f.WriteTo(&edited)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = ReadXLSX(&edited)
	assert.ErrorIs(t, err, book.ErrValidation)
	assert.Contains(t, err.Error(), "row 2")
}
