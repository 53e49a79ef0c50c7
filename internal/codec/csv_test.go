package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanpaul/rolodex/internal/book"
)

func TestCSVRoundTrip(t *testing.T) {
	ab := buildBook(t)

	data, err := EncodeCSV(ab)
	require.NoError(t, err)

	got, err := DecodeCSV(data)
	require.NoError(t, err)
	assertSameBook(t, ab, got)
}

func TestEncodeCSV_Layout(t *testing.T) {
	ab := buildBook(t)
	data, err := EncodeCSV(ab)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "name,phones,birthday", lines[0])
	assert.Equal(t, "Sergiy,0936564532;0634564545,12.12.1978", lines[1])
	assert.Equal(t, "Olha,0509876543,", lines[2])
	assert.Equal(t, "No Phones,,", lines[3])
}

func TestDecodeCSV_HeaderMismatch(t *testing.T) {
	_, err := DecodeCSV([]byte("nom,tel,anniversaire\nSergiy,0936564532,\n"))
	assert.ErrorIs(t, err, book.ErrFormat)

	_, err = DecodeCSV([]byte(""))
	assert.ErrorIs(t, err, book.ErrFormat)
}

func TestDecodeCSV_BadBirthdayFailsWholeImport(t *testing.T) {
	data := []byte("name,phones,birthday\n" +
		"Good,1111111111,\n" +
		"Bad,2222222222,31.02.1999\n")

	_, err := DecodeCSV(data)
	assert.ErrorIs(t, err, book.ErrValidation)
	assert.Contains(t, err.Error(), "row 3")
}

func TestDecodeCSV_BadPhoneFailsWholeImport(t *testing.T) {
	data := []byte("name,phones,birthday\n" +
		"Bad,12345,\n")

	_, err := DecodeCSV(data)
	assert.ErrorIs(t, err, book.ErrValidation)
	assert.Contains(t, err.Error(), "row 2")
}

func TestDecodeCSV_DuplicateName(t *testing.T) {
	data := []byte("name,phones,birthday\n" +
		"Twin,1111111111,\n" +
		"Twin,2222222222,\n")

	_, err := DecodeCSV(data)
	assert.ErrorIs(t, err, book.ErrDuplicate)
}

func TestCSV_QuotedFieldWithComma(t *testing.T) {
	ab := book.New()
	rec, err := book.NewRecord("Doe, John")
	require.NoError(t, err)
	require.NoError(t, rec.AddPhone("1234567890"))
	require.NoError(t, ab.Add(rec))

	data, err := EncodeCSV(ab)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Doe, John"`)

	got, err := DecodeCSV(data)
	require.NoError(t, err)
	recs := got.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, book.Name("Doe, John"), recs[0].Name())
}
