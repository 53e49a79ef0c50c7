package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanpaul/rolodex/internal/book"
)

func buildBook(t *testing.T) *book.AddressBook {
	t.Helper()
	ab := book.New()

	sergiy, err := book.NewRecord("Sergiy")
	require.NoError(t, err)
	require.NoError(t, sergiy.AddPhone("0936564532"))
	require.NoError(t, sergiy.AddPhone("0634564545"))
	require.NoError(t, sergiy.SetBirthday("12.12.1978"))
	require.NoError(t, ab.Add(sergiy))

	olha, err := book.NewRecord("Olha")
	require.NoError(t, err)
	require.NoError(t, olha.AddPhone("0509876543"))
	require.NoError(t, ab.Add(olha))

	nobody, err := book.NewRecord("No Phones")
	require.NoError(t, err)
	require.NoError(t, ab.Add(nobody))

	return ab
}

func assertSameBook(t *testing.T, want, got *book.AddressBook) {
	t.Helper()
	require.Equal(t, want.Len(), got.Len())
	wantRecs := want.Records()
	gotRecs := got.Records()
	for i := range wantRecs {
		assert.Equal(t, wantRecs[i].Name(), gotRecs[i].Name())
		assert.Equal(t, wantRecs[i].Phones(), gotRecs[i].Phones())
		wb, wok := wantRecs[i].Birthday()
		gb, gok := gotRecs[i].Birthday()
		assert.Equal(t, wok, gok)
		assert.Equal(t, wb.String(), gb.String())
	}
}

func TestJSONRoundTrip(t *testing.T) {
	ab := buildBook(t)

	data, err := EncodeJSON(ab)
	require.NoError(t, err)

	got, err := DecodeJSON(data)
	require.NoError(t, err)
	assertSameBook(t, ab, got)
}

func TestJSONRoundTrip_EmptyBook(t *testing.T) {
	data, err := EncodeJSON(book.New())
	require.NoError(t, err)

	got, err := DecodeJSON(data)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestEncodeJSON_Layout(t *testing.T) {
	ab := buildBook(t)
	data, err := EncodeJSON(ab)
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"Sergiy": {"phones":["0936564532","0634564545"],"birthday":"12.12.1978"}`)
	assert.Contains(t, s, `"Olha": {"phones":["0509876543"],"birthday":null}`)
}

func TestDecodeJSON_PreservesOrder(t *testing.T) {
	data := []byte(`{
		"Zed": {"phones": ["1111111111"], "birthday": null},
		"Anna": {"phones": [], "birthday": null},
		"Mike": {"phones": ["2222222222"], "birthday": "01.01.1990"}
	}`)

	ab, err := DecodeJSON(data)
	require.NoError(t, err)

	recs := ab.Records()
	require.Len(t, recs, 3)
	assert.Equal(t, book.Name("Zed"), recs[0].Name())
	assert.Equal(t, book.Name("Anna"), recs[1].Name())
	assert.Equal(t, book.Name("Mike"), recs[2].Name())
}

func TestDecodeJSON_StructurallyInvalid(t *testing.T) {
	for _, data := range []string{
		`not json at all`,
		`[]`,
		`{"Sergiy": "just a string"}`,
		`{"Sergiy": {"birthday": "12.12.1978"}}`,
		`{"Sergiy": {"phones": "0936564532"}}`,
		`{"Sergiy": {"phones": [], "extra": 1}}`,
	} {
		_, err := DecodeJSON([]byte(data))
		assert.ErrorIs(t, err, book.ErrFormat, "input %s", data)
	}
}

func TestDecodeJSON_RevalidatesFields(t *testing.T) {
	// Structurally fine, but the phone is garbage: validation error, not a
	// silent skip.
	_, err := DecodeJSON([]byte(`{"Sergiy": {"phones": ["not-a-phone"], "birthday": null}}`))
	assert.ErrorIs(t, err, book.ErrValidation)

	_, err = DecodeJSON([]byte(`{"Sergiy": {"phones": [], "birthday": "31.02.1999"}}`))
	assert.ErrorIs(t, err, book.ErrValidation)
}
