package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePhone_Valid(t *testing.T) {
	p, err := ParsePhone("0936564532")
	assert.NoError(t, err)
	assert.Equal(t, Phone("0936564532"), p)
}

func TestParsePhone_Invalid(t *testing.T) {
	for _, raw := range []string{"", "123", "09365645321", "093656453a", "093 656 45", "+380936564"} {
		_, err := ParsePhone(raw)
		assert.ErrorIs(t, err, ErrValidation, "input %q", raw)
	}
}

func TestParseName(t *testing.T) {
	n, err := ParseName("  Sergiy ")
	assert.NoError(t, err)
	assert.Equal(t, Name("Sergiy"), n)

	_, err = ParseName("   ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseBirthday_Valid(t *testing.T) {
	b, err := ParseBirthday("12.12.1978")
	require.NoError(t, err)
	assert.Equal(t, "12.12.1978", b.String())
	assert.False(t, b.IsZero())
}

func TestParseBirthday_BadFormat(t *testing.T) {
	for _, raw := range []string{"12-12-1978", "12.12.78", "1.1.1978", "12.12.1978.01", "yesterday"} {
		_, err := ParseBirthday(raw)
		assert.ErrorIs(t, err, ErrValidation, "input %q", raw)
	}
}

func TestParseBirthday_NotARealDate(t *testing.T) {
	_, err := ParseBirthday("31.02.1999")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParseBirthday("00.01.1999")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParseBirthday("01.13.1999")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDaysUntilNext(t *testing.T) {
	b, err := ParseBirthday("12.12.1978")
	require.NoError(t, err)

	today := time.Date(2026, time.December, 10, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, b.DaysUntilNext(today))

	// On the anniversary itself the distance is zero.
	today = time.Date(2026, time.December, 12, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, b.DaysUntilNext(today))

	// Already passed this year: wraps to next year.
	today = time.Date(2026, time.December, 13, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 364, b.DaysUntilNext(today))
}
