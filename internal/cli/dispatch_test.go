package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_MultiWordKeywordsWinOverPrefixes(t *testing.T) {
	cases := []struct {
		line string
		args []string
	}{
		{"remove phone Sergiy 0936564532", []string{"Sergiy", "0936564532"}},
		{"set birthday Sergiy 12.12.1978", []string{"Sergiy", "12.12.1978"}},
		{"export xlsx work", []string{"work"}},
		{"show all 5", []string{"5"}},
		{"birthday of Sergiy", []string{"Sergiy"}},
	}
	for _, tc := range cases {
		op, args := Resolve(tc.line)
		require.NotNil(t, op, tc.line)
		assert.Equal(t, tc.args, args, tc.line)
	}
}

func TestResolve_CaseInsensitiveKeywordKeepsArgCase(t *testing.T) {
	_, args := Resolve("ADD Sergiy 0936564532")
	assert.Equal(t, []string{"Sergiy", "0936564532"}, args)
}

func TestResolve_Unknown(t *testing.T) {
	s := testSession(t)
	op, _ := Resolve("frobnicate everything")
	out, err := op(s, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "What do you mean?")
}
