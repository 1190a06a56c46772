package xdi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const exampleXDI = `# XDI/1.0 python/3.14.0 hollowfoot/2025.2
# Column.1: energy eV
# Column.2: i0
# Sample.name: NiO powder
# /////
# Goal: do some measurements
# sample was slightly off-center
# -----
# energy i0 it
  8330.0	395896964.3102694	6789.0
  8340.0	395812345.5	6700.0
`

func TestTokenize(t *testing.T) {
	require := require.New(t)

	tokens, err := Tokenize(exampleXDI)
	require.NoError(err)

	expected := []Token{
		{Value: "XDI/1.0", Role: RoleVersion},
		{Value: "python/3.14.0", Role: RoleVersion},
		{Value: "hollowfoot/2025.2", Role: RoleVersion},
		{Value: "Column.1", Role: RoleHeaderName},
		{Value: "energy eV", Role: RoleHeaderValue},
		{Value: "Column.2", Role: RoleHeaderName},
		{Value: "i0", Role: RoleHeaderValue},
		{Value: "Sample.name", Role: RoleHeaderName},
		{Value: "NiO powder", Role: RoleHeaderValue},
		{Value: "Goal: do some measurements", Role: RoleUserComment},
		{Value: "sample was slightly off-center", Role: RoleUserComment},
		{Value: "energy", Role: RoleColumnLabel},
		{Value: "i0", Role: RoleColumnLabel},
		{Value: "it", Role: RoleColumnLabel},
		{Value: "8330.0", Role: RoleDatum},
		{Value: "395896964.3102694", Role: RoleDatum},
		{Value: "6789.0", Role: RoleDatum},
		{Value: "8340.0", Role: RoleDatum},
		{Value: "395812345.5", Role: RoleDatum},
		{Value: "6700.0", Role: RoleDatum},
	}
	require.Equal(expected, tokens)
}

func TestTokenize_VersionLine(t *testing.T) {
	tests := []struct {
		description string
		input       string
		expected    []Token
	}{
		{
			description: "bare XDI version",
			input:       "# XDI/1.0",
			expected:    []Token{{Value: "XDI/1.0", Role: RoleVersion}},
		},
		{
			description: "one extra producer version",
			input:       "# XDI/1.0 python/3.14.0",
			expected: []Token{
				{Value: "XDI/1.0", Role: RoleVersion},
				{Value: "python/3.14.0", Role: RoleVersion},
			},
		},
		{
			description: "two extra producer versions",
			input:       "# XDI/1.0 python/3.14.0 hollowfoot/2025.2rc23",
			expected: []Token{
				{Value: "XDI/1.0", Role: RoleVersion},
				{Value: "python/3.14.0", Role: RoleVersion},
				{Value: "hollowfoot/2025.2rc23", Role: RoleVersion},
			},
		},
	}

	require := require.New(t)
	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		tokens, err := Tokenize(test.input)
		require.NoError(err)
		require.Equal(test.expected, tokens)
	}
}

func TestTokenize_SectionTransitions(t *testing.T) {
	require := require.New(t)

	// The field-end marker moves any section to user comments.
	tokens, err := Tokenize("# XDI/1.0\n# ///////\n# free text\n")
	require.NoError(err)
	require.Equal([]Token{
		{Value: "XDI/1.0", Role: RoleVersion},
		{Value: "free text", Role: RoleUserComment},
	}, tokens)

	// Same marker straight from the version section.
	tokens, err = Tokenize("# ///\n# still a comment")
	require.NoError(err)
	require.Equal([]Token{
		{Value: "still a comment", Role: RoleUserComment},
	}, tokens)

	// The header-end marker moves to the data section; a comment line
	// there carries column labels.
	tokens, err = Tokenize("# XDI/1.0\n# ---\n# energy i0\n  1.0\t2.0\n")
	require.NoError(err)
	require.Equal([]Token{
		{Value: "XDI/1.0", Role: RoleVersion},
		{Value: "energy", Role: RoleColumnLabel},
		{Value: "i0", Role: RoleColumnLabel},
		{Value: "1.0", Role: RoleDatum},
		{Value: "2.0", Role: RoleDatum},
	}, tokens)
}

func TestTokenize_Malformed(t *testing.T) {
	tests := []struct {
		description string
		input       string
		badLine     string
	}{
		{
			description: "non-comment first line",
			input:       "energy 8330.0",
			badLine:     "energy 8330.0",
		},
		{
			description: "blank line in the header section",
			input:       "# XDI/1.0\n\n# Column.1: energy",
			badLine:     "",
		},
		{
			description: "uncommented text in the header section",
			input:       "# XDI/1.0\nSample.name: NiO",
			badLine:     "Sample.name: NiO",
		},
	}

	require := require.New(t)
	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		tokens, err := Tokenize(test.input)
		require.Nil(tokens)
		require.ErrorIs(err, ErrMalformed)
		require.ErrorContains(err, test.badLine)
	}
}
