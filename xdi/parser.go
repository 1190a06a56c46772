package xdi

import (
	"fmt"
	"strings"
)

// Parse assembles tokens from Tokenize into a dataset.
//
// The first token must carry RoleVersion with an "XDI/" prefix; its
// remainder becomes the dataset's XDIVersion. Every other ordering is an
// error wrapping ErrMalformed, as is a header-name token with no
// following token.
func Parse(tokens []Token) (*Dataset, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty token stream", ErrMalformed)
	}

	// The XDI version must come first.
	first := tokens[0]
	if first.Role != RoleVersion || !strings.HasPrefix(first.Value, "XDI/") {
		return nil, fmt.Errorf("%w: invalid version token %s", ErrMalformed, first)
	}

	ds := &Dataset{
		XDIVersion: strings.TrimPrefix(first.Value, "XDI/"),
		Versions:   make(map[string]string),
	}

	var (
		labels []string
		data   []float64
	)

	for i := 1; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.Role {
		case RoleVersion:
			pkg, ver, _ := strings.Cut(tok.Value, "/")
			ds.Versions[pkg] = ver

		case RoleHeaderName:
			// Header name, so the next token is consumed as its value.
			if i+1 >= len(tokens) {
				return nil, fmt.Errorf("%w: header %q has no value token", ErrMalformed, tok.Value)
			}
			i++
			ds.SetHeader(tok.Value, tokens[i].Value)

		case RoleUserComment:
			// Combine user comments, dropping boundary newlines.
			ds.UserComment = strings.Trim(ds.UserComment+"\n"+tok.Value, "\n")

		case RoleColumnLabel:
			labels = append(labels, tok.Value)

		case RoleDatum:
			data = append(data, asNumber(tok.Value))

		default:
			return nil, fmt.Errorf("%w: unknown token role %s", ErrMalformed, tok)
		}
	}

	ds.Columns = alignColumns(labels, data)

	return ds, nil
}

// alignColumns de-interleaves the flat, row-major datum buffer into one
// column per label. Column k takes every len(labels)-th value starting
// at offset k; a trailing partial row is silently dropped. Without
// labels there are no columns at all, however many data values
// accumulated.
func alignColumns(labels []string, data []float64) []Column {
	if len(labels) == 0 {
		return nil
	}

	rows := len(data) / len(labels)
	columns := make([]Column, len(labels))
	for k, label := range labels {
		values := make([]float64, rows)
		for r := 0; r < rows; r++ {
			values[r] = data[r*len(labels)+k]
		}
		columns[k] = Column{Label: label, Values: values}
	}

	return columns
}

// Load converts an XDI formatted string to a dataset.
// It is the composition Parse(Tokenize(text)).
func Load(text string) (*Dataset, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}

	return Parse(tokens)
}
