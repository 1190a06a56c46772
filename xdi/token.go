package xdi

import "fmt"

// Role identifies the kind of syntactic unit a token represents.
type Role int

const (
	RoleVersion     Role = iota // entry of the version line, e.g. "XDI/1.0"
	RoleHeaderName              // name part of a header field
	RoleHeaderValue             // value part of a header field
	RoleUserComment             // one line of the user comment block
	RoleColumnLabel             // one column label of the data block
	RoleDatum                   // one raw data cell, not yet numeric
)

// String returns the role name for diagnostics.
func (r Role) String() string {
	switch r {
	case RoleVersion:
		return "version"
	case RoleHeaderName:
		return "header-name"
	case RoleHeaderValue:
		return "header-value"
	case RoleUserComment:
		return "user-comment"
	case RoleColumnLabel:
		return "column-label"
	case RoleDatum:
		return "datum"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Token represents a tokenized text string that the lexer identified.
// Tokens are produced in file order and carry no position information
// beyond that order.
type Token struct {
	Value string // tokenized text
	Role  Role   // token role
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Role, t.Value)
}
