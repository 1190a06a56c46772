package xdi

import "errors"

// ErrMalformed reports a structural or grammar violation in the input.
// The whole tokenize or parse operation aborts; the wrapped message
// carries the offending line or token.
var ErrMalformed = errors.New("malformed XDI")

// ErrMissingAttribute reports that Dump was invoked on a dataset missing
// a required attribute.
var ErrMissingAttribute = errors.New("missing dataset attribute")
