package xdi

import (
	"github.com/spc-group/go-xdi/internal/util"
)

// Header is one free-form metadata field of an XDI file, e.g.
// "Column.1" -> "energy eV".
type Header struct {
	Name  string
	Value string
}

// Column is one labeled column of the tabular data block.
type Column struct {
	Label  string
	Values []float64
}

// Dataset is the structured in-memory form of an XDI file.
//
// Headers keep their file order so that serialization reproduces the
// original layout; Versions carry no meaningful order. The first entry
// of Columns is the coordinate (independent) column, all subsequent
// columns share its index space.
type Dataset struct {
	// XDIVersion holds the XDI version specifier, e.g. "1.0".
	XDIVersion string
	// Versions maps producer package names to version specifiers,
	// e.g. {"GSE": "1.0"}.
	Versions map[string]string
	// Headers holds the free-form header fields in file order.
	Headers []Header
	// UserComment is the newline-joined free-form comment block.
	UserComment string
	// Columns holds the coordinate column followed by the data columns.
	Columns []Column
}

// Header returns the value of the named header field.
// The second return value is false if the field is not present.
func (d *Dataset) Header(name string) (string, bool) {
	for _, h := range d.Headers {
		if h.Name == name {
			return h.Value, true
		}
	}
	return "", false
}

// SetHeader stores a header field, overwriting the value in place when
// the name already exists so the original field order is preserved.
func (d *Dataset) SetHeader(name, value string) {
	for i, h := range d.Headers {
		if h.Name == name {
			d.Headers[i].Value = value
			return
		}
	}
	d.Headers = append(d.Headers, Header{Name: name, Value: value})
}

// Coordinate returns the coordinate column, or nil when the dataset has
// no columns.
func (d *Dataset) Coordinate() *Column {
	if len(d.Columns) == 0 {
		return nil
	}
	return &d.Columns[0]
}

// Rows returns the number of data rows, taken from the coordinate
// column.
func (d *Dataset) Rows() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return len(d.Columns[0].Values)
}

// Clone returns a deep copy of the dataset.
func (d *Dataset) Clone() *Dataset {
	clone := &Dataset{
		XDIVersion:  d.XDIVersion,
		Versions:    util.CloneMap(d.Versions),
		Headers:     util.CloneSlice(d.Headers, 0),
		UserComment: d.UserComment,
	}
	if d.Columns != nil {
		clone.Columns = make([]Column, len(d.Columns))
		for i, col := range d.Columns {
			clone.Columns[i] = Column{
				Label:  col.Label,
				Values: util.CloneSlice(col.Values, 0),
			}
		}
	}
	return clone
}
