package export

import (
	"math"
	"strconv"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/spc-group/go-xdi/xdi"
)

// document is the shared shape of the JSON and YAML encodings of a
// dataset. Headers stay an ordered array so the XDI field order
// survives the round trip through tools that care about it.
type document struct {
	XDIVersion  string            `json:"xdi_version" yaml:"xdi_version"`
	Versions    map[string]string `json:"versions,omitempty" yaml:"versions,omitempty"`
	Headers     []headerEntry     `json:"headers,omitempty" yaml:"headers,omitempty"`
	UserComment string            `json:"user_comment,omitempty" yaml:"user_comment,omitempty"`
	Coordinate  string            `json:"coordinate,omitempty" yaml:"coordinate,omitempty"`
	Columns     []columnEntry     `json:"columns,omitempty" yaml:"columns,omitempty"`
}

type headerEntry struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

type columnEntry struct {
	Label  string `json:"label" yaml:"label"`
	Values cells  `json:"values" yaml:"values"`
}

// cells wraps a value slice so NaN sentinels encode as JSON null
// instead of failing the marshal. YAML handles NaN natively.
type cells []float64

func (c cells) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, len(c)*8+2)
	buf = append(buf, '[')
	for i, v := range c {
		if i > 0 {
			buf = append(buf, ',')
		}
		if math.IsNaN(v) {
			buf = append(buf, "null"...)
		} else {
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		}
	}
	return append(buf, ']'), nil
}

func newDocument(ds *xdi.Dataset) document {
	doc := document{
		XDIVersion:  ds.XDIVersion,
		Versions:    ds.Versions,
		UserComment: ds.UserComment,
	}
	for _, h := range ds.Headers {
		doc.Headers = append(doc.Headers, headerEntry{Name: h.Name, Value: h.Value})
	}
	if coord := ds.Coordinate(); coord != nil {
		doc.Coordinate = coord.Label
	}
	for _, col := range ds.Columns {
		doc.Columns = append(doc.Columns, columnEntry{Label: col.Label, Values: cells(col.Values)})
	}
	return doc
}

// JSON encodes a dataset as a JSON document. NaN data cells become
// null.
func JSON(ds *xdi.Dataset) ([]byte, error) {
	return json.Marshal(newDocument(ds))
}

// YAML encodes a dataset as a YAML document.
func YAML(ds *xdi.Dataset) ([]byte, error) {
	return yaml.Marshal(newDocument(ds))
}
