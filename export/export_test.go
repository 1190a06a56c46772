package export

import (
	"math"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/spc-group/go-xdi/xdi"
)

func testDataset() *xdi.Dataset {
	return &xdi.Dataset{
		XDIVersion: "1.0",
		Versions:   map[string]string{"hollowfoot": "2025.2"},
		Headers: []xdi.Header{
			{Name: "Column.1", Value: "energy eV"},
			{Name: "Sample.name", Value: "NiO powder"},
		},
		UserComment: "spam\nand eggs",
		Columns: []xdi.Column{
			{Label: "energy", Values: []float64{8330.0, 8340.0}},
			{Label: "i0", Values: []float64{12345.5, math.NaN()}},
		},
	}
}

func TestJSON(t *testing.T) {
	require := require.New(t)

	raw, err := JSON(testDataset())
	require.NoError(err)

	var decoded struct {
		XDIVersion  string            `json:"xdi_version"`
		Versions    map[string]string `json:"versions"`
		Headers     []map[string]string
		UserComment string `json:"user_comment"`
		Coordinate  string `json:"coordinate"`
		Columns     []struct {
			Label  string     `json:"label"`
			Values []*float64 `json:"values"`
		} `json:"columns"`
	}
	require.NoError(json.Unmarshal(raw, &decoded))

	require.Equal("1.0", decoded.XDIVersion)
	require.Equal("2025.2", decoded.Versions["hollowfoot"])
	require.Equal("spam\nand eggs", decoded.UserComment)
	require.Equal("energy", decoded.Coordinate)

	require.Len(decoded.Columns, 2)
	require.Equal("energy", decoded.Columns[0].Label)
	require.Equal(8330.0, *decoded.Columns[0].Values[0])

	// The NaN sentinel encodes as null.
	require.Nil(decoded.Columns[1].Values[1])
	require.Equal(12345.5, *decoded.Columns[1].Values[0])
}

func TestJSON_HeaderOrder(t *testing.T) {
	require := require.New(t)

	raw, err := JSON(testDataset())
	require.NoError(err)

	text := string(raw)
	require.Less(
		strings.Index(text, "Column.1"), strings.Index(text, "Sample.name"),
		"headers must keep file order",
	)
}

func TestYAML(t *testing.T) {
	require := require.New(t)

	raw, err := YAML(testDataset())
	require.NoError(err)

	var decoded struct {
		XDIVersion string `yaml:"xdi_version"`
		Coordinate string `yaml:"coordinate"`
		Columns    []struct {
			Label  string    `yaml:"label"`
			Values []float64 `yaml:"values"`
		} `yaml:"columns"`
	}
	require.NoError(yaml.Unmarshal(raw, &decoded))

	require.Equal("1.0", decoded.XDIVersion)
	require.Equal("energy", decoded.Coordinate)
	require.Len(decoded.Columns, 2)
	require.Equal([]float64{8330.0, 8340.0}, decoded.Columns[0].Values)
	require.True(math.IsNaN(decoded.Columns[1].Values[1]))
}
