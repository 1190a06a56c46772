package fileio

import (
	"errors"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/spc-group/go-xdi/xdi"
)

// ErrUnknownFormat reports a file whose extension is not registered with
// any format codec.
var ErrUnknownFormat = errors.New("unknown file format")

// Format converts between the text form of a file format and a dataset.
type Format interface {
	// Load converts formatted text to a dataset.
	Load(text string) (*xdi.Dataset, error)
	// Dump converts a dataset to formatted text.
	Dump(ds *xdi.Dataset) (string, error)
}

var formats = xsync.NewMapOf[string, Format]()

// Register associates a file extension, e.g. ".xdi", with a format
// codec, replacing any previous registration. Registration and lookup
// are safe for concurrent use by host frameworks.
func Register(ext string, format Format) {
	formats.Store(normalizeExt(ext), format)
}

// Lookup returns the format codec registered for a file extension.
func Lookup(ext string) (Format, bool) {
	return formats.Load(normalizeExt(ext))
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// xdiFormat adapts the xdi codec to the Format interface.
type xdiFormat struct{}

func (xdiFormat) Load(text string) (*xdi.Dataset, error) { return xdi.Load(text) }

func (xdiFormat) Dump(ds *xdi.Dataset) (string, error) { return xdi.Dump(ds) }

func init() {
	Register(".xdi", xdiFormat{})
}
