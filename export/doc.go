// Package export re-serializes datasets into structured interchange
// documents (JSON and YAML) for analysis tools that do not speak the
// XDI text format. The document shape is shared between both encodings;
// header order is preserved.
package export
