// Package xdi provides functions for parsing and producing text in the
// XAS Data Interchange (XDI) format, used to exchange X-ray absorption
// spectroscopy measurements between instruments and analysis tools.
//
// For details of the format, see:
// https://github.com/XraySpectroscopy/XAS-Data-Interchange/
//
// Forward parsing takes place in two steps:
//
//  1. Convert text into tokens (Tokenize)
//  2. Assemble the tokens into a dataset (Parse)
//
// These steps are combined in the Load function.
// For going in the other direction, use Dump.
//
// Usage Example:
//
//	ds, err := xdi.Load(text)
//	if err != nil {
//	    // Handle error
//	}
//	energy := ds.Coordinate()
//	out, err := xdi.Dump(ds)
//
// The codec is purely synchronous and side-effect free; callers own all
// file I/O and pass in or receive strings.
package xdi
