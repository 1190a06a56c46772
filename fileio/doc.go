// Package fileio is a thin host adapter around the pure xdi codec.
//
// It owns file I/O: reading and writing datasets from disk, transparent
// gzip handling for ".xdi.gz" files, a concurrent extension-to-codec
// registry for host frameworks, and name-stub discovery of sibling data
// files. File format identification is extension based only; no content
// sniffing is performed.
package fileio
