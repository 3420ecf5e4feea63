// Package formats provides parsers for the legacy palette-indexed image formats.
package formats

// Note: COL (palette) is implemented in col.go
// Note: IMG (single image) is implemented in img.go
