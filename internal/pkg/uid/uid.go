// Package uid provides ID generators behind small interfaces so callers can
// swap implementations in tests.
package uid

// StringID generates string identifiers (correlation IDs, message IDs).
type StringID interface {
	Generate() string
}

// NumberID generates int64 identifiers (event IDs).
type NumberID interface {
	Generate() int64
}
