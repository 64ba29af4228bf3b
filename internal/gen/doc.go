// Package gen renders the per-type declarations of package uz.
//
// Each bit width and cardinality gets the same set of declarations; the
// templates under templates/ describe one type, and the model built from
// Config decides which representation each width uses:
//
//	width <= bits.enum_max   uint8 enum with one constant per bit pattern
//	width <= 8               struct wrapping uint8
//	width <= 16              struct wrapping uint16
//	width <= 32              struct wrapping uint32
//
// Range types are always uint enums with one constant per index, plus a
// widening method to every larger configured range.
//
// Output is passed through go/format before it is written, so the files
// on disk are exactly what gofmt would produce.
package gen
