// Package errors provides structured error types for the uz library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the domain type (e.g. Uz4, Rz12), the native Go type the value
// came from or was exported to, the offending value, and a cause chain.
//
// The core has a single failure taxonomy, the range violation, split into three kinds:
//
//	KindOutOfRange  value >= 2^N (bit types) or >= M (range types)
//	KindNegative    negative value from a signed source
//	KindNarrowing   export to a native type that cannot hold the value
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConstruct, errors.KindOutOfRange).
//		Type("Uz4").
//		Native("uint8").
//		Value(20).
//		Detail("value 20 exceeds mask 0xf").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfRange(errors.PhaseConstruct, "Uz4", "uint8", 20, "mask 0xf")
//	err := errors.Narrowing(errors.PhaseExport, "Uz12", "uint8", 0x100)
//
// All errors implement the standard error interface and support errors.Is/As.
// IsRange reports whether an error is any of the range-violation kinds.
package errors
