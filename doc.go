// Package uz provides fixed-width unsigned integer types and fixed-cardinality
// index types whose range is guaranteed by construction.
//
// A UzN holds an N-bit unsigned value, 0 <= v < 2^N, for N = 1..32. An RzM
// holds an index into a set of exactly M items, 0 <= v < M, for M = 1..32.
// Passing a Uz12 instead of a uint16 states at the type level that the upper
// four bits are clear; passing an Rz5 instead of an int states that the
// index is below 5.
//
// # Representation
//
//	Uz1..Uz6     type UzN uint8, one named constant per bit pattern (Uz3B101)
//	Uz7..Uz8     opaque struct backed by uint8
//	Uz9..Uz16    opaque struct backed by uint16
//	Uz17..Uz32   opaque struct backed by uint32
//	Rz1..Rz32    type RzM uint, one named constant per index (Rz5X4, Rz20X0a)
//
// The small bit types and every range type are Go enums, so a switch over
// their constants can be checked for exhaustiveness by linters.
//
// # Conversions
//
// Every type converts from uint8, uint16, uint32, uint and int32:
//
//	v, err := uz.Uz4FromU8(x)      // error if x > 0xf
//	i, err := uz.Rz5FromI32(n)     // error if n < 0 or n >= 5
//	f := uz.MustUz12(0xfff)        // panics on violation
//	b := uz.Uz12FromU32Unchecked(word >> 4 & uz.Uz12Mask)
//
// Checked constructors return an *errors.Error whose Kind is out_of_range
// or negative; errors.IsRange reports either. Must constructors panic with
// that same error. Unchecked constructors trust the caller: they exist for
// hot paths that already masked the value, and passing an out-of-range value
// to one leaves the type's invariant broken. For Uz1..Uz6 and the range
// types a plain Go conversion such as uz.Uz3(x) is the same unchecked
// operation.
//
// Exports to a native type at least as wide as the backing type never fail.
// Narrower exports return an error when a high bit would be lost:
//
//	w := uz.MustUz16(0x100)
//	_, err := w.U8() // narrowing error
//
// A smaller range widens into any larger range without a check:
//
//	var r uz.Rz2 = uz.Rz2X1
//	wide := r.ToRz4() // Rz4X1
//
// # Formatting
//
// Every type implements fmt.Formatter:
//
//	%v %s %d   decimal                     5
//	%x         backing integer's hex        5
//	%#v        debug rendering              0b101 (Uz1..Uz6), 0xfff (Uz12), 0x4 (Rz5)
//
// # Generated code
//
// The per-type declarations live in *_gen.go files produced by cmd/uzgen
// from uzgen.yaml. Run go generate after changing the templates or config.
package uz
