package uz

import "fmt"

// Unsigned is the set of native unsigned integers a value converts from.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint
}

// Signed is the set of native signed integers a value converts from.
// Negative inputs are always rejected.
type Signed interface {
	~int32 | ~int
}

// Native is every integer source accepted by the checked constructors.
type Native interface {
	Unsigned | Signed
}

// uintBits is the width of uint, the backing type of every range type.
const uintBits = 32 << (^uint(0) >> 63)

// Family distinguishes bit-width types from cardinality types.
type Family uint8

const (
	FamilyBits  Family = iota + 1 // UzN: values below 2^N
	FamilyRange                   // RzM: indices below M
)

func (f Family) String() string {
	switch f {
	case FamilyBits:
		return "bits"
	case FamilyRange:
		return "range"
	default:
		return fmt.Sprintf("Family(%d)", uint8(f))
	}
}

// Value is implemented by every UzN and RzM type.
type Value interface {
	fmt.Stringer
	fmt.GoStringer
	fmt.Formatter

	// Uint returns the numeric value. It never fails.
	Uint() uint

	// Descriptor describes the value's type.
	Descriptor() Descriptor
}
