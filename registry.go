package uz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/uz/errors"
)

// Descriptor describes one generated type. It lets tools pick a width or
// cardinality at run time and still produce values of the fixed types.
type Descriptor struct {
	Name        string
	Family      Family
	Width       uint   // bits a value may occupy
	Len         uint64 // number of legal values: 2^Width for bits, M for ranges
	BackingBits uint   // width of the backing integer
	Enumerable  bool   // every value has a named constant
}

// Bits returns the descriptor of UzN for width n.
func Bits(n uint) (Descriptor, bool) {
	if n >= uint(len(bitsTable)) || bitsTable[n].Name == "" {
		return Descriptor{}, false
	}
	return bitsTable[n], true
}

// Range returns the descriptor of RzM for cardinality m.
func Range(m uint) (Descriptor, bool) {
	if m >= uint(len(rangeTable)) || rangeTable[m].Name == "" {
		return Descriptor{}, false
	}
	return rangeTable[m], true
}

// Descriptors returns every bit-width descriptor followed by every
// range descriptor, each in ascending order.
func Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(bitsTable)+len(rangeTable))
	for _, d := range bitsTable {
		if d.Name != "" {
			out = append(out, d)
		}
	}
	for _, d := range rangeTable {
		if d.Name != "" {
			out = append(out, d)
		}
	}
	return out
}

// Lookup finds a descriptor by type name. Names are case-insensitive:
// "Uz12", "uz12" and "RZ5" are all accepted.
func Lookup(name string) (Descriptor, error) {
	if len(name) < 3 {
		return Descriptor{}, errors.NotFound(errors.PhaseLookup, fmt.Sprintf("no type named %q", name))
	}
	n, err := strconv.ParseUint(name[2:], 10, 8)
	if err != nil {
		return Descriptor{}, errors.NotFound(errors.PhaseLookup, fmt.Sprintf("no type named %q", name))
	}

	var (
		d  Descriptor
		ok bool
	)
	switch strings.ToLower(name[:2]) {
	case "uz":
		d, ok = Bits(uint(n))
	case "rz":
		d, ok = Range(uint(n))
	}
	// ParseUint also takes "012"; only the canonical spelling names a type.
	if !ok || !strings.EqualFold(d.Name, name) {
		return Descriptor{}, errors.NotFound(errors.PhaseLookup, fmt.Sprintf("no type named %q", name))
	}
	return d, nil
}

// Max returns the largest legal value.
func (d Descriptor) Max() uint64 {
	return d.Len - 1
}

// Contains reports whether v is a legal value of the type.
func (d Descriptor) Contains(v uint64) bool {
	return v < d.Len
}

// Backing returns the Go name of the backing integer type.
func (d Descriptor) Backing() string {
	if d.Family == FamilyRange {
		return "uint"
	}
	return "uint" + strconv.Itoa(int(d.BackingBits))
}

// HexDigits returns the digit count of the debug rendering for
// hex-rendered types, or 0 for binary-rendered ones.
func (d Descriptor) HexDigits() int {
	switch {
	case d.Family == FamilyRange && d.Len <= 16:
		return 1
	case d.Family == FamilyRange:
		return 2
	case d.Enumerable:
		return 0
	default:
		return (int(d.Width) + 3) / 4
	}
}

func (d Descriptor) String() string {
	return d.Name
}

// New converts v with the type's checked constructor.
func (d Descriptor) New(v uint) (Value, error) {
	switch d.Family {
	case FamilyBits:
		return newBits(d.Width, v)
	case FamilyRange:
		return newRange(uint(d.Len), v)
	}
	return nil, errors.NotFound(errors.PhaseLookup, "zero descriptor")
}

// NewUnchecked converts v without a range check. The caller must already
// know that v is legal; see the FromUintUnchecked constructors.
func (d Descriptor) NewUnchecked(v uint) Value {
	switch d.Family {
	case FamilyBits:
		return uncheckedBits(d.Width, v)
	case FamilyRange:
		return uncheckedRange(uint(d.Len), v)
	}
	return nil
}

func notFound(what string, n uint) error {
	return errors.NotFound(errors.PhaseLookup, fmt.Sprintf("no type with %s %d", what, n))
}
