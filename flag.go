package uz

// Uz1FromBool converts a flag: true is Uz1B1, false is Uz1B0.
func Uz1FromBool(b bool) Uz1 {
	if b {
		return Uz1B1
	}
	return Uz1B0
}

// IsSet reports whether the bit is 1.
func (v Uz1) IsSet() bool {
	return v != 0
}

// Bool is IsSet for call sites that read as a conversion.
func (v Uz1) Bool() bool {
	return v.IsSet()
}

// Not rebuilds a value from v's own bit. It does not invert it:
// Uz1B1.Not() == Uz1B1. Use Uz1FromBool(!v.IsSet()) to flip a flag.
func (v Uz1) Not() Uz1 {
	return Uz1FromU8Unchecked(uint8(v))
}
