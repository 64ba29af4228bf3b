package wasmabi

import (
	"fmt"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/uz"
	"github.com/wippyai/uz/errors"
)

// Carrier returns the WIT primitive a value of d is passed as.
func Carrier(d uz.Descriptor) wit.Type {
	if d.Family == uz.FamilyRange {
		return wit.U32{}
	}
	switch d.BackingBits {
	case 8:
		return wit.U8{}
	case 16:
		return wit.U16{}
	default:
		return wit.U32{}
	}
}

// Fits reports whether every value of d is representable by t.
// t must be a WIT integer primitive, or a type alias of one.
func Fits(d uz.Descriptor, t wit.Type) error {
	p, ok := integer(t)
	if !ok {
		return errors.Unsupported(errors.PhaseLower, fmt.Sprintf("%s is not a WIT integer type", TypeName(t)))
	}
	valueBits := p.bits
	if p.signed {
		valueBits--
	}
	if d.Max()>>valueBits != 0 {
		return errors.New(errors.PhaseLower, errors.KindTypeMismatch).
			Type(d.Name).
			Native(p.name).
			Detail("max value %d needs more than %d bits", d.Max(), valueBits).
			Build()
	}
	return nil
}

// TypeName returns the WIT spelling of a primitive type, e.g. "u16".
func TypeName(t wit.Type) string {
	if p, ok := integer(t); ok {
		return p.name
	}
	switch t := t.(type) {
	case wit.Bool:
		return "bool"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.Char:
		return "char"
	case wit.String:
		return "string"
	case *wit.TypeDef:
		if t.Name != nil {
			return *t.Name
		}
	}
	return fmt.Sprintf("%T", t)
}

type primitive struct {
	name   string
	bits   uint
	signed bool
}

func integer(t wit.Type) (primitive, bool) {
	switch t := t.(type) {
	case wit.U8:
		return primitive{"u8", 8, false}, true
	case wit.U16:
		return primitive{"u16", 16, false}, true
	case wit.U32:
		return primitive{"u32", 32, false}, true
	case wit.U64:
		return primitive{"u64", 64, false}, true
	case wit.S8:
		return primitive{"s8", 8, true}, true
	case wit.S16:
		return primitive{"s16", 16, true}, true
	case wit.S32:
		return primitive{"s32", 32, true}, true
	case wit.S64:
		return primitive{"s64", 64, true}, true
	case *wit.TypeDef:
		// type aliases resolve to their underlying primitive
		if kind, ok := t.Kind.(wit.Type); ok {
			return integer(kind)
		}
	}
	return primitive{}, false
}
