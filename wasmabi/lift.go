package wasmabi

import (
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/uz"
	"github.com/wippyai/uz/errors"
)

// Lower encodes v into a core i32 stack slot.
func Lower(v uz.Value) uint64 {
	return api.EncodeU32(uint32(v.Uint()))
}

// Lift decodes a core i32 stack slot into a value of type d. The value
// must lie in d's domain; bits above it are never masked off.
func Lift(d uz.Descriptor, slot uint64) (uz.Value, error) {
	raw := api.DecodeU32(slot)
	v, err := d.New(uint(raw))
	if err != nil {
		Logger().Debug("lift rejected core value",
			zap.String("type", d.Name),
			zap.Uint32("raw", raw),
			zap.Error(err))
		return nil, errors.New(errors.PhaseLift, errors.KindOutOfRange).
			Type(d.Name).
			Native(TypeName(Carrier(d))).
			Value(raw).
			Cause(err).
			Detail("core value %#x is outside the type", raw).
			Build()
	}
	return v, nil
}
