package wasmabi

import (
	"context"
	"fmt"
	"strconv"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/uz"
	"github.com/wippyai/uz/errors"
)

// HostFunc is a host function whose parameters and results are uz values.
type HostFunc struct {
	Params  []uz.Descriptor
	Results []uz.Descriptor
	Fn      func(ctx context.Context, args []uz.Value) ([]uz.Value, error)
}

// GoModuleFunction adapts h to wazero's stack-based calling convention.
// Arguments are lifted with Lift and results lowered with Lower. Any
// failure panics with an *errors.Error, which wazero turns into a trap
// that the caller sees as an error wrapping it.
func (h HostFunc) GoModuleFunction() api.GoModuleFunction {
	return api.GoModuleFunc(func(ctx context.Context, _ api.Module, stack []uint64) {
		args := make([]uz.Value, len(h.Params))
		for i, d := range h.Params {
			v, err := Lift(d, stack[i])
			if err != nil {
				panic(err)
			}
			args[i] = v
		}

		results, err := h.Fn(ctx, args)
		if err != nil {
			panic(err)
		}
		if len(results) != len(h.Results) {
			panic(errors.InvalidInput(errors.PhaseLower, []string{"results"},
				fmt.Sprintf("got %d results, want %d", len(results), len(h.Results))))
		}

		for i, d := range h.Results {
			v := results[i]
			if v == nil || v.Descriptor() != d {
				got := "nil"
				if v != nil {
					got = v.Descriptor().Name
				}
				panic(errors.TypeMismatch(errors.PhaseLower, []string{"results", strconv.Itoa(i)}, d.Name, got))
			}
			stack[i] = Lower(v)
		}
	})
}

// Signature returns the core value types of h. Every uz value is one i32.
func (h HostFunc) Signature() (params, results []api.ValueType) {
	return i32s(len(h.Params)), i32s(len(h.Results))
}

// WIT renders h as a WIT function type, e.g. "func(a: u8) -> u32".
func (h HostFunc) WIT() string {
	s := "func("
	for i, d := range h.Params {
		if i > 0 {
			s += ", "
		}
		s += "p" + strconv.Itoa(i) + ": " + TypeName(Carrier(d))
	}
	s += ")"
	switch len(h.Results) {
	case 0:
	case 1:
		s += " -> " + TypeName(Carrier(h.Results[0]))
	default:
		s += " -> tuple<"
		for i, d := range h.Results {
			if i > 0 {
				s += ", "
			}
			s += TypeName(Carrier(d))
		}
		s += ">"
	}
	return s
}

// Export registers h on builder under name and returns the builder for
// chaining.
func (h HostFunc) Export(builder wazero.HostModuleBuilder, name string) wazero.HostModuleBuilder {
	params, results := h.Signature()
	Logger().Debug("export host function",
		zap.String("name", name),
		zap.String("wit", h.WIT()))
	return builder.NewFunctionBuilder().
		WithGoModuleFunction(h.GoModuleFunction(), params, results).
		Export(name)
}

func i32s(n int) []api.ValueType {
	types := make([]api.ValueType, n)
	for i := range types {
		types[i] = api.ValueTypeI32
	}
	return types
}
