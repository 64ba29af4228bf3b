package wasmabi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/uz"
	"github.com/wippyai/uz/errors"
)

func lookup(t *testing.T, name string) uz.Descriptor {
	t.Helper()
	d, err := uz.Lookup(name)
	require.NoError(t, err)
	return d
}

func TestCarrier(t *testing.T) {
	tests := []struct {
		name string
		want wit.Type
	}{
		{"Uz1", wit.U8{}},
		{"Uz6", wit.U8{}},
		{"Uz8", wit.U8{}},
		{"Uz9", wit.U16{}},
		{"Uz16", wit.U16{}},
		{"Uz17", wit.U32{}},
		{"Uz32", wit.U32{}},
		{"Rz1", wit.U32{}},
		{"Rz32", wit.U32{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Carrier(lookup(t, tt.name)))
		})
	}
}

func TestCarrier_AlwaysFits(t *testing.T) {
	for _, d := range uz.Descriptors() {
		assert.NoError(t, Fits(d, Carrier(d)), d.Name)
	}
}

func TestFits(t *testing.T) {
	alias := "small"
	tests := []struct {
		name    string
		typ     string
		witType wit.Type
		kind    errors.Kind
	}{
		{"u8 holds Uz8", "Uz8", wit.U8{}, ""},
		{"u8 rejects Uz9", "Uz9", wit.U8{}, errors.KindTypeMismatch},
		{"s8 holds Uz7", "Uz7", wit.S8{}, ""},
		{"s8 rejects Uz8", "Uz8", wit.S8{}, errors.KindTypeMismatch},
		{"s32 rejects Uz32", "Uz32", wit.S32{}, errors.KindTypeMismatch},
		{"s64 holds Uz32", "Uz32", wit.S64{}, ""},
		{"u64 holds Uz32", "Uz32", wit.U64{}, ""},
		{"u8 holds Rz32", "Rz32", wit.U8{}, ""},
		{"s8 holds Rz1", "Rz1", wit.S8{}, ""},
		{"u16 holds Uz16", "Uz16", wit.U16{}, ""},
		{"s16 rejects Uz16", "Uz16", wit.S16{}, errors.KindTypeMismatch},
		{"alias of u16", "Uz12", &wit.TypeDef{Name: &alias, Kind: wit.U16{}}, ""},
		{"string", "Uz3", wit.String{}, errors.KindUnsupported},
		{"bool", "Uz1", wit.Bool{}, errors.KindUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Fits(lookup(t, tt.typ), tt.witType)
			if tt.kind == "" {
				assert.NoError(t, err)
				return
			}
			var e *errors.Error
			require.True(t, errors.As(err, &e), "error = %v", err)
			assert.Equal(t, tt.kind, e.Kind)
		})
	}
}

func TestTypeName(t *testing.T) {
	name := "flag"
	assert.Equal(t, "u8", TypeName(wit.U8{}))
	assert.Equal(t, "s64", TypeName(wit.S64{}))
	assert.Equal(t, "string", TypeName(wit.String{}))
	assert.Equal(t, "flag", TypeName(&wit.TypeDef{Name: &name, Kind: &wit.Record{}}))
	assert.Equal(t, "u32", TypeName(&wit.TypeDef{Name: &name, Kind: wit.U32{}}))
}

func TestLowerLift_RoundTrip(t *testing.T) {
	for _, d := range uz.Descriptors() {
		for _, raw := range []uint{0, uint(d.Max())} {
			v := d.NewUnchecked(raw)
			slot := Lower(v)

			got, err := Lift(d, slot)
			require.NoError(t, err, "%s %d", d.Name, raw)
			assert.Equal(t, v, got, "%s %d", d.Name, raw)
		}
	}
}

func TestLift_OutOfRange(t *testing.T) {
	_, err := Lift(lookup(t, "Uz4"), api.EncodeU32(16))
	require.Error(t, err)
	assert.True(t, errors.IsRange(err))

	var e *errors.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, errors.PhaseLift, e.Phase)
	assert.Equal(t, "Uz4", e.Type)
	assert.Equal(t, "u8", e.Native)
	assert.True(t, errors.Is(e.Cause, errors.ErrOutOfRange))

	_, err = Lift(lookup(t, "Rz3"), api.EncodeU32(3))
	assert.True(t, errors.IsRange(err))
}

func TestHostFunc_WIT(t *testing.T) {
	h := HostFunc{
		Params:  []uz.Descriptor{lookup(t, "Uz4"), lookup(t, "Uz12")},
		Results: []uz.Descriptor{lookup(t, "Rz5")},
	}
	assert.Equal(t, "func(p0: u8, p1: u16) -> u32", h.WIT())

	h.Results = nil
	assert.Equal(t, "func(p0: u8, p1: u16)", h.WIT())

	h.Results = []uz.Descriptor{lookup(t, "Uz1"), lookup(t, "Uz20")}
	assert.Equal(t, "func(p0: u8, p1: u16) -> tuple<u8, u32>", h.WIT())

	params, results := h.Signature()
	assert.Equal(t, []api.ValueType{api.ValueTypeI32, api.ValueTypeI32}, params)
	assert.Equal(t, []api.ValueType{api.ValueTypeI32, api.ValueTypeI32}, results)
}

// callerWasm imports env.mix (i32, i32) -> i32 and env.wrong (i32) -> i32
// and exports a function of the same name forwarding to each.
var callerWasm = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, // magic, version 1

	// type: 0 = (i32, i32) -> i32, 1 = (i32) -> i32
	0x01, 0x0c, 0x02,
	0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7f,
	0x60, 0x01, 0x7f, 0x01, 0x7f,

	// import: env.mix type 0 (func 0), env.wrong type 1 (func 1)
	0x02, 0x17, 0x02,
	0x03, 'e', 'n', 'v', 0x03, 'm', 'i', 'x', 0x00, 0x00,
	0x03, 'e', 'n', 'v', 0x05, 'w', 'r', 'o', 'n', 'g', 0x00, 0x01,

	// func: 2 has type 0, 3 has type 1
	0x03, 0x03, 0x02, 0x00, 0x01,

	// export: mix = func 2, wrong = func 3
	0x07, 0x0f, 0x02,
	0x03, 'm', 'i', 'x', 0x00, 0x02,
	0x05, 'w', 'r', 'o', 'n', 'g', 0x00, 0x03,

	// code
	0x0a, 0x11, 0x02,
	0x08, 0x00, 0x20, 0x00, 0x20, 0x01, 0x10, 0x00, 0x0b, // local.get 0; local.get 1; call 0
	0x06, 0x00, 0x20, 0x00, 0x10, 0x01, 0x0b,             // local.get 0; call 1
}

func TestHostFunc_Wazero(t *testing.T) {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	uz4 := lookup(t, "Uz4")
	rz10 := lookup(t, "Rz10")

	builder := r.NewHostModuleBuilder("env")
	HostFunc{
		Params:  []uz.Descriptor{uz4, rz10},
		Results: []uz.Descriptor{rz10},
		Fn: func(_ context.Context, args []uz.Value) ([]uz.Value, error) {
			v, err := rz10.New((args[0].Uint() + args[1].Uint()) % 10)
			return []uz.Value{v}, err
		},
	}.Export(builder, "mix")
	HostFunc{
		Params:  []uz.Descriptor{uz4},
		Results: []uz.Descriptor{uz4},
		Fn: func(_ context.Context, args []uz.Value) ([]uz.Value, error) {
			return []uz.Value{uz.Rz3X1}, nil
		},
	}.Export(builder, "wrong")

	_, err := builder.Instantiate(ctx)
	require.NoError(t, err)

	// Host modules cannot be called directly; go through a guest that
	// imports both functions.
	guest, err := r.Instantiate(ctx, callerWasm)
	require.NoError(t, err)

	mix := guest.ExportedFunction("mix")
	require.NotNil(t, mix)

	res, err := mix.Call(ctx, api.EncodeU32(3), api.EncodeU32(9))
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, uint32(2), api.DecodeU32(res[0]))

	_, err = mix.Call(ctx, api.EncodeU32(16), api.EncodeU32(0))
	require.Error(t, err, "Uz4 argument 16 must trap")
	assert.True(t, errors.IsRange(err), "error = %v", err)

	_, err = mix.Call(ctx, api.EncodeU32(1), api.EncodeU32(10))
	require.Error(t, err, "Rz10 argument 10 must trap")
	assert.True(t, errors.IsRange(err), "error = %v", err)

	wrong := guest.ExportedFunction("wrong")
	require.NotNil(t, wrong)
	_, err = wrong.Call(ctx, api.EncodeU32(1))
	require.Error(t, err)
	var e *errors.Error
	require.True(t, errors.As(err, &e), "error = %v", err)
	assert.Equal(t, errors.KindTypeMismatch, e.Kind)
}
