package uz_test

import (
	"math"
	"testing"

	"github.com/wippyai/uz"
	"github.com/wippyai/uz/errors"
)

func TestBits_EveryWidth(t *testing.T) {
	for n := uint(1); n <= 32; n++ {
		d, ok := uz.Bits(n)
		if !ok {
			t.Fatalf("Bits(%d) missing", n)
		}
		max := uint(d.Max())

		for _, v := range []uint{0, 1 & max, max / 2, max} {
			got, err := d.New(v)
			if err != nil {
				t.Errorf("%s.New(%d): %v", d, v, err)
				continue
			}
			if got.Uint() != v {
				t.Errorf("%s.New(%d).Uint() = %d", d, v, got.Uint())
			}
			if got.Descriptor() != d {
				t.Errorf("%s.New(%d).Descriptor() = %v", d, v, got.Descriptor())
			}
		}

		if n == 32 && math.MaxUint == math.MaxUint32 {
			continue
		}
		_, err := d.New(max + 1)
		if !errors.Is(err, errors.ErrOutOfRange) {
			t.Errorf("%s.New(%d) error = %v, want out of range", d, max+1, err)
		}
	}
}

func TestBits_EveryValueEverySource(t *testing.T) {
	sweep(t, 1, uz.Uz1FromU8, uz.Uz1FromU16, uz.Uz1FromU32, uz.Uz1FromUint, uz.Uz1FromI32)
	sweep(t, 3, uz.Uz2FromU8, uz.Uz2FromU16, uz.Uz2FromU32, uz.Uz2FromUint, uz.Uz2FromI32)
	sweep(t, 7, uz.Uz3FromU8, uz.Uz3FromU16, uz.Uz3FromU32, uz.Uz3FromUint, uz.Uz3FromI32)
	sweep(t, 15, uz.Uz4FromU8, uz.Uz4FromU16, uz.Uz4FromU32, uz.Uz4FromUint, uz.Uz4FromI32)
	sweep(t, 31, uz.Uz5FromU8, uz.Uz5FromU16, uz.Uz5FromU32, uz.Uz5FromUint, uz.Uz5FromI32)
	sweep(t, 63, uz.Uz6FromU8, uz.Uz6FromU16, uz.Uz6FromU32, uz.Uz6FromUint, uz.Uz6FromI32)
}

func TestBits_Representation(t *testing.T) {
	tests := []struct {
		width      uint
		backing    string
		enumerable bool
	}{
		{1, "uint8", true},
		{6, "uint8", true},
		{7, "uint8", false},
		{8, "uint8", false},
		{9, "uint16", false},
		{16, "uint16", false},
		{17, "uint32", false},
		{32, "uint32", false},
	}

	for _, tt := range tests {
		d, _ := uz.Bits(tt.width)
		if d.Backing() != tt.backing {
			t.Errorf("Uz%d backing = %s, want %s", tt.width, d.Backing(), tt.backing)
		}
		if d.Enumerable != tt.enumerable {
			t.Errorf("Uz%d enumerable = %v, want %v", tt.width, d.Enumerable, tt.enumerable)
		}
		if d.Len != 1<<tt.width {
			t.Errorf("Uz%d len = %d", tt.width, d.Len)
		}
	}
}

func TestBits_Sources(t *testing.T) {
	// Every source accepts the maximum and rejects one past it.
	t.Run("Uz3", func(t *testing.T) {
		check(t, "FromU8", must(uz.Uz3FromU8(7)).Uint(), 7)
		check(t, "FromU16", must(uz.Uz3FromU16(7)).Uint(), 7)
		check(t, "FromU32", must(uz.Uz3FromU32(7)).Uint(), 7)
		check(t, "FromUint", must(uz.Uz3FromUint(7)).Uint(), 7)
		check(t, "FromI32", must(uz.Uz3FromI32(7)).Uint(), 7)

		rejects(t, "FromU8", errOf(uz.Uz3FromU8(8)))
		rejects(t, "FromU16", errOf(uz.Uz3FromU16(8)))
		rejects(t, "FromU32", errOf(uz.Uz3FromU32(8)))
		rejects(t, "FromUint", errOf(uz.Uz3FromUint(8)))
		rejects(t, "FromI32", errOf(uz.Uz3FromI32(8)))
	})

	t.Run("Uz12", func(t *testing.T) {
		check(t, "FromU16", must(uz.Uz12FromU16(0xfff)).Uint(), 0xfff)
		check(t, "FromU32", must(uz.Uz12FromU32(0xfff)).Uint(), 0xfff)
		check(t, "FromUint", must(uz.Uz12FromUint(0xfff)).Uint(), 0xfff)
		check(t, "FromI32", must(uz.Uz12FromI32(0xfff)).Uint(), 0xfff)
		check(t, "FromU8", must(uz.Uz12FromU8(0xff)).Uint(), 0xff)

		rejects(t, "FromU16", errOf(uz.Uz12FromU16(0x1000)))
		rejects(t, "FromU32", errOf(uz.Uz12FromU32(0x1000)))
		rejects(t, "FromUint", errOf(uz.Uz12FromUint(0x1000)))
		rejects(t, "FromI32", errOf(uz.Uz12FromI32(0x1000)))
	})

	t.Run("Uz32", func(t *testing.T) {
		check(t, "FromU32", must(uz.Uz32FromU32(math.MaxUint32)).Uint(), math.MaxUint32)
		check(t, "FromI32", must(uz.Uz32FromI32(math.MaxInt32)).Uint(), math.MaxInt32)
		check(t, "FromU8", must(uz.Uz32FromU8(math.MaxUint8)).Uint(), math.MaxUint8)
		check(t, "FromU16", must(uz.Uz32FromU16(math.MaxUint16)).Uint(), math.MaxUint16)
	})
}

func TestBits_Negative(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"Uz1", errOf(uz.Uz1FromI32(-1))},
		{"Uz6", errOf(uz.Uz6FromI32(-1))},
		{"Uz12", errOf(uz.Uz12FromI32(-1))},
		{"Uz32", errOf(uz.Uz32FromI32(math.MinInt32))},
		{"Rz1", errOf(uz.Rz1FromI32(-1))},
		{"Rz32", errOf(uz.Rz32FromI32(-5))},
	}

	for _, tt := range tests {
		if !errors.Is(tt.err, errors.ErrNegative) {
			t.Errorf("%s: error = %v, want negative", tt.name, tt.err)
		}
		if !errors.IsRange(tt.err) {
			t.Errorf("%s: IsRange = false", tt.name)
		}
	}
}

func TestBits_ZeroValueOnFailure(t *testing.T) {
	v, err := uz.Uz4FromU8(20)
	if err == nil {
		t.Fatal("expected error")
	}
	if v != uz.Uz4B0000 {
		t.Errorf("failed construction returned %#v", v)
	}

	w, err := uz.Uz12FromU16(0xffff)
	if err == nil {
		t.Fatal("expected error")
	}
	if w.Value() != 0 {
		t.Errorf("failed construction returned %#v", w)
	}
}

func TestBits_Unchecked(t *testing.T) {
	if v := uz.Uz3FromU8Unchecked(5); v != uz.Uz3B101 {
		t.Errorf("Uz3FromU8Unchecked(5) = %#v", v)
	}
	if v := uz.Uz12FromU16Unchecked(0xabc); v.Value() != 0xabc {
		t.Errorf("Uz12FromU16Unchecked(0xabc) = %#v", v)
	}
	if v := uz.Uz20FromU32Unchecked(0xfffff); v.U32() != 0xfffff {
		t.Errorf("Uz20FromU32Unchecked(0xfffff) = %#v", v)
	}
	if v := uz.Uz7FromUintUnchecked(0x7f); v.Uint() != 0x7f {
		t.Errorf("Uz7FromUintUnchecked(0x7f) = %#v", v)
	}
}

func TestBits_Must(t *testing.T) {
	if v := uz.MustUz5(17); v != uz.Uz5B10001 {
		t.Errorf("MustUz5(17) = %#v", v)
	}
	if v := uz.MustUz24(uint32(0xabcdef)); v.Value() != 0xabcdef {
		t.Errorf("MustUz24(0xabcdef) = %#v", v)
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value = %v, want error", r)
		}
		if !errors.Is(err, errors.ErrOutOfRange) {
			t.Errorf("panic error = %v, want out of range", err)
		}
	}()
	uz.MustUz2(4)
	t.Fatal("MustUz2(4) did not panic")
}

func TestBits_Exports(t *testing.T) {
	v := uz.MustUz6(0b111111)
	if v.Value() != 63 || v.U8() != 63 || v.U16() != 63 || v.U32() != 63 || v.Uint() != 63 || v.I32() != 63 {
		t.Errorf("Uz6 exports disagree for %#v", v)
	}

	w := uz.MustUz16(0xbeef)
	if w.U16() != 0xbeef || w.U32() != 0xbeef || w.Uint() != 0xbeef || w.I32() != 0xbeef {
		t.Errorf("Uz16 exports disagree for %#v", w)
	}

	x := uz.MustUz8(200)
	if x.U8() != 200 || x.I32() != 200 {
		t.Errorf("Uz8 exports disagree for %#v", x)
	}
}

func TestBits_Narrowing(t *testing.T) {
	tests := []struct {
		name    string
		got     uint64
		err     error
		want    uint64
		wantErr bool
	}{
		{"Uz16 0xff to U8", u64(uz.MustUz16(0xff).U8()), errOf(uz.MustUz16(0xff).U8()), 0xff, false},
		{"Uz16 0x100 to U8", 0, errOf(uz.MustUz16(0x100).U8()), 0, true},
		{"Uz9 0x1ff to U8", 0, errOf(uz.MustUz9(0x1ff).U8()), 0, true},
		{"Uz32 0xffff to U16", u64(uz.MustUz32(0xffff).U16()), errOf(uz.MustUz32(0xffff).U16()), 0xffff, false},
		{"Uz32 0x10000 to U16", 0, errOf(uz.MustUz32(0x10000).U16()), 0, true},
		{"Uz17 0x1ffff to U8", 0, errOf(uz.MustUz17(0x1ffff).U8()), 0, true},
		{"Uz32 maxint32 to I32", u64i(uz.MustUz32(math.MaxInt32).I32()), errOf(uz.MustUz32(math.MaxInt32).I32()), math.MaxInt32, false},
		{"Uz32 1<<31 to I32", 0, errOf(uz.MustUz32(uint32(1) << 31).I32()), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr {
				if !errors.Is(tt.err, errors.ErrNarrowing) {
					t.Errorf("error = %v, want narrowing", tt.err)
				}
				return
			}
			if tt.err != nil {
				t.Fatalf("unexpected error: %v", tt.err)
			}
			if tt.got != tt.want {
				t.Errorf("got %#x, want %#x", tt.got, tt.want)
			}
		})
	}
}

func TestBits_EqualI32(t *testing.T) {
	if !uz.Uz4B1010.EqualI32(10) {
		t.Error("Uz4B1010.EqualI32(10) = false")
	}
	if uz.Uz4B0000.EqualI32(-1) {
		t.Error("Uz4B0000.EqualI32(-1) = true")
	}
	if !uz.MustUz20(0xfffff).EqualI32(0xfffff) {
		t.Error("Uz20.EqualI32(0xfffff) = false")
	}
	if uz.MustUz32(uint32(math.MaxUint32)).EqualI32(-1) {
		t.Error("Uz32 max must not equal -1")
	}
}

// Scenario tests mirror the documented examples.

func TestScenario_Uz3Renderings(t *testing.T) {
	v := must(uz.Uz3FromU8(0b101))
	if got := v.GoString(); got != "0b101" {
		t.Errorf("GoString = %q", got)
	}
	if got := v.String(); got != "5" {
		t.Errorf("String = %q", got)
	}
}

func TestScenario_Uz12Renderings(t *testing.T) {
	v := must(uz.Uz12FromU16(0xfff))
	if got := v.GoString(); got != "0xfff" {
		t.Errorf("GoString = %q", got)
	}
	if got := v.String(); got != "4095" {
		t.Errorf("String = %q", got)
	}
}

func TestScenario_Uz16Exports(t *testing.T) {
	v := must(uz.Uz16FromU8(0b1111))
	if v.U16() != 15 {
		t.Errorf("U16 = %d, want 15", v.U16())
	}

	_, err := must(uz.Uz16FromU16(0x100)).U8()
	if err == nil {
		t.Fatal("U8 of 0x100 succeeded")
	}
	if !errors.IsRange(err) {
		t.Errorf("error = %v, want range violation", err)
	}
}

func TestScenario_Rz2Equality(t *testing.T) {
	v := must(uz.Rz2FromU8(1))
	if !v.EqualU8(1) || !v.EqualU16(1) || !v.EqualU32(1) || !v.EqualUint(1) || !v.EqualI32(1) {
		t.Error("Rz2 index 1 is not equal to native 1")
	}
	if w := v.ToRz4(); !w.EqualU8(1) {
		t.Errorf("ToRz4 = %#v, want 1", w)
	}
}

func TestScenario_Uz4Rejects20(t *testing.T) {
	_, err := uz.Uz4FromU8(20)
	if !errors.Is(err, errors.ErrOutOfRange) {
		t.Fatalf("error = %v, want out of range", err)
	}
	var e *errors.Error
	if !errors.As(err, &e) {
		t.Fatalf("error %T is not *errors.Error", err)
	}
	if e.Type != "Uz4" || e.Native != "uint8" || e.Phase != errors.PhaseConstruct {
		t.Errorf("error fields = %+v", e)
	}
}

// sweep builds every v in 0..max through each source constructor and
// checks that max+1 and -1 are rejected.
func sweep[T uz.Value](
	t *testing.T,
	max uint,
	u8 func(uint8) (T, error),
	u16 func(uint16) (T, error),
	u32 func(uint32) (T, error),
	un func(uint) (T, error),
	i32 func(int32) (T, error),
) {
	t.Helper()
	sources := []struct {
		name string
		from func(uint) (T, error)
	}{
		{"U8", func(v uint) (T, error) { return u8(uint8(v)) }},
		{"U16", func(v uint) (T, error) { return u16(uint16(v)) }},
		{"U32", func(v uint) (T, error) { return u32(uint32(v)) }},
		{"Uint", un},
		{"I32", func(v uint) (T, error) { return i32(int32(v)) }},
	}

	for _, s := range sources {
		for v := uint(0); v <= max; v++ {
			got, err := s.from(v)
			if err != nil {
				t.Errorf("%T From%s(%d): %v", got, s.name, v, err)
				continue
			}
			if got.Uint() != v {
				t.Errorf("%T From%s(%d).Uint() = %d", got, s.name, v, got.Uint())
			}
		}
		if got, err := s.from(max + 1); !errors.Is(err, errors.ErrOutOfRange) {
			t.Errorf("%T From%s(%d) error = %v, want out of range", got, s.name, max+1, err)
		}
	}
	if got, err := i32(-1); !errors.Is(err, errors.ErrNegative) {
		t.Errorf("%T FromI32(-1) error = %v, want negative", got, err)
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func errOf[T any](_ T, err error) error {
	return err
}

func u64[T uint8 | uint16 | uint32](v T, _ error) uint64 {
	return uint64(v)
}

func u64i(v int32, _ error) uint64 {
	return uint64(v)
}

func check(t *testing.T, name string, got, want uint) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %d, want %d", name, got, want)
	}
}

func rejects(t *testing.T, name string, err error) {
	t.Helper()
	if !errors.Is(err, errors.ErrOutOfRange) {
		t.Errorf("%s error = %v, want out of range", name, err)
	}
}
