package uz_test

import (
	"testing"

	"github.com/wippyai/uz"
	"github.com/wippyai/uz/errors"
)

func TestRange_EveryCardinality(t *testing.T) {
	for m := uint(1); m <= 32; m++ {
		d, ok := uz.Range(m)
		if !ok {
			t.Fatalf("Range(%d) missing", m)
		}
		if d.Len != uint64(m) || d.Max() != uint64(m-1) {
			t.Errorf("%s: len %d max %d", d, d.Len, d.Max())
		}

		for v := uint(0); v < m; v++ {
			got, err := d.New(v)
			if err != nil {
				t.Errorf("%s.New(%d): %v", d, v, err)
				continue
			}
			if got.Uint() != v {
				t.Errorf("%s.New(%d).Uint() = %d", d, v, got.Uint())
			}
		}

		for _, v := range []uint{m, m + 1, 1 << 20} {
			if _, err := d.New(v); !errors.Is(err, errors.ErrOutOfRange) {
				t.Errorf("%s.New(%d) error = %v, want out of range", d, v, err)
			}
		}
	}
}

func TestRange_EveryValueEverySource(t *testing.T) {
	sweep(t, 0, uz.Rz1FromU8, uz.Rz1FromU16, uz.Rz1FromU32, uz.Rz1FromUint, uz.Rz1FromI32)
	sweep(t, 1, uz.Rz2FromU8, uz.Rz2FromU16, uz.Rz2FromU32, uz.Rz2FromUint, uz.Rz2FromI32)
	sweep(t, 2, uz.Rz3FromU8, uz.Rz3FromU16, uz.Rz3FromU32, uz.Rz3FromUint, uz.Rz3FromI32)
	sweep(t, 3, uz.Rz4FromU8, uz.Rz4FromU16, uz.Rz4FromU32, uz.Rz4FromUint, uz.Rz4FromI32)
	sweep(t, 4, uz.Rz5FromU8, uz.Rz5FromU16, uz.Rz5FromU32, uz.Rz5FromUint, uz.Rz5FromI32)
	sweep(t, 5, uz.Rz6FromU8, uz.Rz6FromU16, uz.Rz6FromU32, uz.Rz6FromUint, uz.Rz6FromI32)
	sweep(t, 6, uz.Rz7FromU8, uz.Rz7FromU16, uz.Rz7FromU32, uz.Rz7FromUint, uz.Rz7FromI32)
	sweep(t, 7, uz.Rz8FromU8, uz.Rz8FromU16, uz.Rz8FromU32, uz.Rz8FromUint, uz.Rz8FromI32)
	sweep(t, 8, uz.Rz9FromU8, uz.Rz9FromU16, uz.Rz9FromU32, uz.Rz9FromUint, uz.Rz9FromI32)
	sweep(t, 9, uz.Rz10FromU8, uz.Rz10FromU16, uz.Rz10FromU32, uz.Rz10FromUint, uz.Rz10FromI32)
	sweep(t, 10, uz.Rz11FromU8, uz.Rz11FromU16, uz.Rz11FromU32, uz.Rz11FromUint, uz.Rz11FromI32)
	sweep(t, 11, uz.Rz12FromU8, uz.Rz12FromU16, uz.Rz12FromU32, uz.Rz12FromUint, uz.Rz12FromI32)
	sweep(t, 12, uz.Rz13FromU8, uz.Rz13FromU16, uz.Rz13FromU32, uz.Rz13FromUint, uz.Rz13FromI32)
	sweep(t, 13, uz.Rz14FromU8, uz.Rz14FromU16, uz.Rz14FromU32, uz.Rz14FromUint, uz.Rz14FromI32)
	sweep(t, 14, uz.Rz15FromU8, uz.Rz15FromU16, uz.Rz15FromU32, uz.Rz15FromUint, uz.Rz15FromI32)
	sweep(t, 15, uz.Rz16FromU8, uz.Rz16FromU16, uz.Rz16FromU32, uz.Rz16FromUint, uz.Rz16FromI32)
	sweep(t, 16, uz.Rz17FromU8, uz.Rz17FromU16, uz.Rz17FromU32, uz.Rz17FromUint, uz.Rz17FromI32)
	sweep(t, 17, uz.Rz18FromU8, uz.Rz18FromU16, uz.Rz18FromU32, uz.Rz18FromUint, uz.Rz18FromI32)
	sweep(t, 18, uz.Rz19FromU8, uz.Rz19FromU16, uz.Rz19FromU32, uz.Rz19FromUint, uz.Rz19FromI32)
	sweep(t, 19, uz.Rz20FromU8, uz.Rz20FromU16, uz.Rz20FromU32, uz.Rz20FromUint, uz.Rz20FromI32)
	sweep(t, 20, uz.Rz21FromU8, uz.Rz21FromU16, uz.Rz21FromU32, uz.Rz21FromUint, uz.Rz21FromI32)
	sweep(t, 21, uz.Rz22FromU8, uz.Rz22FromU16, uz.Rz22FromU32, uz.Rz22FromUint, uz.Rz22FromI32)
	sweep(t, 22, uz.Rz23FromU8, uz.Rz23FromU16, uz.Rz23FromU32, uz.Rz23FromUint, uz.Rz23FromI32)
	sweep(t, 23, uz.Rz24FromU8, uz.Rz24FromU16, uz.Rz24FromU32, uz.Rz24FromUint, uz.Rz24FromI32)
	sweep(t, 24, uz.Rz25FromU8, uz.Rz25FromU16, uz.Rz25FromU32, uz.Rz25FromUint, uz.Rz25FromI32)
	sweep(t, 25, uz.Rz26FromU8, uz.Rz26FromU16, uz.Rz26FromU32, uz.Rz26FromUint, uz.Rz26FromI32)
	sweep(t, 26, uz.Rz27FromU8, uz.Rz27FromU16, uz.Rz27FromU32, uz.Rz27FromUint, uz.Rz27FromI32)
	sweep(t, 27, uz.Rz28FromU8, uz.Rz28FromU16, uz.Rz28FromU32, uz.Rz28FromUint, uz.Rz28FromI32)
	sweep(t, 28, uz.Rz29FromU8, uz.Rz29FromU16, uz.Rz29FromU32, uz.Rz29FromUint, uz.Rz29FromI32)
	sweep(t, 29, uz.Rz30FromU8, uz.Rz30FromU16, uz.Rz30FromU32, uz.Rz30FromUint, uz.Rz30FromI32)
	sweep(t, 30, uz.Rz31FromU8, uz.Rz31FromU16, uz.Rz31FromU32, uz.Rz31FromUint, uz.Rz31FromI32)
	sweep(t, 31, uz.Rz32FromU8, uz.Rz32FromU16, uz.Rz32FromU32, uz.Rz32FromUint, uz.Rz32FromI32)
}

func TestRange_Sources(t *testing.T) {
	tests := []struct {
		name string
		got  uz.Rz5
		err  error
	}{
		{"FromU8", must(uz.Rz5FromU8(4)), nil},
		{"FromU16", must(uz.Rz5FromU16(4)), nil},
		{"FromU32", must(uz.Rz5FromU32(4)), nil},
		{"FromUint", must(uz.Rz5FromUint(4)), nil},
		{"FromI32", must(uz.Rz5FromI32(4)), nil},
	}
	for _, tt := range tests {
		if tt.got != uz.Rz5X4 {
			t.Errorf("%s = %#v, want Rz5X4", tt.name, tt.got)
		}
	}

	for name, err := range map[string]error{
		"FromU8":   errOf(uz.Rz5FromU8(5)),
		"FromU16":  errOf(uz.Rz5FromU16(5)),
		"FromU32":  errOf(uz.Rz5FromU32(5)),
		"FromUint": errOf(uz.Rz5FromUint(5)),
		"FromI32":  errOf(uz.Rz5FromI32(5)),
	} {
		rejects(t, name, err)
	}
}

func TestRange_Constants(t *testing.T) {
	if uz.Rz20X0a.Uint() != 10 {
		t.Errorf("Rz20X0a = %d, want 10", uz.Rz20X0a.Uint())
	}
	if uz.Rz32X1f.Uint() != 31 {
		t.Errorf("Rz32X1f = %d, want 31", uz.Rz32X1f.Uint())
	}
	if uz.Rz16Xf.Uint() != 15 {
		t.Errorf("Rz16Xf = %d, want 15", uz.Rz16Xf.Uint())
	}
	if uz.Rz1X0.Uint() != 0 {
		t.Errorf("Rz1X0 = %d, want 0", uz.Rz1X0.Uint())
	}
}

func TestRange_Exports(t *testing.T) {
	v := uz.Rz32X1f
	if v.Value() != 31 || v.U8() != 31 || v.U16() != 31 || v.U32() != 31 || v.Uint() != 31 || v.I32() != 31 {
		t.Errorf("Rz32 exports disagree for %#v", v)
	}
}

func TestRange_Equality(t *testing.T) {
	v := uz.Rz7X3
	if !v.EqualU8(3) || !v.EqualU16(3) || !v.EqualU32(3) || !v.EqualUint(3) || !v.EqualI32(3) {
		t.Error("Rz7X3 is not equal to native 3")
	}
	if v.EqualU8(4) || v.EqualU16(4) || v.EqualU32(4) || v.EqualUint(4) || v.EqualI32(4) {
		t.Error("Rz7X3 is equal to native 4")
	}
	if uz.Rz7X0.EqualI32(-1) {
		t.Error("negative operand compared equal")
	}
	if uz.Rz4X3.EqualU32(3 + 1<<8) {
		t.Error("comparison truncated its operand")
	}
}

func TestRange_Widening(t *testing.T) {
	// Widening preserves the index at every step up to Rz32.
	v := uz.Rz1X0
	if w := v.ToRz1(); w != uz.Rz1X0 {
		t.Errorf("identity widening = %#v", w)
	}
	if w := v.ToRz32(); w != uz.Rz32X00 {
		t.Errorf("ToRz32 = %#v", w)
	}

	x := uz.Rz17X10
	if w := x.ToRz17(); w != x {
		t.Errorf("identity widening = %#v", w)
	}
	if w := x.ToRz20(); !w.EqualU8(16) {
		t.Errorf("ToRz20 = %#v", w)
	}
	if w := x.ToRz20().ToRz31().ToRz32(); w != uz.Rz32X10 {
		t.Errorf("chained widening = %#v", w)
	}

	for m := uint(1); m <= 32; m++ {
		d, _ := uz.Range(m)
		top := d.NewUnchecked(m - 1)
		for b := m; b <= 32; b++ {
			wide, _ := uz.Range(b)
			if !wide.Contains(uint64(top.Uint())) {
				t.Errorf("%s max does not fit in %s", d, wide)
			}
		}
	}
}

func TestRange_Representation(t *testing.T) {
	tests := []struct {
		m     uint
		width uint
	}{
		{1, 0},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{16, 4},
		{17, 5},
		{32, 5},
	}
	for _, tt := range tests {
		d, _ := uz.Range(tt.m)
		if d.Width != tt.width {
			t.Errorf("Rz%d width = %d, want %d", tt.m, d.Width, tt.width)
		}
		if d.Backing() != "uint" {
			t.Errorf("Rz%d backing = %s", tt.m, d.Backing())
		}
		if !d.Enumerable {
			t.Errorf("Rz%d is not enumerable", tt.m)
		}
	}
}

func TestRange_Must(t *testing.T) {
	if v := uz.MustRz10(9); v != uz.Rz10X9 {
		t.Errorf("MustRz10(9) = %#v", v)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustRz10(10) did not panic")
		}
	}()
	uz.MustRz10(10)
}

func TestRange_Unchecked(t *testing.T) {
	if v := uz.Rz8FromU8Unchecked(7); v != uz.Rz8X7 {
		t.Errorf("Rz8FromU8Unchecked(7) = %#v", v)
	}
	if v := uz.Rz8FromU16Unchecked(2); v != uz.Rz8X2 {
		t.Errorf("Rz8FromU16Unchecked(2) = %#v", v)
	}
	if v := uz.Rz8FromU32Unchecked(3); v != uz.Rz8X3 {
		t.Errorf("Rz8FromU32Unchecked(3) = %#v", v)
	}
	if v := uz.Rz8FromUintUnchecked(0); v != uz.Rz8X0 {
		t.Errorf("Rz8FromUintUnchecked(0) = %#v", v)
	}
}
