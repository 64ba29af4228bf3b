package uz

import (
	"math"
	"testing"

	"github.com/wippyai/uz/errors"
)

func TestCheckMask(t *testing.T) {
	tests := []struct {
		name string
		got  uint64
		err  error
		want uint64
		kind errors.Kind
	}{
		{name: "zero", want: 0},
		{name: "inside", got: result(checkMask("Uz4", uint8(15), 0xf)), want: 15},
		{name: "int source", got: result(checkMask("Uz4", 9, 0xf)), want: 9},
		{name: "above mask", err: failure(checkMask("Uz4", uint8(16), 0xf)), kind: errors.KindOutOfRange},
		{name: "high bit", err: failure(checkMask("Uz31", uint32(1<<31), 0x7fffffff)), kind: errors.KindOutOfRange},
		{name: "negative i32", err: failure(checkMask("Uz4", int32(-1), 0xf)), kind: errors.KindNegative},
		{name: "negative int", err: failure(checkMask("Uz4", -7, 0xf)), kind: errors.KindNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.kind != "" {
				var e *errors.Error
				if !errors.As(tt.err, &e) || e.Kind != tt.kind {
					t.Fatalf("error = %v, want kind %s", tt.err, tt.kind)
				}
				if e.Phase != errors.PhaseConstruct {
					t.Errorf("phase = %s", e.Phase)
				}
				return
			}
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestCheckBound(t *testing.T) {
	if u, err := checkBound("Rz5", uint16(4), 5); err != nil || u != 4 {
		t.Errorf("checkBound(4, 5) = %d, %v", u, err)
	}
	if _, err := checkBound("Rz5", uint32(5), 5); !errors.Is(err, errors.ErrOutOfRange) {
		t.Errorf("checkBound(5, 5) error = %v", err)
	}
	if _, err := checkBound("Rz5", int32(-1), 5); !errors.Is(err, errors.ErrNegative) {
		t.Errorf("checkBound(-1, 5) error = %v", err)
	}
	if _, err := checkBound("Rz1", uint(math.MaxUint32), 1); !errors.Is(err, errors.ErrOutOfRange) {
		t.Errorf("checkBound(max, 1) error = %v", err)
	}
}

func TestNarrow(t *testing.T) {
	if v, err := narrow[uint8]("Uz9", 0xff); err != nil || v != 0xff {
		t.Errorf("narrow[uint8](0xff) = %d, %v", v, err)
	}
	_, err := narrow[uint8]("Uz9", 0x100)
	var e *errors.Error
	if !errors.As(err, &e) {
		t.Fatalf("narrow[uint8](0x100) error = %v", err)
	}
	if e.Kind != errors.KindNarrowing || e.Phase != errors.PhaseExport || e.Native != "uint8" {
		t.Errorf("error fields = %+v", e)
	}

	if v, err := narrow[uint16]("Uz20", 0xffff); err != nil || v != 0xffff {
		t.Errorf("narrow[uint16](0xffff) = %d, %v", v, err)
	}
	if _, err := narrow[uint16]("Uz20", 0x10000); !errors.Is(err, errors.ErrNarrowing) {
		t.Errorf("narrow[uint16](0x10000) error = %v", err)
	}
}

func TestNarrowI32(t *testing.T) {
	if v, err := narrowI32("Uz32", math.MaxInt32); err != nil || v != math.MaxInt32 {
		t.Errorf("narrowI32(MaxInt32) = %d, %v", v, err)
	}
	if _, err := narrowI32("Uz32", math.MaxInt32+1); !errors.Is(err, errors.ErrNarrowing) {
		t.Errorf("narrowI32(MaxInt32+1) error = %v", err)
	}
}

func TestEqualI32(t *testing.T) {
	tests := []struct {
		raw  uint64
		x    int32
		want bool
	}{
		{0, 0, true},
		{5, 5, true},
		{5, 6, false},
		{0, -1, false},
		{math.MaxUint32, -1, false},
		{math.MaxInt32, math.MaxInt32, true},
	}
	for _, tt := range tests {
		if got := equalI32(tt.raw, tt.x); got != tt.want {
			t.Errorf("equalI32(%d, %d) = %v, want %v", tt.raw, tt.x, got, tt.want)
		}
	}
}

func TestFormatHelpers(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{formatBinary(0, 1), "0b0"},
		{formatBinary(5, 3), "0b101"},
		{formatBinary(1, 6), "0b000001"},
		{formatHex(0xa, 3), "0x00a"},
		{formatHex(0xfff, 3), "0xfff"},
		{formatHex(0, 1), "0x0"},
		{formatHex(0xdeadbeef, 8), "0xdeadbeef"},
		{formatDecimal(4095), "4095"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestNativeName(t *testing.T) {
	if got := nativeName[uint16](); got != "uint16" {
		t.Errorf("nativeName[uint16] = %q", got)
	}
	if got := nativeName[int32](); got != "int32" {
		t.Errorf("nativeName[int32] = %q", got)
	}
}

// Every generated table entry agrees with its own index.
func TestTables(t *testing.T) {
	for i, d := range bitsTable {
		if i == 0 {
			continue
		}
		if d.Width != uint(i) || d.Len != 1<<i || d.Family != FamilyBits {
			t.Errorf("bitsTable[%d] = %+v", i, d)
		}
	}
	for i, d := range rangeTable {
		if i == 0 {
			continue
		}
		if d.Len != uint64(i) || d.Family != FamilyRange || d.BackingBits != uintBits {
			t.Errorf("rangeTable[%d] = %+v", i, d)
		}
	}
}

func result(v uint64, _ error) uint64 { return v }

func failure(_ uint64, err error) error { return err }
