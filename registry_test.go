package uz_test

import (
	"testing"

	"github.com/wippyai/uz"
	"github.com/wippyai/uz/errors"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"Uz12", "Uz12", false},
		{"uz1", "Uz1", false},
		{"UZ32", "Uz32", false},
		{"Rz5", "Rz5", false},
		{"rz32", "Rz32", false},
		{"Uz0", "", true},
		{"Uz33", "", true},
		{"Rz0", "", true},
		{"Rz300", "", true},
		{"Xz3", "", true},
		{"Uz", "", true},
		{"Uz-1", "", true},
		{"Uz012", "", true},
		{"rz05", "", true},
		{"Uz+3", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := uz.Lookup(tt.name)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrNotFound) {
					t.Errorf("Lookup(%q) error = %v, want not found", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.name, err)
			}
			if d.Name != tt.want {
				t.Errorf("Lookup(%q) = %s, want %s", tt.name, d.Name, tt.want)
			}
		})
	}
}

func TestDescriptors(t *testing.T) {
	all := uz.Descriptors()
	if len(all) != 64 {
		t.Fatalf("len(Descriptors()) = %d, want 64", len(all))
	}
	if all[0].Name != "Uz1" || all[31].Name != "Uz32" || all[32].Name != "Rz1" || all[63].Name != "Rz32" {
		t.Errorf("unexpected order: %s %s %s %s", all[0], all[31], all[32], all[63])
	}

	for _, d := range all {
		got, err := uz.Lookup(d.Name)
		if err != nil || got != d {
			t.Errorf("Lookup(%s) = %v, %v", d.Name, got, err)
		}
	}
}

func TestBitsRange_OutOfTable(t *testing.T) {
	for _, n := range []uint{0, 33, 1000} {
		if _, ok := uz.Bits(n); ok {
			t.Errorf("Bits(%d) found", n)
		}
		if _, ok := uz.Range(n); ok {
			t.Errorf("Range(%d) found", n)
		}
	}
}

func TestDescriptor_Contains(t *testing.T) {
	d, _ := uz.Lookup("Uz4")
	if !d.Contains(15) || d.Contains(16) {
		t.Errorf("Uz4 Contains disagrees with its range")
	}
	r, _ := uz.Lookup("Rz3")
	if !r.Contains(2) || r.Contains(3) {
		t.Errorf("Rz3 Contains disagrees with its range")
	}
}

func TestDescriptor_HexDigits(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"Uz3", 0},
		{"Uz7", 2},
		{"Uz12", 3},
		{"Uz16", 4},
		{"Uz17", 5},
		{"Uz32", 8},
		{"Rz16", 1},
		{"Rz17", 2},
	}
	for _, tt := range tests {
		d, _ := uz.Lookup(tt.name)
		if got := d.HexDigits(); got != tt.want {
			t.Errorf("%s.HexDigits() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestDescriptor_New(t *testing.T) {
	d, _ := uz.Lookup("Uz3")
	v, err := d.New(5)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v.(uz.Uz3); !ok {
		t.Fatalf("New returned %T, want uz.Uz3", v)
	}
	if v != uz.Value(uz.Uz3B101) {
		t.Errorf("New(5) = %#v", v)
	}

	r, _ := uz.Lookup("Rz20")
	v, err = r.New(10)
	if err != nil {
		t.Fatal(err)
	}
	if v != uz.Value(uz.Rz20X0a) {
		t.Errorf("New(10) = %#v", v)
	}

	if _, err := r.New(20); !errors.IsRange(err) {
		t.Errorf("New(20) error = %v, want range violation", err)
	}

	var zero uz.Descriptor
	if _, err := zero.New(0); err == nil {
		t.Error("zero descriptor New succeeded")
	}
	if zero.NewUnchecked(0) != nil {
		t.Error("zero descriptor NewUnchecked returned a value")
	}
}

func TestDescriptor_NewUnchecked(t *testing.T) {
	d, _ := uz.Lookup("Uz12")
	v := d.NewUnchecked(0xabc)
	if _, ok := v.(uz.Uz12); !ok {
		t.Fatalf("NewUnchecked returned %T, want uz.Uz12", v)
	}
	if v.Uint() != 0xabc {
		t.Errorf("NewUnchecked(0xabc).Uint() = %#x", v.Uint())
	}
}

func TestFamily_String(t *testing.T) {
	if uz.FamilyBits.String() != "bits" || uz.FamilyRange.String() != "range" {
		t.Error("family names changed")
	}
	if got := uz.Family(9).String(); got != "Family(9)" {
		t.Errorf("unknown family = %q", got)
	}
}
