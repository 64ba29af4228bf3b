package uz_test

import (
	"testing"

	"github.com/wippyai/uz"
)

func TestUz1_FromBool(t *testing.T) {
	if uz.Uz1FromBool(true) != uz.Uz1B1 {
		t.Error("Uz1FromBool(true) != Uz1B1")
	}
	if uz.Uz1FromBool(false) != uz.Uz1B0 {
		t.Error("Uz1FromBool(false) != Uz1B0")
	}
}

func TestUz1_IsSet(t *testing.T) {
	tests := []struct {
		v    uz.Uz1
		want bool
	}{
		{uz.Uz1B0, false},
		{uz.Uz1B1, true},
	}
	for _, tt := range tests {
		if got := tt.v.IsSet(); got != tt.want {
			t.Errorf("%#v.IsSet() = %v, want %v", tt.v, got, tt.want)
		}
		if got := tt.v.Bool(); got != tt.want {
			t.Errorf("%#v.Bool() = %v, want %v", tt.v, got, tt.want)
		}
		if got := uz.Uz1FromBool(tt.want); got != tt.v {
			t.Errorf("Uz1FromBool(%v) = %#v", tt.want, got)
		}
	}
}

func TestUz1_NotKeepsBit(t *testing.T) {
	for _, v := range []uz.Uz1{uz.Uz1B0, uz.Uz1B1} {
		if got := v.Not(); got != v {
			t.Errorf("%#v.Not() = %#v, want %#v", v, got, v)
		}
	}

	if got := uz.Uz1FromBool(!uz.Uz1B1.IsSet()); got != uz.Uz1B0 {
		t.Errorf("flipping Uz1B1 = %#v", got)
	}
}
