package uz_test

import (
	"fmt"
	"testing"

	"github.com/wippyai/uz"
)

func TestFormat_Verbs(t *testing.T) {
	tests := []struct {
		name   string
		format string
		v      any
		want   string
	}{
		{"enum debug", "%#v", uz.Uz3B101, "0b101"},
		{"enum debug padded", "%#v", uz.Uz6B000011, "0b000011"},
		{"enum display", "%v", uz.Uz3B101, "5"},
		{"enum string", "%s", uz.Uz3B101, "5"},
		{"enum decimal", "%d", uz.Uz3B101, "5"},
		{"enum hex", "%x", uz.Uz4B1111, "f"},
		{"enum upper hex", "%X", uz.Uz4B1111, "F"},
		{"enum hex prefixed", "%#x", uz.Uz4B1111, "0xf"},
		{"enum binary width", "%04b", uz.Uz3B101, "0101"},
		{"enum width", "%3v", uz.Uz3B101, "  5"},

		{"word debug 8-bit", "%#v", uz.MustUz7(0x7f), "0x7f"},
		{"word debug 12", "%#v", uz.MustUz12(0xfff), "0xfff"},
		{"word debug padded", "%#v", uz.MustUz12(0xa), "0x00a"},
		{"word debug 16", "%#v", uz.MustUz16(0xbeef), "0xbeef"},
		{"word debug 17", "%#v", uz.MustUz17(1), "0x00001"},
		{"word debug 32", "%#v", uz.MustUz32(uint32(0xdeadbeef)), "0xdeadbeef"},
		{"word display", "%v", uz.MustUz12(0xfff), "4095"},
		{"word hex", "%x", uz.MustUz12(0xfff), "fff"},
		{"word octal", "%o", uz.MustUz9(8), "10"},
		{"word left aligned", "%-6d|", uz.MustUz10(42), "42    |"},

		{"range debug 1 digit", "%#v", uz.Rz16Xf, "0xf"},
		{"range debug 2 digits", "%#v", uz.Rz20X0a, "0x0a"},
		{"range display", "%v", uz.Rz20X0a, "10"},
		{"range hex", "%x", uz.Rz20X0a, "a"},
		{"range zero padded", "%03d", uz.Rz32X1f, "031"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fmt.Sprintf(tt.format, tt.v); got != tt.want {
				t.Errorf("Sprintf(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestFormat_StringerAndGoStringer(t *testing.T) {
	var v uz.Value = uz.MustUz20(0x12345)
	if v.String() != "74565" {
		t.Errorf("String() = %q", v.String())
	}
	if v.GoString() != "0x12345" {
		t.Errorf("GoString() = %q", v.GoString())
	}
	if got := fmt.Sprint(v); got != "74565" {
		t.Errorf("Sprint = %q", got)
	}
}

func TestFormat_Composite(t *testing.T) {
	vals := []uz.Uz2{uz.Uz2B00, uz.Uz2B11}
	if got := fmt.Sprintf("%v", vals); got != "[0 3]" {
		t.Errorf("%%v of slice = %q", got)
	}

	type pair struct {
		A uz.Uz2
		B uz.Rz3
	}
	if got := fmt.Sprintf("%+v", pair{uz.Uz2B10, uz.Rz3X2}); got != "{A:2 B:2}" {
		t.Errorf("%%+v of struct = %q", got)
	}
}
