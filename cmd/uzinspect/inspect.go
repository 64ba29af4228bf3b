package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/uz"
	"github.com/wippyai/uz/errors"
	"github.com/wippyai/uz/wasmabi"
)

// report holds every rendering of one value.
type report struct {
	Desc    uz.Descriptor
	Value   uz.Value
	Debug   string
	Display string
	Hex     string
	WIT     string
}

// inspect builds a value of the named type from a Go integer literal
// ("5", "0b101", "0xfff", "1_000") through the checked constructor.
func inspect(typeName, literal string) (report, error) {
	d, err := uz.Lookup(strings.TrimSpace(typeName))
	if err != nil {
		return report{}, err
	}

	literal = strings.TrimSpace(literal)
	n, err := strconv.ParseInt(literal, 0, 64)
	if err != nil {
		return report{}, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Type(d.Name).
			Cause(err).
			Detail("%q is not an integer literal", literal).
			Build()
	}
	if n < 0 {
		return report{}, errors.Negative(errors.PhaseParse, d.Name, "int64", n)
	}
	if uint64(n) > uint64(^uint(0)) {
		return report{}, errors.OutOfRange(errors.PhaseParse, d.Name, "int64", n, fmt.Sprintf("max %d", d.Max()))
	}

	v, err := d.New(uint(n))
	if err != nil {
		return report{}, err
	}
	return report{
		Desc:    d,
		Value:   v,
		Debug:   fmt.Sprintf("%#v", v),
		Display: fmt.Sprintf("%v", v),
		Hex:     fmt.Sprintf("%#x", v),
		WIT:     wasmabi.TypeName(wasmabi.Carrier(d)),
	}, nil
}

// describe summarizes a descriptor in one line, e.g.
// "12-bit value, uint16 backing, 4096 values".
func describe(d uz.Descriptor) string {
	switch d.Family {
	case uz.FamilyRange:
		return fmt.Sprintf("index below %d, %s backing", d.Len, d.Backing())
	default:
		return fmt.Sprintf("%d-bit value, %s backing, %d values", d.Width, d.Backing(), d.Len)
	}
}
