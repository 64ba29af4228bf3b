package gen

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// source is a native integer type a value converts from.
type source struct {
	Suffix string
	Native string
	Signed bool
}

var sources = []source{
	{Suffix: "U8", Native: "uint8"},
	{Suffix: "U16", Native: "uint16"},
	{Suffix: "U32", Native: "uint32"},
	{Suffix: "Uint", Native: "uint"},
	{Suffix: "I32", Native: "int32", Signed: true},
}

// uncheckedSources has no signed entry: reinterpreting a negative
// number's bits is never what a caller means.
var uncheckedSources = sources[:4]

// export is a native integer type a value converts to.
type export struct {
	Suffix  string
	Native  string
	Signed  bool
	Checked bool   // narrower than the backing type
	Narrow  string // checked helper call, e.g. narrow[uint8]
}

type member struct {
	Name  string
	Value string
}

type bitsType struct {
	N           uint
	Name        string
	Backing     string
	BackingBits uint
	Len         uint64
	Article     string // "a" or "an" before the width, e.g. an 8-bit
	Span        string // "1 bit", "12 bits"
	Mask        string
	Digits      int
	Enum        bool
	Members     []member
	Sources     []source
	Unchecked   []source
	Exports     []export
}

type rangeType struct {
	M         uint
	Name      string
	Width     uint
	Digits    int
	Members   []member
	Sources   []source
	Unchecked []source
	Exports   []export
	Targets   []string
}

// model is the data every template renders from.
type model struct {
	Header  string
	Package string
	Bits    []bitsType
	Enums   []bitsType
	Words   []bitsType
	Ranges  []rangeType
}

func newModel(cfg Config) model {
	m := model{Header: cfg.Header, Package: cfg.Package}
	for n := cfg.Bits.Min; n <= cfg.Bits.Max; n++ {
		t := newBitsType(n, n <= cfg.Bits.EnumMax)
		m.Bits = append(m.Bits, t)
		if t.Enum {
			m.Enums = append(m.Enums, t)
		} else {
			m.Words = append(m.Words, t)
		}
	}
	for r := cfg.Ranges.Min; r <= cfg.Ranges.Max; r++ {
		m.Ranges = append(m.Ranges, newRangeType(r, cfg.Ranges.Max))
	}
	return m
}

func newBitsType(n uint, enum bool) bitsType {
	t := bitsType{
		N:         n,
		Name:      "Uz" + strconv.Itoa(int(n)),
		Len:       1 << n,
		Article:   article(n),
		Span:      strconv.Itoa(int(n)) + " bits",
		Enum:      enum,
		Sources:   sources,
		Unchecked: uncheckedSources,
	}
	if n == 1 {
		t.Span = "1 bit"
	}
	switch {
	case n <= 8:
		t.BackingBits = 8
	case n <= 16:
		t.BackingBits = 16
	default:
		t.BackingBits = 32
	}
	t.Backing = "uint" + strconv.Itoa(int(t.BackingBits))

	if enum {
		t.Mask = "0b" + strings.Repeat("1", int(n))
		t.Digits = int(n)
		for i := uint64(0); i < t.Len; i++ {
			t.Members = append(t.Members, member{
				Name:  fmt.Sprintf("%sB%0*b", t.Name, int(n), i),
				Value: fmt.Sprintf("0b%0*b", int(n), i),
			})
		}
		return t
	}

	t.Mask = fmt.Sprintf("%#x", t.Len-1)
	t.Digits = int(n+3) / 4
	t.Exports = []export{
		narrowTo("U8", "uint8", 8, t.BackingBits),
		narrowTo("U16", "uint16", 16, t.BackingBits),
		{Suffix: "U32", Native: "uint32"},
		{Suffix: "Uint", Native: "uint"},
	}
	i32 := export{Suffix: "I32", Native: "int32", Signed: true}
	if t.BackingBits == 32 {
		i32.Checked = true
		i32.Narrow = "narrowI32"
	}
	t.Exports = append(t.Exports, i32)
	return t
}

// article picks the indefinite article for a width read aloud:
// "an 8-bit", "an 11-bit", "an 18-bit", "a 12-bit".
func article(n uint) string {
	switch n {
	case 8, 11, 18:
		return "an"
	}
	return "a"
}

func narrowTo(suffix, native string, width, backing uint) export {
	e := export{Suffix: suffix, Native: native}
	if width < backing {
		e.Checked = true
		e.Narrow = "narrow[" + native + "]"
	}
	return e
}

func newRangeType(m, last uint) rangeType {
	t := rangeType{
		M:         m,
		Name:      "Rz" + strconv.Itoa(int(m)),
		Width:     uint(bits.Len(m - 1)),
		Digits:    1,
		Sources:   sources,
		Unchecked: uncheckedSources,
	}
	if m > 16 {
		t.Digits = 2
	}
	for i := uint(0); i < m; i++ {
		t.Members = append(t.Members, member{
			Name:  fmt.Sprintf("%sX%0*x", t.Name, t.Digits, i),
			Value: strconv.Itoa(int(i)),
		})
	}
	for _, s := range sources {
		t.Exports = append(t.Exports, export{Suffix: s.Suffix, Native: s.Native, Signed: s.Signed})
	}
	for target := m; target <= last; target++ {
		t.Targets = append(t.Targets, "Rz"+strconv.Itoa(int(target)))
	}
	return t
}
