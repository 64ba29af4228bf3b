package uz_test

import (
	"fmt"

	"github.com/wippyai/uz"
	"github.com/wippyai/uz/errors"
)

func ExampleUz3FromU8() {
	v, err := uz.Uz3FromU8(0b101)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%#v %v %d\n", v, v, v.U8())
	// Output: 0b101 5 5
}

func ExampleUz4FromU8_outOfRange() {
	_, err := uz.Uz4FromU8(20)
	fmt.Println(errors.IsRange(err))
	fmt.Println(err)
	// Output:
	// true
	// [construct] out_of_range: type Uz4 from uint8 - value 20 exceeds mask 0xf
}

func ExampleUz16_U8() {
	v := uz.MustUz16(0x100)
	_, err := v.U8()
	fmt.Println(errors.Is(err, errors.ErrNarrowing))
	// Output: true
}

func ExampleRz2_ToRz4() {
	i := uz.MustRz2(1)
	fmt.Println(i.EqualI32(1), i.ToRz4().EqualU8(1))
	// Output: true true
}

func ExampleLookup() {
	d, err := uz.Lookup("Uz12")
	if err != nil {
		panic(err)
	}
	v, err := d.New(0xfff)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s %s %#v %v\n", d, d.Backing(), v, v)
	// Output: Uz12 uint16 0xfff 4095
}
