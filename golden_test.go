package uz_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/wippyai/uz"
)

// TestRenderings_Golden pins the debug, display and hex rendering of the
// largest value of every type. Run with -update to regenerate.
func TestRenderings_Golden(t *testing.T) {
	var buf bytes.Buffer
	for _, d := range uz.Descriptors() {
		v := d.NewUnchecked(uint(d.Max()))
		fmt.Fprintf(&buf, "%s\t%#v\t%v\t%x\n", d.Name, v, v, v)
	}

	g := goldie.New(t)
	g.Assert(t, "renderings", buf.Bytes())
}
