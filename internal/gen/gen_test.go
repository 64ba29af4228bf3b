package gen

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig(out string) Config {
	return Config{
		Package: "small",
		Output:  out,
		Header:  "gentest",
		Bits:    BitsConfig{Min: 2, Max: 17, EnumMax: 3},
		Ranges:  RangeConfig{Min: 2, Max: 5},
	}
}

// declared parses src and returns every top-level identifier it declares,
// including methods as Recv.Name.
func declared(t *testing.T, name string, src []byte) map[string]bool {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), name, src, parser.ParseComments)
	require.NoError(t, err, "rendered %s does not parse", name)

	names := make(map[string]bool)
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				names[d.Name.Name] = true
				continue
			}
			var recv string
			switch r := d.Recv.List[0].Type.(type) {
			case *ast.Ident:
				recv = r.Name
			case *ast.StarExpr:
				recv = r.X.(*ast.Ident).Name
			}
			names[recv+"."+d.Name.Name] = true
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					names[s.Name.Name] = true
				case *ast.ValueSpec:
					for _, n := range s.Names {
						names[n.Name] = true
					}
				}
			}
		}
	}
	return names
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := smallConfig(t.TempDir())
	cfg.Bits.Max = 40
	_, err := New(cfg)
	require.Error(t, err)
}

func TestGenerator_Files(t *testing.T) {
	g, err := New(smallConfig(t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, []string{FileBitsEnum, FileBitsWord, FileRanges, FileRegistry}, g.Files())

	cfg := smallConfig(t.TempDir())
	cfg.Bits.EnumMax = 0
	g, err = New(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{FileBitsWord, FileRanges, FileRegistry}, g.Files())

	cfg.Bits.Min, cfg.Bits.Max, cfg.Bits.EnumMax = 1, 4, 8
	g, err = New(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{FileBitsEnum, FileRanges, FileRegistry}, g.Files())
}

func TestGenerator_Render(t *testing.T) {
	g, err := New(smallConfig(t.TempDir()))
	require.NoError(t, err)

	files, err := g.Render()
	require.NoError(t, err)
	require.Len(t, files, 4)

	for name, src := range files {
		assert.Contains(t, string(src), "// Code generated by gentest. DO NOT EDIT.", name)
		assert.Contains(t, string(src), "package small", name)
	}

	enums := declared(t, FileBitsEnum, files[FileBitsEnum])
	for _, want := range []string{
		"Uz2", "Uz3", "Uz2Mask", "Uz3B000", "Uz3B111", "Uz2FromI32", "MustUz3",
		"Uz3FromUintUnchecked", "Uz3.GoString", "Uz2.Format", "Uz3.EqualI32",
	} {
		assert.True(t, enums[want], "missing %s in %s", want, FileBitsEnum)
	}
	assert.False(t, enums["Uz3FromI32Unchecked"], "signed unchecked constructor rendered")
	assert.False(t, enums["Uz4"], "Uz4 rendered as enum")

	words := declared(t, FileBitsWord, files[FileBitsWord])
	for _, want := range []string{
		"Uz4", "Uz17", "Uz17Mask", "Uz9FromU16", "MustUz12", "Uz16.U8", "Uz17.I32", "Uz9.Value",
	} {
		assert.True(t, words[want], "missing %s in %s", want, FileBitsWord)
	}
	assert.False(t, words["Uz18"], "Uz18 outside configured widths")

	ranges := declared(t, FileRanges, files[FileRanges])
	for _, want := range []string{
		"Rz2", "Rz5", "Rz2X0", "Rz5X4", "Rz2Len", "Rz3.ToRz3", "Rz3.ToRz5", "Rz4.EqualI32", "MustRz4",
	} {
		assert.True(t, ranges[want], "missing %s in %s", want, FileRanges)
	}
	assert.False(t, ranges["Rz3.ToRz2"], "narrowing conversion rendered")
	assert.False(t, ranges["Rz5.ToRz6"], "widening past the configured max rendered")

	registry := declared(t, FileRegistry, files[FileRegistry])
	for _, want := range []string{"bitsTable", "rangeTable", "newBits", "uncheckedBits", "newRange", "uncheckedRange"} {
		assert.True(t, registry[want], "missing %s in %s", want, FileRegistry)
	}
}

func TestGenerator_RenderCheckedExports(t *testing.T) {
	g, err := New(smallConfig(t.TempDir()))
	require.NoError(t, err)
	files, err := g.Render()
	require.NoError(t, err)
	src := string(files[FileBitsWord])

	// 8-bit backing exports to U8 without a check; wider backing does not.
	assert.Contains(t, src, "func (v Uz8) U8() uint8 { return uint8(v.v) }")
	assert.Contains(t, src, `func (v Uz9) U8() (uint8, error) { return narrow[uint8]("Uz9", uint64(v.v)) }`)
	assert.Contains(t, src, "func (v Uz16) U16() uint16 { return uint16(v.v) }")
	assert.Contains(t, src, `func (v Uz17) U16() (uint16, error) { return narrow[uint16]("Uz17", uint64(v.v)) }`)
	assert.Contains(t, src, `func (v Uz17) I32() (int32, error) { return narrowI32("Uz17", uint64(v.v)) }`)
	assert.Contains(t, src, "func (v Uz16) I32() int32 { return int32(v.v) }")
	assert.Contains(t, src, "type Uz17 struct{ v uint32 }")
	assert.Contains(t, src, "const Uz12Mask = 0xfff")
}

func TestGenerator_RenderDocWording(t *testing.T) {
	cfg := smallConfig(t.TempDir())
	cfg.Bits = BitsConfig{Min: 1, Max: 18, EnumMax: 3}
	g, err := New(cfg)
	require.NoError(t, err)
	files, err := g.Render()
	require.NoError(t, err)
	enum, word := string(files[FileBitsEnum]), string(files[FileBitsWord])

	assert.Contains(t, enum, "// Uz1FromU8 converts v, failing if it does not fit in 1 bit.")
	assert.Contains(t, enum, "// MustUz2 converts v, panicking if it does not fit in 2 bits.")
	assert.Contains(t, enum, "// Uz3 is a 3-bit unsigned value.")
	assert.NotContains(t, enum, "1 bits")

	assert.Contains(t, word, "// Uz8 is an 8-bit unsigned value backed by a uint8.")
	assert.Contains(t, word, "// Uz11 is an 11-bit unsigned value backed by a uint16.")
	assert.Contains(t, word, "// Uz18 is an 18-bit unsigned value backed by a uint32.")
	assert.Contains(t, word, "// Uz12 is a 12-bit unsigned value backed by a uint16.")
}

func TestGenerator_WriteAndCheck(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "out")

	g, err := New(smallConfig(dir))
	require.NoError(t, err)

	stale, err := g.Check(ctx)
	require.NoError(t, err)
	assert.Equal(t, g.Files(), stale, "every file is missing before Write")

	require.NoError(t, g.Write(ctx))
	for _, name := range g.Files() {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	stale, err = g.Check(ctx)
	require.NoError(t, err)
	assert.Empty(t, stale)

	path := filepath.Join(dir, FileRanges)
	require.NoError(t, os.WriteFile(path, []byte("package small\n"), 0o644))
	require.NoError(t, os.Remove(filepath.Join(dir, FileRegistry)))

	stale, err = g.Check(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{FileRanges, FileRegistry}, stale)
}

func TestGenerator_WriteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g, err := New(smallConfig(t.TempDir()))
	require.NoError(t, err)
	assert.ErrorIs(t, g.Write(ctx), context.Canceled)
}

// The committed files at the repository root must be what the default
// config renders; run go generate after changing a template.
func TestGenerator_RepositoryUpToDate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = filepath.Join("..", "..")

	g, err := New(cfg)
	require.NoError(t, err)

	stale, err := g.Check(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stale, "run go generate in the repository root")
}

func TestNewModel(t *testing.T) {
	m := newModel(smallConfig("."))
	require.Len(t, m.Bits, 16)
	require.Len(t, m.Enums, 2)
	require.Len(t, m.Words, 14)
	require.Len(t, m.Ranges, 4)

	uz3 := m.Enums[1]
	assert.Equal(t, "0b111", uz3.Mask)
	assert.Equal(t, member{Name: "Uz3B101", Value: "0b101"}, uz3.Members[5])

	uz12 := m.Words[8]
	assert.Equal(t, "Uz12", uz12.Name)
	assert.Equal(t, "uint16", uz12.Backing)
	assert.Equal(t, 3, uz12.Digits)

	rz5 := m.Ranges[3]
	assert.Equal(t, uint(3), rz5.Width)
	assert.Equal(t, []string{"Rz5"}, rz5.Targets)
	assert.Equal(t, member{Name: "Rz5X4", Value: "4"}, rz5.Members[4])

	wide := newRangeType(20, 32)
	assert.Equal(t, 2, wide.Digits)
	assert.Equal(t, member{Name: "Rz20X0a", Value: "10"}, wide.Members[10])
	assert.Len(t, wide.Targets, 13)
}
