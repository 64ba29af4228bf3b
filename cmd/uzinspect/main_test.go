package main

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/uz/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInspect(t *testing.T) {
	tests := []struct {
		typ, literal          string
		debug, display, hex string
		wit                   string
	}{
		{"Uz3", "0b101", "0b101", "5", "0x5", "u8"},
		{"uz12", "0xfff", "0xfff", "4095", "0xfff", "u16"},
		{"Uz16", "15", "0x000f", "15", "0xf", "u16"},
		{"Uz32", "4_294_967_295", "0xffffffff", "4294967295", "0xffffffff", "u32"},
		{"Rz20", "10", "0x0a", "10", "0xa", "u32"},
		{" Rz2 ", " 0o1 ", "0x1", "1", "0x1", "u32"},
	}

	for _, tt := range tests {
		t.Run(tt.typ+"/"+tt.literal, func(t *testing.T) {
			r, err := inspect(tt.typ, tt.literal)
			require.NoError(t, err)
			assert.Equal(t, tt.debug, r.Debug)
			assert.Equal(t, tt.display, r.Display)
			assert.Equal(t, tt.hex, r.Hex)
			assert.Equal(t, tt.wit, r.WIT)
		})
	}
}

func TestInspect_Errors(t *testing.T) {
	tests := []struct {
		typ, literal string
		kind         errors.Kind
	}{
		{"Uz4", "20", errors.KindOutOfRange},
		{"Rz5", "5", errors.KindOutOfRange},
		{"Uz4", "-1", errors.KindNegative},
		{"Uz4", "five", errors.KindInvalidInput},
		{"Uz40", "1", errors.KindNotFound},
		{"Uz32", "0x1_0000_0000", errors.KindOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.typ+"/"+tt.literal, func(t *testing.T) {
			_, err := inspect(tt.typ, tt.literal)
			var e *errors.Error
			require.True(t, errors.As(err, &e), "error = %v", err)
			assert.Equal(t, tt.kind, e.Kind)
		})
	}
}

func TestRenderCommand(t *testing.T) {
	out, err := execute(t, "render", "Uz12", "0xfff")
	require.NoError(t, err)
	assert.Equal(t, `type     Uz12 (12-bit value, uint16 backing, 4096 values)
debug    0xfff
display  4095
hex      0xfff
wit      u16
`, out)

	out, err = execute(t, "render", "Rz3", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "type     Rz3 (index below 3, uint backing)")

	_, err = execute(t, "render", "Uz4", "20")
	require.Error(t, err)
	assert.True(t, errors.IsRange(err))
	assert.Contains(t, err.Error(), "value 20 exceeds mask 0xf")

	_, err = execute(t, "render", "Uz4")
	require.Error(t, err)
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	for _, want := range []string{"TYPE", "Uz1", "Uz32", "Rz1", "Rz32", "uint16", "hex/8", "binary", "u32"} {
		assert.Contains(t, out, want)
	}
}

func TestRootCommand_NotATerminal(t *testing.T) {
	prev := interactive
	interactive = func() bool { return false }
	defer func() { interactive = prev }()

	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "render")
	assert.Contains(t, out, "list")
}

func typeRunes(m *inspectModel, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestInspectModel(t *testing.T) {
	m := newInspectModel()
	require.NotNil(t, m.Init())

	typeRunes(m, "Uz12")
	assert.Nil(t, m.report, "no report until both fields are filled")
	assert.NoError(t, m.err)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldValue, m.focus)

	typeRunes(m, "0xfff")
	require.NoError(t, m.err)
	require.NotNil(t, m.report)
	assert.Equal(t, "0xfff", m.report.Debug)
	assert.Equal(t, "4095", m.report.Display)
	assert.Contains(t, m.View(), "4095")

	typeRunes(m, "f")
	assert.Nil(t, m.report)
	assert.True(t, errors.IsRange(m.err))
	assert.Contains(t, m.View(), "Error:")

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldType, m.focus)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
