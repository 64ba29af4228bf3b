package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/uz/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "uz", cfg.Package)
	assert.Equal(t, uint(6), cfg.Bits.EnumMax)
	assert.Equal(t, uint(MaxWidth), cfg.Ranges.Max)
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want func(*Config)
	}{
		{
			name: "empty keeps defaults",
			yaml: "",
			want: func(*Config) {},
		},
		{
			name: "partial override",
			yaml: "package: widths\nbits:\n  max: 12\n",
			want: func(c *Config) {
				c.Package = "widths"
				c.Bits.Max = 12
			},
		},
		{
			name: "full",
			yaml: `
package: small
output: out
header: tool
bits:
  min: 2
  max: 9
  enum_max: 3
ranges:
  min: 4
  max: 8
`,
			want: func(c *Config) {
				*c = Config{
					Package: "small",
					Output:  "out",
					Header:  "tool",
					Bits:    BitsConfig{Min: 2, Max: 9, EnumMax: 3},
					Ranges:  RangeConfig{Min: 4, Max: 8},
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfig([]byte(tt.yaml))
			require.NoError(t, err)

			want := DefaultConfig()
			tt.want(&want)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		path   []string
	}{
		{"bad package", func(c *Config) { c.Package = "not-an-ident" }, []string{"package"}},
		{"empty header", func(c *Config) { c.Header = "" }, []string{"header"}},
		{"zero bits min", func(c *Config) { c.Bits.Min = 0 }, []string{"bits", "min"}},
		{"bits too wide", func(c *Config) { c.Bits.Max = 33 }, []string{"bits", "max"}},
		{"bits inverted", func(c *Config) { c.Bits.Min, c.Bits.Max = 9, 8 }, []string{"bits"}},
		{"enum too wide", func(c *Config) { c.Bits.EnumMax = 9 }, []string{"bits", "enum_max"}},
		{"zero ranges min", func(c *Config) { c.Ranges.Min = 0 }, []string{"ranges", "min"}},
		{"ranges too wide", func(c *Config) { c.Ranges.Max = 64 }, []string{"ranges", "max"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var e *errors.Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, errors.PhaseConfig, e.Phase)
			assert.Equal(t, errors.KindInvalidInput, e.Kind)
			assert.Equal(t, tt.path, e.Path)
		})
	}
}

func TestParseConfig_InvalidYAML(t *testing.T) {
	_, err := ParseConfig([]byte("bits: [1, 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode yaml")
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "uzgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ranges:\n  max: 16\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, uint(16), cfg.Ranges.Max)
	assert.Equal(t, uint(1), cfg.Ranges.Min)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	var e *errors.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, errors.KindIO, e.Kind)
}

// The repository's own config must describe the committed files.
func TestLoadConfig_Repository(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "uzgen.yaml"))
	require.NoError(t, err)

	want := DefaultConfig()
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("uzgen.yaml differs from defaults (-want +got):\n%s", diff)
	}
}
