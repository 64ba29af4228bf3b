package gen

import (
	"fmt"
	"go/token"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/uz/errors"
)

// MaxWidth is the widest bit type and the largest cardinality supported.
const MaxWidth = 32

// Config controls which types are generated and where.
type Config struct {
	Package string      `yaml:"package"`
	Output  string      `yaml:"output"`
	Header  string      `yaml:"header"`
	Bits    BitsConfig  `yaml:"bits"`
	Ranges  RangeConfig `yaml:"ranges"`
}

// BitsConfig selects the generated bit widths.
type BitsConfig struct {
	Min uint `yaml:"min"`
	Max uint `yaml:"max"`
	// EnumMax is the widest type rendered as an enum of named bit patterns.
	EnumMax uint `yaml:"enum_max"`
}

// RangeConfig selects the generated cardinalities.
type RangeConfig struct {
	Min uint `yaml:"min"`
	Max uint `yaml:"max"`
}

// DefaultConfig returns the configuration of the uz package itself.
func DefaultConfig() Config {
	return Config{
		Package: "uz",
		Output:  ".",
		Header:  "uzgen",
		Bits:    BitsConfig{Min: 1, Max: MaxWidth, EnumMax: 6},
		Ranges:  RangeConfig{Min: 1, Max: MaxWidth},
	}
}

// LoadConfig reads a YAML config file. Keys missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.PhaseConfig, errors.KindIO, err, "read "+path)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "decode yaml")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every configured width can be generated.
func (c Config) Validate() error {
	if !token.IsIdentifier(c.Package) {
		return errors.InvalidInput(errors.PhaseConfig, []string{"package"},
			fmt.Sprintf("%q is not a Go identifier", c.Package))
	}
	if c.Header == "" {
		return errors.InvalidInput(errors.PhaseConfig, []string{"header"}, "must not be empty")
	}
	if err := checkSpan("bits", c.Bits.Min, c.Bits.Max); err != nil {
		return err
	}
	if c.Bits.EnumMax > 8 {
		return errors.InvalidInput(errors.PhaseConfig, []string{"bits", "enum_max"},
			fmt.Sprintf("%d exceeds the 8-bit enum backing", c.Bits.EnumMax))
	}
	return checkSpan("ranges", c.Ranges.Min, c.Ranges.Max)
}

func checkSpan(section string, lo, hi uint) error {
	switch {
	case lo == 0:
		return errors.InvalidInput(errors.PhaseConfig, []string{section, "min"}, "must be at least 1")
	case hi > MaxWidth:
		return errors.InvalidInput(errors.PhaseConfig, []string{section, "max"},
			fmt.Sprintf("%d exceeds %d", hi, MaxWidth))
	case lo > hi:
		return errors.InvalidInput(errors.PhaseConfig, []string{section},
			fmt.Sprintf("min %d is greater than max %d", lo, hi))
	}
	return nil
}
