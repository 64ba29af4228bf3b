package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseConstruct,
				Kind:   KindOutOfRange,
				Path:   []string{"header", "flags"},
				Type:   "Uz4",
				Native: "uint8",
				Detail: "value 20 exceeds mask 0xf",
			},
			contains: []string{"[construct]", "out_of_range", "header.flags", "Uz4 from uint8", "mask 0xf"},
		},
		{
			name: "export direction",
			err: &Error{
				Phase:  PhaseExport,
				Kind:   KindNarrowing,
				Type:   "Uz16",
				Native: "uint8",
			},
			contains: []string{"[export]", "narrowing", "Uz16 to uint8"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseLookup,
				Kind:  KindNotFound,
			},
			contains: []string{"[lookup]", "not_found"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseGenerate,
				Kind:   KindIO,
				Detail: "write ranges_gen.go",
				Cause:  errors.New("disk full"),
			},
			contains: []string{"[generate]", "io", "ranges_gen.go", "caused by", "disk full"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseLift,
		Kind:  KindOutOfRange,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseConstruct,
		Kind:  KindOutOfRange,
		Type:  "Rz5",
	}

	if !err.Is(&Error{Phase: PhaseConstruct, Kind: KindOutOfRange}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseLift, Kind: KindOutOfRange}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseConstruct, Kind: KindNegative}) {
		t.Error("Is should not match different kind")
	}
	if !errors.Is(err, ErrOutOfRange) {
		t.Error("errors.Is should match phase-less sentinel")
	}
	if errors.Is(err, ErrNarrowing) {
		t.Error("errors.Is should not match other sentinel")
	}

	wrapped := fmt.Errorf("decode header: %w", err)
	if !errors.Is(wrapped, ErrOutOfRange) {
		t.Error("errors.Is should see through fmt wrapping")
	}
}

func TestIsRange(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"out of range", OutOfRange(PhaseConstruct, "Uz4", "uint8", 20, "mask 0xf"), true},
		{"negative", Negative(PhaseConstruct, "Uz4", "int32", -1), true},
		{"narrowing", Narrowing(PhaseExport, "Uz16", "uint8", uint64(0x100)), true},
		{"wrapped", fmt.Errorf("ctx: %w", Negative(PhaseLift, "Rz2", "int32", -3)), true},
		{"not found", NotFound(PhaseLookup, "Uz33"), false},
		{"plain", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRange(tt.err); got != tt.want {
				t.Errorf("IsRange(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseConstruct, KindOutOfRange).
		Path("packet", "ttl").
		Type("Uz7").
		Native("uint16").
		Value(300).
		Cause(cause).
		Detail("value %d exceeds %s", 300, "mask 0x7f").
		Build()

	if err.Phase != PhaseConstruct {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseConstruct)
	}
	if err.Kind != KindOutOfRange {
		t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfRange)
	}
	if len(err.Path) != 2 || err.Path[0] != "packet" || err.Path[1] != "ttl" {
		t.Errorf("Path = %v, want [packet ttl]", err.Path)
	}
	if err.Type != "Uz7" {
		t.Errorf("Type = %v, want 'Uz7'", err.Type)
	}
	if err.Native != "uint16" {
		t.Errorf("Native = %v, want 'uint16'", err.Native)
	}
	if err.Value != 300 {
		t.Errorf("Value = %v, want 300", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "value 300 exceeds mask 0x7f" {
		t.Errorf("Detail = %v, want 'value 300 exceeds mask 0x7f'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("OutOfRange", func(t *testing.T) {
		err := OutOfRange(PhaseConstruct, "Uz4", "uint8", 20, "mask 0xf")
		if err.Kind != KindOutOfRange {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfRange)
		}
		if err.Detail != "value 20 exceeds mask 0xf" {
			t.Errorf("Detail = %q", err.Detail)
		}
	})

	t.Run("Negative", func(t *testing.T) {
		err := Negative(PhaseConstruct, "Rz3", "int32", -7)
		if err.Kind != KindNegative {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNegative)
		}
		if err.Value != -7 {
			t.Errorf("Value = %v, want -7", err.Value)
		}
	})

	t.Run("Narrowing", func(t *testing.T) {
		err := Narrowing(PhaseExport, "Uz16", "uint8", uint64(0x100))
		if err.Kind != KindNarrowing {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNarrowing)
		}
		if !strings.Contains(err.Detail, "0x100") {
			t.Errorf("Detail = %v, should contain value in hex", err.Detail)
		}
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		err := TypeMismatch(PhaseLift, []string{"param0"}, "Uz12", "u8")
		if err.Kind != KindTypeMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
		}
		if err.Type != "Uz12" || err.Native != "u8" {
			t.Errorf("Type=%v Native=%v", err.Type, err.Native)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseLookup, "no type named Uz40")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("NotFound should match ErrNotFound")
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseConfig, []string{"bits", "max"}, "must be <= 32")
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
		}
		if !strings.Contains(err.Error(), "bits.max") {
			t.Errorf("Error() = %q, should contain path", err.Error())
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseLower, "f64 carrier")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := Wrap(PhaseGenerate, KindIO, cause, "write bits_enum_gen.go")
		if !errors.Is(err, cause) {
			t.Error("Wrap should keep cause reachable")
		}
	})
}
