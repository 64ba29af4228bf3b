package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConstruct Phase = "construct" // native integer to uz value
	PhaseExport    Phase = "export"    // uz value to native integer
	PhaseLookup    Phase = "lookup"    // descriptor lookup by name/width
	PhaseLift      Phase = "lift"      // WASM core value to uz value
	PhaseLower     Phase = "lower"     // uz value to WASM core value
	PhaseParse     Phase = "parse"     // textual input
	PhaseConfig    Phase = "config"    // generator configuration
	PhaseGenerate  Phase = "generate"  // code generation
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfRange   Kind = "out_of_range"
	KindNegative     Kind = "negative"
	KindNarrowing    Kind = "narrowing"
	KindTypeMismatch Kind = "type_mismatch"
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
	KindUnsupported  Kind = "unsupported"
	KindIO           Kind = "io"
)

// Sentinels for errors.Is. A sentinel has no Phase and matches its Kind in any phase.
var (
	ErrOutOfRange = &Error{Kind: KindOutOfRange}
	ErrNegative   = &Error{Kind: KindNegative}
	ErrNarrowing  = &Error{Kind: KindNarrowing}
	ErrNotFound   = &Error{Kind: KindNotFound}
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string // uz type, e.g. "Uz12"
	Native string // native Go type, e.g. "uint8"
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Type != "" || e.Native != "" {
		b.WriteString(": ")
		switch {
		case e.Type != "" && e.Native != "":
			b.WriteString("type ")
			b.WriteString(e.Type)
			if e.Phase == PhaseExport {
				b.WriteString(" to ")
			} else {
				b.WriteString(" from ")
			}
			b.WriteString(e.Native)
		case e.Type != "":
			b.WriteString("type ")
			b.WriteString(e.Type)
		default:
			b.WriteString("native ")
			b.WriteString(e.Native)
		}
	}

	if e.Detail != "" {
		if e.Type != "" || e.Native != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// A target without a Phase matches any phase.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind && (t.Phase == "" || e.Phase == t.Phase)
	}
	return false
}

// Is calls the standard library errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As calls the standard library errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsRange reports whether err is a range violation of any kind.
func IsRange(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Kind {
	case KindOutOfRange, KindNegative, KindNarrowing:
		return true
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Type sets the uz type name
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Native sets the native Go type name
func (b *Builder) Native(t string) *Builder {
	b.err.Native = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// OutOfRange creates an error for a value outside a type's domain.
// limit describes the domain, e.g. "mask 0xf" or "bound 5".
func OutOfRange(phase Phase, typ, native string, value any, limit string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfRange,
		Type:   typ,
		Native: native,
		Value:  value,
		Detail: fmt.Sprintf("value %v exceeds %s", value, limit),
	}
}

// Negative creates an error for a negative value from a signed source
func Negative(phase Phase, typ, native string, value any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNegative,
		Type:   typ,
		Native: native,
		Value:  value,
		Detail: fmt.Sprintf("value %v is negative", value),
	}
}

// Narrowing creates an error for an export that would drop significant bits
func Narrowing(phase Phase, typ, native string, value any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNarrowing,
		Type:   typ,
		Native: native,
		Value:  value,
		Detail: fmt.Sprintf("value %#x does not fit in %s", value, native),
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, typ, native string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Path:   path,
		Type:   typ,
		Native: native,
	}
}

// NotFound creates an error for an unknown type name, width or cardinality
func NotFound(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: what,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Path:   path,
		Detail: detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
