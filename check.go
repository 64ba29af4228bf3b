package uz

import (
	"fmt"

	"github.com/wippyai/uz/errors"
)

// checkMask is the rule every UzN constructor applies: v must be
// non-negative and carry no bit outside mask.
func checkMask[S Native](typ string, v S, mask uint64) (uint64, error) {
	if v < 0 {
		return 0, errors.Negative(errors.PhaseConstruct, typ, nativeName[S](), v)
	}
	u := uint64(v)
	if u&^mask != 0 {
		return 0, errors.OutOfRange(errors.PhaseConstruct, typ, nativeName[S](), v, fmt.Sprintf("mask %#x", mask))
	}
	return u, nil
}

// checkBound is the RzM counterpart of checkMask: v must lie in [0, n).
func checkBound[S Native](typ string, v S, n uint64) (uint, error) {
	if v < 0 {
		return 0, errors.Negative(errors.PhaseConstruct, typ, nativeName[S](), v)
	}
	u := uint64(v)
	if u >= n {
		return 0, errors.OutOfRange(errors.PhaseConstruct, typ, nativeName[S](), v, fmt.Sprintf("bound %d", n))
	}
	return uint(u), nil
}

// narrow exports raw as T, failing if any bit above T's width is set.
func narrow[T Unsigned](typ string, raw uint64) (T, error) {
	if raw > uint64(^T(0)) {
		return 0, errors.Narrowing(errors.PhaseExport, typ, nativeName[T](), raw)
	}
	return T(raw), nil
}

// narrowI32 exports raw as int32, failing if it does not fit.
func narrowI32(typ string, raw uint64) (int32, error) {
	if raw > 1<<31-1 {
		return 0, errors.Narrowing(errors.PhaseExport, typ, "int32", raw)
	}
	return int32(raw), nil
}

func equalI32(raw uint64, x int32) bool {
	return x >= 0 && uint64(x) == raw
}

// must unwraps a checked conversion, panicking on a range violation.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// boxed turns a typed constructor result into a Value, dropping the
// zero value on failure.
func boxed[T Value](v T, err error) (Value, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

func nativeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
