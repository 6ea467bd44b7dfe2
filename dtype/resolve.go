package dtype

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/x448/float16"
)

// DTypeOf extracts the descriptor a value carries, if any. It understands
// descriptors themselves, Value implementations, native Go scalars and flat
// slices of them, and half-precision scalars. The bool result is false for
// values that carry no descriptor.
func DTypeOf(v any) (DType, bool) {
	switch v := v.(type) {
	case nil:
		return Invalid, false
	case DType:
		return v, v != Invalid
	case Value:
		dt := v.DType()
		return dt, dt != Invalid
	case bool, []bool:
		return Bool, true
	case uint8, []uint8:
		return Uint8, true
	case uint16, []uint16:
		return Uint16, true
	case uint32, []uint32:
		return Uint32, true
	case uint64, []uint64:
		return Uint64, true
	case int8, []int8:
		return Int8, true
	case int16, []int16:
		return Int16, true
	case int32, []int32:
		return Int32, true
	case int, []int, int64, []int64:
		return Int64, true
	case float16.Float16, []float16.Float16:
		return Float16, true
	case float32, []float32:
		return Float32, true
	case float64, []float64:
		return Float64, true
	case complex64, []complex64:
		return Complex64, true
	case complex128, []complex128:
		return Complex128, true
	}
	return Invalid, false
}

// flatten expands nested []any collections in encounter order. Typed slices
// ([]float32 and friends) are single tagged values, not collections.
func flatten(args []any) []any {
	out := make([]any, 0, len(args))
	for _, a := range args {
		if nested, ok := a.([]any); ok {
			out = append(out, flatten(nested)...)
		} else {
			out = append(out, a)
		}
	}
	return out
}

// CommonDType scans a possibly nested collection of values, collects each
// one's descriptor, and requires all present descriptors to agree up to
// reference qualifiers. Values carrying no descriptor are skipped. If none
// carried one, hint is returned as-is.
//
// On a conflict the returned IncompatibleTypesError lists every descriptor
// seen so far, unless cfg.SkipChecks is set, in which case the conflict is
// folded through cfg.Promoter and the scan continues.
func CommonDType(cfg Config, args []any, hint DType) (DType, error) {
	var dt DType
	seen := make([]DType, 0, len(args))
	for _, a := range flatten(args) {
		adt, ok := DTypeOf(a)
		if !ok {
			seen = append(seen, Invalid)
			continue
		}
		seen = append(seen, adt)
		switch {
		case dt == Invalid:
			dt = adt
		case !BaseEqual(dt, adt):
			if !cfg.SkipChecks {
				return Invalid, &IncompatibleTypesError{Expected: dt, Actual: adt, Seen: seen}
			}
			if cfg.Promoter == nil {
				return Invalid, errors.New("dtype checks skipped but no promoter configured")
			}
			promoted, err := cfg.Promoter.Promote(dt, adt)
			if err != nil {
				return Invalid, err
			}
			slog.Debug("promoted mismatched dtypes", "a", dt, "b", adt, "result", promoted)
			dt = promoted
		}
	}
	if dt == Invalid {
		return hint, nil
	}
	return dt.Base(), nil
}

// ResolveDType determines the descriptor for a single input following the
// conversion precedence of the host ecosystem:
//
//   - nil input resolves to explicit, falling back to hint;
//   - a descriptor or a Value resolves to its own base descriptor;
//   - a host array (a Value marked HostArray), a native scalar, or a flat
//     slice resolves to explicit, then hint, then its own descriptor;
//   - anything else is handed to cfg.Converter, which in a graph
//     environment may record a deferred conversion op as a side effect.
//
// When explicit is given and the resolved descriptor is not base-equal to
// it, an IncompatibleTypesError is returned unless cfg.SkipChecks is set.
func ResolveDType(cfg Config, v any, explicit, hint DType) (DType, error) {
	if v == nil {
		if explicit != Invalid {
			return explicit, nil
		}
		return hint, nil
	}

	var dt DType
	switch x := v.(type) {
	case DType:
		dt = x.Base()
	case HostArray:
		switch {
		case explicit != Invalid:
			dt = explicit.Base()
		case hint != Invalid:
			dt = hint.Base()
		default:
			dt = x.DType().Base()
		}
	case Value:
		dt = x.DType().Base()
	default:
		if natural, ok := DTypeOf(v); ok {
			switch {
			case explicit != Invalid:
				dt = explicit.Base()
			case hint != Invalid:
				dt = hint.Base()
			default:
				dt = natural.Base()
			}
		} else {
			if cfg.Converter == nil {
				return Invalid, fmt.Errorf("cannot resolve dtype of %T: no converter configured", v)
			}
			cv, err := cfg.Converter.Convert(v, explicit, hint)
			if err != nil {
				return Invalid, err
			}
			dt = cv.DType().Base()
		}
	}

	if explicit != Invalid && !cfg.SkipChecks && !BaseEqual(explicit, dt) {
		return Invalid, &IncompatibleTypesError{Expected: explicit, Actual: dt}
	}
	return dt, nil
}

type namer interface {
	Name() string
}

// Named attaches a display name to a Value for use in mismatch messages.
type Named struct {
	Label string
	Value Value
}

func (n Named) DType() DType { return n.Value.DType() }
func (n Named) Name() string { return n.Label }

func displayName(v Value) string {
	if n, ok := v.(namer); ok {
		return n.Name()
	}
	return fmt.Sprintf("%v", v)
}

// sameBaseDType checks all non-nil items against a running expected type.
// The fast path only detects a mismatch; the detailed message naming the
// offending values is built in a second pass, since that is comparatively
// expensive.
func sameBaseDType(items []Value, expected DType) (DType, error) {
	original := expected
	mismatch := false
	for _, it := range items {
		if it == nil {
			continue
		}
		t := it.DType().Base()
		switch {
		case expected == Invalid:
			expected = t
		case expected.Base() != t:
			mismatch = true
		}
		if mismatch {
			break
		}
	}
	if !mismatch {
		return expected, nil
	}

	expected = original
	var expectedName string
	for _, it := range items {
		if it == nil {
			continue
		}
		t := it.DType().Base()
		switch {
		case expected == Invalid:
			expected = t
			expectedName = displayName(it)
		case expected.Base() != t:
			return Invalid, &IncompatibleTypesError{
				Expected:     expected.Base(),
				Actual:       t,
				Name:         displayName(it),
				ExpectedName: expectedName,
			}
		}
	}
	return expected, nil
}

// AssertSameFloatDType validates that all values share one base descriptor,
// that it matches explicit when given, and that it is a floating point
// type. Nil values are ignored. With no values and no explicit type the
// default is Float32.
func AssertSameFloatDType(cfg Config, values []Value, explicit DType) (DType, error) {
	dt := explicit
	if len(values) > 0 {
		var err error
		dt, err = sameBaseDType(values, explicit)
		if err != nil {
			return Invalid, err
		}
	}
	if dt == Invalid {
		dt = Float32
	} else if !dt.IsFloating() {
		return Invalid, fmt.Errorf("%w, got %s", ErrNotFloatingPoint, dt)
	}
	return dt.Base(), nil
}
