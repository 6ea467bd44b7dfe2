package dtype

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFloatingPoint is reported by AssertSameFloatDType when the resolved
// type is not in the floating category.
var ErrNotFloatingPoint = errors.New("expected floating point type")

// UnsupportedTypeError is reported when a descriptor cannot be mapped to a
// known numeric category, has no defined bounds, or has no host-array
// equivalent.
type UnsupportedTypeError struct {
	DType DType
	Op    string
}

func (e *UnsupportedTypeError) Error() string {
	switch {
	case e.Op == "":
		return fmt.Sprintf("unsupported dtype %s", e.DType)
	case e.DType == Invalid:
		return "unsupported " + e.Op
	default:
		return fmt.Sprintf("unsupported dtype %s for %s", e.DType, e.Op)
	}
}

// IncompatibleTypesError is reported when two or more resolved descriptors
// disagree under strict checking. Seen, when set, holds every descriptor
// collected in encounter order, Invalid standing in for values that carried
// none. Name and ExpectedName, when set, identify the offending and the
// reference value.
type IncompatibleTypesError struct {
	Expected DType
	Actual   DType

	Seen         []DType
	Name         string
	ExpectedName string
}

func (e *IncompatibleTypesError) Error() string {
	if e.Name != "" {
		msg := fmt.Sprintf("%s, type=%s, must be of the same type (%s)", e.Name, e.Actual, e.Expected)
		if e.ExpectedName != "" {
			msg += fmt.Sprintf(" as %s", e.ExpectedName)
		}
		return msg
	}
	if len(e.Seen) > 0 {
		names := make([]string, len(e.Seen))
		for i, dt := range e.Seen {
			names[i] = dt.String()
		}
		return fmt.Sprintf("found incompatible dtypes, %s and %s; seen so far: [%s]",
			e.Expected, e.Actual, strings.Join(names, " "))
	}
	return fmt.Sprintf("found incompatible dtypes, %s and %s", e.Expected, e.Actual)
}
