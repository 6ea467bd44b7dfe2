package native

import (
	"github.com/grauwolf/tensorkit/dtype"
)

// Promoter implements the host array library's arithmetic promotion rule:
// the result of Promote(a, b) is the element type of the sum of two
// length-2 arrays of types a and b in the reference array ecosystem. This
// is a policy escape hatch used only when dtype checks are skipped; it is
// deterministic but depends on the host promotion table, not on any notion
// of lossless conversion.
type Promoter struct{}

// floatBits is the mantissa-carrying width class of a floating type.
func floatBits(d dtype.DType) int {
	switch d {
	case dtype.Float16, dtype.BFloat16:
		return 16
	case dtype.Float32:
		return 32
	default:
		return 64
	}
}

// intFloatBits is the width of the smallest floating class whose exact
// integer window covers the full range of d.
func intFloatBits(d dtype.DType) int {
	switch d {
	case dtype.Int8, dtype.Uint8:
		return 16
	case dtype.Int16, dtype.Uint16:
		return 32
	default:
		return 64
	}
}

func componentBits(d dtype.DType) int {
	switch {
	case d.IsComplex():
		if d == dtype.Complex64 {
			return 32
		}
		return 64
	case d.IsFloating():
		return floatBits(d)
	default:
		return intFloatBits(d)
	}
}

func intWidth(d dtype.DType) int {
	n, _ := d.Size()
	return n * 8
}

func isSigned(d dtype.DType) bool {
	switch d {
	case dtype.Int8, dtype.Int16, dtype.Int32, dtype.Int64:
		return true
	}
	return false
}

func signedFor(bits int) dtype.DType {
	switch bits {
	case 8:
		return dtype.Int8
	case 16:
		return dtype.Int16
	case 32:
		return dtype.Int32
	case 64:
		return dtype.Int64
	}
	return dtype.Float64
}

func floatFor(bits int, half dtype.DType) dtype.DType {
	switch bits {
	case 16:
		return half
	case 32:
		return dtype.Float32
	default:
		return dtype.Float64
	}
}

func (Promoter) Promote(a, b dtype.DType) (dtype.DType, error) {
	a, b = a.Base(), b.Base()
	if a.Kind() == dtype.KindInvalid || a.IsQuantized() {
		return dtype.Invalid, &dtype.UnsupportedTypeError{DType: a, Op: "promotion"}
	}
	if b.Kind() == dtype.KindInvalid || b.IsQuantized() {
		return dtype.Invalid, &dtype.UnsupportedTypeError{DType: b, Op: "promotion"}
	}

	switch {
	case a == b:
		return a, nil
	case a.IsBool():
		return b, nil
	case b.IsBool():
		return a, nil
	case a.IsComplex() || b.IsComplex():
		if max(componentBits(a), componentBits(b)) <= 32 {
			return dtype.Complex64, nil
		}
		return dtype.Complex128, nil
	case a.IsFloating() && b.IsFloating():
		// Distinct 16 bit formats have no common half type; they widen.
		if floatBits(a) == 16 && floatBits(b) == 16 {
			return dtype.Float32, nil
		}
		if floatBits(a) >= floatBits(b) {
			return a, nil
		}
		return b, nil
	case a.IsFloating():
		return floatFor(max(floatBits(a), intFloatBits(b)), a), nil
	case b.IsFloating():
		return floatFor(max(floatBits(b), intFloatBits(a)), b), nil
	}

	// Both integer.
	if isSigned(a) == isSigned(b) {
		if intWidth(a) >= intWidth(b) {
			return a, nil
		}
		return b, nil
	}
	u, s := a, b
	if isSigned(a) {
		u, s = b, a
	}
	if intWidth(u) < intWidth(s) {
		return s, nil
	}
	return signedFor(intWidth(u) * 2), nil
}
