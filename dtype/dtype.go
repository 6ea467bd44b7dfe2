// dtype.go - Datentyp-Deskriptoren und Registry
// Dieses Modul definiert DType, die Typ-Registry und Kategorie-Abfragen.
package dtype

import (
	"fmt"
	"math"

	"github.com/d4l3k/go-bfloat16"
	"github.com/x448/float16"
)

// DType identifies a numeric element representation. The zero value is
// Invalid. A DType may additionally carry a reference qualifier (see Ref)
// which marks a handle to a mutable host variable of the base type.
type DType uint16

const (
	Invalid DType = iota
	Bool
	Uint8
	Uint16
	Uint32
	Uint64
	Int8
	Int16
	Int32
	Int64
	Float16
	BFloat16
	Float32
	Float64
	Complex64
	Complex128
	Q8_0
	Q4_0

	numDTypes = iota
)

// refFlag marks a reference to a mutable host variable. It is stripped by
// Base and never stored in the registry.
const refFlag DType = 1 << 8

// Kind is the numeric category of a DType. Quantized block formats are
// deliberately outside the four scalar categories: every category predicate
// answers false for them.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindInteger
	KindFloating
	KindComplex
	KindQuantized
)

// Bounds of the half-precision formats are probed from their max-finite bit
// patterns instead of being hard-coded.
var (
	maxFloat16  = float64(float16.Frombits(0x7bff).Float32())
	maxBFloat16 = float64(bfloat16.DecodeFloat32([]byte{0x7f, 0x7f})[0])
)

type typeInfo struct {
	name string
	size int // bytes per element, or per block for quantized formats
	kind Kind
	min  float64
	max  float64
}

// types is the fixed registry. It is built once and never mutated; all
// lookups go through DType.info.
var types = [numDTypes]typeInfo{
	Invalid:    {name: "invalid"},
	Bool:       {name: "bool", size: 1, kind: KindBool},
	Uint8:      {name: "uint8", size: 1, kind: KindInteger, min: 0, max: math.MaxUint8},
	Uint16:     {name: "uint16", size: 2, kind: KindInteger, min: 0, max: math.MaxUint16},
	Uint32:     {name: "uint32", size: 4, kind: KindInteger, min: 0, max: math.MaxUint32},
	Uint64:     {name: "uint64", size: 8, kind: KindInteger, min: 0, max: math.MaxUint64},
	Int8:       {name: "int8", size: 1, kind: KindInteger, min: math.MinInt8, max: math.MaxInt8},
	Int16:      {name: "int16", size: 2, kind: KindInteger, min: math.MinInt16, max: math.MaxInt16},
	Int32:      {name: "int32", size: 4, kind: KindInteger, min: math.MinInt32, max: math.MaxInt32},
	Int64:      {name: "int64", size: 8, kind: KindInteger, min: math.MinInt64, max: math.MaxInt64},
	Float16:    {name: "float16", size: 2, kind: KindFloating, min: -maxFloat16, max: maxFloat16},
	BFloat16:   {name: "bfloat16", size: 2, kind: KindFloating, min: -maxBFloat16, max: maxBFloat16},
	Float32:    {name: "float32", size: 4, kind: KindFloating, min: -math.MaxFloat32, max: math.MaxFloat32},
	Float64:    {name: "float64", size: 8, kind: KindFloating, min: -math.MaxFloat64, max: math.MaxFloat64},
	Complex64:  {name: "complex64", size: 8, kind: KindComplex, min: -math.MaxFloat32, max: math.MaxFloat32},
	Complex128: {name: "complex128", size: 16, kind: KindComplex, min: -math.MaxFloat64, max: math.MaxFloat64},
	Q8_0:       {name: "q8_0", size: 34, kind: KindQuantized},
	Q4_0:       {name: "q4_0", size: 18, kind: KindQuantized},
}

func (d DType) info() (typeInfo, bool) {
	b := d.Base()
	if b == Invalid || int(b) >= numDTypes {
		return typeInfo{}, false
	}
	return types[b], true
}

// Base strips the reference qualifier, if any. Base is idempotent.
func (d DType) Base() DType {
	return d &^ refFlag
}

// Ref returns the reference-qualified form of d. Invalid has no reference
// form.
func (d DType) Ref() DType {
	if d == Invalid {
		return d
	}
	return d | refFlag
}

// IsRef reports whether d carries the reference qualifier.
func (d DType) IsRef() bool {
	return d&refFlag != 0
}

// BaseEqual reports whether a and b are identical after stripping reference
// qualifiers.
func BaseEqual(a, b DType) bool {
	return a.Base() == b.Base()
}

// String returns the canonical display name. Reference-qualified types get a
// "_ref" suffix, matching the host convention.
func (d DType) String() string {
	info, ok := d.info()
	if !ok {
		if d == Invalid {
			return "invalid"
		}
		return fmt.Sprintf("dtype(%d)", uint16(d))
	}
	if d.IsRef() {
		return info.name + "_ref"
	}
	return info.name
}

// Size returns the storage width in bytes. For quantized block formats this
// is the byte size of one block.
func (d DType) Size() (int, error) {
	info, ok := d.info()
	if !ok {
		return 0, &UnsupportedTypeError{DType: d, Op: "size"}
	}
	return info.size, nil
}

// Kind returns the numeric category of d.
func (d DType) Kind() Kind {
	info, _ := d.info()
	return info.kind
}

// IsBool reports whether d is the boolean type.
func (d DType) IsBool() bool { return d.Kind() == KindBool }

// IsInteger reports whether d is a (non-quantized) integer type, signed or
// unsigned.
func (d DType) IsInteger() bool { return d.Kind() == KindInteger }

// IsFloating reports whether d is a (non-quantized, real) floating point
// type.
func (d DType) IsFloating() bool { return d.Kind() == KindFloating }

// IsComplex reports whether d is a complex floating point type.
func (d DType) IsComplex() bool { return d.Kind() == KindComplex }

// IsQuantized reports whether d is a quantized block format.
func (d DType) IsQuantized() bool { return d.Kind() == KindQuantized }

// Max returns the largest representable value of d. Integer bounds are exact
// for widths up to 32 bits; the 64 bit endpoints are rounded to the nearest
// float64. Complex types report the bounds of their real component. Bool and
// quantized types have no defined bounds.
func Max(d DType) (float64, error) {
	info, ok := d.info()
	if !ok || info.kind == KindBool || info.kind == KindQuantized {
		return 0, &UnsupportedTypeError{DType: d, Op: "max"}
	}
	return info.max, nil
}

// Min returns the smallest representable value of d. See Max for the bound
// conventions.
func Min(d DType) (float64, error) {
	info, ok := d.info()
	if !ok || info.kind == KindBool || info.kind == KindQuantized {
		return 0, &UnsupportedTypeError{DType: d, Op: "min"}
	}
	return info.min, nil
}

// RealDType returns the descriptor of the real component of d. For
// non-complex types that is d itself, with any reference qualifier stripped.
func RealDType(d DType) DType {
	switch d.Base() {
	case Complex64:
		return Float32
	case Complex128:
		return Float64
	}
	return d.Base()
}

// Parse resolves a canonical display name back to its DType.
func Parse(s string) (DType, error) {
	for dt := DType(1); dt < numDTypes; dt++ {
		if types[dt].name == s {
			return dt, nil
		}
		if types[dt].name+"_ref" == s {
			return dt.Ref(), nil
		}
	}
	return Invalid, fmt.Errorf("unknown dtype name %q", s)
}
