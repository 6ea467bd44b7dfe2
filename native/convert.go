package native

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/d4l3k/go-bfloat16"
	"github.com/pdevine/tensor"
	"github.com/x448/float16"

	"github.com/grauwolf/tensorkit/dtype"
)

// Converter materializes scalar-like values as host arrays so their
// descriptor can be read back. It is the eager strategy for
// dtype.Config.Converter; the graph package records the conversion instead.
type Converter struct{}

// Convert builds a host array from v. The target descriptor is explicit,
// falling back to the value's natural type; hint would apply only when the
// type cannot be inferred, and a value whose type cannot be inferred has no
// host representation to build, so here it never does. Scalars and flat
// slices of the native numeric types are supported, as are half precision
// scalars and slices, which are widened to float32 before entering the host
// library.
func (Converter) Convert(v any, explicit, hint dtype.DType) (dtype.Value, error) {
	v = widenHalf(v)

	natural, ok := dtype.DTypeOf(v)
	if !ok {
		return nil, fmt.Errorf("cannot convert %T to a host array", v)
	}

	target := natural
	if explicit != dtype.Invalid {
		target = explicit
	}
	nt, err := DtypeOf(target)
	if err != nil {
		return nil, err
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem() != nt.Type {
			if !rv.Type().Elem().ConvertibleTo(nt.Type) {
				return nil, fmt.Errorf("cannot convert %T to %s", v, target)
			}
			out := reflect.MakeSlice(reflect.SliceOf(nt.Type), rv.Len(), rv.Len())
			for i := 0; i < rv.Len(); i++ {
				out.Index(i).Set(rv.Index(i).Convert(nt.Type))
			}
			rv = out
		}
		return Wrap(tensor.New(tensor.WithBacking(rv.Interface()))), nil
	default:
		if rv.Type() != nt.Type {
			if !rv.Type().ConvertibleTo(nt.Type) {
				return nil, fmt.Errorf("cannot convert %T to %s", v, target)
			}
			rv = rv.Convert(nt.Type)
		}
		return Wrap(tensor.New(tensor.FromScalar(rv.Interface()))), nil
	}
}

// widenHalf rewrites half precision inputs as float32, which is the
// narrowest floating type the host library stores.
func widenHalf(v any) any {
	switch v := v.(type) {
	case float16.Float16:
		return v.Float32()
	case []float16.Float16:
		f32s := make([]float32, len(v))
		for i, h := range v {
			f32s[i] = h.Float32()
		}
		return f32s
	}
	return v
}

// DecodeHalf widens a raw little-endian buffer of half precision values
// into a float32 host array. Only Float16 and BFloat16 buffers are
// supported.
func DecodeHalf(d dtype.DType, data []byte) (*Tensor, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("odd half precision buffer length %d", len(data))
	}
	var f32s []float32
	switch d.Base() {
	case dtype.Float16:
		f32s = make([]float32, len(data)/2)
		for i := range f32s {
			f32s[i] = float16.Frombits(binary.LittleEndian.Uint16(data[2*i:])).Float32()
		}
	case dtype.BFloat16:
		f32s = bfloat16.DecodeFloat32(data)
	default:
		return nil, &dtype.UnsupportedTypeError{DType: d, Op: "half precision decode"}
	}
	return Wrap(tensor.New(tensor.WithBacking(f32s))), nil
}
