// Package native binds the dtype package to the host array library
// (github.com/pdevine/tensor). It supplies the descriptor mapping in both
// directions, the eager conversion strategy, and the promotion rule used
// when dtype checks are skipped.
package native

import (
	"github.com/pdevine/tensor"

	"github.com/grauwolf/tensorkit/dtype"
)

// DtypeOf maps a descriptor to its host array library equivalent. Half
// precision and quantized formats have no host representation.
func DtypeOf(d dtype.DType) (tensor.Dtype, error) {
	switch d.Base() {
	case dtype.Bool:
		return tensor.Bool, nil
	case dtype.Uint8:
		return tensor.Uint8, nil
	case dtype.Uint16:
		return tensor.Uint16, nil
	case dtype.Uint32:
		return tensor.Uint32, nil
	case dtype.Uint64:
		return tensor.Uint64, nil
	case dtype.Int8:
		return tensor.Int8, nil
	case dtype.Int16:
		return tensor.Int16, nil
	case dtype.Int32:
		return tensor.Int32, nil
	case dtype.Int64:
		return tensor.Int64, nil
	case dtype.Float32:
		return tensor.Float32, nil
	case dtype.Float64:
		return tensor.Float64, nil
	case dtype.Complex64:
		return tensor.Complex64, nil
	case dtype.Complex128:
		return tensor.Complex128, nil
	}
	return tensor.Dtype{}, &dtype.UnsupportedTypeError{DType: d, Op: "host array mapping"}
}

// FromDtype maps a host array library dtype back to its descriptor.
func FromDtype(dt tensor.Dtype) (dtype.DType, error) {
	switch dt {
	case tensor.Bool:
		return dtype.Bool, nil
	case tensor.Uint8:
		return dtype.Uint8, nil
	case tensor.Uint16:
		return dtype.Uint16, nil
	case tensor.Uint32:
		return dtype.Uint32, nil
	case tensor.Uint64:
		return dtype.Uint64, nil
	case tensor.Int8:
		return dtype.Int8, nil
	case tensor.Int16:
		return dtype.Int16, nil
	case tensor.Int32:
		return dtype.Int32, nil
	case tensor.Int, tensor.Int64:
		return dtype.Int64, nil
	case tensor.Float32:
		return dtype.Float32, nil
	case tensor.Float64:
		return dtype.Float64, nil
	case tensor.Complex64:
		return dtype.Complex64, nil
	case tensor.Complex128:
		return dtype.Complex128, nil
	}
	return dtype.Invalid, &dtype.UnsupportedTypeError{Op: "host array mapping of " + dt.Name()}
}

// Compatible reports whether d maps onto the host array library. With
// cfg.NativeMode set every descriptor is assumed compatible.
func Compatible(cfg dtype.Config, d dtype.DType) bool {
	if cfg.NativeMode {
		return true
	}
	_, err := DtypeOf(d)
	return err == nil
}

// Tensor adapts a host array to dtype.Value. The zero value is not useful;
// construct with Wrap.
type Tensor struct {
	Dense *tensor.Dense

	name string
}

// Wrap adapts a host array. An optional name is used in mismatch messages.
func Wrap(d *tensor.Dense, name ...string) *Tensor {
	t := &Tensor{Dense: d}
	if len(name) > 0 {
		t.name = name[0]
	}
	return t
}

// HostArray marks the tensor as a host array: during resolution it defers
// to an explicit or hinted descriptor instead of insisting on its own.
func (t *Tensor) HostArray() {}

func (t *Tensor) DType() dtype.DType {
	d, err := FromDtype(t.Dense.Dtype())
	if err != nil {
		return dtype.Invalid
	}
	return d
}

func (t *Tensor) Name() string {
	if t.name == "" {
		return t.Dense.Dtype().Name() + " tensor"
	}
	return t.name
}

// DefaultConfig returns the environment-derived Config with the host
// promotion and conversion strategies wired in.
func DefaultConfig() dtype.Config {
	cfg := dtype.FromEnv()
	cfg.Promoter = Promoter{}
	cfg.Converter = Converter{}
	return cfg
}
