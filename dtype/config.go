package dtype

import (
	"github.com/grauwolf/tensorkit/envconfig"
)

// Value is anything that carries a data type: a tensor handle, a deferred
// graph node, or a tagged scalar. Implementations may additionally provide
// a Name() string used in mismatch messages.
type Value interface {
	DType() DType
}

// HostArray marks a Value backed by the host array library. During
// resolution a host array defers to an explicit or hinted descriptor, like
// a plain Go slice; every other Value is a framework handle and keeps its
// own descriptor. HostArray is a no-op marker method.
type HostArray interface {
	Value
	HostArray()
}

// Promoter reconciles two conflicting descriptors when strict checking is
// disabled. The native package supplies the host array library's rule.
type Promoter interface {
	Promote(a, b DType) (DType, error)
}

// Converter turns an arbitrary scalar-like value into the ambient numeric
// representation so its descriptor can be read back. Eager environments
// perform the conversion immediately; graph environments may instead record
// a pending conversion op and return a symbolic handle.
type Converter interface {
	Convert(v any, explicit, hint DType) (Value, error)
}

// Config carries the process-wide dtype policy. The zero value means strict
// checking, no host-compatibility assumption, and no conversion capability.
// A Config is read-only once in use; share it freely across goroutines.
type Config struct {
	// SkipChecks disables strict mismatch errors. Conflicting descriptors
	// are then folded through Promoter instead of failing, which alters
	// the correctness guarantees of every checked entry point.
	SkipChecks bool

	// NativeMode asserts that every descriptor is representable in the
	// host array library, skipping the per-type mapping check.
	NativeMode bool

	Promoter  Promoter
	Converter Converter
}

// FromEnv builds a Config from the TENSORKIT_* environment variables.
// Promotion and conversion strategies are host bindings; callers wire them
// separately (see the native package).
func FromEnv() Config {
	return Config{
		SkipChecks: envconfig.SkipDTypeChecks(),
		NativeMode: envconfig.NativeMode(),
	}
}
