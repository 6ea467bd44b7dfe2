// Package graph provides a minimal deferred-execution recorder. A Tape
// stands in for a graph-building environment: instead of materializing
// conversions eagerly it records them as pending ops and hands back symbolic
// nodes. It exists so dtype resolution can be exercised, and observed, in a
// deferred context without a real execution backend.
package graph

import (
	"fmt"

	"github.com/grauwolf/tensorkit/dtype"
)

// Op is a recorded, not yet executed, operation.
type Op struct {
	Kind  string
	Value any
	DType dtype.DType
}

// Node is the symbolic result of a recorded op. It carries only a
// descriptor and a display name; it has no data until the tape is run by an
// execution backend.
type Node struct {
	id int
	dt dtype.DType
}

func (n Node) DType() dtype.DType { return n.dt }

func (n Node) Name() string {
	return fmt.Sprintf("node_%d:%s", n.id, n.dt)
}

// Tape accumulates pending ops. It is not safe for concurrent use; a tape
// belongs to one graph construction at a time.
type Tape struct {
	ops []Op
}

// Ops returns the recorded ops in registration order.
func (t *Tape) Ops() []Op { return t.ops }

// Convert implements dtype.Converter. The descriptor is resolved
// immediately: explicit takes precedence over the value's natural type, and
// hint applies only when the type cannot be inferred. The conversion itself
// is only registered on the tape.
func (t *Tape) Convert(v any, explicit, hint dtype.DType) (dtype.Value, error) {
	dt := explicit
	if dt == dtype.Invalid {
		if natural, ok := dtype.DTypeOf(v); ok {
			dt = natural
		} else {
			dt = hint
		}
	}
	if dt == dtype.Invalid {
		return nil, fmt.Errorf("cannot infer dtype of %T without an explicit type or hint", v)
	}

	dt = dt.Base()
	t.ops = append(t.ops, Op{Kind: "convert", Value: v, DType: dt})
	return Node{id: len(t.ops) - 1, dt: dt}, nil
}
