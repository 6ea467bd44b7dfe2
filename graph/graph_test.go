package graph

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/grauwolf/tensorkit/dtype"
)

func TestTapeRecordsConversion(t *testing.T) {
	type celsius float64

	tape := &Tape{}
	cfg := dtype.Config{Converter: tape}

	// the conversion is registered, not executed
	got, err := dtype.ResolveDType(cfg, celsius(21), dtype.Invalid, dtype.Float32)
	if err != nil {
		t.Fatal(err)
	}
	if got != dtype.Float32 {
		t.Errorf("got %s, want float32", got)
	}

	want := []Op{{Kind: "convert", Value: celsius(21), DType: dtype.Float32}}
	if diff := cmp.Diff(want, tape.Ops()); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestTapePrecedence(t *testing.T) {
	tape := &Tape{}

	// explicit wins over the natural type
	v, err := tape.Convert([]float32{1}, dtype.Float64, dtype.Invalid)
	if err != nil {
		t.Fatal(err)
	}
	if v.DType() != dtype.Float64 {
		t.Errorf("got %s, want float64", v.DType())
	}

	// natural type wins over the hint
	v, err = tape.Convert(int32(1), dtype.Invalid, dtype.Float32)
	if err != nil {
		t.Fatal(err)
	}
	if v.DType() != dtype.Int32 {
		t.Errorf("got %s, want int32", v.DType())
	}

	if len(tape.Ops()) != 2 {
		t.Errorf("%d ops aufgezeichnet, erwartet 2", len(tape.Ops()))
	}
}

func TestTapeUnknownValue(t *testing.T) {
	tape := &Tape{}
	if _, err := tape.Convert(struct{}{}, dtype.Invalid, dtype.Invalid); err == nil {
		t.Error("erwartet Fehler ohne explicit/hint fuer unbekannten Wert")
	}
	if len(tape.Ops()) != 0 {
		t.Error("fehlgeschlagene Konvertierung darf nichts aufzeichnen")
	}
}

func TestNodeName(t *testing.T) {
	tape := &Tape{}
	v, err := tape.Convert(1.5, dtype.Invalid, dtype.Invalid)
	if err != nil {
		t.Fatal(err)
	}
	n, ok := v.(Node)
	if !ok {
		t.Fatalf("erwartet Node, bekam %T", v)
	}
	if n.Name() != "node_0:float64" {
		t.Errorf("Name() = %q", n.Name())
	}
}
