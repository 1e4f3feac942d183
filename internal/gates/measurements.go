package gates

import "github.com/qirkit/qirkit/internal/ir"

// Non-gate generators, Build attached in init for the same reason as the
// multi-qubit set.
var (
	GeneratorMeasureZ = &ir.Generator{Name: "measure_z"}
	GeneratorMeasure  = &ir.Generator{Name: "measure"}
	GeneratorReset    = &ir.Generator{Name: "reset"}
)

func init() {
	GeneratorMeasureZ.Build = func(args ...ir.Expression) (ir.Statement, error) {
		q, b, err := qubitBit("measure_z", args)
		if err != nil {
			return nil, err
		}
		return MeasureZ(q, b), nil
	}
	GeneratorMeasure.Build = func(args ...ir.Expression) (ir.Statement, error) {
		q, b, err := qubitBit("measure", args)
		if err != nil {
			return nil, err
		}
		return Measure(q, b), nil
	}
	GeneratorReset.Build = func(args ...ir.Expression) (ir.Statement, error) {
		q, err := oneQubit("reset", args)
		if err != nil {
			return nil, err
		}
		return Reset(q), nil
	}
}

// MeasureZ measures q in the Z basis into b, under its explicit basis name.
func MeasureZ(q ir.Qubit, b ir.Bit) *ir.Measure {
	m := ir.NewMeasure(q, b, ir.ZAxis)
	m.SetGenerator(GeneratorMeasureZ, q, b)
	return m
}

// Measure measures q in the Z basis into b.
func Measure(q ir.Qubit, b ir.Bit) *ir.Measure {
	m := ir.NewMeasure(q, b, ir.ZAxis)
	m.SetGenerator(GeneratorMeasure, q, b)
	return m
}

// Reset resets q to the |0> state.
func Reset(q ir.Qubit) *ir.Reset {
	r := ir.NewReset(q)
	r.SetGenerator(GeneratorReset, q)
	return r
}
