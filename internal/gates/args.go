package gates

import (
	"fmt"

	"github.com/qirkit/qirkit/internal/ir"
)

// Argument unpacking helpers for Generator.Build implementations. Each
// enforces the declared parameter list of its constructor.

func argCount(name string, args []ir.Expression, want int) error {
	if len(args) != want {
		return fmt.Errorf("%s: expected %d arguments, received %d", name, want, len(args))
	}
	return nil
}

func asQubit(name string, arg ir.Expression, position int) (ir.Qubit, error) {
	q, ok := arg.(ir.Qubit)
	if !ok {
		return ir.Qubit{}, fmt.Errorf("%s: argument %d must be a Qubit, received %T", name, position, arg)
	}
	return q, nil
}

func asBit(name string, arg ir.Expression, position int) (ir.Bit, error) {
	b, ok := arg.(ir.Bit)
	if !ok {
		return ir.Bit{}, fmt.Errorf("%s: argument %d must be a Bit, received %T", name, position, arg)
	}
	return b, nil
}

func asFloat(name string, arg ir.Expression, position int) (ir.Float, error) {
	f, ok := arg.(ir.Float)
	if !ok {
		return ir.Float{}, fmt.Errorf("%s: argument %d must be a Float, received %T", name, position, arg)
	}
	return f, nil
}

func asInt(name string, arg ir.Expression, position int) (ir.Int, error) {
	i, ok := arg.(ir.Int)
	if !ok {
		return ir.Int{}, fmt.Errorf("%s: argument %d must be an Int, received %T", name, position, arg)
	}
	return i, nil
}

func oneQubit(name string, args []ir.Expression) (ir.Qubit, error) {
	if err := argCount(name, args, 1); err != nil {
		return ir.Qubit{}, err
	}
	return asQubit(name, args[0], 0)
}

func qubitTheta(name string, args []ir.Expression) (ir.Qubit, ir.Float, error) {
	if err := argCount(name, args, 2); err != nil {
		return ir.Qubit{}, ir.Float{}, err
	}
	q, err := asQubit(name, args[0], 0)
	if err != nil {
		return ir.Qubit{}, ir.Float{}, err
	}
	theta, err := asFloat(name, args[1], 1)
	if err != nil {
		return ir.Qubit{}, ir.Float{}, err
	}
	return q, theta, nil
}

func twoQubits(name string, args []ir.Expression) (ir.Qubit, ir.Qubit, error) {
	if err := argCount(name, args, 2); err != nil {
		return ir.Qubit{}, ir.Qubit{}, err
	}
	a, err := asQubit(name, args[0], 0)
	if err != nil {
		return ir.Qubit{}, ir.Qubit{}, err
	}
	b, err := asQubit(name, args[1], 1)
	if err != nil {
		return ir.Qubit{}, ir.Qubit{}, err
	}
	return a, b, nil
}

func threeQubits(name string, args []ir.Expression) (ir.Qubit, ir.Qubit, ir.Qubit, error) {
	if err := argCount(name, args, 3); err != nil {
		return ir.Qubit{}, ir.Qubit{}, ir.Qubit{}, err
	}
	a, err := asQubit(name, args[0], 0)
	if err != nil {
		return ir.Qubit{}, ir.Qubit{}, ir.Qubit{}, err
	}
	b, err := asQubit(name, args[1], 1)
	if err != nil {
		return ir.Qubit{}, ir.Qubit{}, ir.Qubit{}, err
	}
	c, err := asQubit(name, args[2], 2)
	if err != nil {
		return ir.Qubit{}, ir.Qubit{}, ir.Qubit{}, err
	}
	return a, b, c, nil
}

func qubitBit(name string, args []ir.Expression) (ir.Qubit, ir.Bit, error) {
	if err := argCount(name, args, 2); err != nil {
		return ir.Qubit{}, ir.Bit{}, err
	}
	q, err := asQubit(name, args[0], 0)
	if err != nil {
		return ir.Qubit{}, ir.Bit{}, err
	}
	b, err := asBit(name, args[1], 1)
	if err != nil {
		return ir.Qubit{}, ir.Bit{}, err
	}
	return q, b, nil
}
