package circuit

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/qirkit/qirkit/internal/gates"
	"github.com/qirkit/qirkit/internal/ir"
)

// Description is a declarative circuit: register sizes plus an ordered
// statement list resolved against the gate catalog.
type Description struct {
	Qubits        int                    `yaml:"qubits"`
	Bits          int                    `yaml:"bits"`
	QubitRegister string                 `yaml:"qubit_register,omitempty"`
	BitRegister   string                 `yaml:"bit_register,omitempty"`
	Statements    []StatementDescription `yaml:"statements"`
}

// StatementDescription describes one statement. Exactly one of Gate,
// Measure, Reset, or Comment must be set.
type StatementDescription struct {
	Gate     string       `yaml:"gate,omitempty"`
	Operands []int        `yaml:"operands,omitempty"`
	Params   []Param      `yaml:"params,omitempty"`
	Measure  *MeasureDesc `yaml:"measure,omitempty"`
	Reset    *ResetDesc   `yaml:"reset,omitempty"`
	Comment  *string      `yaml:"comment,omitempty"`
}

// MeasureDesc binds a qubit to a classical bit.
type MeasureDesc struct {
	Qubit int `yaml:"qubit"`
	Bit   int `yaml:"bit"`
}

// ResetDesc names the qubit to reset.
type ResetDesc struct {
	Qubit int `yaml:"qubit"`
}

// Param is a gate parameter: a YAML integer becomes an Int expression, a
// YAML float a Float expression. Anything else is rejected, so a parameter
// list cannot silently carry strings or nulls.
type Param struct {
	expr ir.Expression
}

// UnmarshalYAML implements yaml.Unmarshaler for Param.
func (p *Param) UnmarshalYAML(node *yaml.Node) error {
	switch node.Tag {
	case "!!int":
		var v int64
		if err := node.Decode(&v); err != nil {
			return err
		}
		p.expr = ir.Int{Value: v}
	case "!!float":
		var v float64
		if err := node.Decode(&v); err != nil {
			return err
		}
		p.expr = ir.Float{Value: v}
	default:
		return fmt.Errorf("line %d: gate parameter must be a number, received %s", node.Line, node.Tag)
	}
	return nil
}

// LoadDescription decodes a YAML circuit description. Unknown fields are
// rejected.
func LoadDescription(r io.Reader) (*Description, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var d Description
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("decoding circuit description: %w", err)
	}
	return &d, nil
}

// LoadDescriptionFile reads and decodes a YAML circuit description file.
func LoadDescriptionFile(path string) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening circuit description: %w", err)
	}
	defer f.Close()
	return LoadDescription(f)
}

// Build resolves a description into a Circuit, looking gates up in the
// default catalog and bounds-checking every register reference.
func (d *Description) Build() (*Circuit, error) {
	if d.Qubits < 0 || d.Bits < 0 {
		return nil, fmt.Errorf("register sizes cannot be negative (qubits=%d, bits=%d)", d.Qubits, d.Bits)
	}
	c := New(d.Qubits, d.Bits)
	if d.QubitRegister != "" {
		c.QubitRegisterName = d.QubitRegister
	}
	if d.BitRegister != "" {
		c.BitRegisterName = d.BitRegister
	}

	for i, sd := range d.Statements {
		if err := d.buildStatement(c, sd); err != nil {
			return nil, fmt.Errorf("statement %d: %w", i, err)
		}
	}
	return c, nil
}

func (d *Description) buildStatement(c *Circuit, sd StatementDescription) error {
	set := 0
	if sd.Gate != "" {
		set++
	}
	if sd.Measure != nil {
		set++
	}
	if sd.Reset != nil {
		set++
	}
	if sd.Comment != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("exactly one of gate, measure, reset, or comment must be set")
	}

	switch {
	case sd.Gate != "":
		gen, ok := gates.ByName(sd.Gate)
		if !ok {
			return fmt.Errorf("unknown gate %q", sd.Gate)
		}
		args := make([]ir.Expression, 0, len(sd.Operands)+len(sd.Params))
		for _, idx := range sd.Operands {
			q := ir.Qubit{Index: idx}
			if err := c.checkQubit(q); err != nil {
				return err
			}
			args = append(args, q)
		}
		for _, p := range sd.Params {
			args = append(args, p.expr)
		}
		st, err := gen.Build(args...)
		if err != nil {
			return err
		}
		g, ok := st.(ir.Gate)
		if !ok {
			return fmt.Errorf("%q does not name a gate", sd.Gate)
		}
		c.IR.AddGate(g)

	case sd.Measure != nil:
		q := ir.Qubit{Index: sd.Measure.Qubit}
		b := ir.Bit{Index: sd.Measure.Bit}
		if err := c.checkQubit(q); err != nil {
			return err
		}
		if err := c.checkBit(b); err != nil {
			return err
		}
		c.IR.AddMeasure(gates.Measure(q, b))

	case sd.Reset != nil:
		q := ir.Qubit{Index: sd.Reset.Qubit}
		if err := c.checkQubit(q); err != nil {
			return err
		}
		c.IR.AddReset(gates.Reset(q))

	default:
		comment, err := ir.NewComment(*sd.Comment)
		if err != nil {
			return err
		}
		c.IR.AddComment(comment)
	}
	return nil
}
