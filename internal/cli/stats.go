package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qirkit/qirkit/internal/ir"
)

// CircuitStats summarizes the contents of a circuit.
type CircuitStats struct {
	Qubits       int            `json:"qubits"`
	Bits         int            `json:"bits"`
	Statements   int            `json:"statements"`
	Gates        int            `json:"gates"`
	Measurements int            `json:"measurements"`
	Resets       int            `json:"resets"`
	GateCounts   map[string]int `json:"gate_counts"`
}

func (s CircuitStats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "qubits: %d\n", s.Qubits)
	fmt.Fprintf(&b, "bits: %d\n", s.Bits)
	fmt.Fprintf(&b, "statements: %d\n", s.Statements)
	fmt.Fprintf(&b, "gates: %d\n", s.Gates)
	fmt.Fprintf(&b, "measurements: %d\n", s.Measurements)
	fmt.Fprintf(&b, "resets: %d\n", s.Resets)
	if len(s.GateCounts) > 0 {
		names := make([]string, 0, len(s.GateCounts))
		for name := range s.GateCounts {
			names = append(names, name)
		}
		sort.Strings(names)
		b.WriteString("gate counts:\n")
		for _, name := range names {
			fmt.Fprintf(&b, "  %s: %d\n", name, s.GateCounts[name])
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// statsVisitor tallies statements by kind and gates by name.
type statsVisitor struct {
	ir.BaseVisitor
	stats *CircuitStats
}

func (v *statsVisitor) VisitGate(g ir.Gate) {
	v.stats.Gates++
	v.stats.GateCounts[g.Name()]++
}

func (v *statsVisitor) VisitMeasure(m *ir.Measure) {
	v.stats.Measurements++
}

func (v *statsVisitor) VisitReset(r *ir.Reset) {
	v.stats.Resets++
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stats <circuit.yaml>",
		Short:         "Show statement and gate counts for a circuit",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(rootOpts, cmd, args[0])
		},
	}
	return cmd
}

func runStats(opts *RootOptions, cmd *cobra.Command, path string) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	c, err := loadCircuit(path)
	if err != nil {
		formatter.Error("LOAD_FAILED", err.Error())
		return WrapExitError(ExitCommandError, "loading circuit", err)
	}

	stats := CircuitStats{
		Qubits:     c.QubitRegisterSize,
		Bits:       c.BitRegisterSize,
		Statements: len(c.IR.Statements()),
		GateCounts: map[string]int{},
	}
	c.IR.Accept(&statsVisitor{stats: &stats})

	return formatter.Success(stats)
}
