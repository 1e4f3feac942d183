package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/qirkit/qirkit/internal/circuit"
	"github.com/qirkit/qirkit/internal/decomposer"
	"github.com/qirkit/qirkit/internal/writer"
)

// NewDecomposeCommand creates the decompose command.
func NewDecomposeCommand(rootOpts *RootOptions) *cobra.Command {
	var target string
	var outPath string
	var noVerify bool

	cmd := &cobra.Command{
		Use:   "decompose <circuit.yaml>",
		Short: "Decompose a circuit onto a two-axis native gate set",
		Long: `Decompose every single-qubit rotation of a circuit into an A-B-A
rotation sequence around two fixed axes, then print the result as cQASM.

Each replacement is verified against the original gate through the
matrix equivalence oracle unless --no-verify is given.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecompose(rootOpts, cmd, args[0], target, outPath, noVerify)
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "ZYZ", "decomposition axes (XYX|XZX|YXY|YZY|ZXZ|ZYZ)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write cQASM to a file instead of stdout")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "skip equivalence verification of replacements")

	return cmd
}

func runDecompose(opts *RootOptions, cmd *cobra.Command, path, target, outPath string, noVerify bool) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	aba, err := decomposer.ByName(target)
	if err != nil {
		formatter.Error("BAD_TARGET", err.Error())
		return NewExitError(ExitCommandError, err.Error())
	}

	c, err := loadCircuit(path)
	if err != nil {
		formatter.Error("LOAD_FAILED", err.Error())
		return WrapExitError(ExitCommandError, "loading circuit", err)
	}
	formatter.VerboseLog("Loaded %d statements over %d qubits", len(c.IR.Statements()), c.QubitRegisterSize)

	if err := c.Decompose(aba, decomposer.ApplyOptions{SkipVerification: noVerify}); err != nil {
		formatter.Error("DECOMPOSE_FAILED", err.Error())
		return WrapExitError(ExitFailure, "decomposing circuit", err)
	}

	text := writer.CircuitToString(c)
	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
			formatter.Error("WRITE_FAILED", err.Error())
			return WrapExitError(ExitCommandError, "writing output", err)
		}
		formatter.VerboseLog("Wrote %s", outPath)
		return nil
	}
	return formatter.Success(text)
}

func loadCircuit(path string) (*circuit.Circuit, error) {
	desc, err := circuit.LoadDescriptionFile(path)
	if err != nil {
		return nil, err
	}
	return desc.Build()
}
