package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qirkit/qirkit/internal/circuit"
)

// ValidationResult holds validation results for a circuit description.
type ValidationResult struct {
	Valid      bool   `json:"valid"`
	Statements int    `json:"statements"`
	Qubits     int    `json:"qubits"`
	Bits       int    `json:"bits"`
	Error      string `json:"error,omitempty"`
}

func (r ValidationResult) String() string {
	if !r.Valid {
		return fmt.Sprintf("invalid: %s", r.Error)
	}
	return fmt.Sprintf("valid: %d statements over %d qubits, %d bits", r.Statements, r.Qubits, r.Bits)
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <circuit.yaml>",
		Short: "Validate a circuit description without decomposing it",
		Long: `Validate a YAML circuit description: resolve every gate against the
catalog, check register bounds, and surface construction errors, without
running any pass.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, cmd, args[0])
		},
	}
	return cmd
}

func runValidate(opts *RootOptions, cmd *cobra.Command, path string) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	desc, err := circuit.LoadDescriptionFile(path)
	if err != nil {
		formatter.Error("LOAD_FAILED", err.Error())
		return WrapExitError(ExitCommandError, "loading circuit", err)
	}

	c, err := desc.Build()
	if err != nil {
		result := ValidationResult{Valid: false, Error: err.Error()}
		formatter.Success(result)
		return NewExitError(ExitFailure, "circuit description is invalid")
	}

	return formatter.Success(ValidationResult{
		Valid:      true,
		Statements: len(c.IR.Statements()),
		Qubits:     c.QubitRegisterSize,
		Bits:       c.BitRegisterSize,
	})
}
