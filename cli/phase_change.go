package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"epconf/model"
)

func newPhaseChangeCmd(opts *options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "phasechange",
		Short: "Write a MaterialProperty:PhaseChange record for an existing material",
		Long: `Reads the phase change inputs from YAML and prints one MaterialProperty:PhaseChange record.
The name is either a material of the library or a full material definition, which is
registered first.

  name: Gypsum Board
  coefficient: 0
  pairs:
    - {temperature: 0, enthalpy: 0}
    - {temperature: 20, enthalpy: 100}
    - {temperature: 100, enthalpy: 500}

The table may also be given flat, as values: [0, 0, 20, 100, 100, 500].`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				return errors.New("an input file is required (--file)")
			}
			e, err := opts.load()
			if err != nil {
				return err
			}
			data, err := readInput(file)
			if err != nil {
				return err
			}
			var in model.PhaseChangeInput
			if err := yaml.Unmarshal(data, &in); err != nil {
				return fmt.Errorf("decode %s: %w", file, err)
			}
			res, err := e.b.PhaseChange(in)
			if err != nil {
				writeDiagnostics(cmd.ErrOrStderr(), res.Diagnostics)
				return err
			}
			return emit(cmd.OutOrStdout(), cmd.ErrOrStderr(), res)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML input file, - for stdin")
	return cmd
}
