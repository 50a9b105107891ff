package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"epconf/model"
)

func newHeatBalanceCmd(opts *options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "heatbalance",
		Short: "Write the surface convection and heat balance settings records",
		Long: `Reads a YAML map of heat balance inputs and prints the SurfaceConvectionAlgorithm,
HeatBalanceAlgorithm and HeatBalanceSettings:ConductionFiniteDifference records.
Unset inputs take their defaults, e.g.

  surfConvAlgoInside_: TARP
  relaxationFactor_: 0.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.load()
			if err != nil {
				return err
			}
			data, err := readInput(file)
			if err != nil {
				return err
			}
			raw := model.RawFields{}
			if err := yaml.Unmarshal(data, &raw); err != nil {
				return fmt.Errorf("decode %s: %w", file, err)
			}
			res, err := e.b.HeatBalance(raw)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), cmd.ErrOrStderr(), res)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML input file, - for stdin; all defaults when omitted")
	return cmd
}
