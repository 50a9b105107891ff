package cli

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"epconf/registry"
)

func newMaterialsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "materials",
		Short: "List the materials of the registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.load()
			if err != nil {
				return err
			}
			return renderMaterials(cmd.OutOrStdout(), e.store.List())
		},
	}
}

func renderMaterials(w io.Writer, materials []registry.Material) error {
	if len(materials) == 0 {
		_, err := fmt.Fprintln(w, "No materials loaded.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Options(
		tablewriter.WithHeader([]string{"Name", "Object", "Category"}),
		tablewriter.WithRendition(
			tw.Rendition{
				Borders: tw.Border{
					Left:   tw.State(1),
					Top:    tw.State(1),
					Right:  tw.State(1),
					Bottom: tw.State(1),
				},
			},
		),
		tablewriter.WithAlignment(tw.MakeAlign(3, tw.AlignLeft)),
	)
	for _, m := range materials {
		if err := table.Append([]string{m.Name, m.Keyword, string(m.Category)}); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}
