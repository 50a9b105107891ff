// Package cli is the command line front end of the record builders.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"epconf/builder"
	"epconf/config"
	"epconf/diagnostic"
	"epconf/registry"
)

// ErrRejected is returned when a build produced diagnostics instead of text.
var ErrRejected = errors.New("inputs rejected")

type options struct {
	configFile string
	materials  string
}

func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "epconf",
		Short: "Build EnergyPlus heat balance and phase change material records",
		Long: `epconf validates simulation parameters and writes them as EnergyPlus input records:
the surface convection and conduction finite difference heat balance settings, and
MaterialProperty:PhaseChange temperature-enthalpy tables for existing materials.

Rejected inputs are reported one per line on stderr, naming the field and the legal values.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := cmd.Help(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error displaying help: %v\n", err)
			}
		},
	}
	root.PersistentFlags().StringVar(&opts.configFile, "config", "conf/epconf.ini", "ini configuration file")
	root.PersistentFlags().StringVar(&opts.materials, "materials", "", "IDF file whose materials seed the registry (overrides [registry] seed)")

	root.AddCommand(
		newHeatBalanceCmd(opts),
		newPhaseChangeCmd(opts),
		newMaterialsCmd(opts),
		newServeCmd(opts),
	)
	return root
}

// env is what every command needs: the configuration, the seeded registry
// and a builder bound to both.
type env struct {
	cfg   config.Config
	store *registry.Store
	b     *builder.Builder
}

func (o *options) load() (*env, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.SetupLogging(); err != nil {
		return nil, err
	}

	store := registry.NewStore()
	seed := cfg.MaterialSeed
	if o.materials != "" {
		seed = o.materials
	}
	if seed != "" {
		if err := loadMaterials(store, seed); err != nil {
			return nil, err
		}
	}

	var bopts []builder.Option
	if cfg.Compat.Enabled {
		bopts = append(bopts, builder.WithGate(builder.VersionGate{Companions: []builder.Companion{
			{Name: "honeybee", Required: cfg.Compat.HoneybeeRequired, Installed: cfg.Compat.HoneybeeInstalled},
			{Name: "ladybug", Required: cfg.Compat.LadybugRequired, Installed: cfg.Compat.LadybugInstalled},
		}}))
	}
	return &env{cfg: cfg, store: store, b: builder.New(store, bopts...)}, nil
}

func loadMaterials(store *registry.Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open material library: %w", err)
	}
	defer f.Close()
	n, err := store.Load(f)
	if err != nil {
		return fmt.Errorf("load material library %s: %w", path, err)
	}
	log.WithFields(log.Fields{"path": path, "materials": n}).Info("material library loaded")
	return nil
}

// emit writes the built text, or the diagnostics when there are any.
func emit(out, errOut io.Writer, res builder.Result) error {
	if !res.OK() {
		writeDiagnostics(errOut, res.Diagnostics)
		return ErrRejected
	}
	_, err := io.WriteString(out, res.Text)
	return err
}

func writeDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	for _, d := range diags {
		fmt.Fprintf(w, "%s: %s\n", d.Kind, d.Message)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}
