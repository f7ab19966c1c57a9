package main

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/sofakit"
	"github.com/aretw0/sofakit/internal/config"
	"github.com/aretw0/sofakit/internal/logging"
	"github.com/spf13/cobra"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
	kit        *sofakit.Kit
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "sofakit",
		Short:        "sofakit builds simulation scene plans from component catalogs",
		Long:         `sofakit loads SOFA-style component catalogs, builds scene trees from declarative documents and hands them to an engine or records them as plans.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (default: ./"+config.DefaultFile+" if present)")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.String("log-format", "", "Log format: text or json")
	flags.StringSlice("ext", nil, "Embedded extension catalogs to load (e.g. gpu,haptics)")
	flags.StringSlice("catalog", nil, "Catalog files to load after the embedded ones")
	flags.String("store", "", "Plan store backend: memory, file or redis")
	flags.String("store-path", "", "Directory of the file plan store")

	rootCmd.AddCommand(
		newKindsCmd(a),
		newDescribeCmd(a),
		newPlanCmd(a),
		newDiffCmd(a),
		newServeCmd(a),
		newMCPCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// flagKeys maps persistent flags to config keys.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"ext":        "catalog.extensions",
	"catalog":    "catalog.files",
	"store":      "store.backend",
	"store-path": "store.path",
}

// setup loads the configuration, installs the logger and loads the catalogs.
func (a *app) setup(cmd *cobra.Command) error {
	overrides := make(map[string]any)
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		switch name {
		case "ext", "catalog":
			v, err := cmd.Flags().GetStringSlice(name)
			if err != nil {
				return err
			}
			overrides[key] = v
		default:
			overrides[key] = f.Value.String()
		}
	}

	cfg, err := config.Load(a.configPath, overrides)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger
	// Scene warnings go through the default logger
	slog.SetDefault(logger)

	kit, err := sofakit.New(
		sofakit.WithLogger(logger),
		sofakit.WithExtensions(cfg.Catalog.Extensions...),
		sofakit.WithCatalogFiles(cfg.Catalog.Files...),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize sofakit: %w", err)
	}
	a.kit = kit
	return nil
}
