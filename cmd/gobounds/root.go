package main

import (
	"github.com/philipparndt/gobounds/internal/config"
	"github.com/philipparndt/gobounds/version"
	"github.com/spf13/cobra"
)

// options carries the environment configuration after flag overrides
type options struct {
	config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	var precision int
	var format string

	rootCmd := &cobra.Command{
		Use:   "gobounds",
		Short: "Inspect and combine axis-aligned bounding boxes of 3D models",
		Long: `gobounds measures the axis-aligned bounding boxes of STL models and
YAML box documents. It can merge, pad and compare boxes, test points for
containment and follow a file while it is being edited.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("precision") {
				cfg.Precision = precision
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = format
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			opts.Config = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().IntVarP(&precision, "precision", "p", 6, "Decimals in text output (env GOBOUNDS_PRECISION)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", config.FormatText, "Output format: text or yaml (env GOBOUNDS_FORMAT)")

	rootCmd.AddCommand(
		newInfoCmd(opts),
		newBoundsCmd(opts),
		newOverlapCmd(opts),
		newContainsCmd(opts),
		newWatchCmd(opts),
		newPrimitiveCmd(opts),
	)

	return rootCmd
}
