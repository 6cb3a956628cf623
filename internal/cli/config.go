package cli

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/grain/config"
)

func newConfigCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "config <file>",
		Short: "Write the effective configuration to a YAML or TOML file",
		Long: `Config writes the embedded defaults, optionally layered with --from,
to the given file. The extension (.yaml, .yml or .toml) picks the format,
so the command also converts between the two.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(from)
			if err != nil {
				return err
			}
			if err := cfg.Write(args[0]); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("Wrote config", "file", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "configuration file to start from")
	return cmd
}
