package cli

import (
	"context"
	"fmt"
	"log/slog"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/grain"
)

var (
	version = grain.Version
	commit  = "unknown" // set with -ldflags "-X github.com/gogpu/grain/internal/cli.commit=..."
)

// Execute runs the grain CLI until ctx is cancelled or the command
// finishes.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "grain",
		Short:        "grain draws textured, hand-drawn looking compositions",
		Long:         `grain renders generative sketches built from noise-displaced paths, tapered strokes, grain speckle and hatching.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			grain.SetLogger(slog.New(logger))
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("grain %s\ncommit: %s\n", version, commit))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newNoiseCmd())
	root.AddCommand(newConfigCmd())
	return root
}
