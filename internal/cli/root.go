package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/loan-mgt/ipfs-viewer/internal/buildinfo"
	"github.com/loan-mgt/ipfs-viewer/internal/infra/logger"
	"github.com/loan-mgt/ipfs-viewer/internal/infra/resources"
	"github.com/loan-mgt/ipfs-viewer/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &pipelineOptions{}
	var debug bool

	cmd := &cobra.Command{
		Use:          "ipfs-viewer",
		Short:        "ipfs-viewer — view content-addressed payloads",
		Version:      buildinfo.String(),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cleanup, _ := logger.Setup(logger.Config{Debug: debug})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			// Media handles become temp files the terminal user can open;
			// the session releases them on supersession and teardown.
			p, err := newPipeline(opts, resources.NewTempFileAllocator(""))
			if err != nil {
				return err
			}

			deps := tui.Deps{
				Viewer: p.viewer,
				Store:  p.store,
				Logger: logger.L(),
				Debug:  debug,
			}
			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to the cache-dir log file")
	opts.register(cmd)

	cmd.AddCommand(viewCmd(opts))
	cmd.AddCommand(inspectCmd(opts))
	return cmd
}
