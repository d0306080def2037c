package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/loan-mgt/ipfs-viewer/internal/infra/resources"
	"github.com/loan-mgt/ipfs-viewer/internal/usecase"
)

type inspectReport struct {
	Locator   string `json:"locator"`
	Mime      string `json:"mime"`
	Category  string `json:"category"`
	Size      int64  `json:"size"`
	SizeLabel string `json:"size_label"`
	Extension string `json:"extension,omitempty"`
	Truncated bool   `json:"truncated,omitempty"`
}

type inspectFailure struct {
	Locator string `json:"locator"`
	Stage   string `json:"stage"`
	Error   string `json:"error"`
}

func inspectCmd(opts *pipelineOptions) *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:   "inspect <locator>",
		Short: "Fetch a payload and report its resolved type and category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPipeline(opts, resources.DataURLAllocator{})
			if err != nil {
				return err
			}

			vo, err := p.viewer.View(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return writeInspect(cmd.OutOrStdout(), asJSON, args[0], vo)
		},
	}

	c.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return c
}

func writeInspect(w io.Writer, asJSON bool, locator string, vo usecase.ViewOutput) error {
	// Failures below the dispatcher boundary belong in the report, like the
	// inline error document of the view command, not in the exit status.
	if vo.RenderErr != nil {
		if asJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(inspectFailure{
				Locator: locator,
				Stage:   string(vo.RenderErr.Stage),
				Error:   vo.RenderErr.Message,
			})
		}
		fmt.Fprintf(w, "error:    %s\n", vo.RenderErr.Error())
		return nil
	}
	defer func() { _ = vo.Result.Release() }()

	report := inspectReport{
		Locator:   locator,
		Mime:      vo.Result.Mime,
		Category:  string(vo.Result.Category),
		Size:      vo.Result.Size,
		SizeLabel: vo.Result.SizeLabel,
		Truncated: vo.Truncated,
	}
	if vo.Result.Download != nil {
		report.Extension = vo.Result.Download.Extension
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Fprintf(w, "mime:     %s\n", report.Mime)
	fmt.Fprintf(w, "category: %s\n", report.Category)
	fmt.Fprintf(w, "size:     %s (%d bytes)\n", report.SizeLabel, report.Size)
	if report.Extension != "" {
		fmt.Fprintf(w, "ext:      %s\n", report.Extension)
	}
	if report.Truncated {
		fmt.Fprintln(w, "note:     payload truncated at the fetch limit")
	}
	return nil
}
