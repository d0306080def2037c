package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loan-mgt/ipfs-viewer/internal/infra/resources"
	"github.com/loan-mgt/ipfs-viewer/internal/ui/htmldoc"
)

func viewCmd(opts *pipelineOptions) *cobra.Command {
	var out string
	var save bool

	c := &cobra.Command{
		Use:   "view <locator>",
		Short: "Fetch a payload and render it as a standalone HTML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Data URIs keep the document self-contained: no references
			// into the local filesystem.
			p, err := newPipeline(opts, resources.DataURLAllocator{})
			if err != nil {
				return err
			}

			vo, err := p.viewer.View(cmd.Context(), args[0])
			if err != nil {
				// Fetch failures are the only top-level errors of the core.
				return err
			}

			var doc string
			if vo.RenderErr != nil {
				// Rendering faults become an inline error document, not a
				// process failure.
				doc = htmldoc.ErrorDocument(vo.RenderErr.Error())
			} else {
				doc = htmldoc.Document(vo.Result)
				defer func() { _ = vo.Result.Release() }()
			}

			if save && vo.RenderErr == nil && vo.Result.Download != nil {
				path, serr := p.store.Save(vo.Payload, *vo.Result.Download)
				if serr != nil {
					return serr
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "saved payload to %s\n", path)
			}

			if out == "" || out == "-" {
				fmt.Fprint(cmd.OutOrStdout(), doc)
				return nil
			}
			return os.WriteFile(out, []byte(doc), 0o644)
		},
	}

	c.Flags().StringVarP(&out, "out", "o", "", "write the document to a file instead of stdout")
	c.Flags().BoolVar(&save, "save", false, "also save the raw payload to the download directory")
	return c
}
