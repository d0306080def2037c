package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/loan-mgt/ipfs-viewer/internal/domain"
	"github.com/loan-mgt/ipfs-viewer/internal/infra/gateway"
	"github.com/loan-mgt/ipfs-viewer/internal/infra/sniff"
	"github.com/loan-mgt/ipfs-viewer/internal/infra/store"
	"github.com/loan-mgt/ipfs-viewer/internal/infra/typetable"
	"github.com/loan-mgt/ipfs-viewer/internal/ports"
	"github.com/loan-mgt/ipfs-viewer/internal/usecase"
	"github.com/loan-mgt/ipfs-viewer/internal/usecase/render"
)

// pipelineOptions are the persistent flags shared by every command.
type pipelineOptions struct {
	gatewayURL  string
	timeout     time.Duration
	typesPath   string
	maxBytes    int64
	noRedirects bool
	downloadDir string
}

func (o *pipelineOptions) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&o.gatewayURL, "gateway", gateway.DefaultGateway, "IPFS HTTP gateway base URL")
	pf.DurationVar(&o.timeout, "timeout", 0, "total fetch timeout (0 uses the client default)")
	pf.StringVar(&o.typesPath, "types", "", "YAML file extending the MIME type tables")
	pf.Int64Var(&o.maxBytes, "max-bytes", 0, "payload read cap in bytes (0 uses the default)")
	pf.BoolVar(&o.noRedirects, "no-redirects", false, "refuse gateway redirects")
	pf.StringVar(&o.downloadDir, "download-dir", "", "directory for saved payloads (default ./downloads)")
}

// pipeline wires the infra adapters into the view usecase.
type pipeline struct {
	viewer *usecase.Viewer
	table  domain.TypeTable
	store  ports.DownloadStore
}

func newPipeline(opts *pipelineOptions, alloc ports.ResourceAllocator) (*pipeline, error) {
	table := domain.DefaultTypeTable()
	if opts.typesPath != "" {
		var err error
		table, err = typetable.Load(opts.typesPath)
		if err != nil {
			return nil, err
		}
	}

	clientCfg := gateway.DefaultClientConfig()
	if opts.timeout > 0 {
		clientCfg.Timeout = opts.timeout
	}
	if opts.noRedirects {
		clientCfg.Redirects = gateway.RedirectRefuse
	}

	var srcOpts []gateway.Option
	if opts.maxBytes > 0 {
		srcOpts = append(srcOpts, gateway.WithMaxPayloadBytes(opts.maxBytes))
	}
	source := gateway.NewSource(gateway.NewClient(clientCfg), opts.gatewayURL, srcOpts...)

	resolver := usecase.NewTypeResolver(sniff.NewDetector())
	dispatcher := render.NewDispatcher(table, alloc)

	return &pipeline{
		viewer: usecase.NewViewer(source, resolver, dispatcher),
		table:  table,
		store:  store.NewDownloadStore(opts.downloadDir),
	}, nil
}
