package cli

import (
	"github.com/spf13/cobra"
	"textsteg/internal/logging"
	"textsteg/internal/server"
	"textsteg/pkg/config"
)

type serveOpts struct {
	port            string
	pngCompression  string
	strict          bool
	maxRequestBytes int64
}

func serveAppCommand(a *app) *cobra.Command {
	opts := serveOpts{}

	command := &cobra.Command{
		Use:     "serve",
		Short:   "Serve an API to hide and read text in images over the web",
		Example: "textsteg serve --port 8888",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.SetOutput(cmd.OutOrStdout())

			serverOpts, err := opts.toServerOptions(cmd, a.fileConfig)
			if err != nil {
				return err
			}
			return server.StartServer(cmd.Context(), serverOpts)
		},
	}

	command.Flags().StringVar(&opts.port, "port", config.DefaultPort, "Port on which to start the server")
	// Lower compression results in huge images, best keeps bandwidth costs down
	command.Flags().StringVar(&opts.pngCompression, "png-compression", "best", "Compression for encoded images. Options are default, none, fast, best")
	command.Flags().BoolVar(&opts.strict, "strict", true, "Reject text with characters that cannot be recovered exactly")
	command.Flags().Int64Var(&opts.maxRequestBytes, "max-request-bytes", config.DefaultMaxRequestBytes, "Largest request body accepted")

	return command
}

func (o serveOpts) toServerOptions(cmd *cobra.Command, fileConfig config.FileConfig) (server.Options, error) {
	encodeConfig, err := resolveEncodeConfig(cmd, o.pngCompression, o.strict, fileConfig)
	if err != nil {
		return server.Options{}, err
	}

	serverOpts := server.Options{
		Port:            fileConfig.GetPort(),
		EncodeConfig:    encodeConfig,
		MaxRequestBytes: fileConfig.GetMaxRequestBytes(),
	}
	if cmd.Flags().Changed("port") {
		serverOpts.Port = o.port
	}
	if cmd.Flags().Changed("max-request-bytes") {
		serverOpts.MaxRequestBytes = o.maxRequestBytes
	}
	return serverOpts, nil
}
