package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlify/internal/errors"
	"github.com/vango-dev/htmlify/pkg/markup"
	"github.com/vango-dev/htmlify/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Start the live preview server",
		Long: `Start a preview server for a document.

Open the printed address in a browser. PUT a new document to /document
and every open page updates in place.

Examples:
  htmlify serve page.yaml
  htmlify serve --port=8080
  curl -X PUT --data-binary @page.yaml localhost:3000/document`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			var doc markup.Node
			if len(args) == 1 {
				if doc, err = readDocument(nil, args[0], cfg.Render.Sanitize); err != nil {
					return err
				}
			}

			srv := server.New(&server.ServerConfig{
				Address:  cfg.Address(),
				Title:    cfg.Server.Title,
				Format:   cfg.RendererConfig().Format,
				Sanitize: cfg.Render.Sanitize,
			}, doc)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			success(cmd.OutOrStdout(), "Serving on http://%s", cfg.Address())
			if err := srv.Run(ctx); err != nil {
				return errors.New("H500").Wrap(err)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from htmlify.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from htmlify.json)")

	return cmd
}
