package main

import (
	"github.com/spf13/cobra"

	"github.com/sakif/portfolio/internal/server"
)

type serveOptions struct {
	port int
}

func newServeCmd(flags *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		Long: `Serve the portfolio page, its static files and the asset directory.

With ANALYTICS_ENABLED=true page views are recorded in SQLite (DB_PATH).
Setting JWT_SECRET as well turns on the admin dashboard under /admin.
Admin cookies are marked Secure; set COOKIE_SECURE=false to serve them over
plain HTTP on a host other than localhost.
The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags, opts)
		},
	}

	cmd.Flags().IntVar(&opts.port, "port", 0, "Port to listen on (overrides PORT)")
	return cmd
}

func runServe(cmd *cobra.Command, flags *rootFlags, opts *serveOptions) error {
	a, err := loadApp(flags)
	if err != nil {
		return err
	}
	if opts.port > 0 {
		a.cfg.Port = opts.port
	}

	srv, err := server.New(a.cfg, a.composer, a.revision, a.logger)
	if err != nil {
		return err
	}

	// Start() blocks until the server is shut down (Ctrl+C, SIGTERM or ctx)
	return srv.Start(cmd.Context())
}
