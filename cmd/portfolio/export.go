package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sakif/portfolio/internal/export"
)

type exportOptions struct {
	outDir string
}

func newExportCmd(flags *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the site as static files",
		Long: `Write index.html, the stylesheet, the browser script and the asset
directory into --out, ready for any static host.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "dist", "Output directory")
	return cmd
}

func runExport(cmd *cobra.Command, flags *rootFlags, opts *exportOptions) error {
	a, err := loadApp(flags)
	if err != nil {
		return err
	}

	res, err := export.New(a.composer, a.cfg.AssetsDir, a.logger).Write(opts.outDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d files (%d bytes) to %s\n", res.Files, res.Bytes, opts.outDir)
	return nil
}
