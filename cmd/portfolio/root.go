package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sakif/portfolio/internal/config"
	"github.com/sakif/portfolio/internal/content"
	"github.com/sakif/portfolio/internal/page"
	"github.com/sakif/portfolio/internal/revision"
)

type rootFlags struct {
	envFile  string
	siteFile string
	repoDir  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "portfolio",
		Short:         "Personal portfolio site: serve, export or preview it",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "Env file loaded before reading the environment (ignored if missing)")
	cmd.PersistentFlags().StringVar(&flags.siteFile, "site", "", "Site config file, YAML or TOML (overrides SITE_CONFIG)")
	cmd.PersistentFlags().StringVar(&flags.repoDir, "repo", ".", "Directory whose git revision is shown in the footer")

	cmd.AddCommand(
		newServeCmd(flags),
		newExportCmd(flags),
		newPreviewCmd(flags),
		newHashPasswordCmd(),
		newVersionCmd(flags),
	)
	return cmd
}

// app is what every page-producing subcommand needs.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	composer *page.Composer
	revision string
}

// loadApp reads configuration, validates the content catalog and builds
// the composer. Content problems stop the command here, before anything
// is served or written.
func loadApp(flags *rootFlags) (*app, error) {
	if flags.siteFile != "" {
		os.Setenv("SITE_CONFIG", flags.siteFile)
	}

	cfg, err := config.Load(flags.envFile)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.LogLevel)

	cat, err := content.Load(cfg.Site.Projects.Dataset)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}

	rev := ""
	if cfg.Site.ShowRevision {
		info, err := revision.Detect(flags.repoDir)
		if err != nil {
			logger.Warn("reading git revision", slog.String("error", err.Error()))
		}
		rev = info.Short()
	}

	composer, err := page.NewComposer(cat, page.Options{
		Title:         cfg.Site.Title,
		MountProjects: cfg.Site.Projects.Mount,
		Revision:      rev,
	})
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, composer: composer, revision: rev}, nil
}

// newLogger creates the process logger.
//
// slog.NewTextHandler outputs human-readable key=value lines on stderr, so
// stdout stays clean for command output such as hash-password.
//
// Log levels (from least to most severe): Debug → Info → Warn → Error
func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
