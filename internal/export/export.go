// Package export writes the page as a self-contained static site: the
// rendered document, the embedded stylesheet and script, and the asset
// directory, laid out the way the server serves them.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sakif/portfolio/internal/page"
	"github.com/sakif/portfolio/internal/view"
	"github.com/sakif/portfolio/web"
)

// Result summarises an export.
type Result struct {
	Files int
	Bytes int64
}

// Exporter writes static sites.
type Exporter struct {
	composer  *page.Composer
	assetsDir string
	logger    *slog.Logger
}

// New returns an exporter for c. assetsDir is copied to assets/ when it
// exists.
func New(c *page.Composer, assetsDir string, logger *slog.Logger) *Exporter {
	return &Exporter{composer: c, assetsDir: assetsDir, logger: logger}
}

// Write renders the site into outDir, creating it if needed. Existing files
// with the same names are overwritten; nothing else is removed.
func (e *Exporter) Write(outDir string) (Result, error) {
	var res Result

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return res, fmt.Errorf("export: creating %s: %w", outDir, err)
	}

	// The exported document is the one a first visit sees: default theme,
	// nothing revealed yet.
	var buf bytes.Buffer
	if err := e.composer.Render(&buf, view.Visibility{}); err != nil {
		return res, fmt.Errorf("export: %w", err)
	}
	if err := writeFile(filepath.Join(outDir, "index.html"), &buf, &res); err != nil {
		return res, err
	}

	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		return res, fmt.Errorf("export: opening embedded static files: %w", err)
	}
	if err := copyTree(static, filepath.Join(outDir, "static"), &res); err != nil {
		return res, err
	}

	if e.assetsDir != "" {
		info, err := os.Stat(e.assetsDir)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			e.logger.Warn("assets directory missing, images will show placeholders",
				slog.String("dir", e.assetsDir),
			)
		case err != nil:
			return res, fmt.Errorf("export: reading assets directory: %w", err)
		case !info.IsDir():
			return res, fmt.Errorf("export: assets path %s is not a directory", e.assetsDir)
		default:
			if err := copyTree(os.DirFS(e.assetsDir), filepath.Join(outDir, "assets"), &res); err != nil {
				return res, err
			}
		}
	}

	e.logger.Info("site exported",
		slog.String("dir", outDir),
		slog.Int("files", res.Files),
		slog.Int64("bytes", res.Bytes),
	)
	return res, nil
}

func copyTree(src fs.FS, dst string, res *Result) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("export: walking %s: %w", path, err)
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("export: creating %s: %w", target, err)
			}
			return nil
		}

		f, err := src.Open(path)
		if err != nil {
			return fmt.Errorf("export: opening %s: %w", path, err)
		}
		defer f.Close()
		return writeFile(target, f, res)
	})
}

func writeFile(path string, r io.Reader, res *Result) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: creating %s: %w", path, err)
	}
	n, err := io.Copy(out, r)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("export: writing %s: %w", path, err)
	}
	res.Files++
	res.Bytes += n
	return nil
}
