// Package main is the entry point for the portfolio binary.
//
// The main package stays minimal: it builds the cobra command tree and
// exits non-zero on error. Each subcommand reads configuration, builds the
// page and hands off to a package under internal/.
//
//	portfolio serve           HTTP server (page, assets, optional admin)
//	portfolio export --out d  static copy of the site
//	portfolio preview         interactive terminal preview
//	portfolio hash-password   bcrypt hash for ADMIN_PASSWORD_HASH
//	portfolio version         build and repository revision
package main

import (
	"fmt"
	"os"
)

// version is set at build time:
//
//	go build -ldflags "-X main.version=v1.2.0" ./cmd/portfolio
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
