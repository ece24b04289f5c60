package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/sakif/portfolio/internal/preview"
)

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Browse the page in the terminal",
		Long: `Render the page in the terminal and scroll through it. Sections reveal
themselves as they scroll into view, the same way they do in the browser.

Keys: ↑/↓ or j/k scroll, space/b page, t toggles the theme, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(flags)
			if err != nil {
				return err
			}
			err = preview.Run(cmd.Context(), a.composer)
			if errors.Is(err, preview.ErrNotTerminal) {
				return errors.New("preview needs an interactive terminal; try `portfolio export` instead")
			}
			return err
		},
	}
}
