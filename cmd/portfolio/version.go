package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sakif/portfolio/internal/revision"
)

func newVersionCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version and repository revision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "portfolio %s\n", version)

			info, err := revision.Detect(flags.repoDir)
			if err != nil {
				return err
			}
			if info.Hash == "" {
				fmt.Fprintln(out, "revision: not a git repository")
				return nil
			}
			fmt.Fprintf(out, "revision: %s", info.Short())
			if info.Branch != "" {
				fmt.Fprintf(out, " (%s)", info.Branch)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}
