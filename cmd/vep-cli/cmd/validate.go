package cmd

import (
	"errors"
	"fmt"

	"github.com/nfrund/vep/internal/content"
	"github.com/spf13/cobra"
)

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a content file",
		Long:  "Checks a content file (the argument, or --content) and prints the resulting outline.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.contentPath = args[0]
			}

			c, err := opts.loadContent()
			if err != nil {
				if errors.Is(err, content.ErrInvalidContent) {
					return fmt.Errorf("content is invalid: %w", err)
				}
				return err
			}

			out := cmd.OutOrStdout()
			source := opts.contentPath
			if source == "" {
				source = "built-in content"
			}
			fmt.Fprintf(out, "%s is valid\n", source)
			for _, s := range content.Outline(c) {
				state := "shown"
				if !s.Display {
					state = "hidden"
				}
				fmt.Fprintf(out, "  %s (%s, %d items)\n", s.Title, state, len(s.Items))
			}
			fmt.Fprintf(out, "  web profiles: %d\n", len(content.WebLinks(c.Social)))
			return nil
		},
	}
}
