package cmd

import (
	"encoding/json"

	"github.com/nfrund/vep/internal/handlers"
	"github.com/nfrund/vep/internal/seo"
	"github.com/spf13/cobra"
)

func newMetadataCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "metadata",
		Short: "Print the page metadata and JSON-LD document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadContent()
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(handlers.NewMetadataResponse(
				seo.AboutMetadata(opts.baseURL),
				seo.NewOrganization(c, opts.baseURL),
			))
		},
	}
}
