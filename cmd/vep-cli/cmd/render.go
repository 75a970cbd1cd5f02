package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/nfrund/vep/internal/handlers"
	"github.com/nfrund/vep/internal/rendering"
	"github.com/nfrund/vep/internal/seo"
	"github.com/nfrund/vep/internal/storage"
	"github.com/nfrund/vep/web"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newRenderCmd(opts *options) *cobra.Command {
	var (
		out        string
		skipStatic bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Export the About page to a directory",
		Long: `Renders the About page exactly as the server serves it and writes

  <out>/about/index.html
  <out>/about/metadata.json
  <out>/static/...          (unless --skip-static)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadContent()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			renderer := rendering.NewUniversalRenderer()
			store := storage.NewAferoStore(afero.NewBasePathFs(opts.fs, out))

			doc, err := handlers.RenderAboutDocument(ctx, renderer, c, opts.baseURL)
			if err != nil {
				return fmt.Errorf("render page: %w", err)
			}
			if _, err := store.Save(ctx, "about/index.html", bytes.NewReader(doc)); err != nil {
				return fmt.Errorf("write page: %w", err)
			}

			meta, err := json.MarshalIndent(handlers.NewMetadataResponse(
				seo.AboutMetadata(opts.baseURL),
				seo.NewOrganization(c, opts.baseURL),
			), "", "  ")
			if err != nil {
				return err
			}
			if _, err := store.Save(ctx, "about/metadata.json", bytes.NewReader(meta)); err != nil {
				return fmt.Errorf("write metadata: %w", err)
			}

			files := 2
			if !skipStatic {
				n, err := storage.CopyFS(ctx, store, web.FS, "static", "")
				if err != nil {
					return fmt.Errorf("copy static assets: %w", err)
				}
				files += n
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files to %s\n", files, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	cmd.Flags().BoolVar(&skipStatic, "skip-static", false, "do not copy static assets")
	return cmd
}
