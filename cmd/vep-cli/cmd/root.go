package cmd

import (
	"os"

	"github.com/nfrund/vep/internal/content"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const defaultBaseURL = "localhost:8080"

// options are the persistent flags shared by every command.
type options struct {
	contentPath string
	baseURL     string
	fs          afero.Fs
}

// loadContent returns the content file named by --content, or the built-in content.
func (o *options) loadContent() (content.Content, error) {
	if o.contentPath == "" {
		return content.Default(), nil
	}
	return content.Load(o.fs, o.contentPath)
}

// NewRootCmd builds the command tree. Content files are read from fs.
func NewRootCmd(fs afero.Fs) *cobra.Command {
	opts := &options{fs: fs}

	rootCmd := &cobra.Command{
		Use:   "vep-cli",
		Short: "VEP About page tool",
		Long: `vep-cli renders and checks the VEP About page without running the server.

Available commands:
  render      Export the page, its metadata and static assets to a directory
  metadata    Print the page metadata and JSON-LD document as JSON
  validate    Check a content file
  version     Print the version number

Use "vep-cli [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.contentPath, "content", os.Getenv("CONTENT_PATH"), "YAML content file (defaults to the built-in content)")
	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", envOr("APP_BASE_URL", defaultBaseURL), "host the page is published under, e.g. vep.example.com")

	rootCmd.AddCommand(
		newRenderCmd(opts),
		newMetadataCmd(opts),
		newValidateCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute executes the root command
func Execute() {
	if err := NewRootCmd(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
