package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apamildner/stanza"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the site to static HTML",
	Long: `Build parses every content file, renders the published posts, and
writes the complete site (pages, feed, sitemap, assets) to the configured
output directory. The build fails if any content file is invalid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := stanza.NewBuilder(siteConfig, stanza.ViewFuncs{})
		if err != nil {
			return err
		}
		defer b.Close()

		if err := b.Build(); err != nil {
			return err
		}
		fmt.Printf("Site built to %s\n", b.Config.OutputDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
