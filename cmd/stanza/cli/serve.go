package cli

import (
	"github.com/spf13/cobra"

	"github.com/apamildner/stanza"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site directly from the content directory",
	Long: `Serve runs the blog as a live server with an admin interface.
Content files are watched and re-scanned on change; files that fail to
parse are skipped with a warning instead of taking the site down.

Requires STANZA_ADMINPASSWORD and STANZA_SESSIONSECRET (or the matching
config file keys) to be set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := stanza.New(siteConfig, stanza.ViewFuncs{})
		defer app.Close()
		return app.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
