// Package cli implements the stanza command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apamildner/stanza"
)

// version is set at build time via ldflags.
var version = "dev"

var cfgFile string
var siteConfig stanza.SiteConfig

var rootCmd = &cobra.Command{
	Use:   "stanza",
	Short: "stanza - a file-backed blog publishing engine",
	Long: `Stanza takes a directory of markdown files with +++ front matter
and either serves them as a blog or builds them into a static site.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := stanza.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		siteConfig = cfg
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the stanza version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("stanza %s\n", version)
		},
	})
}
