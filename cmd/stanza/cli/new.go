package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/apamildner/stanza"
	"github.com/apamildner/stanza/content"
)

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Create a new draft post",
	Long: `New creates a draft content file in the content directory. The slug
is derived from the title, and the file starts with draft = true so it
stays out of builds until you publish it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")
		slug := stanza.Slugify(title)
		if slug == "" {
			return fmt.Errorf("cannot derive a slug from %q", title)
		}
		// Bare slugs get a readable title: "my-first-post" -> "My First Post".
		if title == slug {
			title = cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
		}

		path := filepath.Join(siteConfig.ContentDir, slug+".md")
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}

		item := content.Item{
			Title: title,
			Date:  time.Now().UTC().Truncate(time.Second),
			Draft: true,
			Slug:  slug,
		}
		if err := os.MkdirAll(siteConfig.ContentDir, 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, content.Encode(item), 0o644); err != nil {
			return err
		}
		fmt.Printf("Created %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
