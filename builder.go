package stanza

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/a-h/templ"

	"github.com/apamildner/stanza/content"
	"github.com/apamildner/stanza/views"
)

// Builder renders the whole site to static HTML. Unlike serve mode, a build
// halts on the first invalid content file so broken metadata never ships.
type Builder struct {
	Config  SiteConfig
	Library *Library
	Store   *RenderStore
	Views   ViewFuncs

	renderer HTMLRenderer
}

// NewBuilder creates a Builder. Zero-value ViewFuncs fields fall back to the
// built-in views, same as New.
func NewBuilder(cfg SiteConfig, viewFuncs ViewFuncs) (*Builder, error) {
	cfg.setDefaults()

	defaults := DefaultViews()
	if viewFuncs.Home == nil {
		viewFuncs.Home = defaults.Home
	}
	if viewFuncs.Post == nil {
		viewFuncs.Post = defaults.Post
	}
	if viewFuncs.NotFound == nil {
		viewFuncs.NotFound = defaults.NotFound
	}

	store, err := NewRenderStore(cfg.CachePath)
	if err != nil {
		return nil, fmt.Errorf("stanza: init render store: %w", err)
	}

	return &Builder{
		Config:   cfg,
		Library:  NewLibrary(cfg.ContentDir),
		Store:    store,
		Views:    viewFuncs,
		renderer: HTMLRenderer{Store: store},
	}, nil
}

// Close releases the render store.
func (b *Builder) Close() error {
	if b.Store != nil {
		return b.Store.Close()
	}
	return nil
}

// Build scans the content directory and writes the complete site to
// cfg.OutputDir: the home page, one page per published post, the feed,
// the sitemap, robots.txt, and static assets.
func (b *Builder) Build() error {
	items, err := b.Library.Scan()
	if err != nil {
		return err
	}
	posts := content.Published(items)
	tags := content.Tags(posts)

	out := b.Config.OutputDir
	if err := os.MkdirAll(out, 0o755); err != nil {
		return err
	}

	site := views.Site{
		Name:        b.Config.Name,
		URL:         b.Config.URL,
		Description: b.Config.Description,
		Author:      b.Config.Author,
	}

	if err := b.writeComponent(filepath.Join(out, "index.html"),
		b.Views.Home(site, posts, "", tags)); err != nil {
		return fmt.Errorf("render home: %w", err)
	}

	for _, post := range posts {
		html, err := b.renderer.HTML(post)
		if err != nil {
			return fmt.Errorf("render %s: %w", post.SourcePath, err)
		}
		related := views.FilterRelatedPosts(post, posts)
		cmp := b.Views.Post(site, views.Post{Item: post, HTML: html}, related)
		dst := filepath.Join(out, "blog", post.Slug, "index.html")
		if err := b.writeComponent(dst, cmp); err != nil {
			return fmt.Errorf("write %s: %w", dst, err)
		}
	}

	if err := b.writeComponent(filepath.Join(out, "404.html"),
		b.Views.NotFound(site)); err != nil {
		return err
	}

	if err := b.writeFile(filepath.Join(out, "feed.xml"), func(f *os.File) error {
		return writeFeed(f, b.Config, posts)
	}); err != nil {
		return err
	}
	if err := b.writeFile(filepath.Join(out, "sitemap.xml"), func(f *os.File) error {
		return writeSitemap(f, b.Config, posts)
	}); err != nil {
		return err
	}

	robots := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", b.Config.URL)
	if err := os.WriteFile(filepath.Join(out, "robots.txt"), []byte(robots), 0o644); err != nil {
		return err
	}

	if err := b.writeStylesheet(out); err != nil {
		return err
	}
	if err := copyAssets(b.Config.StaticDir, filepath.Join(out, "public")); err != nil {
		return fmt.Errorf("copy static assets: %w", err)
	}

	// Drop cached renders for posts that no longer exist.
	keep := make([]string, 0, len(items))
	for _, it := range items {
		keep = append(keep, it.Slug)
	}
	if err := b.Store.Prune(keep); err != nil {
		return err
	}

	return nil
}

func (b *Builder) writeComponent(path string, cmp templ.Component) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := cmp.Render(context.Background(), f); err != nil {
		return err
	}
	return f.Close()
}

func (b *Builder) writeFile(path string, write func(*os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := write(f); err != nil {
		return err
	}
	return f.Close()
}

// writeStylesheet copies the embedded default stylesheet into the output,
// unless the site ships its own stanza.css in StaticDir.
func (b *Builder) writeStylesheet(out string) error {
	if _, err := os.Stat(filepath.Join(b.Config.StaticDir, "stanza.css")); err == nil {
		return nil
	}
	css, err := EmbeddedAssets.ReadFile("embedded/stanza.css")
	if err != nil {
		return err
	}
	dst := filepath.Join(out, "public")
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dst, "stanza.css"), css, 0o644)
}
