package stanza

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupTestBuilder(t *testing.T) (*Builder, string) {
	t.Helper()
	contentDir := t.TempDir()
	outDir := t.TempDir()

	writeContentFile(t, contentDir, "hello.md", validPost)
	writeContentFile(t, contentDir, "tagged.md", taggedPost)
	writeContentFile(t, contentDir, "wip.md", draftPost)

	cfg := SiteConfig{
		Name:       "Test Site",
		URL:        "https://example.com",
		ContentDir: contentDir,
		StaticDir:  filepath.Join(contentDir, "no-static"),
		OutputDir:  outDir,
		CachePath:  filepath.Join(t.TempDir(), "render.db"),
	}

	b, err := NewBuilder(cfg, ViewFuncs{})
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	t.Cleanup(func() { b.Close() })
	return b, outDir
}

func readOutput(t *testing.T, outDir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(outDir, rel))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return string(data)
}

func TestBuildWritesSite(t *testing.T) {
	b, out := setupTestBuilder(t)

	if err := b.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}

	home := readOutput(t, out, "index.html")
	if !strings.Contains(home, "Hello") || !strings.Contains(home, "Tagged") {
		t.Error("home page missing published posts")
	}
	if strings.Contains(home, "Work In Progress") {
		t.Error("home page includes a draft")
	}

	post := readOutput(t, out, filepath.Join("blog", "hello", "index.html"))
	if !strings.Contains(post, "Body text.") {
		t.Error("post page missing rendered body")
	}

	for _, rel := range []string{
		"feed.xml",
		"sitemap.xml",
		"robots.txt",
		"404.html",
		filepath.Join("public", "stanza.css"),
	} {
		if _, err := os.Stat(filepath.Join(out, rel)); err != nil {
			t.Errorf("missing output file %s: %v", rel, err)
		}
	}

	feed := readOutput(t, out, "feed.xml")
	if !strings.Contains(feed, "https://example.com/blog/hello/") {
		t.Error("feed missing published post link")
	}
	if strings.Contains(feed, "wip") {
		t.Error("feed includes a draft")
	}

	robots := readOutput(t, out, "robots.txt")
	if !strings.Contains(robots, "https://example.com/sitemap.xml") {
		t.Error("robots.txt missing sitemap link")
	}
}

func TestBuildHaltsOnBrokenContent(t *testing.T) {
	b, out := setupTestBuilder(t)
	writeContentFile(t, b.Config.ContentDir, "broken.md", brokenPost)

	if err := b.Build(); err == nil {
		t.Fatal("expected Build to fail on broken content")
	}
	if _, err := os.Stat(filepath.Join(out, "index.html")); !os.IsNotExist(err) {
		t.Error("build output written despite broken content")
	}
}

func TestBuildCopiesStaticAssets(t *testing.T) {
	b, out := setupTestBuilder(t)
	staticDir := t.TempDir()
	b.Config.StaticDir = staticDir
	if err := os.WriteFile(filepath.Join(staticDir, "notes.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatalf("write static file: %v", err)
	}

	if err := b.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := readOutput(t, out, filepath.Join("public", "notes.txt")); got != "hi" {
		t.Errorf("copied asset = %q, want %q", got, "hi")
	}
}
