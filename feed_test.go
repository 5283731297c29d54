package stanza

import (
	"strings"
	"testing"
	"time"

	"github.com/apamildner/stanza/content"
)

func testFeedConfig() SiteConfig {
	return SiteConfig{
		Name:        "Test Site",
		URL:         "https://example.com",
		Description: "A test site",
	}
}

func testFeedPosts(t *testing.T) []content.Item {
	t.Helper()
	return []content.Item{
		{
			Title:   "Newer",
			Slug:    "newer",
			Summary: "The newer post",
			Date:    mustParseDate(t, "2024-06-15T12:00:00Z"),
		},
		{
			Title: "Older",
			Slug:  "older",
			Date:  mustParseDate(t, "2024-01-02T00:00:00Z"),
		},
	}
}

func TestBuildFeed(t *testing.T) {
	feed := buildFeed(testFeedConfig(), testFeedPosts(t))

	if feed.Version != "2.0" {
		t.Errorf("Version = %q, want %q", feed.Version, "2.0")
	}
	if feed.Channel.Title != "Test Site" || feed.Channel.Link != "https://example.com" {
		t.Errorf("channel = %+v", feed.Channel)
	}
	if len(feed.Channel.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(feed.Channel.Items))
	}

	first := feed.Channel.Items[0]
	if first.Link != "https://example.com/blog/newer/" {
		t.Errorf("Link = %q", first.Link)
	}
	if first.GUID != first.Link {
		t.Errorf("GUID = %q, want the post link", first.GUID)
	}
	if first.Description != "The newer post" {
		t.Errorf("Description = %q", first.Description)
	}
	wantDate := mustParseDate(t, "2024-06-15T12:00:00Z").Format(time.RFC1123Z)
	if first.PubDate != wantDate {
		t.Errorf("PubDate = %q, want %q", first.PubDate, wantDate)
	}
}

func TestWriteFeed(t *testing.T) {
	var sb strings.Builder
	if err := writeFeed(&sb, testFeedConfig(), testFeedPosts(t)); err != nil {
		t.Fatalf("writeFeed: %v", err)
	}
	out := sb.String()
	if !strings.HasPrefix(out, "<?xml") {
		t.Error("output missing XML header")
	}
	if !strings.Contains(out, `<rss version="2.0">`) {
		t.Error("output missing rss element")
	}
}

func TestBuildSitemap(t *testing.T) {
	sm := buildSitemap(testFeedConfig(), testFeedPosts(t))

	if len(sm.URLs) != 3 {
		t.Fatalf("got %d urls, want 3 (home + 2 posts)", len(sm.URLs))
	}
	if sm.URLs[0].Loc != "https://example.com" {
		t.Errorf("first url = %q, want the home page", sm.URLs[0].Loc)
	}
	if sm.URLs[1].Loc != "https://example.com/blog/newer/" {
		t.Errorf("post url = %q", sm.URLs[1].Loc)
	}
	if sm.URLs[1].LastMod != "2024-06-15" {
		t.Errorf("LastMod = %q, want %q", sm.URLs[1].LastMod, "2024-06-15")
	}
}

func TestWriteSitemap(t *testing.T) {
	var sb strings.Builder
	if err := writeSitemap(&sb, testFeedConfig(), nil); err != nil {
		t.Fatalf("writeSitemap: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "http://www.sitemaps.org/schemas/sitemap/0.9") {
		t.Error("output missing sitemap namespace")
	}
}
