package views

import "github.com/apamildner/stanza/content"

// Site holds the site-wide values templates render into every page.
type Site struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// Post pairs a content item with its rendered body HTML.
type Post struct {
	Item content.Item
	HTML string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}
