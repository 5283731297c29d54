package stanza

import (
	"encoding/xml"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/apamildner/stanza/content"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// buildSitemap assembles the sitemap for the published posts. Shared
// between the serve handler and the static builder.
func buildSitemap(cfg SiteConfig, posts []content.Item) sitemapURLSet {
	urls := []sitemapURL{
		{Loc: BuildURL(cfg.URL)},
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:     BuildURL(cfg.URL, "blog", p.Slug),
			LastMod: p.Date.Format("2006-01-02"),
		})
	}
	return sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
}

// writeSitemap encodes the sitemap with an XML header to w.
func writeSitemap(w io.Writer, cfg SiteConfig, posts []content.Item) error {
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(buildSitemap(cfg, posts))
}

func (a *App) renderSitemap(c echo.Context, posts []content.Item) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return writeSitemap(c.Response(), a.Config, posts)
}
