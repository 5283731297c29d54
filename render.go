package stanza

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/apamildner/stanza/content"
	"github.com/apamildner/stanza/markdown"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// HTMLRenderer renders post bodies to HTML through the render store, so a
// body only goes through the markdown renderer when its checksum changes.
// A nil Store disables caching.
type HTMLRenderer struct {
	Store *RenderStore
}

// HTML returns the rendered body of an item, from cache when possible.
func (r HTMLRenderer) HTML(item content.Item) (string, error) {
	sum := Checksum(item.Body)
	if r.Store != nil {
		if html, err := r.Store.Get(item.Slug, sum); err == nil {
			return html, nil
		}
	}
	html, err := markdown.Render(item.Body)
	if err != nil {
		return "", err
	}
	if r.Store != nil {
		// Cache write failures are not fatal; the render already succeeded.
		_ = r.Store.Put(item.Slug, sum, html)
	}
	return html, nil
}
