package stanza

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/apamildner/stanza/content"
	"github.com/apamildner/stanza/views"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(a.site(), false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Check(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(c.RealIP())
	return Render(c, a.Views.AdminLogin(a.site(), true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

// handleAdminEdit renders the post editor, blank for a new post or
// prefilled when a slug is given.
func (a *App) handleAdminEdit(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	var post content.Item
	if slug := c.Param("slug"); slug != "" {
		existing, err := a.Cache.GetPostAny(slug)
		if err != nil {
			if err == ErrNotFound {
				return c.NoContent(http.StatusNotFound)
			}
			return err
		}
		post = existing
	}
	return Render(c, a.Views.AdminEdit(a.site(), post, CsrfToken(c)))
}

// handleAdminPreview renders any post by slug, drafts included, so a draft
// can be proofread before its flag is flipped.
func (a *App) handleAdminPreview(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	slug := c.Param("slug")
	post, err := a.Cache.GetPostAny(slug)
	if err != nil {
		if err == ErrNotFound {
			return c.NoContent(http.StatusNotFound)
		}
		return err
	}
	html, err := a.renderer.HTML(post)
	if err != nil {
		return err
	}
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	return Render(c, a.Views.Post(a.site(), views.Post{Item: post, HTML: html}, posts))
}

// handleAdminSave writes a post back to the content directory as a
// markdown file with encoded front matter. The file goes through the same
// parse path as hand-written content on the next scan.
func (a *App) handleAdminSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	title := strings.TrimSpace(c.FormValue("title"))
	slug := strings.TrimSpace(c.FormValue("slug"))
	if slug == "" {
		slug = Slugify(title)
	}
	if slug == "" {
		return c.Redirect(http.StatusSeeOther, "/admin/?msg=Slug+is+required.+Add+a+title+or+slug.")
	}
	date, err := parseFormDate(strings.TrimSpace(c.FormValue("date")))
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/admin/?msg=Invalid+date+format.+Use+YYYY-MM-DD.")
	}
	tags := strings.Split(c.FormValue("tags"), ",")
	for i := range tags {
		tags[i] = strings.TrimSpace(tags[i])
	}

	item := content.Item{
		Title:   title,
		Date:    date,
		Draft:   c.FormValue("published") == "",
		Summary: c.FormValue("summary"),
		Tags:    FilterEmpty(tags),
		Body:    c.FormValue("content"),
		Slug:    slug,
	}
	if existing, err := a.Cache.GetPostAny(slug); err == nil {
		item.SourcePath = existing.SourcePath
	}
	if err := a.Library.Save(item); err != nil {
		return err
	}
	a.Cache.Invalidate()
	return a.renderAdminDashboard(c, "saved")
}

func (a *App) handleAdminDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	slug := c.Param("slug")
	item, err := a.Cache.GetPostAny(slug)
	if err != nil && err != ErrNotFound {
		return err
	}
	if err == nil {
		if err := a.Library.Delete(item); err != nil {
			return err
		}
	}
	if a.Store != nil {
		_ = a.Store.Delete(slug)
	}
	a.Cache.Invalidate()
	return a.renderAdminDashboard(c, "deleted")
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	posts, err := a.Cache.ListAllPosts()
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminDashboard(a.site(), posts, msg, CsrfToken(c)))
}

func parseFormDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now().Truncate(time.Second), nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
