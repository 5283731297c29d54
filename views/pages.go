// Package views provides the built-in templ components for stanza sites.
// Sites that want their own look replace these through stanza.ViewFuncs;
// everything here is plain HTML with a small embedded stylesheet.
package views

import (
	"context"
	"html"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/apamildner/stanza/content"
)

const displayDate = "Jan 2, 2006"

// component wraps a pre-built HTML string as a templ.Component.
func component(markup string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup)
		return err
	})
}

// page renders the shared document shell around a body fragment.
func page(site Site, meta PageMeta, body string) string {
	var b strings.Builder
	title := meta.Title
	if title == "" {
		title = site.Name
	}
	b.WriteString("<!DOCTYPE html><html lang=\"en\"><head>")
	b.WriteString("<meta charset=\"utf-8\"/>")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>")
	b.WriteString("<title>" + html.EscapeString(title) + "</title>")
	if meta.Description != "" {
		b.WriteString("<meta name=\"description\" content=\"" + html.EscapeString(meta.Description) + "\"/>")
	}
	if meta.URL != "" {
		b.WriteString("<link rel=\"canonical\" href=\"" + html.EscapeString(meta.URL) + "\"/>")
		b.WriteString("<meta property=\"og:url\" content=\"" + html.EscapeString(meta.URL) + "\"/>")
	}
	ogType := meta.OGType
	if ogType == "" {
		ogType = "website"
	}
	b.WriteString("<meta property=\"og:type\" content=\"" + ogType + "\"/>")
	b.WriteString("<meta property=\"og:title\" content=\"" + html.EscapeString(title) + "\"/>")
	b.WriteString("<link rel=\"alternate\" type=\"application/rss+xml\" href=\"/feed.xml\"/>")
	b.WriteString("<link rel=\"stylesheet\" href=\"/public/stanza.css\"/>")
	b.WriteString("</head><body>")
	b.WriteString("<header class=\"site-header\"><a class=\"site-name\" href=\"/\">" + html.EscapeString(site.Name) + "</a></header>")
	b.WriteString("<main>")
	b.WriteString(body)
	b.WriteString("</main>")
	b.WriteString("<footer class=\"site-footer\">")
	if site.Author != "" {
		b.WriteString("<span>" + html.EscapeString(site.Author) + "</span> · ")
	}
	b.WriteString("<a href=\"/feed.xml\">RSS</a>")
	b.WriteString("</footer>")
	b.WriteString("</body></html>")
	return b.String()
}

// Home renders the post listing page, optionally filtered to a tag.
func Home(site Site, posts []content.Item, activeTag string, tags []string) templ.Component {
	var b strings.Builder
	if site.Description != "" {
		b.WriteString("<p class=\"site-description\">" + html.EscapeString(site.Description) + "</p>")
	}
	if len(tags) > 0 {
		b.WriteString("<nav class=\"tags\">")
		b.WriteString(tagPill("all", "/", activeTag == ""))
		for _, tag := range tags {
			b.WriteString(tagPill(tag, "/?tag="+PathEscape(tag), strings.EqualFold(tag, activeTag)))
		}
		b.WriteString("</nav>")
	}
	b.WriteString("<ul class=\"post-list\">")
	for _, p := range posts {
		b.WriteString("<li><a href=\"" + p.Link() + "\">" + html.EscapeString(p.Title) + "</a>")
		b.WriteString("<time datetime=\"" + p.Date.Format(time.RFC3339) + "\">" + p.Date.Format(displayDate) + "</time>")
		if p.Summary != "" {
			b.WriteString("<p class=\"summary\">" + html.EscapeString(p.Summary) + "</p>")
		}
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	if len(posts) == 0 {
		b.WriteString("<p class=\"empty\">Nothing published yet.</p>")
	}
	meta := PageMeta{Title: site.Name, Description: site.Description, URL: buildURL(site.URL), OGType: "website"}
	return component(page(site, meta, b.String()))
}

func tagPill(label, href string, active bool) string {
	class := "tag"
	if active {
		class += " active"
	}
	return "<a class=\"" + class + "\" href=\"" + html.EscapeString(href) + "\">" + html.EscapeString(label) + "</a>"
}

// PostPage renders a single post with its rendered body and related posts.
func PostPage(site Site, post Post, related []content.Item) templ.Component {
	it := post.Item
	var b strings.Builder
	b.WriteString("<article>")
	b.WriteString("<h1>" + html.EscapeString(it.Title) + "</h1>")
	b.WriteString("<time datetime=\"" + it.Date.Format(time.RFC3339) + "\">" + it.Date.Format(displayDate) + "</time>")
	if len(it.Tags) > 0 {
		b.WriteString("<nav class=\"tags\">")
		for _, tag := range it.Tags {
			b.WriteString(tagPill(tag, "/?tag="+PathEscape(tag), false))
		}
		b.WriteString("</nav>")
	}
	b.WriteString("<div class=\"post-body\">")
	b.WriteString(post.HTML)
	b.WriteString("</div>")
	b.WriteString("</article>")
	if rel := FilterRelatedPosts(it, related); len(rel) > 0 {
		b.WriteString("<aside class=\"related\"><h2>Related</h2><ul>")
		for _, p := range rel {
			b.WriteString("<li><a href=\"" + p.Link() + "\">" + html.EscapeString(p.Title) + "</a></li>")
		}
		b.WriteString("</ul></aside>")
	}
	meta := PageMeta{
		Title:       it.Title,
		Description: it.Summary,
		URL:         buildURL(site.URL, "blog", it.Slug),
		OGType:      "article",
	}
	return component(page(site, meta, b.String()))
}

// AdminLogin renders the password form for the admin dashboard.
func AdminLogin(site Site, showError bool, csrfToken string) templ.Component {
	var b strings.Builder
	b.WriteString("<h1>Admin</h1>")
	if showError {
		b.WriteString("<p class=\"error\">Wrong password.</p>")
	}
	b.WriteString("<form method=\"post\" action=\"/admin/login/\">")
	b.WriteString("<input type=\"hidden\" name=\"_csrf\" value=\"" + html.EscapeString(csrfToken) + "\"/>")
	b.WriteString("<input type=\"password\" name=\"password\" autofocus/>")
	b.WriteString("<button type=\"submit\">Log in</button>")
	b.WriteString("</form>")
	return component(page(site, PageMeta{Title: "Admin"}, b.String()))
}

// AdminDashboard renders the post table, drafts included.
func AdminDashboard(site Site, posts []content.Item, message, csrfToken string) templ.Component {
	var b strings.Builder
	b.WriteString("<h1>Posts</h1>")
	if message != "" {
		b.WriteString("<p class=\"notice\">" + html.EscapeString(message) + "</p>")
	}
	b.WriteString("<form method=\"post\" action=\"/admin/logout/\"><input type=\"hidden\" name=\"_csrf\" value=\"" + html.EscapeString(csrfToken) + "\"/><button type=\"submit\">Log out</button></form>")
	b.WriteString("<p><a href=\"/admin/edit/\">New post</a></p>")
	b.WriteString("<table class=\"admin-posts\"><thead><tr><th>Title</th><th>Date</th><th>Status</th><th>Tags</th><th></th></tr></thead><tbody>")
	for _, p := range posts {
		status := "published"
		if p.Draft {
			status = "draft"
		}
		b.WriteString("<tr>")
		b.WriteString("<td><a href=\"/admin/preview/" + PathEscape(p.Slug) + "/\">" + html.EscapeString(p.Title) + "</a></td>")
		b.WriteString("<td>" + p.Date.Format(displayDate) + "</td>")
		b.WriteString("<td>" + status + "</td>")
		b.WriteString("<td>" + html.EscapeString(JoinTags(p.Tags)) + "</td>")
		b.WriteString("<td><a href=\"/admin/edit/" + PathEscape(p.Slug) + "/\">Edit</a></td>")
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return component(page(site, PageMeta{Title: "Admin"}, b.String()))
}

// AdminEdit renders the post editor form. A zero-value item gives a blank
// form for a new post.
func AdminEdit(site Site, post content.Item, csrfToken string) templ.Component {
	var b strings.Builder
	heading := "Edit post"
	if post.Slug == "" {
		heading = "New post"
	}
	b.WriteString("<h1>" + heading + "</h1>")
	b.WriteString("<form class=\"editor\" method=\"post\" action=\"/admin/save/\">")
	b.WriteString("<input type=\"hidden\" name=\"_csrf\" value=\"" + html.EscapeString(csrfToken) + "\"/>")
	b.WriteString("<label>Title<input type=\"text\" name=\"title\" value=\"" + html.EscapeString(post.Title) + "\"/></label>")
	b.WriteString("<label>Slug<input type=\"text\" name=\"slug\" value=\"" + html.EscapeString(post.Slug) + "\"/></label>")
	dateValue := ""
	if !post.Date.IsZero() {
		dateValue = post.Date.Format("2006-01-02")
	}
	b.WriteString("<label>Date<input type=\"text\" name=\"date\" placeholder=\"YYYY-MM-DD\" value=\"" + dateValue + "\"/></label>")
	b.WriteString("<label>Summary<input type=\"text\" name=\"summary\" value=\"" + html.EscapeString(post.Summary) + "\"/></label>")
	b.WriteString("<label>Tags<input type=\"text\" name=\"tags\" value=\"" + html.EscapeString(JoinTags(post.Tags)) + "\"/></label>")
	checked := ""
	if !post.Draft {
		checked = " checked"
	}
	b.WriteString("<label><input type=\"checkbox\" name=\"published\" value=\"1\"" + checked + "/> Published</label>")
	b.WriteString("<textarea name=\"content\" rows=\"20\">" + html.EscapeString(post.Body) + "</textarea>")
	b.WriteString("<button type=\"submit\">Save</button>")
	b.WriteString("</form>")
	if post.Slug != "" {
		b.WriteString("<p><a href=\"/admin/preview/" + PathEscape(post.Slug) + "/\">Preview</a></p>")
	}
	return component(page(site, PageMeta{Title: heading}, b.String()))
}

// NotFound renders the 404 page.
func NotFound(site Site) templ.Component {
	body := "<h1>404</h1><p>That page does not exist. <a href=\"/\">Back home</a>.</p>"
	return component(page(site, PageMeta{Title: "Not found"}, body))
}

// ServerError renders the 500 page.
func ServerError(site Site) templ.Component {
	body := "<h1>500</h1><p>Something broke on our side. <a href=\"/\">Back home</a>.</p>"
	return component(page(site, PageMeta{Title: "Server error"}, body))
}
