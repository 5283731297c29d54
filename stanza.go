// Package stanza is a file-backed blog publishing engine built with Go,
// Echo, and templ. Content lives as markdown files with +++ front matter;
// stanza parses and validates them, filters drafts, and either serves the
// site directly or builds it to static HTML.
//
// Sites provide their own templ components via the ViewFuncs struct, or
// fall back to the built-in views.
package stanza

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/apamildner/stanza/content"
	"github.com/apamildner/stanza/views"
)

// ViewFuncs holds the templ components the engine calls when rendering
// pages. This is the inversion-of-control mechanism that lets sites own
// and customize all templates.
type ViewFuncs struct {
	Home           func(site views.Site, posts []content.Item, activeTag string, tags []string) templ.Component
	Post           func(site views.Site, post views.Post, related []content.Item) templ.Component
	AdminLogin     func(site views.Site, showError bool, csrfToken string) templ.Component
	AdminDashboard func(site views.Site, posts []content.Item, message, csrfToken string) templ.Component
	AdminEdit      func(site views.Site, post content.Item, csrfToken string) templ.Component
	NotFound       func(site views.Site) templ.Component
	ServerError    func(site views.Site) templ.Component
}

// DefaultViews returns the built-in view set.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home:           views.Home,
		Post:           views.PostPage,
		AdminLogin:     views.AdminLogin,
		AdminDashboard: views.AdminDashboard,
		AdminEdit:      views.AdminEdit,
		NotFound:       views.NotFound,
		ServerError:    views.ServerError,
	}
}

// App is the central stanza application. It wires together the content
// library, cache, render store, handlers, middleware, and views.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Library *Library
	Cache   *ContentCache
	Store   *RenderStore
	Views   ViewFuncs

	renderer     HTMLRenderer
	loginLimiter *LoginLimiter
	customRoutes []func(*App)
	watcher      *Watcher
}

// New creates a new stanza App with the given configuration and view
// functions. Zero-value ViewFuncs fields fall back to the built-in views.
func New(cfg SiteConfig, viewFuncs ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	defaults := DefaultViews()
	if viewFuncs.Home == nil {
		viewFuncs.Home = defaults.Home
	}
	if viewFuncs.Post == nil {
		viewFuncs.Post = defaults.Post
	}
	if viewFuncs.AdminLogin == nil {
		viewFuncs.AdminLogin = defaults.AdminLogin
	}
	if viewFuncs.AdminDashboard == nil {
		viewFuncs.AdminDashboard = defaults.AdminDashboard
	}
	if viewFuncs.AdminEdit == nil {
		viewFuncs.AdminEdit = defaults.AdminEdit
	}
	if viewFuncs.NotFound == nil {
		viewFuncs.NotFound = defaults.NotFound
	}
	if viewFuncs.ServerError == nil {
		viewFuncs.ServerError = defaults.ServerError
	}

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  viewFuncs,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the library, cache, render store, watcher, middleware,
// and routes, then starts the server. It blocks until the server stops.
func (a *App) Start() error {
	// Validate required config
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("stanza: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("stanza: SessionSecret is required")
	}

	a.Library = NewLibrary(a.Config.ContentDir)

	store, err := NewRenderStore(a.Config.CachePath)
	if err != nil {
		return fmt.Errorf("stanza: init render store: %w", err)
	}
	a.Store = store
	a.renderer = HTMLRenderer{Store: store}

	a.Cache = NewContentCache(a.Library, a.Config.ScanTTL)
	a.Cache.OnScanError = func(fe *FileError) {
		a.Echo.Logger.Warnf("skipping content file %s: %v", fe.Path, fe.Err)
	}

	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	// Watch the content directory so edits show up without a restart.
	watcher, err := StartWatcher(a.Config.ContentDir, 500*time.Millisecond, func() {
		a.Cache.Invalidate()
	})
	if err != nil {
		a.Echo.Logger.Warnf("content watcher disabled: %v", err)
	} else {
		a.watcher = watcher
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Serve the embedded framework stylesheet under /public/, falling
	// through to the site's own static dir for everything else.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/stanza.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	// Public routes
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/blog", handleBlogRedirect)
	e.GET("/", a.handleHome)
	e.GET("/blog/:slug/", a.handlePost)

	// Admin routes
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.GET("/admin/edit/", a.handleAdminEdit)
	e.GET("/admin/edit/:slug/", a.handleAdminEdit)
	e.GET("/admin/preview/:slug/", a.handleAdminPreview)
	e.POST("/admin/save/", a.handleAdminSave)
	e.DELETE("/admin/post/:slug/", a.handleAdminDelete)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.watcher != nil {
		a.watcher.Close()
	}
	if a.Store != nil {
		a.Store.Close()
	}
	return nil
}

func (a *App) site() views.Site {
	return views.Site{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
	}
}

// EnvOr returns the value of the environment variable key, or fallback if
// empty. Convenience for scaffolded main.go files.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
