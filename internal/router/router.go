// Package router maps the URL fragment onto the page shown in the content
// container.
//
// A fragment naming a page swaps the container's markup, unless that page is
// already shown. Any other fragment is an anchor: the router scrolls to it,
// switching back to the home page first when only home declares that id.
package router

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/net/html"

	"github.com/nfrund/esperanca/internal/dom"
	"github.com/nfrund/esperanca/internal/domain"
	"github.com/nfrund/esperanca/internal/pubsub"
	"github.com/nfrund/esperanca/internal/templates"
)

const (
	// ContainerID is the element pages are rendered into.
	ContainerID = "app-container"

	// NotFoundMarkup replaces a page that has no template.
	NotFoundMarkup = "<h2>Página não encontrada</h2>"

	headingSelector = "h1, h2"
)

// Hook runs after a page's markup has been inserted.
type Hook func(ctx context.Context, doc dom.Document) error

// Options configure a Router.
type Options struct {
	// Templates holds the markup of each page. A page without one renders
	// NotFoundMarkup.
	Templates map[domain.PageKey]string
	// DefaultPage is shown for an empty fragment; home when unset.
	DefaultPage domain.PageKey
	Publisher   pubsub.Publisher
	Logger      *slog.Logger
}

// Router is the page state machine. Like the document it drives, it is not
// safe for concurrent use.
type Router struct {
	doc         dom.Document
	win         dom.Window
	templates   map[domain.PageKey]string
	defaultPage domain.PageKey
	homeIDs     map[string]bool
	publisher   pubsub.Publisher
	logger      *slog.Logger

	current  domain.PageKey
	hooks    map[domain.PageKey][]Hook
	rendered []func(domain.PageKey)
	stop     func()
}

// New creates a Router over doc and win.
func New(doc dom.Document, win dom.Window, opts Options) *Router {
	r := &Router{
		doc:         doc,
		win:         win,
		templates:   opts.Templates,
		defaultPage: opts.DefaultPage,
		publisher:   opts.Publisher,
		logger:      opts.Logger,
		hooks:       make(map[domain.PageKey][]Hook),
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if _, ok := domain.ParsePageKey(string(r.defaultPage)); !ok {
		r.defaultPage = domain.PageHome
	}
	r.homeIDs = declaredIDs(r.templates[domain.PageHome], r.logger)
	return r
}

// OnEnter registers hook to run every time key is loaded.
func (r *Router) OnEnter(key domain.PageKey, hook Hook) {
	r.hooks[key] = append(r.hooks[key], hook)
}

// OnRendered registers fn to run after each page load, hooks included.
func (r *Router) OnRendered(fn func(domain.PageKey)) {
	r.rendered = append(r.rendered, fn)
}

// Current returns the page most recently loaded, or "" before the first load.
func (r *Router) Current() domain.PageKey {
	return r.current
}

// Start follows fragment changes and handles the current fragment, as the
// page's load event would. Calling Start again restarts it.
func (r *Router) Start(ctx context.Context) {
	r.Stop()
	r.stop = r.win.OnHashChange(func() {
		r.Navigate(ctx, r.win.Hash())
	})
	r.Navigate(ctx, r.win.Hash())
}

// Stop stops following fragment changes.
func (r *Router) Stop() {
	if r.stop != nil {
		r.stop()
		r.stop = nil
	}
}

// Navigate handles one fragment, with or without the leading '#'.
func (r *Router) Navigate(ctx context.Context, fragment string) {
	target := strings.TrimPrefix(fragment, "#")
	if target == "" {
		target = string(r.defaultPage)
	}

	if key, ok := domain.ParsePageKey(target); ok {
		if key != r.current {
			if err := r.LoadPage(ctx, key); err != nil {
				return
			}
		}
		r.win.ScrollToTop()
		return
	}

	r.scrollToAnchor(ctx, target)
}

func (r *Router) scrollToAnchor(ctx context.Context, id string) {
	if r.current == "" {
		if err := r.LoadPage(ctx, domain.PageHome); err != nil {
			return
		}
	}

	if el, ok := r.doc.ElementByID(id); ok {
		el.ScrollIntoView()
		return
	}

	if r.current != domain.PageHome && r.homeIDs[id] {
		// LoadPage returns after hooks have run, so the anchor is in place.
		if err := r.LoadPage(ctx, domain.PageHome); err != nil {
			return
		}
		if el, ok := r.doc.ElementByID(id); ok {
			el.ScrollIntoView()
		}
		return
	}

	r.logger.Debug("Ignoring unknown anchor", "id", id, "page", r.current)
}

// LoadPage renders key into the content container, focuses its first
// heading and runs its hooks. It fails only when the container is missing.
func (r *Router) LoadPage(ctx context.Context, key domain.PageKey) error {
	container, ok := r.doc.ElementByID(ContainerID)
	if !ok {
		r.logger.Warn("Content container not found", "id", ContainerID, "page", key)
		return fmt.Errorf("loading %s: %w", key, domain.ErrNoContainer)
	}

	markup, ok := r.templates[key]
	if !ok {
		r.logger.Warn("No template for page", "page", key)
		markup = NotFoundMarkup
	}
	container.SetInnerHTML(markup)
	container.SetClassName("page-" + string(key))
	r.current = key

	if heading, ok := container.Query(headingSelector); ok {
		heading.SetAttr("tabindex", "-1")
		heading.Focus()
	}

	for _, hook := range r.hooks[key] {
		if err := hook(ctx, r.doc); err != nil {
			r.logger.Warn("Page hook failed", "page", key, "error", err)
		}
	}

	for _, fn := range r.rendered {
		fn(key)
	}
	if r.publisher != nil {
		err := pubsub.Publish(ctx, r.publisher, pubsub.PageRendered,
			pubsub.PageRenderedPayload{Page: string(key)},
			map[string]string{"page": string(key)})
		if err != nil {
			r.logger.Warn("Failed to publish page render", "page", key, "error", err)
		}
	}
	r.logger.Debug("Page loaded", "page", key)
	return nil
}

// declaredIDs collects every id attribute in markup.
func declaredIDs(markup string, logger *slog.Logger) map[string]bool {
	ids := make(map[string]bool)
	if markup == "" {
		return ids
	}
	nodes, err := templates.ToNodes(markup)
	if err != nil {
		logger.Warn("Failed to parse home template", "error", err)
		return ids
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == "id" && a.Val != "" {
					ids[a.Val] = true
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return ids
}
