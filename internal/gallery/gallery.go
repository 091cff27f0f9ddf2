// Package gallery renders the photo grid of the home page.
package gallery

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/nfrund/esperanca/internal/dom"
	"github.com/nfrund/esperanca/internal/templates"
)

const (
	// ContainerID is the element the photos are rendered into.
	ContainerID = "dynamic-gallery"

	// PhotoTemplateName is the registry name of PhotoTemplate.
	PhotoTemplateName = "gallery.photo"

	// PhotoTemplate is the markup of one photo.
	PhotoTemplate = `<img src="{{img}}" width="200" height="200" alt="{{alt}}" loading="lazy">`
)

// Gallery renders a catalog through the photo template.
type Gallery struct {
	items    []Item
	registry *templates.Registry
	policy   *bluemonday.Policy
	logger   *slog.Logger
}

// New creates a Gallery and registers PhotoTemplate in registry unless it
// already holds one. A nil registry gets a private one.
func New(items []Item, registry *templates.Registry, logger *slog.Logger) *Gallery {
	if registry == nil {
		registry = templates.NewRegistry()
	}
	if !registry.Has(PhotoTemplateName) {
		registry.Register(PhotoTemplateName, PhotoTemplate)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Gallery{
		items:    append([]Item(nil), items...),
		registry: registry,
		policy:   bluemonday.StrictPolicy(),
		logger:   logger,
	}
}

// Items returns the catalog in display order.
func (g *Gallery) Items() []Item {
	return append([]Item(nil), g.items...)
}

// Markup renders every item, in order, as one string.
func (g *Gallery) Markup() (string, error) {
	var b strings.Builder
	for _, item := range g.items {
		html, err := g.registry.Execute(PhotoTemplateName, map[string]any{
			"img": g.policy.Sanitize(item.ImageRef),
			"alt": g.policy.Sanitize(item.AltText),
		})
		if err != nil {
			return "", fmt.Errorf("rendering %s: %w", item.ImageRef, err)
		}
		b.WriteString(html)
	}
	return b.String(), nil
}

// Render fills #dynamic-gallery. A page without the container is left alone.
func (g *Gallery) Render(ctx context.Context, doc dom.Document) error {
	container, ok := doc.ElementByID(ContainerID)
	if !ok {
		g.logger.Debug("Gallery container not present, skipping", "id", ContainerID)
		return nil
	}
	markup, err := g.Markup()
	if err != nil {
		return err
	}
	container.SetInnerHTML(markup)
	return nil
}
