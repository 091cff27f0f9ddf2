package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/labstack/echo/v4"
)

// Component is anything that writes itself as HTML, such as a gomponents.Node.
type Component interface {
	Render(w io.Writer) error
}

// Renderer defines the contract for rendering components for HTTP responses.
type Renderer interface {
	// RenderComponent renders a component to a slice of bytes.
	RenderComponent(ctx context.Context, component Component) ([]byte, error)

	// RenderPage writes a full HTML response.
	RenderPage(c echo.Context, status int, component Component) error
}

// NodeRenderer renders gomponents trees. It also satisfies echo.Renderer so
// handlers can call c.Render(status, "", node).
type NodeRenderer struct{}

var (
	_ Renderer      = (*NodeRenderer)(nil)
	_ echo.Renderer = (*NodeRenderer)(nil)
)

// NewNodeRenderer creates a new NodeRenderer instance.
func NewNodeRenderer() *NodeRenderer {
	return &NodeRenderer{}
}

func (r *NodeRenderer) render(component any, w io.Writer) error {
	c, ok := component.(Component)
	if !ok {
		return fmt.Errorf("unsupported component type: %T. Component must implement Render(io.Writer) error", component)
	}
	return c.Render(w)
}

// RenderComponent implements the Renderer interface.
func (r *NodeRenderer) RenderComponent(ctx context.Context, component Component) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.render(component, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements the Renderer interface. The page is rendered before
// anything is written so a failure can still become an error response.
func (r *NodeRenderer) RenderPage(c echo.Context, status int, component Component) error {
	body, err := r.RenderComponent(c.Request().Context(), component)
	if err != nil {
		return err
	}
	return c.HTMLBlob(status, body)
}

// Render implements echo.Renderer. The component is passed as data; name is ignored.
func (r *NodeRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return r.render(data, w)
}
