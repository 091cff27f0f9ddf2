package templates

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToNodes parses an HTML string into detached nodes in a body context.
// Leading and trailing whitespace is dropped.
// The returned nodes have no parent and can be appended anywhere.
func ToNodes(markup string) ([]*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(strings.NewReader(strings.TrimSpace(markup)), context)
	if err != nil {
		return nil, fmt.Errorf("parsing fragment: %w", err)
	}
	return nodes, nil
}
