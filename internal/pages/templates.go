// Package pages builds the markup of every routable page and of the shell
// document that hosts them.
package pages

import (
	"fmt"
	"strings"

	cmp "maragu.dev/gomponents"

	"github.com/nfrund/esperanca/internal/domain"
)

// Content returns the node tree for key.
func Content(key domain.PageKey) (cmp.Node, bool) {
	switch key {
	case domain.PageHome:
		return HomeContent(), true
	case domain.PageRegister:
		return RegisterContent(), true
	case domain.PageDonate:
		return DonateContent(), true
	default:
		return nil, false
	}
}

// Render writes node to a string.
func Render(node cmp.Node) (string, error) {
	var b strings.Builder
	if err := node.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Templates renders every page once. The result is meant to be treated as
// read-only.
func Templates() (map[domain.PageKey]string, error) {
	out := make(map[domain.PageKey]string, len(domain.PageKeys))
	for _, key := range domain.PageKeys {
		node, _ := Content(key)
		html, err := Render(node)
		if err != nil {
			return nil, fmt.Errorf("rendering page %s: %w", key, err)
		}
		out[key] = html
	}
	return out, nil
}

// MustTemplates is Templates for program start-up.
func MustTemplates() map[domain.PageKey]string {
	t, err := Templates()
	if err != nil {
		panic(err)
	}
	return t
}
