package headless

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/nfrund/esperanca/internal/dom"
)

type element struct {
	doc  *Document
	node *html.Node
}

var _ dom.Element = (*element)(nil)

func (e *element) sel() *goquery.Selection {
	return goquery.NewDocumentFromNode(e.node).Selection
}

func (e *element) ID() string {
	id, _ := e.Attr("id")
	return id
}

func (e *element) TagName() string {
	return e.node.Data
}

func (e *element) Attr(name string) (string, bool) {
	return e.sel().Attr(name)
}

func (e *element) SetAttr(name, value string) {
	e.sel().SetAttr(name, value)
}

func (e *element) RemoveAttr(name string) {
	e.sel().RemoveAttr(name)
}

func (e *element) HasClass(name string) bool {
	return e.sel().HasClass(name)
}

func (e *element) AddClass(name string) {
	e.sel().AddClass(name)
}

func (e *element) RemoveClass(name string) {
	e.sel().RemoveClass(name)
}

func (e *element) ToggleClass(name string) bool {
	e.sel().ToggleClass(name)
	return e.HasClass(name)
}

func (e *element) SetClassName(name string) {
	e.SetAttr("class", name)
}

func (e *element) SetStyle(property, value string) {
	current, _ := e.Attr("style")
	var decls []string
	replaced := false
	for _, decl := range strings.Split(current, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		name, _, _ := strings.Cut(decl, ":")
		if strings.TrimSpace(name) == property {
			decl = property + ": " + value
			replaced = true
		}
		decls = append(decls, decl)
	}
	if !replaced {
		decls = append(decls, property+": "+value)
	}
	e.SetAttr("style", strings.Join(decls, "; "))
}

// Style returns the value of one inline style property.
func Style(el dom.Element, property string) string {
	style, _ := el.Attr("style")
	for _, decl := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if ok && strings.TrimSpace(name) == property {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func (e *element) Value() string {
	switch e.node.Data {
	case "textarea":
		return e.Text()
	case "select":
		opt := e.sel().Find("option[selected]").First()
		if opt.Length() == 0 {
			opt = e.sel().Find("option").First()
		}
		if v, ok := opt.Attr("value"); ok {
			return v
		}
		return opt.Text()
	default:
		v, _ := e.Attr("value")
		return v
	}
}

func (e *element) SetValue(value string) {
	if e.node.Data == "textarea" {
		e.SetText(value)
		return
	}
	e.SetAttr("value", value)
}

func (e *element) Checked() bool {
	_, ok := e.Attr("checked")
	return ok
}

func (e *element) SetChecked(checked bool) {
	if checked {
		e.SetAttr("checked", "")
		return
	}
	e.RemoveAttr("checked")
}

func (e *element) Text() string {
	return e.sel().Text()
}

func (e *element) SetText(text string) {
	e.forgetChildren()
	e.sel().SetText(text)
}

func (e *element) SetInnerHTML(markup string) {
	e.forgetChildren()
	e.sel().SetHtml(markup)
}

func (e *element) Query(selector string) (dom.Element, bool) {
	return e.doc.first(e.sel(), selector)
}

func (e *element) QueryAll(selector string) []dom.Element {
	var out []dom.Element
	e.sel().Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, e.doc.wrap(s.Nodes[0]))
	})
	return out
}

func (e *element) NextElementSibling() (dom.Element, bool) {
	for s := e.node.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return e.doc.wrap(s), true
		}
	}
	return nil, false
}

func (e *element) InsertAfter(el dom.Element) {
	other := el.(*element)
	if e.node.Parent == nil {
		return
	}
	detach(other.node)
	e.node.Parent.InsertBefore(other.node, e.node.NextSibling)
}

func (e *element) AppendChild(el dom.Element) {
	other := el.(*element)
	detach(other.node)
	e.node.AppendChild(other.node)
}

func (e *element) Remove() {
	e.doc.forget(e.node)
	detach(e.node)
}

func (e *element) Focus() {
	e.doc.active = e.node
}

func (e *element) ScrollIntoView() {
	e.doc.scrolls = append(e.doc.scrolls, "#"+e.ID())
}

func (e *element) AddEventListener(event string, fn dom.Listener) func() {
	l := &listener{event: event, fn: fn}
	e.doc.listeners[e.node] = append(e.doc.listeners[e.node], l)
	return func() {
		ls := e.doc.listeners[e.node]
		for i, candidate := range ls {
			if candidate == l {
				e.doc.listeners[e.node] = append(ls[:i:i], ls[i+1:]...)
				return
			}
		}
	}
}

func (e *element) forgetChildren() {
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		e.doc.forget(c)
	}
}

func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}
