// Package headless implements the dom interfaces over an in-memory
// x/net/html tree, using goquery for selectors and mutation.
//
// A Document plays the browser's document, window and event loop at once.
// Nothing runs on its own: events fire when Dispatch or SetHash is called and
// timers fire when Advance moves the virtual clock. Not safe for concurrent
// use, like the page it stands in for.
package headless

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/nfrund/esperanca/internal/dom"
)

// Document is an in-memory page.
type Document struct {
	doc *goquery.Document

	listeners map[*html.Node][]*listener
	active    *html.Node

	hash          string
	hashListeners []*hashListener
	scrolls       []string

	clock
}

type listener struct {
	event string
	fn    dom.Listener
}

type hashListener struct {
	fn func()
}

var (
	_ dom.Document  = (*Document)(nil)
	_ dom.Window    = (*Document)(nil)
	_ dom.Scheduler = (*Document)(nil)
)

// ScrollTop is the entry recorded in Scrolls for a scroll to the top.
const ScrollTop = "top"

// New parses markup as a full HTML document.
func New(markup string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return &Document{
		doc:       doc,
		listeners: make(map[*html.Node][]*listener),
	}, nil
}

// ElementByID implements dom.Document.
func (d *Document) ElementByID(id string) (dom.Element, bool) {
	if id == "" {
		return nil, false
	}
	var found *html.Node
	d.doc.Find("[id]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if v, _ := s.Attr("id"); v == id {
			found = s.Nodes[0]
			return false
		}
		return true
	})
	if found == nil {
		return nil, false
	}
	return d.wrap(found), true
}

// Query implements dom.Document.
func (d *Document) Query(selector string) (dom.Element, bool) {
	return d.first(d.doc.Selection, selector)
}

// Body implements dom.Document.
func (d *Document) Body() (dom.Element, bool) {
	return d.Query("body")
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tag string) dom.Element {
	tag = strings.ToLower(tag)
	return d.wrap(&html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	})
}

// HTML renders the whole document.
func (d *Document) HTML() (string, error) {
	return goquery.OuterHtml(d.doc.Selection)
}

// ActiveElement returns the focused element, if any.
func (d *Document) ActiveElement() (dom.Element, bool) {
	if d.active == nil || !attached(d.active) {
		return nil, false
	}
	return d.wrap(d.active), true
}

// Scrolls returns every scroll performed so far: ScrollTop for the window, or
// "#id" for ScrollIntoView.
func (d *Document) Scrolls() []string {
	return append([]string(nil), d.scrolls...)
}

// LastScroll returns the most recent Scrolls entry, or "".
func (d *Document) LastScroll() string {
	if len(d.scrolls) == 0 {
		return ""
	}
	return d.scrolls[len(d.scrolls)-1]
}

// ListenerCount reports how many listeners for event are attached to el.
func (d *Document) ListenerCount(el dom.Element, event string) int {
	e, ok := el.(*element)
	if !ok {
		return 0
	}
	n := 0
	for _, l := range d.listeners[e.node] {
		if l.event == event {
			n++
		}
	}
	return n
}

// Dispatch fires event at el and returns it so callers can inspect
// DefaultPrevented.
func (d *Document) Dispatch(el dom.Element, eventType string) *Event {
	e := el.(*element)
	ev := &Event{typ: eventType, target: e}
	for _, l := range append([]*listener(nil), d.listeners[e.node]...) {
		if l.event == eventType {
			l.fn(ev)
		}
	}
	return ev
}

// Type replaces the value of el and fires an input event, like a keystroke.
func (d *Document) Type(el dom.Element, value string) {
	el.SetValue(value)
	d.Dispatch(el, "input")
}

// Click fires a click event at el.
func (d *Document) Click(el dom.Element) {
	d.Dispatch(el, "click")
}

// Hash implements dom.Window.
func (d *Document) Hash() string {
	return d.hash
}

// SetHash changes the fragment and fires hashchange when it differs, the way
// a browser does.
func (d *Document) SetHash(hash string) {
	if hash != "" && !strings.HasPrefix(hash, "#") {
		hash = "#" + hash
	}
	if hash == d.hash {
		return
	}
	d.hash = hash
	for _, l := range append([]*hashListener(nil), d.hashListeners...) {
		l.fn()
	}
}

// OnHashChange implements dom.Window.
func (d *Document) OnHashChange(fn func()) func() {
	l := &hashListener{fn: fn}
	d.hashListeners = append(d.hashListeners, l)
	return func() {
		for i, h := range d.hashListeners {
			if h == l {
				d.hashListeners = append(d.hashListeners[:i], d.hashListeners[i+1:]...)
				return
			}
		}
	}
}

// ScrollToTop implements dom.Window.
func (d *Document) ScrollToTop() {
	d.scrolls = append(d.scrolls, ScrollTop)
}

func (d *Document) wrap(n *html.Node) *element {
	return &element{doc: d, node: n}
}

func (d *Document) first(s *goquery.Selection, selector string) (dom.Element, bool) {
	found := s.Find(selector).First()
	if found.Length() == 0 {
		return nil, false
	}
	return d.wrap(found.Nodes[0]), true
}

// forget drops listeners and focus held by n and its descendants.
func (d *Document) forget(n *html.Node) {
	delete(d.listeners, n)
	if d.active == n {
		d.active = nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.forget(c)
	}
}

func attached(n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p.Type == html.DocumentNode {
			return true
		}
	}
	return false
}

// Event is a dispatched headless event.
type Event struct {
	typ       string
	target    dom.Element
	prevented bool
}

// Type implements dom.Event.
func (e *Event) Type() string { return e.typ }

// Target implements dom.Event.
func (e *Event) Target() dom.Element { return e.target }

// PreventDefault implements dom.Event.
func (e *Event) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *Event) DefaultPrevented() bool { return e.prevented }
