// Package dom describes the small slice of a browser document the engine
// needs. Two hosts implement it: dom/browser wraps the real DOM through
// syscall/js, and dom/headless keeps an x/net/html tree in memory for tests
// and the command-line tools.
//
// All hosts are single-threaded: listeners run synchronously on the caller's
// goroutine and deferred work goes through a Scheduler.
package dom

import "time"

// Event is a dispatched DOM event.
type Event interface {
	Type() string
	Target() Element
	PreventDefault()
}

// Listener handles an event.
type Listener func(Event)

// Element is a node in the document.
type Element interface {
	ID() string
	TagName() string

	Attr(name string) (string, bool)
	SetAttr(name, value string)
	RemoveAttr(name string)

	HasClass(name string) bool
	AddClass(name string)
	RemoveClass(name string)
	// ToggleClass flips name and reports whether it is now present.
	ToggleClass(name string) bool
	SetClassName(name string)
	SetStyle(property, value string)

	// Value is the current value of a form control.
	Value() string
	SetValue(value string)
	Checked() bool
	SetChecked(checked bool)

	Text() string
	SetText(text string)
	// SetInnerHTML replaces all children with the parsed markup.
	SetInnerHTML(markup string)

	Query(selector string) (Element, bool)
	QueryAll(selector string) []Element
	NextElementSibling() (Element, bool)
	InsertAfter(el Element)
	AppendChild(el Element)
	Remove()

	Focus()
	// ScrollIntoView smooth-scrolls the viewport to the element.
	ScrollIntoView()

	// AddEventListener attaches fn and returns a func that detaches it.
	AddEventListener(event string, fn Listener) (remove func())
}

// Document is the page the engine renders into.
type Document interface {
	ElementByID(id string) (Element, bool)
	Query(selector string) (Element, bool)
	Body() (Element, bool)
	// CreateElement returns a detached element.
	CreateElement(tag string) Element
}

// Window exposes the location fragment and viewport.
type Window interface {
	// Hash returns the fragment including the leading '#', or "".
	Hash() string
	// OnHashChange registers fn for fragment changes and returns a func that
	// unregisters it.
	OnHashChange(fn func()) (remove func())
	// ScrollToTop smooth-scrolls the viewport to the top.
	ScrollToTop()
}

// Scheduler runs deferred callbacks on the host's event loop.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

// Host bundles the collaborators a running page provides.
type Host struct {
	Document  Document
	Window    Window
	Scheduler Scheduler
}
