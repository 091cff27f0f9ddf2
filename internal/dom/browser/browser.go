//go:build js && wasm

// Package browser implements the dom interfaces on top of the real browser
// DOM through syscall/js. It only builds for GOOS=js GOARCH=wasm.
package browser

import (
	"sync"
	"syscall/js"
	"time"

	"github.com/nfrund/esperanca/internal/dom"
)

// Document wraps window.document.
type Document struct {
	doc js.Value
	win js.Value
}

var (
	_ dom.Document  = (*Document)(nil)
	_ dom.Window    = (*Document)(nil)
	_ dom.Scheduler = (*Document)(nil)
)

// New returns the document of the page the module runs in.
func New() *Document {
	return &Document{
		doc: js.Global().Get("document"),
		win: js.Global(),
	}
}

// Host returns the document as a complete dom.Host.
func (d *Document) Host() dom.Host {
	return dom.Host{Document: d, Window: d, Scheduler: d}
}

// ElementByID implements dom.Document.
func (d *Document) ElementByID(id string) (dom.Element, bool) {
	return wrap(d.doc.Call("getElementById", id))
}

// Query implements dom.Document.
func (d *Document) Query(selector string) (dom.Element, bool) {
	return wrap(d.doc.Call("querySelector", selector))
}

// Body implements dom.Document.
func (d *Document) Body() (dom.Element, bool) {
	return wrap(d.doc.Get("body"))
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tag string) dom.Element {
	return &element{v: d.doc.Call("createElement", tag)}
}

// Hash implements dom.Window.
func (d *Document) Hash() string {
	return d.win.Get("location").Get("hash").String()
}

// OnHashChange implements dom.Window.
func (d *Document) OnHashChange(fn func()) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	d.win.Call("addEventListener", "hashchange", cb)
	return func() {
		d.win.Call("removeEventListener", "hashchange", cb)
		cb.Release()
	}
}

// ScrollToTop implements dom.Window.
func (d *Document) ScrollToTop() {
	opts := js.Global().Get("Object").New()
	opts.Set("top", 0)
	opts.Set("behavior", "smooth")
	d.win.Call("scrollTo", opts)
}

// AfterFunc implements dom.Scheduler with setTimeout.
func (d *Document) AfterFunc(delay time.Duration, fn func()) func() {
	var (
		cb      js.Func
		release sync.Once
	)
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		release.Do(cb.Release)
		fn()
		return nil
	})
	id := d.win.Call("setTimeout", cb, delay.Milliseconds())
	return func() {
		d.win.Call("clearTimeout", id)
		release.Do(cb.Release)
	}
}

func wrap(v js.Value) (dom.Element, bool) {
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}
	return &element{v: v}, true
}

type event struct {
	v js.Value
}

func (e *event) Type() string { return e.v.Get("type").String() }

func (e *event) Target() dom.Element {
	el, _ := wrap(e.v.Get("target"))
	return el
}

func (e *event) PreventDefault() { e.v.Call("preventDefault") }
