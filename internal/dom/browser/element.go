//go:build js && wasm

package browser

import (
	"syscall/js"

	"github.com/nfrund/esperanca/internal/dom"
)

type element struct {
	v js.Value
}

var _ dom.Element = (*element)(nil)

func (e *element) ID() string { return e.v.Get("id").String() }

func (e *element) TagName() string {
	return js.Global().Get("String").New(e.v.Get("tagName")).Call("toLowerCase").String()
}

func (e *element) Attr(name string) (string, bool) {
	if !e.v.Call("hasAttribute", name).Bool() {
		return "", false
	}
	return e.v.Call("getAttribute", name).String(), true
}

func (e *element) SetAttr(name, value string) { e.v.Call("setAttribute", name, value) }

func (e *element) RemoveAttr(name string) { e.v.Call("removeAttribute", name) }

func (e *element) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

func (e *element) AddClass(name string) { e.v.Get("classList").Call("add", name) }

func (e *element) RemoveClass(name string) { e.v.Get("classList").Call("remove", name) }

func (e *element) ToggleClass(name string) bool {
	return e.v.Get("classList").Call("toggle", name).Bool()
}

func (e *element) SetClassName(name string) { e.v.Set("className", name) }

func (e *element) SetStyle(property, value string) {
	e.v.Get("style").Call("setProperty", property, value)
}

func (e *element) Value() string { return e.v.Get("value").String() }

func (e *element) SetValue(value string) { e.v.Set("value", value) }

func (e *element) Checked() bool { return e.v.Get("checked").Truthy() }

func (e *element) SetChecked(checked bool) { e.v.Set("checked", checked) }

func (e *element) Text() string { return e.v.Get("textContent").String() }

func (e *element) SetText(text string) { e.v.Set("textContent", text) }

func (e *element) SetInnerHTML(markup string) { e.v.Set("innerHTML", markup) }

func (e *element) Query(selector string) (dom.Element, bool) {
	return wrap(e.v.Call("querySelector", selector))
}

func (e *element) QueryAll(selector string) []dom.Element {
	list := e.v.Call("querySelectorAll", selector)
	n := list.Get("length").Int()
	out := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &element{v: list.Call("item", i)})
	}
	return out
}

func (e *element) NextElementSibling() (dom.Element, bool) {
	return wrap(e.v.Get("nextElementSibling"))
}

func (e *element) InsertAfter(el dom.Element) {
	e.v.Call("insertAdjacentElement", "afterend", el.(*element).v)
}

func (e *element) AppendChild(el dom.Element) {
	e.v.Call("appendChild", el.(*element).v)
}

func (e *element) Remove() { e.v.Call("remove") }

func (e *element) Focus() { e.v.Call("focus") }

func (e *element) ScrollIntoView() {
	opts := js.Global().Get("Object").New()
	opts.Set("behavior", "smooth")
	e.v.Call("scrollIntoView", opts)
}

func (e *element) AddEventListener(eventType string, fn dom.Listener) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(&event{v: args[0]})
		return nil
	})
	e.v.Call("addEventListener", eventType, cb)
	return func() {
		e.v.Call("removeEventListener", eventType, cb)
		cb.Release()
	}
}
