// Package ui holds the page furniture shared by every route: the toast
// notifier, the collapsible menu and the light/dark theme toggle.
package ui

import (
	"time"

	"github.com/nfrund/esperanca/internal/dom"
)

// Notifier shows a transient message to the user.
type Notifier interface {
	Show(msg string, d time.Duration)
}

// DefaultToastDuration is how long a toast stays visible when no duration is given.
const DefaultToastDuration = 3 * time.Second

// ToastClass marks the single toast element.
const ToastClass = "spa-toast"

var toastStyle = [][2]string{
	{"position", "fixed"},
	{"right", "1rem"},
	{"bottom", "1rem"},
	{"background", "#222"},
	{"color", "#fff"},
	{"padding", "0.75rem 1rem"},
	{"border-radius", "6px"},
	{"box-shadow", "0 4px 12px rgba(0,0,0,0.15)"},
	{"z-index", "9999"},
	{"opacity", "0"},
	{"transition", "opacity .25s ease"},
}

// Toast is a Notifier backed by one live-region element appended to body on
// first use. Showing a new message replaces the text and restarts the timer.
type Toast struct {
	doc      dom.Document
	sched    dom.Scheduler
	duration time.Duration

	el     dom.Element
	cancel func()
}

var _ Notifier = (*Toast)(nil)

// NewToast creates a Toast. A non-positive duration selects DefaultToastDuration.
func NewToast(doc dom.Document, sched dom.Scheduler, duration time.Duration) *Toast {
	if duration <= 0 {
		duration = DefaultToastDuration
	}
	return &Toast{doc: doc, sched: sched, duration: duration}
}

// Show displays msg for d, or for the toast's default duration when d <= 0.
// Without a body element it does nothing.
func (t *Toast) Show(msg string, d time.Duration) {
	if d <= 0 {
		d = t.duration
	}
	el, ok := t.element()
	if !ok {
		return
	}
	el.SetText(msg)
	el.SetStyle("opacity", "1")

	if t.cancel != nil {
		t.cancel()
	}
	t.cancel = t.sched.AfterFunc(d, func() {
		el.SetStyle("opacity", "0")
		t.cancel = nil
	})
}

func (t *Toast) element() (dom.Element, bool) {
	if t.el != nil {
		return t.el, true
	}
	if existing, ok := t.doc.Query("." + ToastClass); ok {
		t.el = existing
		return existing, true
	}
	body, ok := t.doc.Body()
	if !ok {
		return nil, false
	}

	el := t.doc.CreateElement("div")
	el.SetClassName(ToastClass)
	el.SetAttr("role", "alert")
	el.SetAttr("aria-live", "assertive")
	for _, s := range toastStyle {
		el.SetStyle(s[0], s[1])
	}
	body.AppendChild(el)
	t.el = el
	return el, true
}
