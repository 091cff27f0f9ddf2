package headless

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/esperanca/internal/dom"
)

const page = `<!DOCTYPE html>
<html><head><title>t</title></head>
<body>
	<main id="app-container">
		<p>intro</p>
		<h2 id="second">Second</h2>
		<h1 id="first">First</h1>
		<form class="volunteer-form">
			<input id="name" name="name" value="Ana">
			<textarea id="bio" name="bio">hello</textarea>
			<input type="radio" id="yes" name="updates" value="yes" checked>
		</form>
	</main>
</body></html>`

func newDoc(t *testing.T) *Document {
	t.Helper()
	doc, err := New(page)
	require.NoError(t, err)
	return doc
}

func TestDocument_Lookup(t *testing.T) {
	doc := newDoc(t)

	el, ok := doc.ElementByID("app-container")
	require.True(t, ok)
	assert.Equal(t, "main", el.TagName())

	_, ok = doc.ElementByID("missing")
	assert.False(t, ok)

	heading, ok := el.Query("h1, h2")
	require.True(t, ok)
	assert.Equal(t, "second", heading.ID(), "group selectors should match in document order")

	body, ok := doc.Body()
	require.True(t, ok)
	assert.Equal(t, "body", body.TagName())
}

func TestElement_FormControls(t *testing.T) {
	doc := newDoc(t)

	name, _ := doc.ElementByID("name")
	assert.Equal(t, "Ana", name.Value())
	name.SetValue("Bia")
	assert.Equal(t, "Bia", name.Value())

	bio, _ := doc.ElementByID("bio")
	assert.Equal(t, "hello", bio.Value())
	bio.SetValue("")
	assert.Equal(t, "", bio.Value())

	yes, _ := doc.ElementByID("yes")
	assert.True(t, yes.Checked())
	yes.SetChecked(false)
	assert.False(t, yes.Checked())
}

func TestElement_ClassesAndStyle(t *testing.T) {
	doc := newDoc(t)
	el, _ := doc.ElementByID("app-container")

	el.SetClassName("page-home")
	assert.True(t, el.HasClass("page-home"))

	assert.True(t, el.ToggleClass("show"))
	assert.False(t, el.ToggleClass("show"))

	el.SetStyle("opacity", "0")
	el.SetStyle("color", "#fff")
	el.SetStyle("opacity", "1")
	assert.Equal(t, "1", Style(el, "opacity"))
	assert.Equal(t, "#fff", Style(el, "color"))
}

func TestElement_InsertAndRemove(t *testing.T) {
	doc := newDoc(t)
	name, _ := doc.ElementByID("name")

	span := doc.CreateElement("span")
	span.SetAttr("id", "name-error")
	span.SetText("Nome muito curto")
	name.InsertAfter(span)

	next, ok := name.NextElementSibling()
	require.True(t, ok)
	assert.Equal(t, "name-error", next.ID())
	assert.Equal(t, "Nome muito curto", next.Text())

	next.Remove()
	_, ok = doc.ElementByID("name-error")
	assert.False(t, ok)
}

func TestDocument_Events(t *testing.T) {
	doc := newDoc(t)
	form, ok := doc.Query("form.volunteer-form")
	require.True(t, ok)

	calls := 0
	remove := form.AddEventListener("submit", func(e dom.Event) {
		calls++
		e.PreventDefault()
	})
	assert.Equal(t, 1, doc.ListenerCount(form, "submit"))

	ev := doc.Dispatch(form, "submit")
	assert.True(t, ev.DefaultPrevented())
	assert.Equal(t, 1, calls)

	remove()
	doc.Dispatch(form, "submit")
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, doc.ListenerCount(form, "submit"))
}

func TestDocument_SetInnerHTMLDropsListeners(t *testing.T) {
	doc := newDoc(t)
	container, _ := doc.ElementByID("app-container")
	form, _ := doc.Query("form.volunteer-form")
	form.AddEventListener("submit", func(dom.Event) {})
	form.Focus()

	container.SetInnerHTML(`<h2>Nova</h2>`)

	assert.Equal(t, 0, doc.ListenerCount(form, "submit"))
	_, ok := doc.ActiveElement()
	assert.False(t, ok)
	_, ok = doc.Query("form.volunteer-form")
	assert.False(t, ok)
}

func TestDocument_Hash(t *testing.T) {
	doc := newDoc(t)

	changes := 0
	remove := doc.OnHashChange(func() { changes++ })

	doc.SetHash("register")
	assert.Equal(t, "#register", doc.Hash())
	doc.SetHash("#register")
	assert.Equal(t, 1, changes, "identical fragments do not fire")

	remove()
	doc.SetHash("#home")
	assert.Equal(t, 1, changes)
}

func TestDocument_Scrolls(t *testing.T) {
	doc := newDoc(t)
	doc.ScrollToTop()
	el, _ := doc.ElementByID("first")
	el.ScrollIntoView()

	assert.Equal(t, []string{ScrollTop, "#first"}, doc.Scrolls())
	assert.Equal(t, "#first", doc.LastScroll())
}

func TestClock(t *testing.T) {
	doc := newDoc(t)
	var fired []string

	doc.AfterFunc(2*time.Second, func() { fired = append(fired, "b") })
	doc.AfterFunc(time.Second, func() { fired = append(fired, "a") })
	cancel := doc.AfterFunc(time.Second, func() { fired = append(fired, "cancelled") })
	cancel()

	doc.Advance(1500 * time.Millisecond)
	assert.Equal(t, []string{"a"}, fired)
	assert.Equal(t, 1, doc.Pending())

	doc.Advance(time.Second)
	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, 0, doc.Pending())
}
