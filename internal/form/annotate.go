package form

import (
	"github.com/nfrund/esperanca/internal/dom"
)

// ErrorClass marks the message element placed after an invalid field.
const ErrorClass = "field-error"

// ErrorID returns the id of the message element for field.
func ErrorID(field string) string {
	return field + "-error"
}

var errorStyle = [][2]string{
	{"color", "#b71c1c"},
	{"font-size", "0.85rem"},
	{"display", "block"},
	{"margin-top", "0.25rem"},
}

// Annotate marks field invalid and places message right after it, replacing
// any previous message.
func Annotate(doc dom.Document, field dom.Element, message string) {
	ClearAnnotation(field)

	span := doc.CreateElement("span")
	span.SetClassName(ErrorClass)
	span.SetText(message)
	span.SetAttr("id", ErrorID(field.ID()))
	for _, s := range errorStyle {
		span.SetStyle(s[0], s[1])
	}

	field.SetAttr("aria-describedby", ErrorID(field.ID()))
	field.SetAttr("aria-invalid", "true")
	field.InsertAfter(span)
}

// ClearAnnotation removes the message and invalid marks from field.
func ClearAnnotation(field dom.Element) {
	if next, ok := field.NextElementSibling(); ok && next.HasClass(ErrorClass) {
		next.Remove()
	}
	field.RemoveAttr("aria-describedby")
	field.RemoveAttr("aria-invalid")
}
