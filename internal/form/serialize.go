package form

import (
	"strings"

	"github.com/nfrund/esperanca/internal/dom"
)

const controlSelector = "input[name], select[name], textarea[name]"

// skipped input types never contribute a value.
var skipped = map[string]bool{
	"submit": true, "button": true, "reset": true, "image": true, "file": true,
}

// Serialize collects the named controls of form the way FormData does:
// disabled controls and unchecked radios and checkboxes are left out, and a
// later control overwrites an earlier one with the same name.
func Serialize(form dom.Element) map[string]string {
	out := make(map[string]string)
	for _, el := range form.QueryAll(controlSelector) {
		name, _ := el.Attr("name")
		if name == "" {
			continue
		}
		if _, disabled := el.Attr("disabled"); disabled {
			continue
		}
		typ := inputType(el)
		if skipped[typ] {
			continue
		}
		if typ == "radio" || typ == "checkbox" {
			if !el.Checked() {
				continue
			}
			if v, ok := el.Attr("value"); ok {
				out[name] = v
			} else {
				out[name] = "on"
			}
			continue
		}
		out[name] = el.Value()
	}
	return out
}

// Reset empties every control of form.
func Reset(form dom.Element) {
	for _, el := range form.QueryAll(controlSelector) {
		switch typ := inputType(el); {
		case skipped[typ]:
		case typ == "radio" || typ == "checkbox":
			el.SetChecked(false)
		default:
			el.SetValue("")
		}
	}
}

func inputType(el dom.Element) string {
	if el.TagName() != "input" {
		return ""
	}
	typ, _ := el.Attr("type")
	return strings.ToLower(typ)
}
