package ui

import (
	"log/slog"

	"github.com/nfrund/esperanca/internal/dom"
)

// Element ids and classes used by the menu.
const (
	MenuToggleID = "menu-toggle"
	MenuID       = "menu"
	MenuOpen     = "show"
)

// Menu wires the hamburger button to the navigation list.
type Menu struct {
	logger *slog.Logger
	detach []func()
}

// NewMenu creates a Menu.
func NewMenu(logger *slog.Logger) *Menu {
	if logger == nil {
		logger = slog.Default()
	}
	return &Menu{logger: logger}
}

// Init makes #menu-toggle open and close #menu and closes it when any link
// inside is clicked. Calling Init again replaces the previous binding.
func (m *Menu) Init(doc dom.Document) {
	m.Detach()

	btn, okBtn := doc.ElementByID(MenuToggleID)
	menu, okMenu := doc.ElementByID(MenuID)
	if !okBtn || !okMenu {
		m.logger.Debug("Menu not present, skipping", "toggle", okBtn, "menu", okMenu)
		return
	}

	m.detach = append(m.detach, btn.AddEventListener("click", func(dom.Event) {
		menu.ToggleClass(MenuOpen)
	}))
	for _, link := range menu.QueryAll("a") {
		m.detach = append(m.detach, link.AddEventListener("click", func(dom.Event) {
			menu.RemoveClass(MenuOpen)
		}))
	}
}

// Detach removes every listener Init attached.
func (m *Menu) Detach() {
	for _, remove := range m.detach {
		remove()
	}
	m.detach = nil
}
