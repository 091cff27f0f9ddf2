// Package app assembles a page session: every component the site runs,
// wired against one dom.Host and one key/value store.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/do/v2"

	"github.com/nfrund/esperanca/internal/config"
	"github.com/nfrund/esperanca/internal/dom"
	"github.com/nfrund/esperanca/internal/domain"
	"github.com/nfrund/esperanca/internal/form"
	"github.com/nfrund/esperanca/internal/gallery"
	"github.com/nfrund/esperanca/internal/pages"
	"github.com/nfrund/esperanca/internal/pubsub"
	"github.com/nfrund/esperanca/internal/router"
	"github.com/nfrund/esperanca/internal/storage"
	"github.com/nfrund/esperanca/internal/templates"
	"github.com/nfrund/esperanca/internal/ui"
)

// Clock supplies the current time.
type Clock func() time.Time

// Dependencies holds what the host provides. Publisher, Logger and Now are
// optional.
type Dependencies struct {
	Config    *config.Config
	Host      dom.Host
	Store     storage.KeyValue
	Publisher pubsub.Publisher
	Logger    *slog.Logger
	Now       Clock
}

// NewInjector registers every service of a page session.
func NewInjector(deps Dependencies) do.Injector {
	if deps.Config == nil {
		deps.Config = config.Default()
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	i := do.New()
	do.ProvideValue(i, deps.Config)
	do.ProvideValue(i, deps.Logger)
	do.ProvideValue(i, deps.Now)
	do.ProvideValue[dom.Document](i, deps.Host.Document)
	do.ProvideValue[dom.Window](i, deps.Host.Window)
	do.ProvideValue[dom.Scheduler](i, deps.Host.Scheduler)
	do.ProvideValue[storage.KeyValue](i, deps.Store)

	bus := deps.Publisher
	do.Provide(i, func(do.Injector) (*pubsub.SessionPublisher, error) {
		if bus == nil {
			bus = pubsub.NewWatermillBridge(deps.Logger)
		}
		return pubsub.NewSessionPublisher(bus), nil
	})

	do.Provide(i, func(i do.Injector) (*storage.VolunteerList, error) {
		return storage.NewVolunteerList(do.MustInvoke[storage.KeyValue](i), do.MustInvoke[*slog.Logger](i)), nil
	})
	do.Provide(i, func(i do.Injector) (*ui.Toast, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return ui.NewToast(do.MustInvoke[dom.Document](i), do.MustInvoke[dom.Scheduler](i), cfg.ToastDuration), nil
	})
	do.Provide(i, func(i do.Injector) (*ui.Menu, error) {
		return ui.NewMenu(do.MustInvoke[*slog.Logger](i)), nil
	})
	do.Provide(i, func(i do.Injector) (*ui.Theme, error) {
		return ui.NewTheme(do.MustInvoke[storage.KeyValue](i), do.MustInvoke[*slog.Logger](i)), nil
	})
	do.Provide(i, func(do.Injector) (*templates.Registry, error) {
		return templates.NewRegistry(), nil
	})
	do.Provide(i, func(i do.Injector) (*gallery.Gallery, error) {
		return gallery.New(gallery.DefaultCatalog(), do.MustInvoke[*templates.Registry](i), do.MustInvoke[*slog.Logger](i)), nil
	})
	do.Provide(i, func(i do.Injector) (*form.Controller, error) {
		cfg := do.MustInvoke[*config.Config](i)
		now := do.MustInvoke[Clock](i)
		return form.NewController(form.Deps{
			Validator:  form.NewValidator(cfg.Policy(), now),
			Repository: do.MustInvoke[*storage.VolunteerList](i),
			Notifier:   do.MustInvoke[*ui.Toast](i),
			Publisher:  do.MustInvoke[*pubsub.SessionPublisher](i),
			Logger:     do.MustInvoke[*slog.Logger](i),
			Now:        now,
		}), nil
	})
	do.Provide(i, newRouter)

	return i
}

func newRouter(i do.Injector) (*router.Router, error) {
	tmpl, err := pages.Templates()
	if err != nil {
		return nil, err
	}
	cfg := do.MustInvoke[*config.Config](i)
	r := router.New(do.MustInvoke[dom.Document](i), do.MustInvoke[dom.Window](i), router.Options{
		Templates:   tmpl,
		DefaultPage: cfg.Page(),
		Publisher:   do.MustInvoke[*pubsub.SessionPublisher](i),
		Logger:      do.MustInvoke[*slog.Logger](i),
	})

	g := do.MustInvoke[*gallery.Gallery](i)
	ctrl := do.MustInvoke[*form.Controller](i)
	r.OnEnter(domain.PageHome, g.Render)
	r.OnEnter(domain.PageRegister, func(ctx context.Context, doc dom.Document) error {
		ctrl.Bind(ctx, doc)
		return nil
	})
	return r, nil
}

// Page is a running page session.
type Page struct {
	Router     *router.Router
	Form       *form.Controller
	Volunteers *storage.VolunteerList
	Toast      *ui.Toast
	Events     *pubsub.SessionPublisher

	doc   dom.Document
	menu  *ui.Menu
	theme *ui.Theme
}

// New builds a page session.
func New(deps Dependencies) (*Page, error) {
	i := NewInjector(deps)

	r, err := do.Invoke[*router.Router](i)
	if err != nil {
		return nil, err
	}
	return &Page{
		Router:     r,
		Form:       do.MustInvoke[*form.Controller](i),
		Volunteers: do.MustInvoke[*storage.VolunteerList](i),
		Toast:      do.MustInvoke[*ui.Toast](i),
		Events:     do.MustInvoke[*pubsub.SessionPublisher](i),
		doc:        do.MustInvoke[dom.Document](i),
		menu:       do.MustInvoke[*ui.Menu](i),
		theme:      do.MustInvoke[*ui.Theme](i),
	}, nil
}

// Start binds the menu and theme toggle and starts routing.
func (p *Page) Start(ctx context.Context) {
	p.menu.Init(p.doc)
	p.theme.Init(ctx, p.doc)
	p.Router.Start(ctx)
}

// Stop detaches the page's listeners.
func (p *Page) Stop() {
	p.Router.Stop()
	p.Form.Detach()
	p.menu.Detach()
}
