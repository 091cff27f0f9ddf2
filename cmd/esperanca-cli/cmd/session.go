package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/afero"

	"github.com/nfrund/esperanca/internal/app"
	"github.com/nfrund/esperanca/internal/dom"
	"github.com/nfrund/esperanca/internal/dom/headless"
	"github.com/nfrund/esperanca/internal/pages"
	"github.com/nfrund/esperanca/internal/pubsub"
	"github.com/nfrund/esperanca/internal/router"
	"github.com/nfrund/esperanca/internal/storage"
)

// session is a page running against the headless document, with the store
// kept in the configured storage directory.
type session struct {
	page *app.Page
	doc  *headless.Document
	bus  *pubsub.WatermillBridge
}

func (o *options) store() *storage.AferoStore {
	return storage.NewAferoStore(afero.NewOsFs(), o.cfg.StorageDir)
}

func (o *options) newSession(ctx context.Context) (*session, error) {
	shell := pages.DefaultShellOptions()
	shell.WasmFile = ""
	markup, err := pages.Render(pages.Shell(shell))
	if err != nil {
		return nil, err
	}
	doc, err := headless.New(markup)
	if err != nil {
		return nil, err
	}

	bus := pubsub.NewWatermillBridge(o.logger)
	err = bus.Subscribe(ctx, pubsub.VolunteerRegistered.Name(), func(_ context.Context, msg pubsub.Message) error {
		record, err := pubsub.Decode(pubsub.VolunteerRegistered, msg)
		if err != nil {
			return err
		}
		o.logger.Info("Volunteer registered", "session_id", msg.SessionID, "saved_at", record.SavedAt)
		return nil
	})
	if err != nil {
		bus.Close()
		return nil, err
	}

	page, err := app.New(app.Dependencies{
		Config:    o.cfg,
		Host:      dom.Host{Document: doc, Window: doc, Scheduler: doc},
		Store:     o.store(),
		Publisher: bus,
		Logger:    o.logger,
	})
	if err != nil {
		bus.Close()
		return nil, err
	}
	page.Start(ctx)
	return &session{page: page, doc: doc, bus: bus}, nil
}

func (s *session) Close() {
	s.page.Stop()
	s.bus.Close()
}

// containerHTML returns what the content container currently shows.
func (s *session) containerHTML() (string, error) {
	markup, err := s.doc.HTML()
	if err != nil {
		return "", err
	}
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("parsing document: %w", err)
	}
	return gq.Find("#" + router.ContainerID).Html()
}
