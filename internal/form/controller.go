// Package form drives the volunteer registration form: it validates on
// submit, annotates invalid fields, masks the CPF and phone inputs while the
// user types and persists accepted registrations.
package form

import (
	"context"
	"log/slog"
	"time"

	"github.com/nfrund/esperanca/internal/dom"
	"github.com/nfrund/esperanca/internal/domain"
	"github.com/nfrund/esperanca/internal/pages"
	"github.com/nfrund/esperanca/internal/pubsub"
	"github.com/nfrund/esperanca/internal/ui"
	"github.com/nfrund/esperanca/internal/validation"
)

// Selector finds the registration form.
const Selector = "form." + pages.FormClass

// State is where the controller is in handling a submission.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateRejected
	StateAccepted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateRejected:
		return "rejected"
	case StateAccepted:
		return "accepted"
	default:
		return "unknown"
	}
}

// Outcome reports what a submission did.
type Outcome int

const (
	// OutcomeRejected means validation failed and nothing was saved.
	OutcomeRejected Outcome = iota
	// OutcomeAccepted means the record was saved and the form cleared.
	OutcomeAccepted
	// OutcomeFailed means the record was valid but could not be saved.
	OutcomeFailed
)

// Deps are the controller's collaborators. Repository and Notifier are
// required; the rest have defaults.
type Deps struct {
	Validator  *Validator
	Repository domain.VolunteerRepository
	Notifier   ui.Notifier
	Publisher  pubsub.Publisher
	Logger     *slog.Logger
	Now        func() time.Time
}

// Controller binds to one form at a time.
type Controller struct {
	validator *Validator
	repo      domain.VolunteerRepository
	notifier  ui.Notifier
	publisher pubsub.Publisher
	logger    *slog.Logger
	now       func() time.Time

	state  State
	doc    dom.Document
	detach []func()
}

// NewController creates a Controller.
func NewController(deps Deps) *Controller {
	c := &Controller{
		validator: deps.Validator,
		repo:      deps.Repository,
		notifier:  deps.Notifier,
		publisher: deps.Publisher,
		logger:    deps.Logger,
		now:       deps.Now,
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.validator == nil {
		c.validator = NewValidator(validation.DefaultPolicy(), c.now)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// State returns the current state. Between submissions it is always StateIdle.
func (c *Controller) State() State {
	return c.state
}

func (c *Controller) setState(s State) {
	c.logger.Debug("Form state", "from", c.state, "to", s)
	c.state = s
}

// Bind attaches the controller to the registration form in doc, replacing
// any earlier binding. It reports false when doc has no form.
func (c *Controller) Bind(ctx context.Context, doc dom.Document) bool {
	c.Detach()

	form, ok := doc.Query(Selector)
	if !ok {
		c.logger.Debug("Registration form not present, skipping")
		return false
	}
	c.doc = doc

	form.SetAttr("novalidate", "")
	c.detach = append(c.detach, form.AddEventListener("submit", func(ev dom.Event) {
		ev.PreventDefault()
		c.Submit(ctx, form)
	}))
	c.mask(form, pages.FieldCPF, validation.MaskNationalID)
	c.mask(form, pages.FieldPhone, validation.MaskPhone)
	return true
}

func (c *Controller) mask(form dom.Element, field string, mask func(string) string) {
	el, ok := form.Query("#" + field)
	if !ok {
		return
	}
	c.detach = append(c.detach, el.AddEventListener("input", func(dom.Event) {
		if masked := mask(el.Value()); masked != el.Value() {
			el.SetValue(masked)
		}
	}))
}

// Detach removes every listener Bind attached.
func (c *Controller) Detach() {
	for _, remove := range c.detach {
		remove()
	}
	c.detach = nil
	c.doc = nil
}

// Validate checks values against the controller's rules.
func (c *Controller) Validate(values map[string]string) Result {
	return c.validator.Validate(values)
}

// Rules returns the rule table the controller validates with.
func (c *Controller) Rules() []FieldRules {
	return c.validator.Rules()
}

// Submit validates form and, when valid, saves it. The bound document is used
// to build field annotations.
func (c *Controller) Submit(ctx context.Context, form dom.Element) Outcome {
	c.setState(StateValidating)

	fields := c.fields(form)
	for _, el := range fields {
		ClearAnnotation(el)
	}

	values := make(map[string]string, len(fields))
	for name, el := range fields {
		values[name] = el.Value()
	}

	res := c.validator.Validate(values)
	if !res.Valid() {
		c.setState(StateRejected)
		c.annotate(fields, res)
		c.notify(MsgFixErrors)
		c.setState(StateIdle)
		return OutcomeRejected
	}

	record := domain.NewVolunteerRecord(Serialize(form), c.now())
	if err := c.repo.Append(ctx, record); err != nil {
		c.logger.Error("Failed to save volunteer", "error", err)
		c.notify(MsgSaveFailed)
		c.setState(StateIdle)
		return OutcomeFailed
	}

	c.setState(StateAccepted)
	c.notify(MsgRegistered)
	Reset(form)
	if c.publisher != nil {
		if err := pubsub.Publish(ctx, c.publisher, pubsub.VolunteerRegistered, record, nil); err != nil {
			c.logger.Warn("Failed to publish registration", "error", err)
		}
	}
	c.setState(StateIdle)
	return OutcomeAccepted
}

// fields finds the controls named in the rule table.
func (c *Controller) fields(form dom.Element) map[string]dom.Element {
	out := make(map[string]dom.Element)
	for _, fr := range c.validator.Rules() {
		if el, ok := form.Query("#" + fr.Field); ok {
			out[fr.Field] = el
		}
	}
	return out
}

func (c *Controller) annotate(fields map[string]dom.Element, res Result) {
	if c.doc == nil {
		return
	}
	for _, fe := range res.Errors {
		if el, ok := fields[fe.Field]; ok {
			Annotate(c.doc, el, fe.Message)
		}
	}
}

func (c *Controller) notify(msg string) {
	if c.notifier != nil {
		c.notifier.Show(msg, 0)
	}
}
