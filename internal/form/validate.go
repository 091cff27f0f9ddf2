package form

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nfrund/esperanca/internal/validation"
)

// FieldError is the message reported for one field.
type FieldError struct {
	Field   string
	Message string
}

// Result is the outcome of one validation pass. Failures are values, not errors.
type Result struct {
	Errors []FieldError
}

// Valid reports whether every field passed.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Message returns the message for field, if it failed.
func (r Result) Message(field string) (string, bool) {
	for _, e := range r.Errors {
		if e.Field == field {
			return e.Message, true
		}
	}
	return "", false
}

// Fields returns the failing fields in rule order.
func (r Result) Fields() []string {
	out := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		out[i] = e.Field
	}
	return out
}

// Validator runs a rule table over field values.
type Validator struct {
	rules []FieldRules
	v     *validator.Validate
}

// NewValidator creates a Validator for the default rule table under policy.
// now supplies the date the minimum age is measured against.
func NewValidator(policy validation.Policy, now func() time.Time) *Validator {
	return NewValidatorWithRules(DefaultRules(policy), now)
}

// NewValidatorWithRules creates a Validator for an arbitrary rule table.
func NewValidatorWithRules(rules []FieldRules, now func() time.Time) *Validator {
	return &Validator{rules: rules, v: validation.NewValidator(now)}
}

// Rules returns the table the validator runs.
func (v *Validator) Rules() []FieldRules {
	return v.rules
}

// Validate checks every field present in values and collects one message per
// failing field, the first failing rule winning. Fields missing from values
// are not checked.
func (v *Validator) Validate(values map[string]string) Result {
	var res Result
	for _, fr := range v.rules {
		value, ok := values[fr.Field]
		if !ok {
			continue
		}
		for _, rule := range fr.Rules {
			if err := v.v.Var(value, rule.Tag); err != nil {
				res.Errors = append(res.Errors, FieldError{Field: fr.Field, Message: rule.Message})
				break
			}
		}
	}
	return res
}
