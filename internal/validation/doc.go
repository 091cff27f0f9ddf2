// Package validation holds the pure checks behind the volunteer form:
// the CPF checksum, phone, e-mail and CEP shapes, the coarse age helper and
// the input masks. None of it touches the DOM.
//
// NewValidator exposes the same checks as go-playground/validator tags so
// callers can describe field rules declaratively:
//
//	v := validation.NewValidator(time.Now)
//	err := v.Var("529.982.247-25", "cpf")
package validation
