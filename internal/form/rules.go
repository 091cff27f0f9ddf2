package form

import (
	"strconv"

	"github.com/nfrund/esperanca/internal/pages"
	"github.com/nfrund/esperanca/internal/validation"
)

// User-facing messages.
const (
	MsgNameTooShort      = "Nome muito curto"
	MsgInvalidCPF        = "CPF inválido (use XXX.XXX.XXX-XX)"
	MsgInvalidEmail      = "Email com formato inválido"
	MsgInvalidPhone      = "Telefone inválido"
	MsgBirthdateRequired = "Data de nascimento é obrigatória"
	MsgBirthdateInvalid  = "Data de nascimento inválida"
	MsgTooYoung          = "É necessário ter ao menos 16 anos para se voluntariar"
	MsgInvalidCEP        = "CEP inválido (XXXXX-XXX)"

	MsgFixErrors  = "Corrija os erros do formulário"
	MsgRegistered = "Inscrição recebida! Obrigado por se voluntariar."
	MsgSaveFailed = "Não foi possível salvar sua inscrição. Tente novamente."
)

// Rule is one check on a field: a validator tag and the message shown when
// it fails.
type Rule struct {
	Tag     string
	Message string
}

// FieldRules are the checks for one field, tried in order.
type FieldRules struct {
	Field string
	Rules []Rule
}

// DefaultRules is the registration rule table in evaluation order.
func DefaultRules(policy validation.Policy) []FieldRules {
	tooYoung := MsgTooYoung
	if policy.MinAge != validation.DefaultPolicy().MinAge {
		tooYoung = "É necessário ter ao menos " + strconv.Itoa(policy.MinAge) + " anos para se voluntariar"
	}

	return []FieldRules{
		{pages.FieldName, []Rule{
			{validation.TagMinName + "=" + strconv.Itoa(policy.MinNameLength), MsgNameTooShort},
		}},
		{pages.FieldCPF, []Rule{{validation.TagNationalID, MsgInvalidCPF}}},
		{pages.FieldEmail, []Rule{{validation.TagEmail, MsgInvalidEmail}}},
		{pages.FieldPhone, []Rule{{validation.TagPhone, MsgInvalidPhone}}},
		{pages.FieldBirthdate, []Rule{
			{"required", MsgBirthdateRequired},
			{validation.TagDate, MsgBirthdateInvalid},
			{validation.TagMinAge + "=" + strconv.Itoa(policy.MinAge), tooYoung},
		}},
		{pages.FieldCEP, []Rule{{validation.TagPostalCode, MsgInvalidCEP}}},
	}
}

// Fields returns the field ids of rules in order.
func Fields(rules []FieldRules) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.Field
	}
	return out
}
