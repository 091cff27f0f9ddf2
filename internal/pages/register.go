package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/esperanca/internal/domain"
)

// FormClass marks the volunteer registration form.
const FormClass = "volunteer-form"

// Field ids, which double as the submitted field names.
const (
	FieldName      = "name"
	FieldCPF       = "cpf"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldBirthdate = "birthdate"
	FieldAddress   = "address"
	FieldCEP       = "cep"
	FieldCity      = "city"
	FieldUpdates   = "updates"
)

func field(id, label, inputType, placeholder string) cmp.Node {
	return g.Div(
		g.Label(g.Class("form"), g.For(id), cmp.Text(label)),
		g.Input(
			g.Type(inputType), g.ID(id), g.Name(id),
			cmp.If(placeholder != "", g.Placeholder(placeholder)),
		),
	)
}

func radio(id, value, label string) cmp.Node {
	return cmp.Group{
		g.Input(g.Type("radio"), g.Name(FieldUpdates), g.ID(id), g.Value(value)),
		g.Label(g.For(id), cmp.Text(label)),
	}
}

// RegisterContent is the volunteer registration page.
func RegisterContent() cmp.Node {
	return cmp.Group{
		g.Div(g.Class("voltar"), g.A(g.Href("#"+string(domain.PageHome)), cmp.Text("Voltar para a página inicial"))),
		g.Div(
			g.Class("container-cadastro"),
			g.H1(cmp.Text("Inscreva-se como voluntário")),
			g.P(cmp.Text("Preencha o formulário abaixo para fazer parte da ONG Brasil Esperança.")),
		),
		g.Section(
			g.Class("pagina-cadastro"),
			g.Form(
				g.Class(FormClass),
				g.FieldSet(
					g.Class("container-formulario"),
					g.Legend(cmp.Text("Dados Pessoais")),
					field(FieldName, "Nome Completo:", "text", "Seu nome"),
					field(FieldCPF, "CPF:", "text", "XXX.XXX.XXX-XX"),
					field(FieldEmail, "Email:", "email", "seuemail@exemplo.com"),
					field(FieldPhone, "Telefone:", "tel", "(XX) XXXXX-XXXX"),
					field(FieldBirthdate, "Data de Nascimento:", "date", ""),
				),
				g.FieldSet(
					g.Class("container-endereco"),
					g.Legend(cmp.Text("Endereço")),
					field(FieldAddress, "Endereço:", "text", "Seu endereço completo"),
					field(FieldCEP, "CEP:", "text", "XXXXX-XXX"),
					field(FieldCity, "Cidade:", "text", "Sua cidade"),
				),
				g.FieldSet(
					g.Class("radio"),
					g.Legend(cmp.Text("Preferências")),
					g.Div(
						g.P(cmp.Text("Deseja receber atualizações do projeto?")),
						radio("updates-yes", "sim", "Sim"),
						radio("updates-no", "nao", "Não"),
					),
				),
				g.Div(
					g.Class("btn-form"),
					g.Button(g.Class("bt-form1"), g.Type("submit"), cmp.Text("Voluntário!")),
				),
			),
		),
	}
}
