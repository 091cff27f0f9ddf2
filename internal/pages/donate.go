package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/esperanca/internal/domain"
)

var bankDetails = []string{
	"Tipo de Conta: Conta Corrente",
	"Banco: 001 - Banco do Brasil",
	"Agência: 1234",
	"Conta: 56789-0",
	"Favorecido: ONG Brasil Esperança",
}

type projectCard struct {
	img, title, body, tag string
}

var projectCards = []projectCard{
	{"img/8.jpg", "Projeto Esperança", "Iniciativa de inclusão social para jovens da comunidade.", "Educação"},
	{"img/6.jpg", "Cuidar é Amar", "Apoio a famílias em vulnerabilidade social.", "Saúde"},
}

// DonateContent is the donations page.
func DonateContent() cmp.Node {
	return g.Div(
		g.Class("container-projetos"),
		g.Div(g.Class("voltar"), g.A(g.Href("#"+string(domain.PageHome)), cmp.Text("Voltar para a página inicial"))),
		g.Div(
			g.Class("section-grid-doacoes"),
			g.Section(
				g.Class("section"),
				g.H2(cmp.Text("Sua doação faz a diferença!")),
				g.A(g.Href("https://www.paypal.com/donate"), g.Target("_blank"), g.Rel("noopener noreferrer"), cmp.Text("Doe Agora")),
			),
			g.Section(
				g.Class("section"),
				g.H2(cmp.Text("Por que doar?")),
				g.P(cmp.Text("Na ONG Brasil Esperança acreditamos que pequenas atitudes podem gerar grandes mudanças. Suas doações tornam possíveis projetos que levam educação, alimentação e dignidade a famílias em situação de vulnerabilidade.")),
			),
			g.Section(
				g.Class("section"),
				g.H2(cmp.Text("Seu apoio pode garantir:")),
				g.Ul(
					g.Li(cmp.Text("🍽️ Refeições para crianças em risco de fome")),
					g.Li(cmp.Text("📚 Materiais escolares e apoio educacional")),
					g.Li(cmp.Text("🏡 Acolhimento a famílias em situação de vulnerabilidade")),
				),
				g.Strong(cmp.Text("Juntos, podemos espalhar esperança.")),
			),
		),
		g.Section(
			g.Class("section-doacoes"),
			g.H2(cmp.Text("Formas de Doação:")),
			g.Div(
				g.Class("formasdedoacoes"),
				g.Div(g.Class("pix"), g.H3(cmp.Text("Doação via Pix")), g.P(cmp.Text("Chave Pix: 1234567890"))),
				g.H3(cmp.Text("Transferência Bancária")),
				g.Ul(cmp.Map(bankDetails, func(s string) cmp.Node { return g.Li(cmp.Text(s)) })),
			),
		),
		g.Section(
			g.Class("galeria-fotos-grid-12"),
			cmp.Map(projectCards, func(c projectCard) cmp.Node {
				return g.Div(
					g.Class("col-3 card"),
					g.Img(g.Src(c.img), g.Alt(c.title)),
					g.H3(cmp.Text(c.title)),
					g.P(cmp.Text(c.body)),
					g.Span(g.Class("tag"), cmp.Text(c.tag)),
				)
			}),
		),
		g.Div(
			g.Class("doacoes"),
			g.P(g.Strong(cmp.Text("🔒 Doação 100% segura."))),
			g.P(cmp.Text("Cada centavo é investido com transparência e responsabilidade.")),
			g.P(cmp.Text("Acompanhe nossos relatórios e veja o impacto da sua contribuição.")),
		),
	)
}
