package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/esperanca/internal/domain"
	"github.com/nfrund/esperanca/internal/gallery"
)

// Anchor ids declared by the home page.
const (
	AnchorAbout     = "sobre"
	AnchorInfo      = "informacoes"
	AnchorProjects  = "projetos"
	AnchorLocation  = "localizacao"
	AnchorDonateNow = "donate-now"
)

type infoCard struct {
	title, body string
}

var infoCards = []infoCard{
	{"Missão", "Promover a transformação social por meio de ações solidárias, educativas e sustentáveis, contribuindo para o bem-estar e o desenvolvimento das comunidades."},
	{"Visão", "Ser reconhecida como uma organização de referência no impacto social positivo, inspirando a construção de uma sociedade mais justa, humana e igualitária."},
	{"Valores", "Ética, transparência, empatia, respeito, comprometimento e trabalho coletivo orientam todas as nossas ações e decisões."},
	{"Histórico e Conquistas", "Desde a nossa fundação trabalhamos para promover mudanças positivas nas comunidades que atendemos, com programas educacionais, campanhas de saúde e iniciativas de sustentabilidade que impactaram milhares de vidas."},
	{"Equipe e Estrutura Organizacional", "Nossa equipe é composta por profissionais dedicados e voluntários apaixonados pela causa social, com uma estrutura que nos permite planejar, executar e monitorar nossos projetos."},
	{"Relatórios de Transparência", "Disponibilizamos relatórios anuais com nossas atividades, finanças e impacto social. A confiança é fundamental para fortalecer nossa relação com apoiadores, parceiros e a comunidade."},
}

// HomeContent is the landing page. The gallery container is left empty and
// filled by the gallery hook after the page is loaded.
func HomeContent() cmp.Node {
	return cmp.Group{
		g.Section(
			g.Class("introduction"),
			g.Div(
				g.Class("initial-introduction"),
				g.H2(cmp.Text("Bem-vindo à ONG Brasil Esperança")),
				g.P(cmp.Text("Nosso compromisso é ajudar comunidades carentes através de diversos projetos sociais. Junte-se a nós nessa missão!")),
				g.Div(g.A(g.Href("#"+string(domain.PageDonate)), g.Class("btn"), cmp.Text("Saiba Mais"))),
			),
		),
		g.Section(
			g.ID(AnchorAbout), g.Class("sobre"),
			g.Div(
				g.Class("container"),
				g.H2(cmp.Text("Sobre Nós")),
				g.P(cmp.Text("A ONG Brasil Esperança é uma organização não governamental dedicada a promover o bem-estar social e o desenvolvimento sustentável em comunidades vulneráveis. Fundada em 2010, atua em educação, saúde, meio ambiente e assistência social.")),
			),
		),
		g.Section(
			g.ID(AnchorInfo), g.Class("informacoes"),
			g.H2(cmp.Text("Informações:")),
			g.Div(
				g.Class("container"),
				g.Div(
					g.Class("informacoes-grid"),
					cmp.Map(infoCards, func(c infoCard) cmp.Node {
						return g.Article(g.Class("info-card"), g.H2(cmp.Text(c.title)), g.P(cmp.Text(c.body)))
					}),
				),
			),
		),
		g.Section(
			g.ID(AnchorProjects), g.Class("projetos"),
			g.H2(cmp.Text("Projetos:")),
			g.Div(g.Class("galeria-fotos"), g.ID(gallery.ContainerID)),
		),
		g.Section(
			g.ID(AnchorDonateNow), g.Class("chamada-doacao"),
			g.H2(cmp.Text("Doe agora")),
			g.P(cmp.Text("Cada contribuição leva alimentação, educação e dignidade a famílias em situação de vulnerabilidade.")),
			g.A(g.Href("#"+string(domain.PageDonate)), g.Class("btn"), cmp.Text("Quero doar")),
		),
		g.Section(
			g.ID(AnchorLocation), g.Class("localizacao"),
			g.Div(
				g.Class("container"),
				g.H2(cmp.Text("Localização")),
				g.Div(
					g.Class("localizacao-info"),
					g.P(cmp.Text("Endereço: R. Figueiredo Camargo, 137 - Bangu, Rio de Janeiro - RJ, CEP 21875-020")),
					g.P(cmp.Text("Celular: (21) 99999-9999")),
					g.P(cmp.Text("Email: contato@ongbrasilesperanca.com.br")),
				),
				g.Div(
					g.Class("mapa"),
					g.IFrame(
						g.Src(mapEmbedURL),
						g.Width("500"), g.Height("350"),
						cmp.Attr("loading", "lazy"),
						cmp.Attr("referrerpolicy", "no-referrer-when-downgrade"),
						cmp.Attr("allowfullscreen", ""),
						cmp.Attr("title", "Mapa da sede"),
					),
				),
			),
		),
	}
}

const mapEmbedURL = "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d14704.514710513371!2d-43.47014094458007!3d-22.8717045!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x99602a74114a15%3A0xb5d085b1ba398c06!2sONG%20Brasil%20Esperan%C3%A7a%20entregas%20de%20cestas!5e0!3m2!1spt-BR!2sbr!4v1760487815223!5m2!1spt-BR!2sbr"
