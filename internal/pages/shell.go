package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/esperanca/internal/domain"
)

// Ids of the elements every page shares.
const (
	ContainerID   = "app-container"
	MenuToggleID  = "menu-toggle"
	MenuID        = "menu"
	ThemeToggleID = "theme-toggle"
)

// ShellOptions configure the document that hosts the pages.
type ShellOptions struct {
	Title string
	// StaticPrefix is the URL path the stylesheet and wasm bundle are served under.
	StaticPrefix string
	// WasmFile is the bundle name under StaticPrefix; empty omits the loader.
	WasmFile string
}

// DefaultShellOptions returns the options used by the static host.
func DefaultShellOptions() ShellOptions {
	return ShellOptions{
		Title:        "ONG Brasil Esperança",
		StaticPrefix: "/static",
		WasmFile:     "esperanca.wasm",
	}
}

type menuLink struct {
	href, label string
}

var menuLinks = []menuLink{
	{"#" + string(domain.PageHome), "Início"},
	{"#" + AnchorAbout, "Sobre"},
	{"#" + AnchorProjects, "Projetos"},
	{"#" + string(domain.PageRegister), "Seja Voluntário"},
	{"#" + string(domain.PageDonate), "Doações"},
	{"#" + AnchorLocation, "Localização"},
}

const wasmLoader = `const go = new Go();
WebAssembly.instantiateStreaming(fetch(document.currentScript.dataset.wasm), go.importObject)
  .then((result) => go.run(result.instance));`

// Shell is the single document the router renders pages into. The content
// container starts empty.
func Shell(opts ShellOptions) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("pt-BR"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				cmp.El("title", cmp.Text(opts.Title)),
				g.Link(g.Rel("stylesheet"), g.Href(opts.StaticPrefix+"/css/style.css")),
			),
			g.Body(
				g.Header(
					g.Class("cabecalho"),
					g.A(g.Href("#"+string(domain.PageHome)), g.Class("logo"), cmp.Text(opts.Title)),
					g.Button(
						g.ID(MenuToggleID), g.Type("button"),
						cmp.Attr("aria-label", "Abrir menu"),
						cmp.Text("☰"),
					),
					g.Nav(
						g.Ul(
							g.ID(MenuID),
							cmp.Map(menuLinks, func(l menuLink) cmp.Node {
								return g.Li(g.A(g.Href(l.href), cmp.Text(l.label)))
							}),
						),
					),
					g.Button(
						g.ID(ThemeToggleID), g.Type("button"),
						cmp.Attr("aria-label", "Alternar tema"),
					),
				),
				g.Main(g.ID(ContainerID)),
				g.Footer(g.P(cmp.Text("© ONG Brasil Esperança"))),
				cmp.If(opts.WasmFile != "", cmp.Group{
					g.Script(g.Src(opts.StaticPrefix + "/wasm_exec.js")),
					g.Script(
						cmp.Attr("data-wasm", opts.StaticPrefix+"/"+opts.WasmFile),
						cmp.Raw(wasmLoader),
					),
				}),
			),
		),
	)
}
