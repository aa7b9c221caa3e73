package web

import (
	"strings"

	"github.com/rohanthewiz/rweb"
)

type renderMode int

const (
	renderFragment renderMode = iota
	renderJSON
	renderPage
)

// renderModeFor is the two-way content switch shared by all handlers: a
// fragment-capable client (htmx sets HX-Request) always gets fragment HTML;
// JSON goes out only when the Accept header asks for it; everything else
// gets full HTML. Deliberately not general content negotiation — no
// q-values, no ranking — and the default branch favors HTML.
func renderModeFor(hxRequest, accept string) renderMode {
	if hxRequest != "" {
		return renderFragment
	}
	if strings.Contains(accept, "json") {
		return renderJSON
	}
	return renderPage
}

// respondWith renders data as JSON, or through the fragment/page builders,
// per the request's headers. Handlers with no distinct full page pass the
// fragment builder twice.
func respondWith(c rweb.Context, data any, fragment func() string, page func() string) error {
	mode := renderModeFor(c.Request().Header("HX-Request"), c.Request().Header("Accept"))
	switch mode {
	case renderJSON:
		return c.WriteJSON(data)
	case renderFragment:
		return c.WriteHTML(fragment())
	}
	return c.WriteHTML(page())
}
