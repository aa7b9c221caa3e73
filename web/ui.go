package web

import (
	"rdrive/drive"

	"github.com/rohanthewiz/element"
)

// indexPage is the full browse page: chrome, search, upload and new-folder
// forms, and the listing fragment for the requested directory. htmx swaps
// the #listing fragment in place for subsequent navigation.
func indexPage(listing drive.FilesResult) string {
	b := element.NewBuilder()

	b.Html().R(
		b.Head().R(
			b.Title().T("RDrive"),
			b.Meta("charset", "UTF-8"),
			b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
			b.Script("src", "https://cdn.jsdelivr.net/npm/htmx.org@1.9.12/dist/htmx.min.js").R(),
			b.Style().T(uiCSS),
		),
		b.Body().R(
			b.Div("id", "app").R(
				b.Header().R(
					b.H1().T("RDrive"),
					b.Form("class", "search-form",
						"hx-post", "/", "hx-target", "#results", "hx-swap", "outerHTML").R(
						b.Input("type", "text", "name", "query", "placeholder", "Search files...",
							"class", "search-input"),
						b.Button("type", "submit", "class", "btn-primary").T("Search"),
					),
				),
				b.Main().R(
					b.Div("class", "actions").R(
						b.Form("class", "new-folder-form",
							"hx-put", putHref(listing.Path),
							"hx-target", "#listing", "hx-swap", "outerHTML").R(
							b.Input("type", "text", "name", "new_folder", "placeholder", "New folder name"),
							b.Button("type", "submit", "class", "btn-secondary").T("Create folder"),
						),
						b.Form("class", "upload-form",
							"hx-put", putHref(listing.Path),
							"hx-encoding", "multipart/form-data",
							"hx-target", "#listing", "hx-swap", "outerHTML").R(
							b.Input("type", "file", "name", "file", "multiple", "multiple"),
							b.Button("type", "submit", "class", "btn-secondary").T("Upload"),
						),
					),
					b.Div("id", "results").R(),
					func() any {
						element.RenderComponents(b, FilesListing{Result: listing})
						return nil
					}(),
				),
			),
		),
	)

	return b.String()
}

func putHref(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

const uiCSS = `
:root { --fg: #e6e6e6; --bg: #1d2026; --accent: #4f8cc9; --muted: #8a8f98; }
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, sans-serif; background: var(--bg); color: var(--fg); }
#app { max-width: 860px; margin: 0 auto; padding: 1rem; }
header { display: flex; align-items: center; justify-content: space-between; gap: 1rem; }
h1 { font-size: 1.3rem; color: var(--accent); }
.search-form, .actions { display: flex; gap: 0.5rem; margin: 0.5rem 0; }
input[type=text] { background: #272b33; border: 1px solid #3a3f4a; color: var(--fg); padding: 0.4rem 0.6rem; border-radius: 4px; }
button { background: var(--accent); color: #fff; border: 0; padding: 0.4rem 0.8rem; border-radius: 4px; cursor: pointer; }
.btn-secondary { background: #3a3f4a; }
.btn-delete { background: transparent; color: var(--muted); }
.btn-delete:hover { color: #d9534f; }
.listing-table { width: 100%; border-collapse: collapse; margin-top: 0.5rem; }
.listing-table th { text-align: left; color: var(--muted); font-weight: normal; border-bottom: 1px solid #3a3f4a; padding: 0.3rem; }
.listing-table td { padding: 0.3rem; border-bottom: 1px solid #272b33; }
.entry-name a { color: var(--fg); text-decoration: none; }
.entry-name a:hover { color: var(--accent); }
.entry-type, .entry-size { color: var(--muted); font-size: 0.85rem; }
.listing-header { display: flex; gap: 1rem; align-items: baseline; margin-top: 0.75rem; }
.listing-path { font-family: monospace; color: var(--accent); }
.parent-link { color: var(--muted); text-decoration: none; }
.query-results { margin: 0.5rem 0; }
.results-header { color: var(--muted); font-size: 0.9rem; }
.toast { position: fixed; bottom: 1rem; right: 1rem; background: #272b33; border: 1px solid var(--accent); padding: 0.6rem 1rem; border-radius: 4px; }
.summary-err { color: #d9534f; }
`
