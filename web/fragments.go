package web

import (
	"fmt"

	"rdrive/drive"

	"github.com/rohanthewiz/element"
)

// FilesListing renders one directory as the #listing fragment that htmx
// swaps in place on navigation and after mutations.
type FilesListing struct {
	Result drive.FilesResult
}

// Render implements the element.Component interface
func (f FilesListing) Render(b *element.Builder) (x any) {
	res := f.Result

	b.Div("id", "listing", "class", "listing").R(
		b.Div("class", "listing-header").R(
			b.Span("class", "listing-path").T(displayPath(res.Path)),
			func() any {
				if res.Parent != nil {
					href := browseHref(*res.Parent)
					b.A("class", "parent-link", "href", href,
						"hx-get", href, "hx-target", "#listing", "hx-swap", "outerHTML").
						T("⬑ up")
				}
				return nil
			}(),
		),
		b.Table("class", "listing-table").R(
			b.Tr().R(
				b.Th().T("Name"),
				b.Th().T("Type"),
				b.Th().T("Size"),
				b.Th().R(),
			),
			element.ForEach(res.Files, func(fi drive.FileInfo) {
				renderEntryRow(b, res.Path, fi)
			}),
		),
	)
	return
}

func renderEntryRow(b *element.Builder, dirPath string, fi drive.FileInfo) {
	href := browseHref(dirPath + "/" + fi.Name)

	b.Tr("class", "entry-row").R(
		b.Td("class", "entry-name").R(
			func() any {
				if fi.IsDir {
					b.A("href", href, "hx-get", href,
						"hx-target", "#listing", "hx-swap", "outerHTML").
						T(fi.Name + "/")
				} else {
					b.A("href", href).T(fi.Name)
				}
				return nil
			}(),
		),
		b.Td("class", "entry-type").T(entryType(fi)),
		b.Td("class", "entry-size").T(entrySize(fi)),
		b.Td("class", "entry-actions").R(
			b.Button("class", "btn-delete",
				"hx-delete", href,
				"hx-target", "#listing", "hx-swap", "outerHTML",
				"hx-confirm", fmt.Sprintf("Delete %s?", fi.Name)).
				T("delete"),
		),
	)
}

// QueryResults renders a search outcome fragment
type QueryResults struct {
	Query string
	Files []drive.FileInfo
}

// Render implements the element.Component interface
func (q QueryResults) Render(b *element.Builder) (x any) {
	b.Div("id", "results", "class", "query-results").R(
		b.Div("class", "results-header").T(
			fmt.Sprintf("%d result(s) for %q", len(q.Files), q.Query)),
		b.Ul().R(
			element.ForEach(q.Files, func(fi drive.FileInfo) {
				b.Li("class", "result-item").R(
					func() any {
						if fi.IsDir {
							b.Span("class", "result-dir").T(fi.Name + "/")
						} else {
							b.Span("class", "result-file").T(fi.Name)
							b.Span("class", "result-type").T(" — " + entryType(fi))
						}
						return nil
					}(),
				)
			}),
		),
	)
	return
}

func filesListingFragment(res drive.FilesResult) string {
	b := element.NewBuilder()
	element.RenderComponents(b, FilesListing{Result: res})
	return b.String()
}

func queryResultsFragment(query string, files []drive.FileInfo) string {
	b := element.NewBuilder()
	element.RenderComponents(b, QueryResults{Query: query, Files: files})
	return b.String()
}

// toastFragment is the transient confirmation message appended after a
// mutation response; the UI fades it out client-side.
func toastFragment(message string) string {
	b := element.NewBuilder()
	b.Div("class", "toast", "id", "toast").T(message)
	return b.String()
}

func uploadSummaryToast(summary []saveSummary) string {
	b := element.NewBuilder()
	b.Div("class", "toast", "id", "toast").R(
		element.ForEach(summary, func(s saveSummary) {
			cls := "summary-ok"
			if s.IsError {
				cls = "summary-err"
			}
			b.Div("class", cls).T(s.Message)
		}),
	)
	return b.String()
}

func displayPath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

func browseHref(p string) string {
	if p == "" || p == "/" {
		return "/"
	}
	return p
}

func entryType(fi drive.FileInfo) string {
	if fi.IsDir {
		return "folder"
	}
	if fi.FileType == nil {
		return ""
	}
	return fi.FileType.FType
}

func entrySize(fi drive.FileInfo) string {
	if fi.IsDir || fi.Metadata == nil || fi.Metadata.Size == nil {
		return ""
	}
	return formatSize(*fi.Metadata.Size)
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
