package web

import "testing"

func TestRenderModeFor(t *testing.T) {
	tests := []struct {
		name      string
		hxRequest string
		accept    string
		want      renderMode
	}{
		{"htmx request gets fragment", "true", "text/html", renderFragment},
		{"htmx wins over json accept", "true", "application/json", renderFragment},
		{"json accept gets json", "", "application/json", renderJSON},
		{"json anywhere in accept list", "", "text/html, application/json;q=0.9", renderJSON},
		{"plain browser gets page", "", "text/html,application/xhtml+xml", renderPage},
		{"no headers at all gets page", "", "", renderPage},
		{"wildcard accept gets page", "", "*/*", renderPage},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := renderModeFor(tc.hxRequest, tc.accept); got != tc.want {
				t.Errorf("renderModeFor(%q, %q) = %v, want %v", tc.hxRequest, tc.accept, got, tc.want)
			}
		})
	}
}
