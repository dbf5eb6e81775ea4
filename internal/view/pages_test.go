package view_test

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/arco/demo/internal/view"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestHealth_ContainsOK(t *testing.T) {
	out := render(t, view.Health())
	if !regexp.MustCompile(`(?i)ok`).MatchString(out) {
		t.Fatalf("expected output to contain ok, got %q", out)
	}
}

func TestVersion_ContainsVersion(t *testing.T) {
	out := render(t, view.Version())
	if !regexp.MustCompile(`(?i)0\.0\.1`).MatchString(out) {
		t.Fatalf("expected output to contain 0.0.1, got %q", out)
	}
}

func TestViews_AreIdempotent(t *testing.T) {
	tests := []struct {
		name string
		c    func() templ.Component
	}{
		{"version", view.Version},
		{"health", view.Health},
		{"not found", func() templ.Component { return view.NotFound("/missing") }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			first := render(t, tc.c())
			second := render(t, tc.c())
			if first != second {
				t.Fatalf("renders differ:\n%s\n%s", first, second)
			}
		})
	}
}

func TestLayout_IsCompleteDocument(t *testing.T) {
	out := render(t, view.Health())
	if !strings.HasPrefix(strings.ToLower(out), "<!doctype html>") || !strings.HasSuffix(out, "</html>") {
		t.Fatalf("expected a full HTML document, got %q", out)
	}
	if !strings.Contains(out, "<title>Health</title>") {
		t.Fatalf("expected Health title, got %q", out)
	}
}

func TestNotFound_EscapesPath(t *testing.T) {
	out := render(t, view.NotFound(`/<script>alert(1)</script>`))
	if strings.Contains(out, "<script>") {
		t.Fatalf("path was not escaped: %q", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Fatalf("expected escaped path in output, got %q", out)
	}
	if !strings.Contains(out, "not found") {
		t.Fatalf("expected not found text, got %q", out)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRender_PropagatesWriteError(t *testing.T) {
	if err := view.Version().Render(context.Background(), failingWriter{}); err == nil {
		t.Fatal("expected write error to be returned")
	}
}
