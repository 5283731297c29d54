package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func render(t *testing.T, input string) string {
	t.Helper()
	got, err := Render(input)
	if err != nil {
		t.Fatalf("Render(%q) failed: %v", input, err)
	}
	return got
}

func TestRenderHeading(t *testing.T) {
	got := render(t, "# Heading 1")
	if !strings.Contains(got, "<h1") || !strings.Contains(got, "Heading 1") {
		t.Errorf("Render heading failed: %q", got)
	}
}

func TestRenderHeadingID(t *testing.T) {
	got := render(t, "## Provider Aliasing")
	if !strings.Contains(got, `id="provider-aliasing"`) {
		t.Errorf("heading should get an auto id: %q", got)
	}
}

func TestRenderEmphasis(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"*italic*", "<em>italic</em>"},
		{"`code`", "<code>code</code>"},
	}
	for _, tt := range tests {
		got := render(t, tt.input)
		if !strings.Contains(got, tt.want) {
			t.Errorf("Render(%q) = %q, want substring %q", tt.input, got, tt.want)
		}
	}
}

func TestRenderCodeBlockWithLanguage(t *testing.T) {
	got := render(t, "```hcl\nprovider \"aws\" {}\n```")
	if !strings.Contains(got, `<code class="language-hcl">`) {
		t.Errorf("code block should carry the language class: %q", got)
	}
	if !strings.Contains(got, "provider") {
		t.Errorf("code block lost its content: %q", got)
	}
}

func TestRenderCodeBlockEscapesHTML(t *testing.T) {
	got := render(t, "```\n<script>alert(1)</script>\n```")
	if strings.Contains(got, "<script>") {
		t.Errorf("code block content must be escaped: %q", got)
	}
}

func TestRenderList(t *testing.T) {
	got := render(t, "- item 1\n- item 2")
	if !strings.Contains(got, "<ul>") || !strings.Contains(got, "<li>item 1</li>") {
		t.Errorf("Render list failed: %q", got)
	}
}

func TestRenderGFMTable(t *testing.T) {
	got := render(t, "| a | b |\n|---|---|\n| 1 | 2 |")
	if !strings.Contains(got, "<table>") || !strings.Contains(got, "<th>a</th>") {
		t.Errorf("GFM table should render: %q", got)
	}
}

func TestRenderLink(t *testing.T) {
	got := render(t, "[docs](https://example.com/docs)")
	if !strings.Contains(got, `<a href="https://example.com/docs">docs</a>`) {
		t.Errorf("Render link failed: %q", got)
	}
}

func TestMarkdownComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := Markdown("# Title").Render(context.Background(), &buf); err != nil {
		t.Fatalf("component render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<h1") {
		t.Errorf("component output = %q, want heading", buf.String())
	}
}

func TestRawComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := Raw("<p>cached</p>").Render(context.Background(), &buf); err != nil {
		t.Fatalf("raw render failed: %v", err)
	}
	if buf.String() != "<p>cached</p>" {
		t.Errorf("Raw output = %q, want passthrough", buf.String())
	}
}
