package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vango-dev/htmlnode/pkg/node"
)

func TestRenderPage(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	page := Page{
		Title: "Test Page",
		Body:  parent("main", leaf("h1", "Hello")),
	}

	got, err := renderer.RenderPageToString(page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "<!DOCTYPE html>\n" +
		`<html lang="en"><head><title>Test Page</title></head>` +
		"<body><main><h1>Hello</h1></main></body></html>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderPageOptions(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	page := Page{
		Lang: "de",
		Head: []node.Node{
			node.NewLeaf("style", "body{margin:0}", node.Props{}),
		},
		Body:      leaf("p", "Hallo"),
		BodyProps: node.NewProps(node.Attribute("class", "dark")),
	}

	got, err := renderer.RenderPageToString(page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		`<html lang="de">`,
		"<head><style>body{margin:0}</style></head>",
		`<body class="dark"><p>Hallo</p></body>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
	if strings.Contains(got, "<title>") {
		t.Errorf("empty title should not emit a title element: %q", got)
	}
}

func TestRenderPageEmptyBody(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	got, err := renderer.RenderPageToString(Page{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(got, "<head></head><body></body></html>") {
		t.Errorf("got %q", got)
	}
}

func TestRenderPageInvalidBody(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	err := renderer.RenderPage(&buf, Page{Title: "x", Body: node.NewParent("", []node.Node{}, node.Props{})})
	if !errors.Is(err, node.ErrInvalidParent) {
		t.Fatalf("err = %v, want ErrInvalidParent", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %q, want no output", buf.String())
	}
}

func TestPageTree(t *testing.T) {
	tree := Page{Title: "T"}.Tree()
	if tree.Tag() != "html" {
		t.Errorf("Tag() = %q", tree.Tag())
	}
	if v, _ := tree.Props().Get("lang"); v != "en" {
		t.Errorf("lang = %q, want en", v)
	}
	if len(tree.Children()) != 2 {
		t.Errorf("children = %d, want head and body", len(tree.Children()))
	}
}
