package render

import (
	"context"
	"io"
	"strings"

	"github.com/vango-dev/htmlnode/pkg/node"
)

const doctype = "<!DOCTYPE html>\n"

// Page contains all data needed to render a complete HTML document.
type Page struct {
	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Title is the page title. No title element is emitted when empty.
	Title string

	// Head contains extra nodes appended to the head element.
	Head []node.Node

	// Body is the page content. A nil Body renders an empty body element.
	Body node.Node

	// BodyProps are attributes for the body element.
	BodyProps node.Props
}

// lang returns the page language with the default applied.
func (p Page) lang() string {
	if p.Lang == "" {
		return "en"
	}
	return p.Lang
}

// HeadNode builds the head element.
func (p Page) HeadNode() *node.Parent {
	children := make([]node.Node, 0, len(p.Head)+1)
	if p.Title != "" {
		children = append(children, node.NewLeaf("title", p.Title, node.Props{}))
	}
	children = append(children, p.Head...)
	return node.NewParent("head", children, node.Props{})
}

// BodyNode builds the body element.
func (p Page) BodyNode() *node.Parent {
	return node.NewParent("body", []node.Node{p.Body}, p.BodyProps)
}

// Tree builds the html element for the page.
func (p Page) Tree() *node.Parent {
	return node.NewParent("html",
		[]node.Node{p.HeadNode(), p.BodyNode()},
		node.NewProps(node.Attribute("lang", p.lang())),
	)
}

// RenderPage renders a complete HTML document with DOCTYPE.
func (r *Renderer) RenderPage(w io.Writer, page Page) error {
	return r.RenderPageContext(context.Background(), w, page)
}

// RenderPageContext is RenderPage with a context for tracing.
func (r *Renderer) RenderPageContext(ctx context.Context, w io.Writer, page Page) error {
	tree := page.Tree()
	return r.run(ctx, w, tree, func(w io.Writer) error {
		if _, err := io.WriteString(w, doctype); err != nil {
			return err
		}
		return r.renderNode(w, tree, 0)
	})
}

// RenderPageToString renders a complete HTML document to a string.
func (r *Renderer) RenderPageToString(page Page) (string, error) {
	var b strings.Builder
	if err := r.RenderPage(&b, page); err != nil {
		return "", err
	}
	return b.String(), nil
}
