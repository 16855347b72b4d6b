// Package render writes node trees as HTML to strings, writers and HTTP
// responses.
//
// node.Node already knows how to render itself with ToHTML. The Renderer
// adds what a server needs around that:
//
//   - Streaming to an io.Writer without building the whole string
//   - Validation before the first byte is written, so a malformed tree
//     never produces partial output
//   - Optional pretty-printed output for development
//   - Full documents with DOCTYPE, head and body
//   - Structured logging, Prometheus metrics and OpenTelemetry spans
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(tree)
//
// To stream HTML to a writer:
//
//	err := renderer.RenderToWriter(w, tree)
//
// # Full Page Rendering
//
//	page := render.Page{
//	    Title: "My Page",
//	    Body:  tree,
//	}
//	err := renderer.RenderPage(w, page)
//
// # Streaming
//
// StreamingRenderer flushes the document head before rendering the body:
//
//	sr := render.NewStreamingRenderer(w, config)
//	err := sr.RenderPage(page)
//
// Output is not escaped. Text, attribute values and tag names are written
// exactly as they appear in the tree.
package render
