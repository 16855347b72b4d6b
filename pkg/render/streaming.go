package render

import (
	"context"
	"io"
	"net/http"
)

// StreamingRenderer renders pages to an HTTP response in two flushed
// chunks: everything up to the end of head, then the body.
type StreamingRenderer struct {
	*Renderer
	w       io.Writer
	flusher http.Flusher
}

// NewStreamingRenderer creates a streaming renderer for w. Flushing is a
// no-op when w does not implement http.Flusher.
func NewStreamingRenderer(w http.ResponseWriter, config RendererConfig) *StreamingRenderer {
	s := &StreamingRenderer{Renderer: NewRenderer(config), w: w}
	s.flusher, _ = w.(http.Flusher)
	return s
}

// RenderPage renders a complete HTML document, flushing after the head.
// The whole page is validated before anything is written.
func (s *StreamingRenderer) RenderPage(page Page) error {
	return s.RenderPageContext(context.Background(), page)
}

// RenderPageContext is RenderPage with a context for tracing. The page
// is recorded as a single render and matches Renderer.RenderPage byte for
// byte.
func (s *StreamingRenderer) RenderPageContext(ctx context.Context, page Page) error {
	root := page.Tree()
	return s.run(ctx, s.w, root, func(w io.Writer) error {
		newline := ""
		if s.config.Pretty {
			newline = "\n"
		}

		steps := []func() error{
			func() error { return writeStrings(w, doctype, "<html", root.PropsToHTML(), ">", newline) },
			func() error { return s.renderNode(w, page.HeadNode(), 1) },
			s.flush,
			func() error { return s.renderNode(w, page.BodyNode(), 1) },
			func() error { return writeStrings(w, "</html>", newline) },
			s.flush,
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *StreamingRenderer) flush() error {
	if s.flusher != nil {
		s.flusher.Flush()
	}
	return nil
}

// FlushableWriter is an io.Writer that counts Flush calls, for exercising
// StreamingRenderer outside an HTTP server.
type FlushableWriter struct {
	io.Writer
	FlushCount int
}

// Flush implements http.Flusher.
func (w *FlushableWriter) Flush() {
	w.FlushCount++
}
