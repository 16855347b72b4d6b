package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/htmlnode/internal/errors"
	"github.com/vango-dev/htmlnode/pkg/node"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it changes the output.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// Logger receives debug and warning records about renders.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Metrics records render counts, failures and sizes. Optional.
	Metrics *Metrics

	// Tracer creates a span per render. If nil, the global
	// OpenTelemetry tracer provider is used.
	Tracer trace.Tracer
}

// Renderer handles rendering of node trees to HTML.
// A Renderer holds no per-render state and may be shared between goroutines.
type Renderer struct {
	config RendererConfig
	logger *slog.Logger
	tracer trace.Tracer
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tracer := config.Tracer
	if tracer == nil {
		tracer = defaultTracer()
	}
	return &Renderer{
		config: config,
		logger: logger,
		tracer: tracer,
	}
}

// Config returns the renderer configuration with defaults applied.
func (r *Renderer) Config() RendererConfig {
	return r.config
}

// RenderToString renders a node tree to an HTML string.
func (r *Renderer) RenderToString(n node.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a node tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, n node.Node) error {
	return r.Render(context.Background(), w, n)
}

// Render validates n and streams it to w. Nothing is written when the
// tree is malformed; the validation error is returned as is.
func (r *Renderer) Render(ctx context.Context, w io.Writer, n node.Node) error {
	return r.run(ctx, w, n, func(w io.Writer) error {
		return r.renderNode(w, n, 0)
	})
}

// run records one render of tree: one span, one metrics observation and
// one log record. write is called only when tree is valid.
func (r *Renderer) run(ctx context.Context, w io.Writer, tree node.Node, write func(io.Writer) error) error {
	start := time.Now()
	ctx, span := r.startSpan(ctx, tree)
	defer span.End()

	if err := node.Validate(tree); err != nil {
		r.logger.WarnContext(ctx, "render rejected",
			"root", describe(tree),
			"code", errors.CodeOf(err),
			"error", err,
		)
		r.config.Metrics.observe(time.Since(start), 0, 0, err)
		endSpan(span, 0, 0, err)
		return err
	}

	cw := &countingWriter{w: w}
	err := write(cw)
	nodes := countNodes(tree)
	r.config.Metrics.observe(time.Since(start), cw.n, nodes, err)
	endSpan(span, cw.n, nodes, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "render write failed", "root", describe(tree), "error", err)
		return err
	}

	r.logger.DebugContext(ctx, "rendered",
		"root", describe(tree),
		"nodes", nodes,
		"bytes", cw.n,
		"duration", time.Since(start),
	)
	return nil
}

// renderNode dispatches rendering based on node type.
func (r *Renderer) renderNode(w io.Writer, n node.Node, depth int) error {
	switch v := n.(type) {
	case *node.Leaf:
		return r.renderLeaf(w, v, depth)
	case *node.Parent:
		return r.renderParent(w, v, depth)
	default:
		return fmt.Errorf("unknown node type: %T", n)
	}
}

// renderLeaf renders a leaf on its own line in pretty mode, inline otherwise.
func (r *Renderer) renderLeaf(w io.Writer, l *node.Leaf, depth int) error {
	html, err := l.ToHTML()
	if err != nil {
		return err
	}
	if !r.config.Pretty {
		_, err := io.WriteString(w, html)
		return err
	}
	if err := r.writeIndent(w, depth); err != nil {
		return err
	}
	return writeStrings(w, html, "\n")
}

// renderParent renders an element with its attributes and children.
func (r *Renderer) renderParent(w io.Writer, p *node.Parent, depth int) error {
	tag := p.Tag()
	children := p.Children()

	// Inline and empty elements stay on one line when pretty printing
	if r.config.Pretty && (len(children) == 0 || isInlineElement(tag)) {
		html, err := p.ToHTML()
		if err != nil {
			return err
		}
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
		return writeStrings(w, html, "\n")
	}

	if r.config.Pretty {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	// Opening tag
	if err := writeStrings(w, "<", tag, p.PropsToHTML(), ">"); err != nil {
		return err
	}
	if r.config.Pretty {
		if err := writeStrings(w, "\n"); err != nil {
			return err
		}
	}

	for _, child := range children {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}

	// Closing tag
	if r.config.Pretty {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}
	if err := writeStrings(w, "</", tag, ">"); err != nil {
		return err
	}
	if r.config.Pretty {
		return writeStrings(w, "\n")
	}
	return nil
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) error {
	for i := 0; i < depth; i++ {
		if _, err := io.WriteString(w, r.config.Indent); err != nil {
			return err
		}
	}
	return nil
}

// writeStrings writes each string in order, stopping at the first error.
func writeStrings(w io.Writer, parts ...string) error {
	for _, s := range parts {
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}

// countingWriter counts bytes written to the underlying writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// countNodes returns the number of nodes in the tree rooted at n.
func countNodes(n node.Node) int {
	count := 0
	node.Walk(n, func(node.Node, int) bool {
		count++
		return true
	})
	return count
}

// describe returns a short label for the root of a tree in log records.
func describe(n node.Node) string {
	if n == nil {
		return "<nil>"
	}
	if tag := n.Tag(); tag != "" {
		return tag
	}
	return "#text"
}
