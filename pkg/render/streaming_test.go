package render

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/htmlnode/pkg/node"
)

func TestStreamingRendererRenderPage(t *testing.T) {
	w := httptest.NewRecorder()

	sr := NewStreamingRenderer(w, RendererConfig{})

	page := Page{
		Body:  parent("div", node.Text("Streamed Content")),
		Title: "Streaming Test",
	}

	if err := sr.RenderPage(page); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := w.Body.String()

	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Errorf("should start with DOCTYPE")
	}
	if !strings.Contains(html, "<title>Streaming Test</title>") {
		t.Errorf("should contain title")
	}
	if !strings.Contains(html, "<div>Streamed Content</div>") {
		t.Errorf("should contain body content")
	}
	if !w.Flushed {
		t.Errorf("recorder should have been flushed")
	}
}

func TestStreamingMatchesRenderPage(t *testing.T) {
	page := Page{
		Lang:  "fr",
		Title: "Same",
		Body:  parent("section", leaf("h2", "a"), node.Text("b"), parent("p", leaf("em", "c"))),
	}

	tests := []struct {
		name   string
		config RendererConfig
	}{
		{"compact", RendererConfig{}},
		{"pretty", RendererConfig{Pretty: true}},
		{"pretty tabs", RendererConfig{Pretty: true, Indent: "\t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := NewRenderer(tt.config).RenderPageToString(page)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			w := httptest.NewRecorder()
			if err := NewStreamingRenderer(w, tt.config).RenderPage(page); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := w.Body.String(); got != want {
				t.Errorf("got %q, want %q", got, want)
			}
		})
	}
}

func TestStreamingRecordsOneRender(t *testing.T) {
	reg := prometheus.NewRegistry()
	config := RendererConfig{Metrics: NewMetrics(WithRegistry(reg))}
	page := Page{Title: "One", Body: parent("div", node.Text("x"))}

	w := httptest.NewRecorder()
	if err := NewStreamingRenderer(w, config).RenderPage(page); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := NewRenderer(config).RenderPage(&bytes.Buffer{}, page); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := gatherValue(t, reg, "htmlnode_render_renders_total", map[string]string{"status": "ok"}); got != 2 {
		t.Errorf("renders_total = %v, want 2 (one per page)", got)
	}
	// html, head, title, body, div, text
	if got := gatherValue(t, reg, "htmlnode_render_nodes_total", nil); got != 12 {
		t.Errorf("nodes_total = %v, want 12", got)
	}
	if got, want := gatherValue(t, reg, "htmlnode_render_bytes_total", nil), float64(2*w.Body.Len()); got != want {
		t.Errorf("bytes_total = %v, want %v", got, want)
	}
}

func TestStreamingRendererFlushes(t *testing.T) {
	var buf bytes.Buffer
	fw := &FlushableWriter{Writer: &buf}

	sr := &StreamingRenderer{
		Renderer: NewRenderer(RendererConfig{}),
		flusher:  fw,
		w:        fw,
	}

	page := Page{
		Body:  parent("div", node.Text("Content")),
		Title: "Flush Test",
	}

	if err := sr.RenderPage(page); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Head flush and final flush
	if fw.FlushCount != 2 {
		t.Errorf("FlushCount = %d, want 2", fw.FlushCount)
	}
}

func TestStreamingRendererInvalidPage(t *testing.T) {
	w := httptest.NewRecorder()
	sr := NewStreamingRenderer(w, RendererConfig{})

	err := sr.RenderPage(Page{Body: parent("div", &node.Leaf{})})
	if !errors.Is(err, node.ErrMissingValue) {
		t.Fatalf("err = %v, want ErrMissingValue", err)
	}
	if w.Body.Len() != 0 {
		t.Errorf("wrote %q, want no output", w.Body.String())
	}
}
