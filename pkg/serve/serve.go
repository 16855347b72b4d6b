// Package serve exposes a directory of JSON tree documents over HTTP.
//
// A request for /blog/post (or /blog/post.html) loads blog/post.json from
// the configured directory, decodes it into a node tree and renders it as
// a full HTML document. Add ?fragment=1 to get the tree's HTML without the
// document wrapper. With a Reloader configured, full documents reload
// themselves when a Watcher reports a change.
//
//	h := serve.New(serve.Config{Dir: "pages", Renderer: renderer})
//	http.ListenAndServe(":3000", h)
package serve

import (
	stderrors "errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/htmlnode/internal/errors"
	"github.com/vango-dev/htmlnode/pkg/node"
	"github.com/vango-dev/htmlnode/pkg/render"
)

// Config configures the HTTP handler.
type Config struct {
	// Dir is the directory of tree documents. Ignored when FS is set.
	Dir string

	// FS is the file system of tree documents.
	FS fs.FS

	// Renderer renders trees. If nil, a default Renderer is used.
	Renderer *render.Renderer

	// Lang is the html lang attribute of rendered documents.
	Lang string

	// Logger receives one record per request. If nil, slog.Default() is used.
	Logger *slog.Logger

	// Gatherer serves /metrics. If nil, prometheus.DefaultGatherer is used.
	Gatherer prometheus.Gatherer

	// Reload, when set, is mounted at ReloadPath and its script is added
	// to every full document.
	Reload *Reloader
}

type handler struct {
	fsys     fs.FS
	renderer *render.Renderer
	lang     string
	logger   *slog.Logger
	reload   *Reloader
}

// New returns an http.Handler serving cfg's documents.
func New(cfg Config) http.Handler {
	h := &handler{
		fsys:     cfg.FS,
		renderer: cfg.Renderer,
		lang:     cfg.Lang,
		logger:   cfg.Logger,
		reload:   cfg.Reload,
	}
	if h.fsys == nil {
		h.fsys = os.DirFS(cfg.Dir)
	}
	if h.renderer == nil {
		h.renderer = render.NewRenderer(render.RendererConfig{Logger: cfg.Logger})
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	if h.reload != nil {
		r.Get(ReloadPath, h.reload.ServeHTTP)
	}
	r.Get("/", h.serveDocument)
	r.Get("/*", h.serveDocument)

	return r
}

// documentName maps a request path to a document path in the file system.
func documentName(urlPath string) (string, bool) {
	name := strings.Trim(urlPath, "/")
	if name == "" {
		name = "index"
	}
	name = strings.TrimSuffix(name, ".html")
	if strings.HasSuffix(urlPath, "/") && urlPath != "/" {
		name = path.Join(name, "index")
	}
	name += ".json"
	if !fs.ValidPath(name) {
		return "", false
	}
	return name, true
}

func (h *handler) serveDocument(w http.ResponseWriter, r *http.Request) {
	name, ok := documentName(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	f, err := h.fsys.Open(name)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
		h.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	defer f.Close()

	tree, err := node.Decode(f)
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if r.URL.Query().Get("fragment") != "" {
		// Render validates before writing, so the error page is still possible.
		if err := h.renderer.Render(r.Context(), w, tree); err != nil {
			h.fail(w, r, http.StatusInternalServerError, err)
		}
		return
	}

	sr := render.NewStreamingRenderer(w, h.renderer.Config())
	page := render.Page{Lang: h.lang, Body: tree}
	if h.reload != nil {
		page.Head = append(page.Head, h.reload.Script())
	}
	if err := sr.RenderPageContext(r.Context(), page); err != nil {
		h.fail(w, r, http.StatusInternalServerError, err)
	}
}

// fail writes an error response unless the body has already started.
func (h *handler) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	h.logger.ErrorContext(r.Context(), "document failed",
		"path", r.URL.Path,
		"code", errors.CodeOf(err),
		"error", err,
	)
	if ww, ok := w.(middleware.WrapResponseWriter); ok && ww.BytesWritten() > 0 {
		return
	}
	http.Error(w, err.Error(), status)
}

// logRequests logs one record per request, the way chi's middleware.Logger
// does, but through slog.
func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.InfoContext(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
