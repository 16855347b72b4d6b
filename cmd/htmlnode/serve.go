package main

import (
	"context"
	stderrors "errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlnode/pkg/render"
	"github.com/vango-dev/htmlnode/pkg/serve"
)

func serveCmd(a *app) *cobra.Command {
	var (
		host   string
		port   int
		dir    string
		pretty bool
		watch  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a directory of tree documents as HTML",
		Long: `Start an HTTP server that renders JSON tree documents on request.

GET /blog/post renders blog/post.json from the pages directory.
Prometheus metrics are served at /metrics. With --watch, open pages
reload when their documents change.

Examples:
  htmlnode serve
  htmlnode serve --dir=pages --port=8080
  htmlnode serve --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("host") {
				cfg.Serve.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Serve.Port = port
			}
			if cmd.Flags().Changed("dir") {
				cfg.Serve.Dir = dir
			}
			if cmd.Flags().Changed("pretty") {
				cfg.Render.Pretty = pretty
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.runServe(ctx, watch)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Host to bind to (default from htmlnode.json)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from htmlnode.json)")
	cmd.Flags().StringVar(&dir, "dir", "", "Directory of tree documents (default from htmlnode.json)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent output")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload open pages when documents change")

	return cmd
}

func (a *app) runServe(ctx context.Context, watch bool) error {
	cfg := a.cfg

	renderer := render.NewRenderer(render.RendererConfig{
		Pretty:  cfg.Render.Pretty,
		Indent:  cfg.Render.Indent,
		Logger:  a.logger,
		Metrics: render.NewMetrics(render.WithRegistry(prometheus.DefaultRegisterer)),
	})

	dir := cfg.ResolvePath(cfg.Serve.Dir)
	fsys := os.DirFS(dir)

	var reloader *serve.Reloader
	if watch {
		reloader = serve.NewReloader(a.logger)
		defer reloader.Close()

		watcher := serve.NewWatcher(fsys, 0)
		watcher.OnChange(func(name string) { reloader.DocumentChanged(fsys, name) })
		go watcher.Start(ctx)
	}

	srv := &http.Server{
		Addr: cfg.ServeAddress(),
		Handler: serve.New(serve.Config{
			FS:       fsys,
			Renderer: renderer,
			Lang:     cfg.Render.Lang,
			Logger:   a.logger,
			Reload:   reloader,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("listening", "addr", "http://"+srv.Addr, "dir", dir, "watch", watch)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
