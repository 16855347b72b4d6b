package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlnode/internal/config"
	"github.com/vango-dev/htmlnode/internal/errors"
	"github.com/vango-dev/htmlnode/pkg/node"
	"github.com/vango-dev/htmlnode/pkg/render"
	"github.com/vango-dev/htmlnode/pkg/sink"
)

type renderOptions struct {
	pretty   bool
	document bool
	title    string
	lang     string
	out      string
	s3       config.S3Config
}

func renderCmd(a *app) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render [file.json...]",
		Short: "Render tree documents to HTML",
		Long: `Render one or more JSON tree documents to HTML.

Without files, a single document is read from stdin. Output goes to
stdout unless an output directory or S3 bucket is configured, in which
case each input file is written as the same path with a .html extension.

Examples:
  htmlnode render page.json
  htmlnode render --document --title=Home pages/index.json
  htmlnode render -o dist pages/*.json
  htmlnode render --s3-bucket=my-site --s3-region=eu-central-1 pages/*.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd.Context(), cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent output (default from htmlnode.json)")
	cmd.Flags().BoolVarP(&opts.document, "document", "d", false, "Wrap output in a full HTML document")
	cmd.Flags().StringVar(&opts.title, "title", "", "Document title (with --document)")
	cmd.Flags().StringVar(&opts.lang, "lang", "", "Document language (default from htmlnode.json)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", `Output directory, or "-" for stdout`)
	cmd.Flags().StringVar(&opts.s3.Bucket, "s3-bucket", "", "Upload to this S3 bucket")
	cmd.Flags().StringVar(&opts.s3.Prefix, "s3-prefix", "", "S3 key prefix")
	cmd.Flags().StringVar(&opts.s3.Region, "s3-region", "", "S3 region")
	cmd.Flags().StringVar(&opts.s3.Endpoint, "s3-endpoint", "", "S3 endpoint override")

	return cmd
}

func (a *app) runRender(ctx context.Context, cmd *cobra.Command, args []string, opts renderOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	renderCfg := render.RendererConfig{
		Pretty: opts.pretty || a.cfg.Render.Pretty,
		Indent: a.cfg.Render.Indent,
		Logger: a.logger,
	}
	renderer := render.NewRenderer(renderCfg)

	lang := opts.lang
	if lang == "" {
		lang = a.cfg.Render.Lang
	}

	out, err := a.outputSink(cmd.OutOrStdout(), opts)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{"-"}
	}

	for _, input := range args {
		tree, err := readTree(cmd.InOrStdin(), input)
		if err != nil {
			a.logger.Error("decode failed", "input", input, "error", err)
			return err
		}

		var buf bytes.Buffer
		if opts.document {
			err = renderer.RenderPageContext(ctx, &buf, render.Page{Lang: lang, Title: opts.title, Body: tree})
		} else {
			err = renderer.Render(ctx, &buf, tree)
		}
		if err != nil {
			a.logger.Error("render failed", "input", input, "code", errors.CodeOf(err), "error", err)
			return err
		}

		name := outputName(input)
		if err := out.Write(ctx, name, buf.Bytes()); err != nil {
			return err
		}
		a.logger.Info("rendered", "input", input, "output", name, "bytes", buf.Len())
	}

	return nil
}

// outputSink picks stdout, a directory or S3 from flags and config.
func (a *app) outputSink(stdout io.Writer, opts renderOptions) (sink.Sink, error) {
	s3cfg := a.cfg.Output.S3
	if opts.s3.Bucket != "" {
		s3cfg = opts.s3
		if s3cfg.Region == "" {
			s3cfg.Region = a.cfg.Output.S3.Region
		}
	}
	if s3cfg.Bucket != "" && opts.out == "" {
		if s3cfg.Region == "" {
			return nil, errors.New("C122").WithDetail("--s3-region is required with --s3-bucket")
		}
		client := sink.NewS3Client(sink.S3Config{Region: s3cfg.Region, Endpoint: s3cfg.Endpoint})
		return sink.NewS3Sink(client, s3cfg.Bucket, s3cfg.Prefix), nil
	}

	dir := opts.out
	if dir == "" && a.cfg.Path() != "" {
		dir = a.cfg.ResolvePath(a.cfg.Output.Dir)
	}
	if dir == "" || dir == "-" {
		return sink.WriterSink{W: stdout}, nil
	}
	return sink.NewDirSink(dir)
}

// readTree decodes the tree document at path, or stdin for "-".
func readTree(stdin io.Reader, path string) (node.Node, error) {
	if path == "-" {
		return node.Decode(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Newf(errors.CategoryCLI, "cannot open %s", path).Wrap(err)
	}
	defer f.Close()

	return node.Decode(f)
}

// outputName maps an input path to a relative .html output name.
func outputName(input string) string {
	if input == "-" {
		return "index.html"
	}
	name := filepath.ToSlash(filepath.Clean(input))
	if filepath.IsAbs(input) || strings.HasPrefix(name, "../") {
		name = filepath.Base(input)
	}
	name = strings.TrimPrefix(name, "./")
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".html"
}
