// Package sink delivers rendered HTML to a destination: an io.Writer, a
// directory on disk or an S3 bucket.
package sink

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/vango-dev/htmlnode/internal/errors"
)

// ContentType is the content type recorded for rendered documents.
const ContentType = "text/html; charset=utf-8"

// Sink is the interface for rendered output destinations.
type Sink interface {
	// Write stores html under name. name is a slash-separated relative
	// path such as "blog/index.html".
	Write(ctx context.Context, name string, html []byte) error
}

// WriterSink writes every document to a single writer, ignoring names.
type WriterSink struct {
	W io.Writer
}

// Write implements Sink.
func (s WriterSink) Write(_ context.Context, _ string, html []byte) error {
	if _, err := s.W.Write(html); err != nil {
		return errors.New("S200").Wrap(err)
	}
	return nil
}

// cleanName validates and normalizes an output name.
func cleanName(name string) (string, error) {
	if name == "" || strings.HasPrefix(name, "/") || strings.Contains(name, "\\") {
		return "", errors.New("S201").WithDetail("Invalid output name " + quote(name) + ".")
	}
	cleaned := path.Clean(name)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", errors.New("S201").WithDetail("Output name " + quote(name) + " escapes the output directory.")
	}
	return cleaned, nil
}

func quote(s string) string {
	return `"` + s + `"`
}
