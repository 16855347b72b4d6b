package sink

import (
	"context"
	"os"
	"path/filepath"

	"github.com/vango-dev/htmlnode/internal/errors"
)

// DirSink writes documents as files below a directory.
type DirSink struct {
	dir string
}

// NewDirSink creates a DirSink, creating dir if needed.
func NewDirSink(dir string) (*DirSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.New("S200").Wrap(err)
	}
	return &DirSink{dir: dir}, nil
}

// Dir returns the output directory.
func (s *DirSink) Dir() string {
	return s.dir
}

// Write implements Sink. The file is written to a temporary name and
// renamed into place.
func (s *DirSink) Write(_ context.Context, name string, html []byte) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}

	path := filepath.Join(s.dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.New("S200").Wrap(err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".htmlnode-*")
	if err != nil {
		return errors.New("S200").Wrap(err)
	}
	if _, err := tmp.Write(html); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.New("S200").Wrap(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.New("S200").Wrap(err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return errors.New("S200").Wrap(err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return errors.New("S200").Wrap(err)
	}
	return nil
}
