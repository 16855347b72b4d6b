package serve

import (
	"context"
	"io/fs"
	"path"
	"sync"
	"time"
)

// Watcher polls a file system for added, modified and removed tree
// documents.
type Watcher struct {
	fsys     fs.FS
	interval time.Duration

	mu         sync.Mutex
	onChange   func(name string)
	timestamps map[string]time.Time
	scanned    bool
}

// NewWatcher creates a watcher over fsys. An interval of zero polls every
// 250ms.
func NewWatcher(fsys fs.FS, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	return &Watcher{
		fsys:       fsys,
		interval:   interval,
		timestamps: make(map[string]time.Time),
	}
}

// OnChange sets the callback for document changes.
func (w *Watcher) OnChange(fn func(name string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start polls until ctx is done. Documents present at start are not
// reported.
func (w *Watcher) Start(ctx context.Context) error {
	w.Scan()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.Scan()
		}
	}
}

// Scan compares the file system with the previous scan, calls the
// callback for every changed document and returns their names in walk
// order followed by removed documents.
func (w *Watcher) Scan() []string {
	seen := make(map[string]time.Time)
	var changed []string

	w.mu.Lock()
	fs.WalkDir(w.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || path.Ext(p) != ".json" {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		mod := info.ModTime()
		seen[p] = mod
		if last, ok := w.timestamps[p]; !ok || !mod.Equal(last) {
			changed = append(changed, p)
		}
		return nil
	})
	for p := range w.timestamps {
		if _, ok := seen[p]; !ok {
			changed = append(changed, p)
		}
	}
	w.timestamps = seen
	first := !w.scanned
	w.scanned = true
	callback := w.onChange
	w.mu.Unlock()

	if first {
		return nil
	}
	if callback != nil {
		for _, p := range changed {
			callback(p)
		}
	}
	return changed
}
