package serve

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/htmlnode/pkg/node"
)

// ReloadPath is the WebSocket endpoint pages connect to for live reload.
const ReloadPath = "/_htmlnode/reload"

// ReloadMessageType represents the type of reload message.
type ReloadMessageType string

const (
	ReloadTypeFull  ReloadMessageType = "reload"
	ReloadTypeError ReloadMessageType = "error"
)

// ReloadMessage is sent to browsers via WebSocket.
type ReloadMessage struct {
	Type  ReloadMessageType `json:"type"`
	File  string            `json:"file,omitempty"`
	Error string            `json:"error,omitempty"`
}

// Reloader tells connected pages to reload when their documents change.
type Reloader struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewReloader creates a Reloader. A nil logger uses slog.Default().
func NewReloader(logger *slog.Logger) *Reloader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reloader{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Live reload is a local development aid.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// ServeHTTP upgrades the request and holds the connection until the
// client goes away.
func (r *Reloader) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		r.logger.Debug("reload upgrade failed", "error", err)
		return
	}

	r.mu.Lock()
	r.clients[conn] = true
	r.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	r.mu.Lock()
	delete(r.clients, conn)
	r.mu.Unlock()
	conn.Close()
}

// DocumentChanged checks the changed document and tells pages to reload,
// or reports why the document no longer renders.
func (r *Reloader) DocumentChanged(fsys fs.FS, name string) {
	if err := checkDocument(fsys, name); err != nil {
		r.logger.Warn("document invalid", "file", name, "error", err)
		r.broadcast(ReloadMessage{Type: ReloadTypeError, File: name, Error: err.Error()})
		return
	}
	r.logger.Info("document changed", "file", name)
	r.broadcast(ReloadMessage{Type: ReloadTypeFull, File: name})
}

// checkDocument decodes and validates name. A removed document is not an
// error.
func checkDocument(fsys fs.FS, name string) error {
	f, err := fsys.Open(name)
	if err != nil {
		return nil
	}
	defer f.Close()

	tree, err := node.Decode(f)
	if err != nil {
		return err
	}
	return node.Validate(tree)
}

func (r *Reloader) broadcast(msg ReloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	r.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(r.clients))
	for client := range r.clients {
		clients = append(clients, client)
	}
	r.mu.RUnlock()

	for _, client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			r.mu.Lock()
			delete(r.clients, client)
			r.mu.Unlock()
			client.Close()
		}
	}
}

// ClientCount returns the number of connected pages.
func (r *Reloader) ClientCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

// Close closes all client connections.
func (r *Reloader) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for client := range r.clients {
		client.Close()
		delete(r.clients, client)
	}
}

// Script returns the script element that connects a page to ReloadPath.
func (r *Reloader) Script() node.Node {
	return node.NewLeaf("script", reloadScript, node.Props{})
}

const reloadScript = `(function() {
  var delay = 1000;
  function connect() {
    var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
    var ws = new WebSocket(proto + '//' + location.host + '` + ReloadPath + `');
    ws.onopen = function() { delay = 1000; };
    ws.onmessage = function(e) {
      var msg;
      try { msg = JSON.parse(e.data); } catch (err) { return; }
      if (msg.type === 'reload') { location.reload(); }
      if (msg.type === 'error') { console.error('[htmlnode] ' + msg.file + ': ' + msg.error); }
    };
    ws.onclose = function() {
      setTimeout(function() { delay = Math.min(delay * 2, 30000); connect(); }, delay);
    };
  }
  connect();
})();`
