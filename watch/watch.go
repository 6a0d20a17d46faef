// Package watch serves a live-reloading preview of a .dot file's rendered
// SVG: a browser tab that repaints itself whenever the source file
// changes on disk. The reference crate has no equivalent - its run binary
// renders once and exits - this is purely an addition for local editing,
// built the way the rest of this module's servers and watchers are built
// (fsnotify for the filesystem side, nhooyr.io/websocket for the push).
package watch

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"os"
	"sync"
	"time"

	"cdr.dev/slog"
	"github.com/fsnotify/fsnotify"
	"nhooyr.io/websocket"

	"github.com/dotlayout/dotlayout/builder"
	"github.com/dotlayout/dotlayout/dot"
	"github.com/dotlayout/dotlayout/pipeline"
	"github.com/dotlayout/dotlayout/svgsink"
)

const page = `<!DOCTYPE html>
<html>
<head><title>dotlayout watch</title></head>
<body style="margin:0">
<div id="drawing">%s</div>
<script>
(function() {
  var proto = location.protocol === "https:" ? "wss:" : "ws:";
  var sock = new WebSocket(proto + "//" + location.host + "/ws");
  sock.onmessage = function() { location.reload(); };
  sock.onclose = function() { setTimeout(function() { location.reload(); }, 1000); };
})();
</script>
</body>
</html>
`

// hub tracks the connected preview tabs and pushes a reload notice to all
// of them whenever the watched file changes.
type hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func newHub() *hub {
	return &hub{conns: make(map[*websocket.Conn]struct{})}
}

func (h *hub) add(c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c] = struct{}{}
}

func (h *hub) remove(c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, c)
}

func (h *hub) broadcast(ctx context.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.conns {
		_ = c.Write(ctx, websocket.MessageText, []byte("reload"))
	}
}

// render reads inputPath fresh and lays it out, returning an error page
// body instead of failing the HTTP request when the source has a syntax
// error - the common case while a file is mid-edit.
func render(ctx context.Context, log slog.Logger, inputPath string, opts pipeline.Options) string {
	src, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Sprintf("<pre>could not read %s: %s</pre>", html.EscapeString(inputPath), html.EscapeString(err.Error()))
	}

	ast, err := dot.NewParser(string(src)).Parse()
	if err != nil {
		return fmt.Sprintf("<pre>%s</pre>", html.EscapeString(err.Error()))
	}

	vg, warn := builder.Build(ast)
	if warn != nil {
		log.Warn(ctx, "attribute warnings while building graph", slog.Error(warn))
	}

	sink := svgsink.New()
	pipeline.Run(ctx, log, vg, sink, opts)
	return sink.Finalize()
}

// Serve renders inputPath and serves it at addr, pushing a reload message
// to every open tab whenever the file changes on disk. It blocks until ctx
// is canceled or the HTTP server fails.
func Serve(ctx context.Context, log slog.Logger, addr, inputPath string, opts pipeline.Options) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: creating file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(inputPath); err != nil {
		return fmt.Errorf("watch: watching %s: %w", inputPath, err)
	}

	h := newHub()
	go func() {
		var last time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				// Coalesce the burst of events some editors emit per save.
				if now := time.Now(); now.Sub(last) < 100*time.Millisecond {
					continue
				} else {
					last = now
				}
				log.Info(ctx, "input file changed, notifying preview tabs", slog.F("path", inputPath))
				h.broadcast(ctx)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn(ctx, "file watcher error", slog.Error(err))
			}
		}
	}()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, page, render(r.Context(), log, inputPath, opts))
	})
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			log.Warn(ctx, "websocket accept failed", slog.Error(err))
			return
		}
		defer c.Close(websocket.StatusNormalClosure, "bye")

		h.add(c)
		defer h.remove(c)

		// Block until the client disconnects; reads are discarded, only
		// used to detect closure.
		for {
			if _, _, err := c.Read(r.Context()); err != nil {
				return
			}
		}
	})

	log.Info(ctx, "serving live preview", slog.F("addr", addr), slog.F("path", inputPath))
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		_ = server.Close()
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("watch: serving: %w", err)
	}
	return nil
}
