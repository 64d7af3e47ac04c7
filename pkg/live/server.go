package live

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/graft-dev/graft/pkg/dom"
	"github.com/graft-dev/graft/pkg/patch"
)

// Config configures a live view server.
type Config struct {
	// Title is the page title of the index shell.
	Title string

	// Logger receives connection lifecycle and error logs.
	// Defaults to slog.Default().
	Logger *slog.Logger

	// Registry is the prometheus registry for server metrics.
	// Defaults to a fresh registry, exposed at /metrics.
	Registry *prometheus.Registry

	// WriteTimeout bounds a single websocket write. Default 10s.
	WriteTimeout time.Duration

	// SendBuffer is the per-connection outbound frame queue length.
	// A client that falls this far behind is disconnected. Default 64.
	SendBuffer int
}

// Server streams a graft tree's mutations to websocket clients.
type Server struct {
	config Config
	log    *slog.Logger

	// mu serializes tree access: updates, snapshots for new connections,
	// and the mutation buffer.
	mu      sync.Mutex
	root    *dom.Element
	pending []dom.Mutation

	connMu sync.Mutex
	conns  map[*conn]struct{}

	metrics  *metrics
	upgrader websocket.Upgrader

	httpMu  sync.Mutex
	httpSrv *http.Server
}

// New creates a server observing the tree rooted at root.
// The root must not be mutated outside Server.Update once serving starts.
func New(root *dom.Element, config Config) *Server {
	if config.Title == "" {
		config.Title = "graft"
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Registry == nil {
		config.Registry = prometheus.NewRegistry()
	}
	if config.WriteTimeout == 0 {
		config.WriteTimeout = 10 * time.Second
	}
	if config.SendBuffer == 0 {
		config.SendBuffer = 64
	}

	s := &Server{
		config:  config,
		log:     config.Logger,
		root:    root,
		conns:   make(map[*conn]struct{}),
		metrics: newMetrics(config.Registry),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}

	dom.Observe(root, s.record)

	return s
}

// Update runs fn with exclusive access to the tree, then broadcasts every
// mutation fn caused as one patch frame. All cell updates that touch the
// bound tree must go through here once the server is running.
func (s *Server) Update(fn func()) {
	s.mu.Lock()
	fn()
	frame, count := s.collect()
	s.mu.Unlock()

	s.metrics.updatesTotal.Inc()

	if count == 0 {
		return
	}
	s.metrics.mutationsTotal.Add(float64(count))
	s.broadcast(frame)
}

// record buffers one observed mutation. Runs under s.mu: mutations only
// happen during Update (or before serving starts).
func (s *Server) record(m dom.Mutation) {
	s.pending = append(s.pending, m)
}

// collect drains the mutation buffer into an encoded frame.
func (s *Server) collect() ([]byte, int) {
	if len(s.pending) == 0 {
		return nil, 0
	}
	frame := patch.Encode(s.pending)
	count := len(s.pending)
	s.pending = s.pending[:0]
	return frame, count
}

// broadcast queues frame on every connection. A connection whose queue is
// full is closed rather than allowed to stall the rest.
func (s *Server) broadcast(frame []byte) {
	s.connMu.Lock()
	conns := make([]*conn, 0, len(s.conns))
	for c := range s.conns {
		conns = append(conns, c)
	}
	s.connMu.Unlock()

	for _, c := range conns {
		if !c.send(frameMessage{kind: websocket.BinaryMessage, data: frame}) {
			s.log.Warn("dropping slow client", "remote", c.remote)
			c.close()
		}
	}
	s.metrics.framesSentTotal.Add(float64(len(conns)))
	s.metrics.frameBytesTotal.Add(float64(len(frame) * len(conns)))
}

// Handler returns the server's HTTP surface.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(traced("graft.live"))

	r.Get("/", s.handleIndex)
	r.Get("/live", s.handleWebSocket)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(
		s.config.Registry,
		promhttp.HandlerOpts{},
	))

	return r
}

// handleIndex serves the HTML shell: current tree snapshot plus the
// embedded patch client.
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	snapshot := s.root.HTML()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, indexShell, s.config.Title, snapshot, clientJS)
}

// handleWebSocket upgrades the connection and streams frames: first a
// text message with a full snapshot, then binary patch frames.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("websocket upgrade failed", "error", err)
		return
	}

	c := newConn(s, ws, r.RemoteAddr)

	// Snapshot under the tree lock so the frames that follow apply
	// cleanly on top of it.
	s.mu.Lock()
	snapshot := s.root.HTML()
	s.connMu.Lock()
	s.conns[c] = struct{}{}
	s.connMu.Unlock()
	s.mu.Unlock()

	s.metrics.activeConnections.Inc()
	s.log.Info("client connected", "remote", c.remote)

	c.send(frameMessage{kind: websocket.TextMessage, data: []byte(snapshot)})

	go c.writeLoop()
	go c.readLoop()
}

// remove detaches a closed connection from the broadcast set.
func (s *Server) remove(c *conn) {
	s.connMu.Lock()
	_, ok := s.conns[c]
	delete(s.conns, c)
	s.connMu.Unlock()

	if ok {
		s.metrics.activeConnections.Dec()
		s.log.Info("client disconnected", "remote", c.remote)
	}
}

// Run serves on addr until Shutdown is called.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	s.httpMu.Lock()
	s.httpSrv = srv
	s.httpMu.Unlock()

	s.log.Info("live view listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server and closes every connection.
func (s *Server) Shutdown(ctx context.Context) error {
	s.connMu.Lock()
	conns := make([]*conn, 0, len(s.conns))
	for c := range s.conns {
		conns = append(conns, c)
	}
	s.connMu.Unlock()
	for _, c := range conns {
		c.close()
	}

	s.httpMu.Lock()
	srv := s.httpSrv
	s.httpMu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
