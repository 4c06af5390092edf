package server

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/debloater/internal/app/runtime"
	"github.com/muurk/debloater/internal/app/view"
	"github.com/muurk/debloater/internal/logging"
)

// DefaultAddr is the listen address used by "debloater serve".
const DefaultAddr = ":7777"

// Config holds the server configuration
type Config struct {
	Addr      string
	CertPath  string // Serve wss:// when both CertPath and KeyPath are set
	KeyPath   string
	Advertise bool   // Announce the server over mDNS
	Name      string // mDNS instance name (defaults to the hostname)
}

// Server streams display trees from one runtime loop to every connected
// WebSocket client and feeds their button presses back into it.
type Server struct {
	config    *Config
	loop      *runtime.Loop
	tlsConfig *tls.Config

	httpServer *http.Server
	listener   net.Listener

	wg      sync.WaitGroup
	mu      sync.Mutex
	clients map[string]*client
}

// New creates a new Server for loop.
func New(config *Config, loop *runtime.Loop) (*Server, error) {
	if config.Addr == "" {
		config.Addr = DefaultAddr
	}

	s := &Server{
		config:  config,
		loop:    loop,
		clients: make(map[string]*client),
	}

	if config.CertPath != "" || config.KeyPath != "" {
		tlsConfig, err := NewTLSConfig(config.CertPath, config.KeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create TLS config: %w", err)
		}
		s.tlsConfig = tlsConfig
	}

	return s, nil
}

// Handler returns the HTTP routes: /ws for WebSocket clients and /tree for
// a one-shot JSON snapshot of the current display tree.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/tree", s.handleTree)
	return mux
}

// Start listens on the configured address and serves until ctx is done or
// the loop stops.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Addr, err)
	}
	if s.tlsConfig != nil {
		listener = tls.NewListener(listener, s.tlsConfig)
	}
	s.listener = listener

	unsubscribe := s.loop.Subscribe(s.broadcast)
	defer unsubscribe()

	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logging.Info("Starting debloater WebSocket server",
		zap.String("addr", listener.Addr().String()),
		zap.Bool("tls", s.tlsConfig != nil),
	)

	if s.config.Advertise {
		port := listener.Addr().(*net.TCPAddr).Port
		go func() {
			if err := Advertise(ctx, s.config.Name, port); err != nil {
				logging.Warn("mDNS advertisement failed", zap.Error(err))
			}
		}()
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
	case <-s.loop.Done():
	case err := <-errChan:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown stops accepting connections and closes every client.
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")

	var err error
	if s.httpServer != nil {
		err = s.httpServer.Shutdown(ctx)
	}

	s.mu.Lock()
	for _, c := range s.clients {
		c.close()
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logging.Info("All connections closed gracefully")
	case <-ctx.Done():
		logging.Warn("Shutdown timeout, forcing close")
	}

	logging.Sync()
	return err
}

// GetActiveConnections returns the number of connected clients
func (s *Server) GetActiveConnections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// broadcast runs on the loop goroutine. Slow clients are dropped rather
// than allowed to stall the loop.
func (s *Server) broadcast(tree view.Node) {
	payload, err := encodeRender(tree)
	if err != nil {
		logging.Error("Failed to encode display tree", zap.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range s.clients {
		if !c.enqueue(payload) {
			logging.Warn("Dropping slow client", zap.String("client_id", id))
			c.close()
			delete(s.clients, id)
		}
	}
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.loop.Tree()); err != nil {
		logging.Error("Failed to write tree", zap.Error(err))
	}
}

func (s *Server) remove(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, c.id)
}
