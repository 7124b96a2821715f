package main

import (
	"fmt"
	"log"
	"net"
	"sync"
	"sync/atomic"
	"time"
)

// RequestCallback observes each completed exchange: method, raw
// target and the status code that went out.
type RequestCallback func(method, path string, status int)

// Server accepts connections and serves them one at a time; there is
// never more than one request in flight. A per-request failure ends
// that exchange only, the server keeps accepting.
type Server struct {
	cfg      *Config
	registry *MimeRegistry
	running  atomic.Bool
	callback RequestCallback

	mu sync.Mutex // guards ln; Stop and Addr may run off the serving goroutine
	ln net.Listener
}

func NewServer(cfg *Config) *Server {
	return &Server{
		cfg:      cfg,
		registry: NewMimeRegistry(),
	}
}

// Registry exposes the MIME table so callers can install overrides
// before serving begins.
func (s *Server) Registry() *MimeRegistry {
	return s.registry
}

// Addr reports the bound listen address, nil before Start.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// SetRequestCallback installs a hook called after every exchange that
// produced a response. Set it up before Start; it is read during
// request handling.
func (s *Server) SetRequestCallback(cb RequestCallback) {
	s.callback = cb
}

// Start binds the listener and runs the accept loop until Stop closes
// it. Starting an already-running server is an error.
func (s *Server) Start() error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("server is already running")
	}

	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		s.running.Store(false)
		return fmt.Errorf("failed to listen on %s: %v", s.cfg.Addr(), err)
	}
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	fmt.Printf("Server started at http://localhost:%d\n", s.cfg.Port)
	fmt.Printf("Serving directory: %s\n", s.cfg.Root)

	for {
		conn, err := ln.Accept()
		if err != nil {
			if !s.running.Load() {
				return nil // Stop closed the listener
			}
			log.Printf("W accept error: %v", err)
			continue
		}
		s.handle(conn)
	}
}

// Stop closes the listener; the accept loop then returns. Stopping a
// stopped server is a no-op.
func (s *Server) Stop() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln != nil {
		s.ln.Close()
	}
}

// handle tunes the accepted socket, runs one exchange on it and
// closes it. The worker never closes the connection itself.
func (s *Server) handle(conn net.Conn) {
	defer func() {
		if err := conn.Close(); err != nil {
			log.Printf("W failed to close client socket: %v", err)
		}
	}()

	configureConn(conn, s.cfg.Timeout)

	worker := NewWorker(s.cfg, s.registry)
	status := worker.Handle(conn)

	if s.callback != nil && status != 0 && worker.req != nil {
		s.callback(worker.req.Method, worker.req.RawTarget, status)
	}
}

// configureConn applies the per-socket options: blocking semantics
// come with net for free, deadlines bound a stalled peer, Nagle is
// off for responsiveness and keep-alive matches the old behavior.
func configureConn(conn net.Conn, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	if err := conn.SetDeadline(deadline); err != nil {
		log.Printf("W failed to set socket deadline: %v", err)
	}
	if tcp, ok := conn.(*net.TCPConn); ok {
		if err := tcp.SetNoDelay(true); err != nil {
			log.Printf("W failed to set TCP_NODELAY: %v", err)
		}
		if err := tcp.SetKeepAlive(true); err != nil {
			log.Printf("W failed to set SO_KEEPALIVE: %v", err)
		}
	}
}
