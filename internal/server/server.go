package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/skoona/sknSensors-IRService/internal/engine"
	"github.com/skoona/sknSensors-IRService/internal/logging"
	"github.com/skoona/sknSensors-IRService/internal/version"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
	writeWait         = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Reports are broadcast state, not account data; any LAN client may listen.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Status is the JSON document served at /status.
type Status struct {
	Device         string `json:"device"`
	Version        string `json:"version"`
	ReceiveEnabled bool   `json:"receive_enabled"`
	LastReceived   string `json:"last_received,omitempty"`
	LastSent       string `json:"last_sent,omitempty"`
}

// Event is one status push on the /ws stream.
type Event struct {
	Kind  string `json:"kind"` // "received" or "sent"
	Value string `json:"value"`
}

// Server exposes the engine state over HTTP and streams status events to
// WebSocket subscribers.
type Server struct {
	device string
	eng    *engine.Engine
	srv    *http.Server

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// New builds a server listening on addr. Start runs it.
func New(addr, device string, eng *engine.Engine) *Server {
	s := &Server{
		device:  device,
		eng:     eng,
		clients: make(map[*websocket.Conn]struct{}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/status", s.handleStatus)
	mux.HandleFunc("/ws", s.handleWS)

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	eng.OnStatus(func(kind, value string) {
		s.broadcast(Event{Kind: kind, Value: value})
	})

	return s
}

// Start serves until Shutdown is called. It blocks, so run it on its own
// goroutine.
func (s *Server) Start() error {
	logging.Info("Status server listening", zap.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("status server: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and closes any active streams.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	s.mu.Lock()
	for conn := range s.clients {
		conn.Close()
	}
	s.clients = make(map[*websocket.Conn]struct{})
	s.mu.Unlock()

	return s.srv.Shutdown(ctx)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	status := Status{
		Device:         s.device,
		Version:        version.Version,
		ReceiveEnabled: s.eng.ReceiveEnabled(),
		LastReceived:   s.eng.LastReceived(),
		LastSent:       s.eng.LastSent(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(status); err != nil {
		logging.Warn("Status encode failed", zap.Error(err))
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	logging.Debug("WebSocket client connected", zap.String("remote", conn.RemoteAddr().String()))

	// Reader loop drains control frames and detects disconnects; the
	// stream is one-way so inbound data frames are discarded.
	go func() {
		defer s.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) broadcast(event Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for conn := range s.clients {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(event); err != nil {
			conn.Close()
			delete(s.clients, conn)
		}
	}
}

func (s *Server) drop(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[conn]; ok {
		conn.Close()
		delete(s.clients, conn)
	}
}
