package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/lox/handrank/poker"
)

const (
	shutdownTimeout = 5 * time.Second

	// Maximum message size allowed from peer
	maxMessageSize = 64 << 10
)

// Server answers showdown requests over WebSocket
type Server struct {
	upgrader websocket.Upgrader
	logger   *log.Logger
	clock    quartz.Clock
	workers  int

	mu          sync.Mutex
	connections map[*websocket.Conn]struct{}
}

// Option configures a Server
type Option func(*Server)

// WithClock sets the clock used for response timestamps
func WithClock(clock quartz.Clock) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

// WithWorkers sets how many goroutines rank each batch of hands.
// 0 picks a default from the CPU count.
func WithWorkers(n int) Option {
	return func(s *Server) {
		s.workers = n
	}
}

// NewServer creates a new showdown server
func NewServer(logger *log.Logger, opts ...Option) *Server {
	s := &Server{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:      logger.WithPrefix("showdown"),
		clock:       quartz.NewReal(),
		connections: make(map[*websocket.Conn]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP handler serving /ws and /health
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting WebSocket server", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Hijacked websocket connections are not tracked by http.Server.
	s.closeConnections()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK") // Ignore write errors for health check
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	conn.SetReadLimit(maxMessageSize)
	s.track(conn)
	defer s.untrack(conn)

	s.logger.Debug("Client connected", "remote", conn.RemoteAddr())
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("Read failed", "error", err)
			}
			break
		}

		resp := s.handleMessage(r.Context(), payload)
		if err := conn.WriteJSON(resp); err != nil {
			s.logger.Warn("Write failed", "error", err)
			break
		}
	}
	s.logger.Debug("Client disconnected", "remote", conn.RemoteAddr())
}

func (s *Server) handleMessage(ctx context.Context, payload []byte) *Response {
	var req ShowdownRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return s.errorResponse("", fmt.Errorf("malformed message: %w", err))
	}
	if req.Type != MessageTypeShowdown {
		return s.errorResponse(req.ID, fmt.Errorf("unknown message type %q", req.Type))
	}

	winners, err := poker.WinningHandsParallel(ctx, req.Hands, s.workers)
	if err != nil {
		return s.errorResponse(req.ID, err)
	}

	keys := make([]string, len(winners))
	for i, text := range winners {
		if h, err := poker.ParseHand(text); err == nil {
			keys[i] = poker.Classify(h).String()
		}
	}

	s.logger.Debug("Showdown", "id", req.ID, "hands", len(req.Hands), "winners", len(winners))
	return &Response{
		Type:      MessageTypeWinners,
		ID:        req.ID,
		Winners:   winners,
		Keys:      keys,
		Timestamp: s.clock.Now(),
	}
}

func (s *Server) errorResponse(id string, err error) *Response {
	s.logger.Debug("Rejected request", "id", id, "error", err)
	return &Response{
		Type:      MessageTypeError,
		ID:        id,
		Error:     err.Error(),
		Timestamp: s.clock.Now(),
	}
}

func (s *Server) track(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connections[conn] = struct{}{}
}

func (s *Server) untrack(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.connections[conn]; ok {
		delete(s.connections, conn)
		_ = conn.Close() // Ignore close errors during unregistration
	}
}

func (s *Server) closeConnections() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.connections {
		_ = conn.Close() // Ignore close errors during shutdown
		delete(s.connections, conn)
	}
}
