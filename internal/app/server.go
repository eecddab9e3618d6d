package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

var (
	// ErrAlreadyStarted возвращается при повторном вызове Start
	ErrAlreadyStarted = errors.New("app: server already started")
)

// Closer ресурс, закрываемый при остановке сервера (подключение к БД и т.п.)
type Closer interface {
	Close(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Timeouts таймауты HTTP сервера
type Timeouts struct {
	Read  time.Duration
	Write time.Duration
	Idle  time.Duration
}

// Server HTTP сервер с явным жизненным циклом Start/Stop
type Server struct {
	httpServer *http.Server
	closers    []Closer
	logger     Logger

	mu       sync.Mutex
	listener net.Listener
	ready    chan struct{}
	started  bool
}

// NewServer создает сервер. closers закрываются в Stop после остановки HTTP
func NewServer(addr string, handler http.Handler, timeouts Timeouts, logger Logger, closers ...Closer) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  timeouts.Read,
			WriteTimeout: timeouts.Write,
			IdleTimeout:  timeouts.Idle,
		},
		closers: closers,
		logger:  logger,
		ready:   make(chan struct{}),
	}
}

// Start открывает listener и обслуживает запросы до вызова Stop.
// После штатной остановки возвращает nil
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.started = true

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.httpServer.Addr)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("app: listen %s: %w", s.httpServer.Addr, err)
	}
	s.listener = ln
	close(s.ready)
	s.mu.Unlock()

	s.logger.Info("Starting server on %s", ln.Addr())
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("app: serve: %w", err)
	}
	return nil
}

// Ready закрывается, когда listener открыт
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr фактический адрес listener'а (после Ready)
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return s.httpServer.Addr
	}
	return s.listener.Addr().String()
}

// Stop останавливает прием запросов и закрывает ресурсы.
// Ожидание активных запросов ограничено ctx
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	var errs []error
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown: %v", err)
		errs = append(errs, fmt.Errorf("app: shutdown http: %w", err))
	}

	for _, c := range s.closers {
		if err := c.Close(ctx); err != nil {
			s.logger.Error("Failed to close %v: %v", c, err)
			errs = append(errs, fmt.Errorf("app: close %v: %w", c, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	s.logger.Info("Server stopped gracefully")
	return nil
}
