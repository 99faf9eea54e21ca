package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

const (
	defaultShutdownTimeout = time.Second * 30
	defaultReadTimeout     = time.Second * 10
	defaultWriteTimeout    = time.Second * 10
	defaultIdleTimeout     = time.Second * 60
)

var ErrInvalidTimeout = errors.New("http server: timeout must not be negative")

type serverConfig struct {
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	handler         http.Handler
}

type HTTPServer struct {
	addr          *net.TCPAddr
	listener      *net.TCPListener
	server        *http.Server
	cfg           *serverConfig
	closer        chan struct{}
	readyCallback func(net.Addr)
}

type Option func(*HTTPServer) error

func timeoutOption(set func(*serverConfig, time.Duration)) func(time.Duration) Option {
	return func(timeout time.Duration) Option {
		return func(s *HTTPServer) error {
			if timeout < 0 {
				return ErrInvalidTimeout
			}
			set(s.cfg, timeout)
			return nil
		}
	}
}

var (
	WithShutdownTimeout = timeoutOption(func(c *serverConfig, d time.Duration) { c.shutdownTimeout = d }) // nolint: gochecknoglobals
	WithReadTimeout     = timeoutOption(func(c *serverConfig, d time.Duration) { c.readTimeout = d })     // nolint: gochecknoglobals
	WithWriteTimeout    = timeoutOption(func(c *serverConfig, d time.Duration) { c.writeTimeout = d })    // nolint: gochecknoglobals
	WithIdleTimeout     = timeoutOption(func(c *serverConfig, d time.Duration) { c.idleTimeout = d })     // nolint: gochecknoglobals
)

func WithHandler(handler http.Handler) Option {
	return func(s *HTTPServer) error {
		s.cfg.handler = handler
		return nil
	}
}

// WithReadySignal sets a callback invoked with the bound address
// once the server is able to accept connections.
func WithReadySignal(cb func(net.Addr)) Option {
	return func(s *HTTPServer) error {
		s.readyCallback = cb
		return nil
	}
}

func New(addr string, opts ...Option) (*HTTPServer, error) {
	tcpAddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, err
	}
	server := &HTTPServer{
		addr: tcpAddr,
		cfg: &serverConfig{
			writeTimeout:    defaultWriteTimeout,
			readTimeout:     defaultReadTimeout,
			idleTimeout:     defaultIdleTimeout,
			shutdownTimeout: defaultShutdownTimeout,
			handler:         http.NotFoundHandler(),
		},
		closer: make(chan struct{}),
	}
	for _, opt := range opts {
		if optErr := opt(server); optErr != nil {
			return nil, optErr
		}
	}
	server.server = &http.Server{
		Addr:              addr,
		Handler:           server.cfg.handler,
		ReadTimeout:       server.cfg.readTimeout,
		ReadHeaderTimeout: server.cfg.readTimeout,
		WriteTimeout:      server.cfg.writeTimeout,
		IdleTimeout:       server.cfg.idleTimeout,
	}
	return server, nil
}

func (s *HTTPServer) ListenAndServe() error {
	fatal := make(chan error, 1)

	listener, err := net.ListenTCP("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener
	defer listener.Close()

	if s.readyCallback != nil {
		s.readyCallback(s.listener.Addr())
	}

	go func() {
		if serveErr := s.server.Serve(s.listener); serveErr != nil {
			fatal <- serveErr
		}
	}()

	select {
	case serveErr := <-fatal:
		if errors.Is(serveErr, http.ErrServerClosed) {
			return nil
		}
		return serveErr
	case <-s.closer:
		return nil
	}
}

func (s *HTTPServer) ListenAddr() net.Addr {
	return s.listener.Addr()
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	close(s.closer)
	stopCtx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(stopCtx); err != nil {
		return fmt.Errorf("http server: shutdown %s: %w", s.addr, err)
	}
	return nil
}
