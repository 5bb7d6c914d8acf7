package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-ozzo/ozzo-validation/is"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const shutdownTimeout = 5 * time.Second

// Server wraps http.Server with address validation, lifecycle logging and
// graceful shutdown.
type Server struct {
	name   string
	logger *slog.Logger
	server *http.Server
}

// New creates a named server for addr. The address is validated before the
// server is created.
func New(name, addr string, handler http.Handler, logger *slog.Logger) (*Server, error) {
	if err := ValidateAddress(addr); err != nil {
		return nil, err
	}

	srv := &Server{
		name:   name,
		logger: logger.With(slog.String("server", name)),
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}

	return srv, nil
}

// Start listens on the configured address.
// Returns an error unless the server is shut down cleanly.
func (s *Server) Start() error {
	s.logger.Info("Listening", slog.String("addr", s.server.Addr))
	return ignoreClosed(s.server.ListenAndServe())
}

// Serve accepts connections on l instead of the configured address.
func (s *Server) Serve(l net.Listener) error {
	s.logger.Info("Listening", slog.String("addr", l.Addr().String()))
	return ignoreClosed(s.server.Serve(l))
}

// Shutdown gracefully shuts down the server, waiting at most five seconds.
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down")
	return s.server.Shutdown(shutdownCtx)
}

func ignoreClosed(err error) error {
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ValidateAddress checks a host:port listen address. It has the signature of
// an ozzo-validation rule function so config can use it with validation.By.
func ValidateAddress(value interface{}) error {
	addr, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return validation.NewError("validation_invalid_hostport", "must be in host:port format")
	}

	if port == "" {
		return validation.NewError("validation_invalid_port", "port cannot be empty")
	}

	if host != "" {
		if err := is.Host.Validate(host); err != nil {
			return validation.NewError("validation_invalid_host", "invalid host")
		}
	}

	return nil
}
