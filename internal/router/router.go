package router

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/angeloszaimis/wasi-qr-router/internal/httpmsg"
)

// UnmatchedRoute is the route label reported to observers for unmapped paths.
const UnmatchedRoute = "unmatched"

var (
	ErrEmptyPath      = errors.New("route path cannot be empty")
	ErrDuplicateRoute = errors.New("duplicate route")
	ErrNilHandler     = errors.New("route handler cannot be nil")
)

type Handler interface {
	Handle(req httpmsg.Request) httpmsg.Response
}

type HandlerFunc func(req httpmsg.Request) httpmsg.Response

func (f HandlerFunc) Handle(req httpmsg.Request) httpmsg.Response {
	return f(req)
}

// Observer is notified once per dispatched request.
type Observer interface {
	Observe(route string, statusCode int, elapsed time.Duration)
}

type Route struct {
	Path    string
	Handler Handler
}

type Option func(*Router)

func WithObserver(o Observer) Option {
	return func(r *Router) {
		r.observer = o
	}
}

type Router struct {
	logger   *slog.Logger
	routes   map[string]Handler
	observer Observer
}

// New builds the route table. It is never modified afterwards.
func New(logger *slog.Logger, routes []Route, opts ...Option) (*Router, error) {
	table := make(map[string]Handler, len(routes))

	for _, route := range routes {
		if route.Path == "" {
			return nil, ErrEmptyPath
		}
		if route.Handler == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilHandler, route.Path)
		}

		key := Normalize(route.Path)
		if _, exists := table[key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRoute, key)
		}
		table[key] = route.Handler
	}

	r := &Router{
		logger: logger,
		routes: table,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

func Normalize(path string) string {
	return strings.ToLower(path)
}

func (r *Router) Handle(req httpmsg.Request) httpmsg.Response {
	start := time.Now()
	path := Normalize(req.Path)

	route := path
	h, ok := r.routes[path]
	if !ok {
		route = UnmatchedRoute
		h = HandlerFunc(notFound)
	}

	resp := h.Handle(req)

	r.logger.Debug("Dispatched request",
		slog.String("method", req.Method),
		slog.String("path", req.Path),
		slog.String("route", route),
		slog.Int("status", resp.StatusCode))

	if r.observer != nil {
		r.observer.Observe(route, resp.StatusCode, time.Since(start))
	}

	return resp
}

// Paths returns the normalized paths in the table, sorted.
func (r *Router) Paths() []string {
	paths := make([]string, 0, len(r.routes))
	for p := range r.routes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func notFound(_ httpmsg.Request) httpmsg.Response {
	return httpmsg.Empty(http.StatusNotFound)
}
