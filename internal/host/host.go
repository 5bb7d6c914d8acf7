package host

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/angeloszaimis/wasi-qr-router/internal/httpmsg"
)

type Dispatcher interface {
	Handle(req httpmsg.Request) httpmsg.Response
}

// Handler adapts d to http.Handler. The request body is read in full before
// dispatch; a body that cannot be read is dispatched as absent.
func Handler(logger *slog.Logger, d Dispatcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := d.Handle(NewRequest(logger, r))
		WriteResponse(w, resp)
	})
}

func NewRequest(logger *slog.Logger, r *http.Request) httpmsg.Request {
	req := httpmsg.Request{
		Method:  r.Method,
		Path:    r.URL.Path,
		Headers: make(map[string]string, len(r.Header)),
	}

	for name := range r.Header {
		req.Headers[name] = r.Header.Get(name)
	}

	if r.Body != nil {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Warn("Failed to read request body",
				slog.String("path", r.URL.Path),
				slog.Any("err", err))
		} else {
			req.Body = body
		}
	}

	return req
}

func WriteResponse(w http.ResponseWriter, resp httpmsg.Response) {
	for name, value := range resp.Headers {
		w.Header().Set(name, value)
	}

	w.WriteHeader(resp.StatusCode)

	if len(resp.Body) > 0 {
		_, _ = w.Write(resp.Body)
	}
}
