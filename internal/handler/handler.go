package handler

import (
	"net/http"

	"github.com/angeloszaimis/wasi-qr-router/internal/httpmsg"
)

// WarmupHandler lets the host pre-warm an instance without touching business logic.
type WarmupHandler struct{}

func NewWarmupHandler() *WarmupHandler {
	return &WarmupHandler{}
}

func (h *WarmupHandler) Handle(_ httpmsg.Request) httpmsg.Response {
	return httpmsg.Empty(http.StatusOK)
}

type GreetingHandler struct {
	greeting string
}

func NewGreetingHandler(greeting string) *GreetingHandler {
	return &GreetingHandler{greeting: greeting}
}

func (h *GreetingHandler) Handle(_ httpmsg.Request) httpmsg.Response {
	return httpmsg.Text(http.StatusOK, httpmsg.ContentTypeText, h.greeting)
}
