package handler

import (
	"log/slog"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/angeloszaimis/wasi-qr-router/internal/httpmsg"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	invalidRequestBody = mustErrorBody("Invalid request")
	encodeFailureBody  = mustErrorBody("Unable to encode QR code")
)

// SVGGenerator renders text as a QR code SVG document.
type SVGGenerator interface {
	SVG(text string) (string, error)
}

type QRHandler struct {
	logger    *slog.Logger
	generator SVGGenerator
}

// qrInput is the request payload. URL is a pointer so that an absent or null
// field can be told apart from an empty string.
type qrInput struct {
	URL *string `json:"url"`
}

type errorBody struct {
	Error string `json:"error"`
}

func NewQRHandler(logger *slog.Logger, generator SVGGenerator) *QRHandler {
	return &QRHandler{
		logger:    logger,
		generator: generator,
	}
}

func (h *QRHandler) Handle(req httpmsg.Request) httpmsg.Response {
	if !req.HasBody() {
		h.logger.Debug("Rejecting QR request", slog.String("reason", "empty body"))
		return invalidRequest()
	}

	var input qrInput
	if err := json.Unmarshal(req.Body, &input); err != nil {
		h.logger.Debug("Rejecting QR request",
			slog.String("reason", "malformed json"),
			slog.Any("err", err))
		return invalidRequest()
	}

	if input.URL == nil {
		h.logger.Debug("Rejecting QR request", slog.String("reason", "missing url"))
		return invalidRequest()
	}

	text := strings.ToLower(*input.URL)

	svg, err := h.generator.SVG(text)
	if err != nil {
		h.logger.Warn("Failed to encode QR code",
			slog.Int("length", len(text)),
			slog.Any("err", err))
		return httpmsg.Text(http.StatusInternalServerError, httpmsg.ContentTypeText, encodeFailureBody)
	}

	return httpmsg.Text(http.StatusOK, httpmsg.ContentTypeOctetStream, svg)
}

func invalidRequest() httpmsg.Response {
	return httpmsg.Text(http.StatusBadRequest, httpmsg.ContentTypeText, invalidRequestBody)
}

func mustErrorBody(msg string) string {
	b, err := json.Marshal(errorBody{Error: msg})
	if err != nil {
		panic(err)
	}
	return string(b)
}
