package app_test

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/wasi-qr-router/config"
	"github.com/angeloszaimis/wasi-qr-router/internal/app"
	"github.com/angeloszaimis/wasi-qr-router/internal/httpmsg"
	"github.com/angeloszaimis/wasi-qr-router/internal/qr"
	"github.com/angeloszaimis/wasi-qr-router/internal/router"
)

const invalidRequestJSON = `{"error":"Invalid request"}`

func defaultConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Address: ":8080", Environment: config.EnvDev},
		Logging: config.LoggingConfig{Level: config.LogLevelInfo},
		Routes:  config.RoutesConfig{WarmupPath: "/", Greeting: "Hello from Go in a web WASI worker!"},
		QR:      config.QRConfig{Engine: qr.EngineRSC, Scale: 4, Border: 4},
	}
}

var _ = Describe("App", func() {
	var (
		log *slog.Logger
		cfg *config.Config
		r   *router.Router
	)

	request := func(method, path, body string) httpmsg.Response {
		req := httpmsg.Request{Method: method, Path: path}
		if body != "" {
			req.Body = []byte(body)
		}
		return r.Handle(req)
	}

	BeforeEach(func() {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
		cfg = defaultConfig()
	})

	JustBeforeEach(func() {
		var err error
		r, err = app.New(cfg, log)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should register the three routes", func() {
		Expect(r.Paths()).To(Equal([]string{"/", "/hello", "/qr"}))
	})

	It("should answer the warm-up route with an empty 200", func() {
		resp := request(http.MethodGet, "/", "")
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(resp.Body).To(BeEmpty())
		Expect(resp.Headers).To(BeEmpty())
	})

	DescribeTable("greeting regardless of case",
		func(path string) {
			resp := request(http.MethodGet, path, "")
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(resp.Header("Content-Type")).To(Equal("text/plain"))
			Expect(string(resp.Body)).To(Equal("Hello from Go in a web WASI worker!"))
		},
		Entry("lower", "/hello"),
		Entry("upper", "/HELLO"),
	)

	DescribeTable("unmapped paths return 404 with an empty body",
		func(path string) {
			resp := request(http.MethodGet, path, "")
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
			Expect(resp.Body).To(BeEmpty())
		},
		Entry("unknown", "/unknown"),
		Entry("nested", "/hello/world"),
		Entry("metrics is not routed", "/metrics"),
	)

	Describe("POST /qr", func() {
		It("should return a deterministic SVG document", func() {
			first := request(http.MethodPost, "/qr", `{"url":"https://example.com"}`)
			Expect(first.StatusCode).To(Equal(http.StatusOK))
			Expect(first.Header("Content-Type")).To(Equal("application/octet-stream"))
			Expect(string(first.Body)).To(ContainSubstring(`xmlns="http://www.w3.org/2000/svg"`))

			second := request(http.MethodPost, "/qr", `{"url":"https://example.com"}`)
			Expect(second.Body).To(Equal(first.Body))
		})

		It("should accept an empty url", func() {
			resp := request(http.MethodPost, "/qr", `{"url":""}`)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(string(resp.Body)).To(HaveSuffix("</svg>\n"))
		})

		DescribeTable("invalid requests",
			func(body string) {
				resp := request(http.MethodPost, "/qr", body)
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
				Expect(string(resp.Body)).To(Equal(invalidRequestJSON))
			},
			Entry("empty body", ""),
			Entry("no url field", `{}`),
			Entry("malformed json", `not json`),
		)
	})

	Context("with a custom warm-up path", func() {
		BeforeEach(func() {
			cfg.Routes.WarmupPath = "/WarmupZ"
		})

		It("should serve warm-up on the normalized path and 404 on /", func() {
			Expect(request(http.MethodGet, "/warmupz", "").StatusCode).To(Equal(http.StatusOK))
			Expect(request(http.MethodGet, "/", "").StatusCode).To(Equal(http.StatusNotFound))
		})
	})

	Context("with a custom scale", func() {
		BeforeEach(func() {
			cfg.QR.Scale = 10
			cfg.QR.Border = 0
		})

		It("should render with the configured geometry", func() {
			resp := request(http.MethodPost, "/qr", `{"url":""}`)
			Expect(string(resp.Body)).To(ContainSubstring(`width="210"`))
			Expect(string(resp.Body)).To(ContainSubstring(`height="210"`))
			Expect(string(resp.Body)).To(ContainSubstring(`viewBox="0 0 21 21"`))
		})
	})

	Context("with the skip2 engine", func() {
		BeforeEach(func() {
			cfg.QR.Engine = qr.EngineSkip2
		})

		It("should render a QR code", func() {
			resp := request(http.MethodPost, "/qr", `{"url":"https://example.com"}`)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
		})

		It("should accept an empty url", func() {
			Expect(cfg.Validate()).To(Succeed())

			resp := request(http.MethodPost, "/qr", `{"url":""}`)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(resp.Header("Content-Type")).To(Equal("application/octet-stream"))
			Expect(string(resp.Body)).To(ContainSubstring(`viewBox="0 0 29 29"`))
		})
	})

	It("should fail for a warm-up path colliding with another route", func() {
		cfg := defaultConfig()
		cfg.Routes.WarmupPath = "/Hello"
		_, err := app.New(cfg, log)
		Expect(err).To(MatchError(router.ErrDuplicateRoute))
	})

	It("should fail for an unknown engine", func() {
		cfg := defaultConfig()
		cfg.QR.Engine = "zxing"
		_, err := app.New(cfg, log)
		Expect(err).To(MatchError(qr.ErrUnknownEngine))
		Expect(strings.Contains(err.Error(), "create qr generator")).To(BeTrue())
	})
})
