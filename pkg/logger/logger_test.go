package logger_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	jsoniter "github.com/json-iterator/go"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/wasi-qr-router/pkg/logger"
)

var _ = Describe("Logger", func() {
	ctx := context.Background()

	Describe("New", func() {
		It("should create logger with info level", func() {
			log := logger.New("info", false, "dev", io.Discard)
			Expect(log).NotTo(BeNil())
			Expect(log.Enabled(ctx, slog.LevelInfo)).To(BeTrue())
			Expect(log.Enabled(ctx, slog.LevelDebug)).To(BeFalse())
		})

		It("should respect debug level", func() {
			log := logger.New("debug", false, "dev", io.Discard)
			Expect(log.Enabled(ctx, slog.LevelDebug)).To(BeTrue())
		})

		It("should respect warn level", func() {
			log := logger.New("warn", false, "dev", io.Discard)
			Expect(log.Enabled(ctx, slog.LevelInfo)).To(BeFalse())
			Expect(log.Enabled(ctx, slog.LevelWarn)).To(BeTrue())
		})

		It("should respect error level", func() {
			log := logger.New("error", false, "dev", io.Discard)
			Expect(log.Enabled(ctx, slog.LevelWarn)).To(BeFalse())
			Expect(log.Enabled(ctx, slog.LevelError)).To(BeTrue())
		})

		It("should write JSON records in prod", func() {
			var buf bytes.Buffer
			log := logger.New("info", false, "prod", &buf)
			log.Info("ready", slog.String("route", "/qr"))

			var record map[string]any
			Expect(jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(buf.Bytes(), &record)).To(Succeed())
			Expect(record).To(HaveKeyWithValue("msg", "ready"))
			Expect(record).To(HaveKeyWithValue("environment", "prod"))
			Expect(record).To(HaveKeyWithValue("route", "/qr"))
		})

		It("should write text records outside prod", func() {
			var buf bytes.Buffer
			log := logger.New("info", false, "staging", &buf)
			log.Info("ready")

			Expect(buf.String()).To(ContainSubstring("msg=ready"))
			Expect(buf.String()).To(ContainSubstring("environment=staging"))
		})

		It("should include the source when asked", func() {
			var buf bytes.Buffer
			log := logger.New("info", true, "dev", &buf)
			log.Info("ready")

			Expect(buf.String()).To(ContainSubstring("source="))
		})
	})

	DescribeTable("ParseLevel",
		func(name string, expected slog.Level) {
			Expect(logger.ParseLevel(name)).To(Equal(expected))
		},
		Entry("debug", "debug", slog.LevelDebug),
		Entry("upper-case warn", "WARN", slog.LevelWarn),
		Entry("error", "error", slog.LevelError),
		Entry("unknown defaults to info", "invalid", slog.LevelInfo),
		Entry("empty defaults to info", "", slog.LevelInfo),
	)
})
