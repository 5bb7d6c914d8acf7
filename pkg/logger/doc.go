// Package logger provides structured logging with configurable log levels.
// It wraps the standard log/slog package: JSON records in prod, text records
// elsewhere, each tagged with the deployment environment.
package logger
