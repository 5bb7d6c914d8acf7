// Package handler implements the stateless request handlers served by the router:
// the warm-up no-op, the static greeting and the QR code generator.
package handler
