// Package httpserver runs the router natively over TCP for local development
// and the metrics listener alongside it.
package httpserver
