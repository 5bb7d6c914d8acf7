// Package host bridges net/http, as delivered by the Spin SDK or a local
// server, to the router's request/response descriptors.
package host
