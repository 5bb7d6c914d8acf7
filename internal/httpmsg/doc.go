// Package httpmsg defines the host-neutral request and response descriptors
// exchanged between the WASI host adapter and the router.
package httpmsg
