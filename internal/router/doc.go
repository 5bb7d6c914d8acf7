// Package router dispatches requests to handlers through an immutable route
// table keyed by lower-cased path. Matching is exact; anything unmapped is
// answered with 404 and an empty body.
package router
