// Package app assembles the route table from configuration.
package app
