// Package config handles loading and parsing of configuration from YAML files
// and environment variables. It defines the application configuration structure
// including server settings, logging, the route table's warm-up path and
// greeting, and QR rendering options.
package config
