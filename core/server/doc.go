// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package
// only defines the configuration structure embedded by core/config, so that
// features and middleware can depend on server settings without importing
// the command layer.
package server
