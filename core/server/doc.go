// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package
// only defines the configuration structure: the listen port, the API key
// protecting the reconciliation endpoints, and the upload body limit for
// statement files.
//
// It is embedded by the core/config package.
package server
