// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package
// defines the listen port, the optional API key and the graceful shutdown
// deadline shared by the HTTP server and the background job runner.
package server
