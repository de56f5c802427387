// Package server provides the HTTP server for the blog API.
//
// the server is configured through environment variables
// (see internal/config/config.go for details)
//
// The package wires the /posts API handlers (internal/blog/handlers)
// together with the common infrastructure handlers (health, readiness,
// version, metrics).
//
// middleware is in internal/server/middleware
package server
