// Package handlers provides general infrastructure HTTP handlers
// (health, readiness, version, metrics).
//
// The /posts API handlers live in internal/blog/handlers.
package handlers
