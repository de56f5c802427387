// Package integration contains end-to-end tests for the blog API server.
//
// These tests verify the server handles API requests correctly (expected
// responses, error handling, database persistence, etc). Each test runs
// against a temporary database with migrations applied, and the server is
// started in-process.
//
// The tests assert field equivalence between HTTP responses and the
// underlying stored records: the store is queried directly (via the sqlc
// query layer) to confirm what the API reports matches what was persisted.
package integration
