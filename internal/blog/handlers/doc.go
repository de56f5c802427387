// Package handlers provides the HTTP handlers for the /posts endpoints.
//
// Handlers decode and validate the wire format, delegate to the blog
// PostStore, and translate store outcomes into status codes. All failures
// are sent with blog.RespondWithError so the client always receives the
// standard error response format.
package handlers
