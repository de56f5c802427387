// Package blog holds the blog-post domain: the stored post entity, its wire
// representation, the PostStore contract with the PostgreSQL implementation,
// and the error types shared by the HTTP handlers.
//
// **types**
// BlogPost is the stored shape (structured author, created timestamp).
// BlogPostView is the response shape - the author is flattened to a single
// "First Last" string at read time and is never stored in that form.
//
// **error handling**
// store and handler failures are blog.Error values carrying an ErrorCode.
// The codes are mapped to HTTP status codes and the standard JSON error
// response format in error_response.go. Use RespondWithError() to create and
// send the error response.
//
// **testing**
// The store and handlers are tested end-to-end with integration tests - see
// test/integration for details.
package blog
