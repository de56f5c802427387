package blog

// store.go defines the PostStore contract implemented by the PostgreSQL
// store (postgres.go) and by the in-memory fake used in handler tests.

import (
	"context"

	"github.com/google/uuid"
)

// PostStore owns the persisted blog-post records.
//
// Absent ids are reported as blog.Error values with code ErrCodeNotFound,
// except for DeletePostByID which is idempotent and reports absence through
// its boolean result.
type PostStore interface {
	// CreatePost stores a new post. The id and created timestamp are
	// assigned by the store. Returns a validation error when the title or
	// content is empty.
	CreatePost(ctx context.Context, params NewPostParams) (BlogPost, error)

	// ListPosts returns all stored posts.
	ListPosts(ctx context.Context) ([]BlogPost, error)

	// GetPostByID returns the post with the given id, or a not-found error.
	GetPostByID(ctx context.Context, id uuid.UUID) (BlogPost, error)

	// UpdatePostByID applies a partial update to the title and/or content of
	// the post with the given id. Nil fields are left unchanged; the author
	// and id are never modified. Returns a not-found error when no post
	// matches.
	UpdatePostByID(ctx context.Context, id uuid.UUID, params UpdatePostParams) (BlogPost, error)

	// DeletePostByID removes the post with the given id if present and
	// reports whether a post was removed. Deleting a nonexistent id is not
	// an error.
	DeletePostByID(ctx context.Context, id uuid.UUID) (bool, error)

	// CountPosts returns the total number of stored posts.
	CountPosts(ctx context.Context) (int64, error)
}
