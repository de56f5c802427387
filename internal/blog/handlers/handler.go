package handlers

import (
	"github.com/inkwellhq/blog-api/internal/blog"
)

// PostsHandler handles the /posts CRUD endpoints.
type PostsHandler struct {
	store blog.PostStore
}

// NewPostsHandler creates a handler backed by the given store.
func NewPostsHandler(store blog.PostStore) *PostsHandler {
	return &PostsHandler{store: store}
}
