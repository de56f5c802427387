package handlers

// create_post.go implements the POST /posts endpoint

import (
	"encoding/json"
	"net/http"

	"github.com/inkwellhq/blog-api/internal/blog"
)

// AuthorRequest is the structured author in a create request.
type AuthorRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// CreatePostRequest is the request body for POST /posts.
type CreatePostRequest struct {
	Author  *AuthorRequest `json:"author"`
	Title   string         `json:"title"`
	Content string         `json:"content"`
}

// HandleCreatePost godoc
//
//	@Summary		Create a blog post
//	@Description	Creates a new blog post. The id and created timestamp are assigned by the server.
//	@Description	The response returns the post in its wire form, with the author flattened to a
//	@Description	single "First Last" string.
//	@Tags			Posts
//	@Accept			json
//	@Produce		json
//	@Param			post	body		CreatePostRequest	true	"Post details"
//	@Success		201		{object}	blog.BlogPostView
//	@Failure		400		{object}	blog.ErrorResponse	"Missing or malformed fields"
//	@Failure		500		{object}	blog.ErrorResponse	"Internal error"
//	@Router			/posts [post]
func (h *PostsHandler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		blog.RespondWithError(w, r, blog.WrapMalformedRequestError(err, "failed to decode request JSON"))
		return
	}
	defer r.Body.Close()

	// Validate required fields
	if req.Title == "" {
		blog.RespondWithError(w, r, blog.NewValidationError("title is required"))
		return
	}
	if req.Content == "" {
		blog.RespondWithError(w, r, blog.NewValidationError("content is required"))
		return
	}
	if req.Author == nil {
		blog.RespondWithError(w, r, blog.NewValidationError("author is required"))
		return
	}
	if req.Author.FirstName == "" {
		blog.RespondWithError(w, r, blog.NewValidationError("author.firstName is required"))
		return
	}
	if req.Author.LastName == "" {
		blog.RespondWithError(w, r, blog.NewValidationError("author.lastName is required"))
		return
	}

	post, err := h.store.CreatePost(ctx, blog.NewPostParams{
		Author: blog.Author{
			FirstName: req.Author.FirstName,
			LastName:  req.Author.LastName,
		},
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		blog.RespondWithError(w, r, err)
		return
	}

	blog.RespondWithJSONPayload(w, http.StatusCreated, blog.NewPostView(post))
}
