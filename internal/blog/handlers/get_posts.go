package handlers

// get_posts.go implements the GET /posts and GET /posts/{postID} endpoints

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/inkwellhq/blog-api/internal/blog"
)

// HandleGetPosts godoc
//
//	@Summary		List all blog posts
//	@Description	Returns every stored post in its wire form.
//	@Tags			Posts
//	@Produce		json
//	@Success		200	{array}		blog.BlogPostView
//	@Failure		500	{object}	blog.ErrorResponse	"Internal error"
//	@Router			/posts [get]
func (h *PostsHandler) HandleGetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.store.ListPosts(r.Context())
	if err != nil {
		blog.RespondWithError(w, r, err)
		return
	}

	views := make([]blog.BlogPostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, blog.NewPostView(post))
	}

	blog.RespondWithJSONPayload(w, http.StatusOK, views)
}

// HandleGetPostByID godoc
//
//	@Summary		Get a blog post by id
//	@Tags			Posts
//	@Produce		json
//	@Param			postID	path		string	true	"Post ID"
//	@Success		200		{object}	blog.BlogPostView
//	@Failure		400		{object}	blog.ErrorResponse	"Invalid post ID"
//	@Failure		404		{object}	blog.ErrorResponse	"Post not found"
//	@Router			/posts/{postID} [get]
func (h *PostsHandler) HandleGetPostByID(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(chi.URLParam(r, "postID"))
	if err != nil {
		blog.RespondWithError(w, r, blog.NewValidationError("invalid post ID"))
		return
	}

	post, err := h.store.GetPostByID(r.Context(), postID)
	if err != nil {
		blog.RespondWithError(w, r, err)
		return
	}

	blog.RespondWithJSONPayload(w, http.StatusOK, blog.NewPostView(post))
}
