package handlers

// update_post.go implements the PUT /posts/{postID} endpoint

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/inkwellhq/blog-api/internal/blog"
)

// UpdatePostRequest is the request body for PUT /posts/{postID}.
//
// Only the title and content can be updated; the body id must match the id
// in the request path. Omitted fields are left unchanged.
type UpdatePostRequest struct {
	ID      string  `json:"id"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// HandleUpdatePost godoc
//
//	@Summary		Update a blog post
//	@Description	Applies a partial update to the title and/or content of a post.
//	@Description	The author and id are never modified. The id in the body must match
//	@Description	the id in the path.
//	@Tags			Posts
//	@Accept			json
//	@Param			postID	path	string				true	"Post ID"
//	@Param			post	body	UpdatePostRequest	true	"Fields to update"
//	@Success		204		"Post updated"
//	@Failure		400		{object}	blog.ErrorResponse	"Invalid post ID or id mismatch"
//	@Failure		404		{object}	blog.ErrorResponse	"Post not found"
//	@Router			/posts/{postID} [put]
func (h *PostsHandler) HandleUpdatePost(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(chi.URLParam(r, "postID"))
	if err != nil {
		blog.RespondWithError(w, r, blog.NewValidationError("invalid post ID"))
		return
	}

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		blog.RespondWithError(w, r, blog.WrapMalformedRequestError(err, "failed to decode request JSON"))
		return
	}
	defer r.Body.Close()

	if req.ID != postID.String() {
		blog.RespondWithError(w, r, blog.NewConflictError("id in body does not match id in path"))
		return
	}

	if _, err := h.store.UpdatePostByID(r.Context(), postID, blog.UpdatePostParams{
		Title:   req.Title,
		Content: req.Content,
	}); err != nil {
		blog.RespondWithError(w, r, err)
		return
	}

	blog.RespondWithStatusCodeOnly(w, http.StatusNoContent)
}
