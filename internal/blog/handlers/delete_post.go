package handlers

// delete_post.go implements the DELETE /posts/{postID} endpoint

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/inkwellhq/blog-api/internal/blog"
	"github.com/inkwellhq/blog-api/internal/logger"
)

// HandleDeletePost godoc
//
//	@Summary		Delete a blog post
//	@Description	Removes the post with the given id. Deleting a nonexistent id is not
//	@Description	an error - the endpoint is idempotent and responds 204 either way.
//	@Tags			Posts
//	@Param			postID	path	string	true	"Post ID"
//	@Success		204		"Post deleted (or did not exist)"
//	@Failure		400		{object}	blog.ErrorResponse	"Invalid post ID"
//	@Router			/posts/{postID} [delete]
func (h *PostsHandler) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(chi.URLParam(r, "postID"))
	if err != nil {
		blog.RespondWithError(w, r, blog.NewValidationError("invalid post ID"))
		return
	}

	deleted, err := h.store.DeletePostByID(r.Context(), postID)
	if err != nil {
		blog.RespondWithError(w, r, err)
		return
	}

	if !deleted {
		reqLogger := logger.ContextRequestLogger(r.Context())
		reqLogger.Debug("delete of nonexistent post",
			slog.String("post_id", postID.String()))
	}

	blog.RespondWithStatusCodeOnly(w, http.StatusNoContent)
}
