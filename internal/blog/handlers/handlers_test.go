package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwellhq/blog-api/internal/blog"
)

// memStore is an in-memory PostStore used to test the handlers without a
// database. It mirrors the PostgresStore error semantics.
type memStore struct {
	posts map[uuid.UUID]blog.BlogPost
}

func newMemStore() *memStore {
	return &memStore{posts: make(map[uuid.UUID]blog.BlogPost)}
}

func (s *memStore) CreatePost(_ context.Context, params blog.NewPostParams) (blog.BlogPost, error) {
	if params.Title == "" {
		return blog.BlogPost{}, blog.NewValidationError("title is required")
	}
	if params.Content == "" {
		return blog.BlogPost{}, blog.NewValidationError("content is required")
	}
	post := blog.BlogPost{
		ID:      uuid.New(),
		Author:  params.Author,
		Title:   params.Title,
		Content: params.Content,
		Created: time.Now().UTC(),
	}
	s.posts[post.ID] = post
	return post, nil
}

func (s *memStore) ListPosts(_ context.Context) ([]blog.BlogPost, error) {
	posts := make([]blog.BlogPost, 0, len(s.posts))
	for _, post := range s.posts {
		posts = append(posts, post)
	}
	return posts, nil
}

func (s *memStore) GetPostByID(_ context.Context, id uuid.UUID) (blog.BlogPost, error) {
	post, ok := s.posts[id]
	if !ok {
		return blog.BlogPost{}, blog.NewNotFoundError("post not found")
	}
	return post, nil
}

func (s *memStore) UpdatePostByID(_ context.Context, id uuid.UUID, params blog.UpdatePostParams) (blog.BlogPost, error) {
	post, ok := s.posts[id]
	if !ok {
		return blog.BlogPost{}, blog.NewNotFoundError("post not found")
	}
	if params.Title != nil {
		post.Title = *params.Title
	}
	if params.Content != nil {
		post.Content = *params.Content
	}
	s.posts[id] = post
	return post, nil
}

func (s *memStore) DeletePostByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := s.posts[id]
	delete(s.posts, id)
	return ok, nil
}

func (s *memStore) CountPosts(_ context.Context) (int64, error) {
	return int64(len(s.posts)), nil
}

func newTestRouter(store blog.PostStore) *chi.Mux {
	h := NewPostsHandler(store)
	router := chi.NewRouter()
	router.Route("/posts", func(r chi.Router) {
		r.Get("/", h.HandleGetPosts)
		r.Post("/", h.HandleCreatePost)
		r.Get("/{postID}", h.HandleGetPostByID)
		r.Put("/{postID}", h.HandleUpdatePost)
		r.Delete("/{postID}", h.HandleDeletePost)
	})
	return router
}

func seedPost(t *testing.T, store *memStore, firstName, lastName, title, content string) blog.BlogPost {
	t.Helper()
	post, err := store.CreatePost(context.Background(), blog.NewPostParams{
		Author:  blog.Author{FirstName: firstName, LastName: lastName},
		Title:   title,
		Content: content,
	})
	require.NoError(t, err)
	return post
}

func doJSON(t *testing.T, router *chi.Mux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestCreatePost(t *testing.T) {
	store := newMemStore()
	router := newTestRouter(store)

	rr := doJSON(t, router, http.MethodPost, "/posts", CreatePostRequest{
		Author:  &AuthorRequest{FirstName: "Ada", LastName: "Lovelace"},
		Title:   "T",
		Content: "C",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var view blog.BlogPostView
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&view))
	assert.Equal(t, "Ada Lovelace", view.Author)
	assert.Equal(t, "T", view.Title)
	assert.Equal(t, "C", view.Content)

	// the returned id must resolve to the stored record
	id, err := uuid.Parse(view.ID)
	require.NoError(t, err)
	stored, err := store.GetPostByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Ada", stored.Author.FirstName)
	assert.Equal(t, "Lovelace", stored.Author.LastName)
}

func TestCreatePost_Validation(t *testing.T) {
	tests := []struct {
		name string
		body CreatePostRequest
	}{
		{"missing title", CreatePostRequest{Author: &AuthorRequest{FirstName: "A", LastName: "B"}, Content: "C"}},
		{"missing content", CreatePostRequest{Author: &AuthorRequest{FirstName: "A", LastName: "B"}, Title: "T"}},
		{"missing author", CreatePostRequest{Title: "T", Content: "C"}},
		{"missing first name", CreatePostRequest{Author: &AuthorRequest{LastName: "B"}, Title: "T", Content: "C"}},
		{"missing last name", CreatePostRequest{Author: &AuthorRequest{FirstName: "A"}, Title: "T", Content: "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			router := newTestRouter(store)

			rr := doJSON(t, router, http.MethodPost, "/posts", tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)

			count, err := store.CountPosts(context.Background())
			require.NoError(t, err)
			assert.Zero(t, count, "failed create must not mutate the store")
		})
	}
}

func TestCreatePost_MalformedJSON(t *testing.T) {
	router := newTestRouter(newMemStore())

	req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetPosts(t *testing.T) {
	store := newMemStore()
	router := newTestRouter(store)

	seedPost(t, store, "Ada", "Lovelace", "T1", "C1")
	seedPost(t, store, "Alan", "Turing", "T2", "C2")

	rr := doJSON(t, router, http.MethodGet, "/posts", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var views []blog.BlogPostView
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&views))

	count, err := store.CountPosts(context.Background())
	require.NoError(t, err)
	assert.Len(t, views, int(count))

	authors := make(map[string]bool)
	for _, v := range views {
		authors[v.Author] = true
	}
	assert.True(t, authors["Ada Lovelace"])
	assert.True(t, authors["Alan Turing"])
}

func TestGetPosts_Empty(t *testing.T) {
	router := newTestRouter(newMemStore())

	rr := doJSON(t, router, http.MethodGet, "/posts", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var views []blog.BlogPostView
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&views))
	assert.Empty(t, views)
}

func TestGetPostByID(t *testing.T) {
	store := newMemStore()
	router := newTestRouter(store)
	post := seedPost(t, store, "Ada", "Lovelace", "T", "C")

	rr := doJSON(t, router, http.MethodGet, "/posts/"+post.ID.String(), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var view blog.BlogPostView
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&view))
	assert.Equal(t, post.ID.String(), view.ID)
	assert.Equal(t, "Ada Lovelace", view.Author)
	assert.Equal(t, "T", view.Title)
	assert.Equal(t, "C", view.Content)
}

func TestGetPostByID_NotFound(t *testing.T) {
	router := newTestRouter(newMemStore())

	rr := doJSON(t, router, http.MethodGet, "/posts/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetPostByID_BadID(t *testing.T) {
	router := newTestRouter(newMemStore())

	rr := doJSON(t, router, http.MethodGet, "/posts/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdatePost_TitleOnly(t *testing.T) {
	store := newMemStore()
	router := newTestRouter(store)
	post := seedPost(t, store, "Ada", "Lovelace", "T", "C")

	title := "T2"
	rr := doJSON(t, router, http.MethodPut, "/posts/"+post.ID.String(), UpdatePostRequest{
		ID:    post.ID.String(),
		Title: &title,
	})
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Zero(t, rr.Body.Len(), "204 response must have an empty body")

	updated, err := store.GetPostByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, "C", updated.Content, "content must be unchanged")
	assert.Equal(t, post.Author, updated.Author, "author must be unchanged")
}

func TestUpdatePost_ContentOnly(t *testing.T) {
	store := newMemStore()
	router := newTestRouter(store)
	post := seedPost(t, store, "Ada", "Lovelace", "T", "C")

	content := "C2"
	rr := doJSON(t, router, http.MethodPut, "/posts/"+post.ID.String(), UpdatePostRequest{
		ID:      post.ID.String(),
		Content: &content,
	})
	require.Equal(t, http.StatusNoContent, rr.Code)

	updated, err := store.GetPostByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", updated.Title, "title must be unchanged")
	assert.Equal(t, "C2", updated.Content)
	assert.Equal(t, post.Author, updated.Author, "author must be unchanged")
}

func TestUpdatePost_IDMismatch(t *testing.T) {
	store := newMemStore()
	router := newTestRouter(store)
	post := seedPost(t, store, "Ada", "Lovelace", "T", "C")

	title := "T2"
	rr := doJSON(t, router, http.MethodPut, "/posts/"+post.ID.String(), UpdatePostRequest{
		ID:    uuid.NewString(),
		Title: &title,
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	unchanged, err := store.GetPostByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", unchanged.Title)
}

func TestUpdatePost_NotFound(t *testing.T) {
	router := newTestRouter(newMemStore())

	id := uuid.NewString()
	title := "T2"
	rr := doJSON(t, router, http.MethodPut, "/posts/"+id, UpdatePostRequest{
		ID:    id,
		Title: &title,
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeletePost(t *testing.T) {
	store := newMemStore()
	router := newTestRouter(store)
	post := seedPost(t, store, "Ada", "Lovelace", "T", "C")

	rr := doJSON(t, router, http.MethodDelete, "/posts/"+post.ID.String(), nil)
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Zero(t, rr.Body.Len(), "204 response must have an empty body")

	rr = doJSON(t, router, http.MethodGet, "/posts/"+post.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeletePost_Idempotent(t *testing.T) {
	router := newTestRouter(newMemStore())

	rr := doJSON(t, router, http.MethodDelete, "/posts/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
