package blog

// postgres.go implements PostStore on top of the sqlc-generated query layer.

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/inkwellhq/blog-api/internal/database"
	"github.com/jackc/pgx/v5"
)

// PostgresStore is the PostgreSQL-backed PostStore.
type PostgresStore struct {
	queries *database.Queries
}

var _ PostStore = (*PostgresStore)(nil)

// NewPostgresStore creates a PostStore backed by the given query layer.
func NewPostgresStore(queries *database.Queries) *PostgresStore {
	return &PostgresStore{queries: queries}
}

func (s *PostgresStore) CreatePost(ctx context.Context, params NewPostParams) (BlogPost, error) {
	if params.Title == "" {
		return BlogPost{}, NewValidationError("title is required")
	}
	if params.Content == "" {
		return BlogPost{}, NewValidationError("content is required")
	}

	row, err := s.queries.CreatePost(ctx, database.CreatePostParams{
		AuthorFirstName: params.Author.FirstName,
		AuthorLastName:  params.Author.LastName,
		Title:           params.Title,
		Content:         params.Content,
	})
	if err != nil {
		return BlogPost{}, WrapInternalError(err, "failed to create post")
	}

	return postFromRow(row), nil
}

func (s *PostgresStore) ListPosts(ctx context.Context) ([]BlogPost, error) {
	rows, err := s.queries.ListPosts(ctx)
	if err != nil {
		return nil, WrapInternalError(err, "failed to list posts")
	}

	posts := make([]BlogPost, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, postFromRow(row))
	}
	return posts, nil
}

func (s *PostgresStore) GetPostByID(ctx context.Context, id uuid.UUID) (BlogPost, error) {
	row, err := s.queries.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return BlogPost{}, NewNotFoundError("post not found")
		}
		return BlogPost{}, WrapInternalError(err, "failed to get post")
	}
	return postFromRow(row), nil
}

func (s *PostgresStore) UpdatePostByID(ctx context.Context, id uuid.UUID, params UpdatePostParams) (BlogPost, error) {
	row, err := s.queries.UpdatePostByID(ctx, database.UpdatePostByIDParams{
		ID:      id,
		Title:   params.Title,
		Content: params.Content,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return BlogPost{}, NewNotFoundError("post not found")
		}
		return BlogPost{}, WrapInternalError(err, "failed to update post")
	}
	return postFromRow(row), nil
}

func (s *PostgresStore) DeletePostByID(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.queries.DeletePostByID(ctx, id)
	if err != nil {
		return false, WrapInternalError(err, "failed to delete post")
	}
	return deleted > 0, nil
}

func (s *PostgresStore) CountPosts(ctx context.Context) (int64, error) {
	count, err := s.queries.CountPosts(ctx)
	if err != nil {
		return 0, WrapInternalError(err, "failed to count posts")
	}
	return count, nil
}

func postFromRow(row database.Post) BlogPost {
	return BlogPost{
		ID: row.ID,
		Author: Author{
			FirstName: row.AuthorFirstName,
			LastName:  row.AuthorLastName,
		},
		Title:   row.Title,
		Content: row.Content,
		Created: row.Created,
	}
}
