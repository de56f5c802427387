package blog

// types.go defines the stored and wire shapes of a blog post.

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Author is the structured author stored with every post.
type Author struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// FullName returns the flattened "First Last" form used on the wire.
func (a Author) FullName() string {
	return fmt.Sprintf("%s %s", a.FirstName, a.LastName)
}

// BlogPost is the stored post entity. The id and created timestamp are
// assigned by the database on insert and never change afterwards.
type BlogPost struct {
	ID      uuid.UUID
	Author  Author
	Title   string
	Content string
	Created time.Time
}

// BlogPostView is the response shape of a post. The author is a single
// string computed from the stored structured author at read time - the
// flattened form is never stored.
type BlogPostView struct {
	ID      string    `json:"id"`
	Author  string    `json:"author"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Created time.Time `json:"created"`
}

// NewPostView maps a stored post to its wire representation.
func NewPostView(post BlogPost) BlogPostView {
	return BlogPostView{
		ID:      post.ID.String(),
		Author:  post.Author.FullName(),
		Title:   post.Title,
		Content: post.Content,
		Created: post.Created,
	}
}

// NewPostParams carries the fields needed to create a post.
type NewPostParams struct {
	Author  Author
	Title   string
	Content string
}

// UpdatePostParams carries the optional fields of a partial update.
// Nil fields are left untouched; the author and id can not be updated.
type UpdatePostParams struct {
	Title   *string
	Content *string
}
