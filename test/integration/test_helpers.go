//go:build integration

// functions that are useful in integration tests

package integration

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/inkwellhq/blog-api/internal/database"
	"github.com/jackc/pgx/v5/pgxpool"
)

// seedPost inserts a post directly through the query layer, bypassing the
// HTTP API. Use this to arrange store state before exercising an endpoint.
func seedPost(t *testing.T, queries *database.Queries, firstName, lastName, title, content string) database.Post {
	t.Helper()

	post, err := queries.CreatePost(context.Background(), database.CreatePostParams{
		AuthorFirstName: firstName,
		AuthorLastName:  lastName,
		Title:           title,
		Content:         content,
	})
	if err != nil {
		t.Fatalf("failed to seed test post: %v", err)
	}
	return post
}

// cleanupDatabase truncates the posts table to reset the database state between tests
func cleanupDatabase(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()

	_, err := pool.Exec(ctx, `TRUNCATE TABLE posts CASCADE;`)
	if err != nil {
		t.Fatalf("Failed to cleanup database: %v", err)
	}
}

// Random test-data generation. Posts seeded in bulk use generated
// author/title/content triples so tests never depend on fixed content.

var (
	firstNames = []string{"Ada", "Alan", "Grace", "Edsger", "Barbara", "Donald", "Leslie", "Tony"}
	lastNames  = []string{"Lovelace", "Turing", "Hopper", "Dijkstra", "Liskov", "Knuth", "Lamport", "Hoare"}
	titleWords = []string{"Notes", "Thoughts", "Musings", "Lessons", "Questions", "Experiments"}
	topicWords = []string{"compilers", "databases", "protocols", "concurrency", "testing", "type systems"}
)

type postFixture struct {
	firstName string
	lastName  string
	title     string
	content   string
}

// randomPostFixture generates a random author/title/content triple.
func randomPostFixture() postFixture {
	first := firstNames[rand.IntN(len(firstNames))]
	last := lastNames[rand.IntN(len(lastNames))]
	return postFixture{
		firstName: first,
		lastName:  last,
		title: fmt.Sprintf("%s on %s #%d",
			titleWords[rand.IntN(len(titleWords))],
			topicWords[rand.IntN(len(topicWords))],
			rand.IntN(10000)),
		content: fmt.Sprintf("%s %s writes about %s.",
			first, last, topicWords[rand.IntN(len(topicWords))]),
	}
}

// seedRandomPosts inserts n randomly generated posts and returns them.
func seedRandomPosts(t *testing.T, queries *database.Queries, n int) []database.Post {
	t.Helper()

	posts := make([]database.Post, 0, n)
	for range n {
		fixture := randomPostFixture()
		posts = append(posts, seedPost(t, queries, fixture.firstName, fixture.lastName, fixture.title, fixture.content))
	}
	return posts
}
