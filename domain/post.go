package domain

import (
	"context"
	"time"
)

// Post is representing the Post data struct
type Post struct {
	ID         int64     // Unique identifier for the post
	Title      string    // Post title
	Content    string    // Post body content
	Category   Category  // Category the post belongs to
	Tags       []string  // Tag names attached to the post
	TotalLikes int64     // Number of likes, recounted by the sync worker
	UpdatedAt  time.Time // Last update timestamp
	CreatedAt  time.Time // Creation timestamp
}

// PostRepository defines the contract for post data persistence
type PostRepository interface {
	// Fetch retrieves a paginated list of posts.
	// cursor: pass the cursor from the previous page or empty string for the first page.
	// num: number of posts to fetch per page.
	Fetch(ctx context.Context, cursor string, num int64) ([]Post, error)

	// FetchByCategory retrieves a paginated list of posts in one category.
	FetchByCategory(ctx context.Context, categoryID int64, cursor string, num int64) ([]Post, error)

	// GetByID retrieves a single post by its ID.
	// Returns ErrNotFound if the post doesn't exist.
	GetByID(ctx context.Context, id int64) (Post, error)

	// GetByTitle retrieves a post by its title.
	GetByTitle(ctx context.Context, title string) (Post, error)

	// Store creates a new post and backfills ID and timestamps.
	Store(ctx context.Context, p *Post) error

	// Update modifies an existing post.
	// Returns ErrNotFound if the post doesn't exist.
	Update(ctx context.Context, p *Post) error

	// Delete removes a post by its ID.
	// Returns ErrNotFound if not exists.
	Delete(ctx context.Context, id int64) error

	// FetchIDs pages over all post IDs, used to seed the bloom filter.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

// PostCache caches whole posts and the home list
type PostCache interface {
	GetHome(ctx context.Context) ([]Post, bool, error)
	SetHome(ctx context.Context, posts []Post, ttl time.Duration) error

	GetPost(ctx context.Context, id int64) (Post, error)
	SetPost(ctx context.Context, p *Post) error

	// DeletePost drops the post and its like counter from the cache
	DeletePost(ctx context.Context, id int64) error
}

type PostUsecase interface {
	Fetch(ctx context.Context, cursor string, num int64) ([]Post, string, error)
	FetchByCategory(ctx context.Context, categoryID int64, cursor string, num int64) ([]Post, string, error)
	GetByID(ctx context.Context, id int64) (Post, error)
	Store(ctx context.Context, p *Post) error
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id int64) error
	InitBloomFilter(ctx context.Context) error
}
