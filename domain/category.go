package domain

import (
	"context"
	"time"
)

// Category groups posts and can itself be liked by visitors.
type Category struct {
	ID          int64
	Name        string
	Description string
	TotalLikes  int64
	UpdatedAt   time.Time
	CreatedAt   time.Time
}

// CategoryRepository defines the contract for category data persistence.
type CategoryRepository interface {
	// Fetch retrieves all categories. The set is small, no paging.
	Fetch(ctx context.Context) ([]Category, error)

	// GetByID returns ErrNotFound if the category doesn't exist.
	GetByID(ctx context.Context, id int64) (Category, error)

	// GetByIDs retrieves categories by given IDs, missing IDs are skipped.
	GetByIDs(ctx context.Context, ids []int64) ([]Category, error)

	// Store creates a new category and backfills its ID.
	Store(ctx context.Context, c *Category) error

	// Update returns ErrNotFound if the category doesn't exist.
	Update(ctx context.Context, c *Category) error

	// Delete returns ErrNotFound if not exists, ErrConflict if posts
	// still reference the category.
	Delete(ctx context.Context, id int64) error
}

type CategoryUsecase interface {
	Fetch(ctx context.Context) ([]Category, error)
	Store(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id int64) error
}
