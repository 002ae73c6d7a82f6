package domain

import "context"

// Tag is a flat label attached to posts by name.
type Tag struct {
	ID   int64
	Name string
}

type TagRepository interface {
	Fetch(ctx context.Context) ([]Tag, error)
	// Store returns ErrConflict when the name already exists.
	Store(ctx context.Context, t *Tag) error
	Delete(ctx context.Context, id int64) error
}

type TagUsecase interface {
	Fetch(ctx context.Context) ([]Tag, error)
	Store(ctx context.Context, t *Tag) error
	Delete(ctx context.Context, id int64) error
}
