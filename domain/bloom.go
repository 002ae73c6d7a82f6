package domain

import "context"

type BloomRepository interface {
	// Add inserts a post ID into the filter
	Add(ctx context.Context, id int64) error

	// Exists checks whether the ID may exist.
	// true: possibly present, check cache/DB next.
	// false: definitely absent, short-circuit to 404.
	Exists(ctx context.Context, id int64) (bool, error)

	// BulkAdd inserts many IDs at once, used when seeding
	BulkAdd(ctx context.Context, ids []int64) error
}
