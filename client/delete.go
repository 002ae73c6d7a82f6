package client

import (
	"context"
	"errors"
)

// ErrDeleteDeclined is returned when the confirmation callback rejects the
// deletion. No API call is made in that case.
var ErrDeleteDeclined = errors.New("deletion declined")

// ConfirmFunc asks the admin to confirm a destructive action.
type ConfirmFunc func() bool

// Deleter removes items from a collection through the API, gated by a
// confirmation step. The collection shrinks only after the API succeeds.
type Deleter[T any] struct {
	col     *Collection[T]
	remove  func(ctx context.Context, id int64) error
	confirm ConfirmFunc
}

func NewDeleter[T any](col *Collection[T], remove func(ctx context.Context, id int64) error, confirm ConfirmFunc) *Deleter[T] {
	return &Deleter[T]{col: col, remove: remove, confirm: confirm}
}

// Delete asks for confirmation, calls the API and drops the item from the
// collection. A declined confirmation or a failed call leaves the
// collection as it was.
func (d *Deleter[T]) Delete(ctx context.Context, id int64) error {
	if d.confirm != nil && !d.confirm() {
		return ErrDeleteDeclined
	}

	if err := d.remove(ctx, id); err != nil {
		return err
	}

	d.col.Remove(id)
	return nil
}
