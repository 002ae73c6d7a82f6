package domain

import (
	"context"
	"time"
)

// Comment domain model. Comments are left by anonymous visitors under a
// free-form display name and are only ever removed by the admin.
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentUsecase interface {
	Create(ctx context.Context, c *Comment) error
	// Delete removes one comment, admin moderation only.
	Delete(ctx context.Context, id int64) error
	FetchByPost(ctx context.Context, postID int64, cursor string, limit int64) ([]Comment, string, error)
}

type CommentRepository interface {
	Store(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, id int64) error
	FetchByPost(ctx context.Context, postID int64, cursor string, limit int64) ([]Comment, error)
}
