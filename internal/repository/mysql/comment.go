package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/avezina/inkwell/domain"
	"github.com/avezina/inkwell/internal/repository"
	"github.com/avezina/inkwell/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	commentModel := model.NewCommentFromDomain(comment)
	err := c.DB.WithContext(ctx).Create(commentModel).Error
	if err != nil {
		return err
	}
	comment.ID = commentModel.ID
	comment.CreatedAt = commentModel.CreatedAt
	return nil
}

func (c *commentRepository) Delete(ctx context.Context, id int64) error {
	result := c.DB.WithContext(ctx).Delete(&model.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *commentRepository) FetchByPost(ctx context.Context, postID int64, cursor string, limit int64) ([]domain.Comment, error) {
	var comments []model.Comment
	decodedCursor, err := repository.DecodeCursor(cursor)
	if err != nil && cursor != "" {
		return nil, domain.ErrBadParamInput
	}

	repository.PageVerify(&limit)
	err = c.DB.WithContext(ctx).
		Where("post_id = ? AND created_at > ?", postID, decodedCursor).
		Order("created_at").
		Limit(int(limit)).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Comment, len(comments))
	for i := range comments {
		res[i] = comments[i].ToDomain()
	}
	return res, nil
}
