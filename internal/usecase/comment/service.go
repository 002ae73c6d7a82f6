package comment

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/avezina/inkwell/domain"
	"github.com/avezina/inkwell/internal/repository"
)

type service struct {
	commentRepo domain.CommentRepository
	bloomRepo   domain.BloomRepository
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, bloomRepo domain.BloomRepository) *service {
	return &service{
		commentRepo: commentRepo,
		bloomRepo:   bloomRepo,
	}
}

func (s *service) mustExist(ctx context.Context, postID int64) error {
	exists, err := s.bloomRepo.Exists(ctx, postID)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says post %d does not exist", postID)
		return domain.ErrNotFound
	}
	return nil
}

func (s *service) Create(ctx context.Context, c *domain.Comment) error {
	if err := s.mustExist(ctx, c.PostID); err != nil {
		return err
	}
	return s.commentRepo.Store(ctx, c)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.commentRepo.Delete(ctx, id)
}

func (s *service) FetchByPost(ctx context.Context, postID int64, cursor string, limit int64) ([]domain.Comment, string, error) {
	if err := s.mustExist(ctx, postID); err != nil {
		return nil, "", err
	}

	res, err := s.commentRepo.FetchByPost(ctx, postID, cursor, limit)
	if err != nil {
		return nil, "", err
	}
	if len(res) == 0 {
		return []domain.Comment{}, "", nil
	}

	return res, repository.EncodeCursor(res[len(res)-1].CreatedAt), nil
}
