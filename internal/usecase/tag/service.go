package tag

import (
	"context"

	"github.com/avezina/inkwell/domain"
)

type Service struct {
	tagRepo domain.TagRepository
}

var _ domain.TagUsecase = (*Service)(nil)

func NewService(r domain.TagRepository) *Service {
	return &Service{
		tagRepo: r,
	}
}

func (s *Service) Fetch(ctx context.Context) ([]domain.Tag, error) {
	return s.tagRepo.Fetch(ctx)
}

func (s *Service) Store(ctx context.Context, t *domain.Tag) error {
	return s.tagRepo.Store(ctx, t)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.tagRepo.Delete(ctx, id)
}
