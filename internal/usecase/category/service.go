package category

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/avezina/inkwell/domain"
)

type Service struct {
	categoryRepo domain.CategoryRepository
	likeCache    domain.LikeCache
}

var _ domain.CategoryUsecase = (*Service)(nil)

func NewService(r domain.CategoryRepository, c domain.LikeCache) *Service {
	return &Service{
		categoryRepo: r,
		likeCache:    c,
	}
}

func (s *Service) Fetch(ctx context.Context) ([]domain.Category, error) {
	res, err := s.categoryRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	// overlay buffered like counters so fresh toggles are visible
	// before the worker flush
	ids := make([]int64, len(res))
	for i := range res {
		ids[i] = res[i].ID
	}
	counts, err := s.likeCache.MGetLikeCounts(ctx, domain.LikeTargetCategory, ids)
	if err != nil {
		logrus.Warnf("failed to read category like counters: %v", err)
		return res, nil
	}
	for i := range res {
		if likes, ok := counts[res[i].ID]; ok {
			res[i].TotalLikes = likes
		}
	}
	return res, nil
}

func (s *Service) Store(ctx context.Context, c *domain.Category) error {
	return s.categoryRepo.Store(ctx, c)
}

func (s *Service) Update(ctx context.Context, c *domain.Category) error {
	c.UpdatedAt = time.Now()
	return s.categoryRepo.Update(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.categoryRepo.Delete(ctx, id)
}
