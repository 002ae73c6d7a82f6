package post

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/avezina/inkwell/domain"
	"github.com/avezina/inkwell/internal/repository"
)

type Service struct {
	postRepo  domain.PostRepository
	bloomRepo domain.BloomRepository
}

var _ domain.PostUsecase = (*Service)(nil)

// NewService will create a new post service object
func NewService(p domain.PostRepository, b domain.BloomRepository) *Service {
	return &Service{
		postRepo:  p,
		bloomRepo: b,
	}
}

func (s *Service) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Post, string, error) {
	res, err := s.postRepo.Fetch(ctx, cursor, num)
	if err != nil {
		return nil, "", err
	}

	nextCursor := ""
	if len(res) > 0 {
		nextCursor = repository.EncodeCursor(res[len(res)-1].CreatedAt)
	}
	return res, nextCursor, nil
}

func (s *Service) FetchByCategory(ctx context.Context, categoryID int64, cursor string, num int64) ([]domain.Post, string, error) {
	res, err := s.postRepo.FetchByCategory(ctx, categoryID, cursor, num)
	if err != nil {
		return nil, "", err
	}

	nextCursor := ""
	if len(res) > 0 {
		nextCursor = repository.EncodeCursor(res[len(res)-1].CreatedAt)
	}
	return res, nextCursor, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	exists, err := s.bloomRepo.Exists(ctx, id)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says post %d does not exist", id)
		return domain.Post{}, domain.ErrNotFound
	}

	return s.postRepo.GetByID(ctx, id)
}

func (s *Service) Store(ctx context.Context, p *domain.Post) error {
	existing, _ := s.postRepo.GetByTitle(ctx, p.Title) // ignore lookup errors
	if existing.ID != 0 {
		return domain.ErrConflict
	}

	if err := s.postRepo.Store(ctx, p); err != nil {
		return err
	}

	if err := s.bloomRepo.Add(ctx, p.ID); err != nil {
		logrus.Errorf("failed to add post %d to bloom filter: %v", p.ID, err)
	}
	return nil
}

func (s *Service) Update(ctx context.Context, p *domain.Post) error {
	p.UpdatedAt = time.Now()
	return s.postRepo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.postRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, id)
}

// InitBloomFilter seeds the filter with every existing post ID.
func (s *Service) InitBloomFilter(ctx context.Context) error {
	const pageSize = 1000
	var cursor int64 = 0
	for {
		ids, err := s.postRepo.FetchIDs(ctx, cursor, pageSize)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		cursor = ids[len(ids)-1]
	}
}
