package like

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/avezina/inkwell/domain"
)

// Service runs like toggles against the cache, loading the visitor's
// liked-set from the database on a miss, and hands accepted toggles to the
// sync worker for the eventual database flush.
type Service struct {
	likeRepo        domain.LikeRepository
	likeCache       domain.LikeCache
	syncLikesWorker domain.SyncLikesWorker
}

var _ domain.LikeUsecase = (*Service)(nil)

func NewService(r domain.LikeRepository, c domain.LikeCache, w domain.SyncLikesWorker) *Service {
	return &Service{
		likeRepo:        r,
		likeCache:       c,
		syncLikesWorker: w,
	}
}

// primeLikedSet loads the visitor's liked IDs from the database into the cache.
func (s *Service) primeLikedSet(ctx context.Context, visitorID string, target domain.LikeTarget) error {
	liked, err := s.likeRepo.FetchVisitorLiked(ctx, visitorID, target, domain.LikeRecordLimit)
	if err != nil {
		logrus.Errorf("failed to FetchVisitorLiked from repo: %v", err)
		return err
	}

	if err := s.likeCache.SetLikedTargets(ctx, visitorID, target, liked); err != nil {
		logrus.Errorf("failed to SetLikedTargets to redis: %v", err)
		return err
	}
	return nil
}

func (s *Service) toggle(ctx context.Context, like domain.VisitorLike, action domain.LikeAction) (bool, error) {
	run := s.likeCache.AddLikeRecord
	if action == domain.Unlike {
		run = s.likeCache.RemoveLikeRecord
	}

	changed, err := run(ctx, like)
	if errors.Is(err, domain.ErrCacheMiss) {
		if err := s.primeLikedSet(ctx, like.VisitorID, like.Target); err != nil {
			return false, err
		}
		changed, err = run(ctx, like)
	}
	if err != nil {
		logrus.Errorf("failed to %s like record in redis: %v", action, err)
		return false, err
	}

	if changed {
		s.syncLikesWorker.Send(like, action)
	}
	return changed, nil
}

func (s *Service) AddLikeRecord(ctx context.Context, like domain.VisitorLike) (bool, error) {
	return s.toggle(ctx, like, domain.Like)
}

func (s *Service) RemoveLikeRecord(ctx context.Context, like domain.VisitorLike) (bool, error) {
	return s.toggle(ctx, like, domain.Unlike)
}

func (s *Service) LikedTargets(ctx context.Context, visitorID string, target domain.LikeTarget) ([]int64, error) {
	liked, err := s.likeCache.LikedTargets(ctx, visitorID, target)
	if err == nil {
		return liked, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("failed to read liked-set from redis: %v", err)
	}

	liked, err = s.likeRepo.FetchVisitorLiked(ctx, visitorID, target, domain.LikeRecordLimit)
	if err != nil {
		return nil, err
	}

	if err := s.likeCache.SetLikedTargets(ctx, visitorID, target, liked); err != nil {
		logrus.Warnf("failed to prime liked-set in redis: %v", err)
	}
	return liked, nil
}
