package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/avezina/inkwell/domain"
)

type LikeTask struct {
	VisitorID string
	TargetID  int64
	Target    domain.LikeTarget
	Action    domain.LikeAction
}

// syncLikesWorker drains buffered like toggles into the database in batches.
// Opposite toggles of the same (visitor, target) inside one batch collapse
// to the last action.
type syncLikesWorker struct {
	likeRepo domain.LikeRepository
	ch       chan LikeTask
}

var _ domain.SyncLikesWorker = (*syncLikesWorker)(nil)

func NewSyncLikesWorker(r domain.LikeRepository) *syncLikesWorker {
	return &syncLikesWorker{
		likeRepo: r,
		ch:       make(chan LikeTask, 1024),
	}
}

// Send enqueues one toggle; a full channel drops the task rather than block
// the request path.
func (s *syncLikesWorker) Send(like domain.VisitorLike, action domain.LikeAction) {
	select {
	case s.ch <- LikeTask{like.VisitorID, like.TargetID, like.Target, action}:
	default:
		logrus.Info("SyncLikesWorker's channel is full, task dropped")
	}
}

func (s *syncLikesWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	const batchSize = 100
	batch := make([]LikeTask, 0, batchSize)
	for {
		select {
		case task := <-s.ch:
			batch = append(batch, task)
			if len(batch) == batchSize {
				s.flush(ctx, batch)
				batch = make([]LikeTask, 0, batchSize)
			}
		case <-ticker.C:
			s.flush(ctx, batch)
			batch = make([]LikeTask, 0, batchSize)
		case <-ctx.Done():
			logrus.Info("shutting down SyncLikesWorker, flushing remaining tasks...")
			s.flush(context.Background(), batch)
			return
		}
	}
}

type taskKey struct {
	visitorID string
	targetID  int64
	target    domain.LikeTarget
}

func (s *syncLikesWorker) flush(ctx context.Context, batch []LikeTask) {
	if len(batch) == 0 {
		return
	}

	tasks := make(map[taskKey]domain.LikeAction)
	for i := range batch {
		key := taskKey{
			visitorID: batch[i].VisitorID,
			targetID:  batch[i].TargetID,
			target:    batch[i].Target,
		}
		tasks[key] = batch[i].Action
	}

	var changes domain.LikeStateChanges
	for key, action := range tasks {
		record := domain.VisitorLike{
			VisitorID: key.visitorID,
			TargetID:  key.targetID,
			Target:    key.target,
			CreatedAt: time.Now(),
		}
		switch action {
		case domain.Like:
			changes.ToAdd = append(changes.ToAdd, record)
		case domain.Unlike:
			changes.ToRemove = append(changes.ToRemove, record)
		default:
			logrus.Errorf("Unsupported action: %v", action)
		}
	}

	if err := s.likeRepo.ApplyLikeChanges(ctx, changes); err != nil {
		logrus.Errorf("failed to apply like changes: %v", err)
	}
}
