package domain

import (
	"context"
	"time"
)

const (
	// LikeRecordLimit caps how many liked IDs are loaded per visitor
	LikeRecordLimit = 300
)

// LikeTarget discriminates what kind of entity a like points at.
// Liked-ID sets are scoped per target type; post and category IDs
// are not globally unique, so the sets must never be merged.
type LikeTarget string

const (
	LikeTargetPost     LikeTarget = "post"
	LikeTargetCategory LikeTarget = "category"
)

func (t LikeTarget) Valid() bool {
	return t == LikeTargetPost || t == LikeTargetCategory
}

// VisitorLike is a like record of one anonymous visitor.
// Visitors are identified by an opaque client-generated UUID, no login.
type VisitorLike struct {
	VisitorID string
	TargetID  int64
	Target    LikeTarget
	CreatedAt time.Time
}

type LikeStateChanges struct {
	ToAdd    []VisitorLike
	ToRemove []VisitorLike
}

type LikeAction int8

const (
	Like   LikeAction = 1
	Unlike LikeAction = -1
)

func (l LikeAction) String() string {
	switch l {
	case Like:
		return "ADD"
	case Unlike:
		return "REMOVE"
	default:
		return "UNKNOWN"
	}
}

// LikeRepository defines the contract for like persistence.
type LikeRepository interface {
	// FetchVisitorLiked selects the most recent liked target IDs of one
	// visitor within one target type, newest first, limited.
	FetchVisitorLiked(ctx context.Context, visitorID string, target LikeTarget, limit int64) ([]int64, error)

	// ApplyLikeChanges applies a deduplicated batch in one transaction and
	// recounts total_likes of every touched target.
	ApplyLikeChanges(ctx context.Context, changes LikeStateChanges) error
}

// LikeCache is the write-through buffer the toggle path runs against.
type LikeCache interface {
	// AddLikeRecord marks the target liked by the visitor. Returns false when
	// the target was already liked, ErrCacheMiss when the visitor's liked-set
	// is not cached yet.
	AddLikeRecord(ctx context.Context, like VisitorLike) (bool, error)

	// RemoveLikeRecord is the inverse of AddLikeRecord.
	RemoveLikeRecord(ctx context.Context, like VisitorLike) (bool, error)

	// LikedTargets returns the cached liked-set of one visitor within one
	// target type, or ErrCacheMiss.
	LikedTargets(ctx context.Context, visitorID string, target LikeTarget) ([]int64, error)

	// SetLikedTargets primes the visitor's liked-set after a DB load.
	// An empty set is still cached so membership tests don't re-miss.
	SetLikedTargets(ctx context.Context, visitorID string, target LikeTarget, ids []int64) error

	GetLikeCount(ctx context.Context, target LikeTarget, id int64) (int64, error)
	MGetLikeCounts(ctx context.Context, target LikeTarget, ids []int64) (map[int64]int64, error)
	SetLikeCount(ctx context.Context, target LikeTarget, id int64, likes int64) error
}

type LikeUsecase interface {
	// AddLikeRecord reports whether the like changed anything.
	AddLikeRecord(ctx context.Context, like VisitorLike) (bool, error)
	// RemoveLikeRecord reports whether the unlike changed anything.
	RemoveLikeRecord(ctx context.Context, like VisitorLike) (bool, error)
	// LikedTargets returns the IDs the visitor has liked within one type.
	LikedTargets(ctx context.Context, visitorID string, target LikeTarget) ([]int64, error)
}
