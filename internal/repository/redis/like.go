package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/avezina/inkwell/domain"
)

const (
	// liked-sets are scoped per target type; post and category IDs overlap
	KeyVisitorLiked = "like:%s:visitor:%s"
	KeyLikeCount    = "like:%s:count:%d"

	likedSetTTL = 30 * time.Minute
)

type likeCache struct {
	client *redis.Client
}

var _ domain.LikeCache = (*likeCache)(nil)

func NewLikeCache(client *redis.Client) *likeCache {
	return &likeCache{
		client,
	}
}

var addLikeScript = redis.NewScript(`
	if redis.call('EXISTS', KEYS[1]) == 0 then
		return -1 -- liked-set not cached, load it first
	end

	if redis.call('SISMEMBER', KEYS[1], ARGV[1]) == 1 then
		return 0 -- already liked
	end

	redis.call('SADD', KEYS[1], ARGV[1])
	redis.call('EXPIRE', KEYS[1], ARGV[2])

	if redis.call('EXISTS', KEYS[2]) == 1 then
		redis.call('INCR', KEYS[2])
	end

	return 1
`)

var removeLikeScript = redis.NewScript(`
	if redis.call('EXISTS', KEYS[1]) == 0 then
		return -1 -- liked-set not cached, load it first
	end

	if redis.call('SISMEMBER', KEYS[1], ARGV[1]) == 0 then
		return 0 -- not liked
	end

	redis.call('SREM', KEYS[1], ARGV[1])
	redis.call('EXPIRE', KEYS[1], ARGV[2])

	if redis.call('EXISTS', KEYS[2]) == 1 then
		redis.call('DECR', KEYS[2])
	end

	return 1
`)

func (c *likeCache) runToggle(ctx context.Context, script *redis.Script, like domain.VisitorLike) (bool, error) {
	keys := []string{
		fmt.Sprintf(KeyVisitorLiked, like.Target, like.VisitorID),
		fmt.Sprintf(KeyLikeCount, like.Target, like.TargetID),
	}
	args := []any{like.TargetID, int(likedSetTTL.Seconds())}

	res, err := script.Run(ctx, c.client, keys, args).Int()
	if err != nil {
		return false, err
	}
	switch res {
	case -1:
		return false, domain.ErrCacheMiss
	case 0:
		return false, nil
	default:
		return true, nil
	}
}

func (c *likeCache) AddLikeRecord(ctx context.Context, like domain.VisitorLike) (bool, error) {
	return c.runToggle(ctx, addLikeScript, like)
}

func (c *likeCache) RemoveLikeRecord(ctx context.Context, like domain.VisitorLike) (bool, error) {
	return c.runToggle(ctx, removeLikeScript, like)
}

func (c *likeCache) LikedTargets(ctx context.Context, visitorID string, target domain.LikeTarget) ([]int64, error) {
	key := fmt.Sprintf(KeyVisitorLiked, target, visitorID)

	exists, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, domain.ErrCacheMiss
	}

	members, err := c.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(members))
	for _, member := range members {
		if member == likedSetPlaceholder {
			continue
		}
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			logrus.Errorf("invalid member in liked-set %s: %q", key, member)
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// likedSetPlaceholder keeps an empty liked-set representable; Redis drops
// empty sets, which would read back as a cache miss forever.
const likedSetPlaceholder = "-"

func (c *likeCache) SetLikedTargets(ctx context.Context, visitorID string, target domain.LikeTarget, ids []int64) error {
	key := fmt.Sprintf(KeyVisitorLiked, target, visitorID)

	members := make([]any, 0, len(ids)+1)
	members = append(members, likedSetPlaceholder)
	for _, id := range ids {
		members = append(members, strconv.FormatInt(id, 10))
	}

	pipe := c.client.Pipeline()
	pipe.SAdd(ctx, key, members...)
	pipe.Expire(ctx, key, likedSetTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *likeCache) GetLikeCount(ctx context.Context, target domain.LikeTarget, id int64) (int64, error) {
	resStr, err := c.client.Get(ctx, fmt.Sprintf(KeyLikeCount, target, id)).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, domain.ErrCacheMiss
		}
		return 0, err
	}

	likes, err := strconv.ParseInt(resStr, 10, 64)
	if err != nil {
		logrus.Errorf("invalid like count for %s %d: %v", target, id, err)
		return 0, err
	}
	return max(likes, 0), nil
}

func (c *likeCache) MGetLikeCounts(ctx context.Context, target domain.LikeTarget, ids []int64) (map[int64]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = fmt.Sprintf(KeyLikeCount, target, id)
	}

	result, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	res := make(map[int64]int64)
	for i, val := range result {
		if val == nil {
			continue
		}

		valStr, ok := val.(string)
		if !ok {
			logrus.Errorf("invalid type in redis for like count, id: %d, val: %v", ids[i], val)
			continue
		}

		likes, err := strconv.ParseInt(valStr, 10, 64)
		if err != nil {
			logrus.Errorf("failed to parse like count, id: %d, err: %v", ids[i], err)
			continue
		}
		res[ids[i]] = max(likes, 0)
	}
	return res, nil
}

func (c *likeCache) SetLikeCount(ctx context.Context, target domain.LikeTarget, id int64, likes int64) error {
	key := fmt.Sprintf(KeyLikeCount, target, id)
	return c.client.Set(ctx, key, likes, 0).Err()
}
