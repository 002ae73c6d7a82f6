package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avezina/inkwell/domain"
	"github.com/avezina/inkwell/internal/repository/cache"
)

const (
	KeyPost = "post:%d"
	KeyHome = "post:home"

	postTTL = 10 * time.Minute
)

type postCache struct {
	client *redis.Client
}

var _ domain.PostCache = (*postCache)(nil)

func NewPostCache(client *redis.Client) *postCache {
	return &postCache{
		client,
	}
}

// GetHome returns the cached home list. The second return reports logical
// expiry: stale data is still served and the caller triggers a rebuild.
func (c *postCache) GetHome(ctx context.Context) ([]domain.Post, bool, error) {
	data, err := c.client.Get(ctx, KeyHome).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, domain.ErrCacheMiss
	} else if err != nil {
		return nil, false, err
	}

	var envelope cache.Envelope[[]domain.Post]
	if err = json.Unmarshal(data, &envelope); err != nil {
		return nil, false, err
	}
	return envelope.Data, envelope.Expired(), nil
}

func (c *postCache) SetHome(ctx context.Context, posts []domain.Post, ttl time.Duration) error {
	data, err := json.Marshal(cache.NewEnvelope(posts, ttl))
	if err != nil {
		return err
	}
	// no hard TTL, logical expiry decides freshness
	return c.client.Set(ctx, KeyHome, data, 0).Err()
}

func (c *postCache) GetPost(ctx context.Context, id int64) (res domain.Post, err error) {
	key := fmt.Sprintf(KeyPost, id)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Post{}, domain.ErrCacheMiss
	} else if err != nil {
		return domain.Post{}, err
	}
	if err = json.Unmarshal(data, &res); err != nil {
		return domain.Post{}, err
	}
	return
}

func (c *postCache) SetPost(ctx context.Context, p *domain.Post) (err error) {
	key := fmt.Sprintf(KeyPost, p.ID)
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	err = c.client.Set(ctx, key, data, postTTL).Err()
	return
}

func (c *postCache) DeletePost(ctx context.Context, id int64) error {
	keys := []string{
		fmt.Sprintf(KeyPost, id),
		fmt.Sprintf(KeyLikeCount, domain.LikeTargetPost, id),
		KeyHome,
	}
	return c.client.Del(ctx, keys...).Err()
}
