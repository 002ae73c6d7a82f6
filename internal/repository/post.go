package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/avezina/inkwell/domain"
)

const homeTTL = 30 * time.Second

// postRepository coordinates the cache and the database. Reads prefer the
// cache, serve logically-expired data and rebuild in the background.
type postRepository struct {
	db           domain.PostRepository
	cache        domain.PostCache
	likeCache    domain.LikeCache
	categoryRepo domain.CategoryRepository

	rebuildGroup singleflight.Group
}

var _ domain.PostRepository = (*postRepository)(nil)

// NewPostRepository creates the coordinating repository on top of the raw
// database layer.
func NewPostRepository(db domain.PostRepository, cache domain.PostCache, likeCache domain.LikeCache, categoryRepo domain.CategoryRepository) *postRepository {
	return &postRepository{
		db:           db,
		cache:        cache,
		likeCache:    likeCache,
		categoryRepo: categoryRepo,
	}
}

func (r *postRepository) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Post, error) {
	if cursor == "" {
		posts, expired, err := r.cache.GetHome(ctx)
		if err == nil {
			if expired {
				go r.rebuildHomeCache(context.Background(), num)
			}
			return r.overlayLikeCounts(ctx, posts), nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			logrus.Warnf("home cache read failed: %v", err)
		}
	}

	posts, err := r.db.Fetch(ctx, cursor, num)
	if err != nil {
		return nil, err
	}

	posts, err = r.fillCategoryDetails(ctx, posts)
	if err != nil {
		return nil, err
	}

	if cursor == "" {
		go func(data []domain.Post) {
			_ = r.cache.SetHome(context.Background(), data, homeTTL)
		}(posts)
	}

	return r.overlayLikeCounts(ctx, posts), nil
}

func (r *postRepository) FetchByCategory(ctx context.Context, categoryID int64, cursor string, num int64) ([]domain.Post, error) {
	posts, err := r.db.FetchByCategory(ctx, categoryID, cursor, num)
	if err != nil {
		return nil, err
	}

	posts, err = r.fillCategoryDetails(ctx, posts)
	if err != nil {
		return nil, err
	}

	return r.overlayLikeCounts(ctx, posts), nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	post, err := r.cache.GetPost(ctx, id)
	if err == nil {
		if likes, err := r.likeCache.GetLikeCount(ctx, domain.LikeTargetPost, id); err == nil {
			post.TotalLikes = likes
		}
		return post, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("post cache read failed for id %d: %v", id, err)
	}

	// collapse concurrent loads of the same missing key
	key := "post:" + strconv.FormatInt(id, 10)
	result, err, _ := r.rebuildGroup.Do(key, func() (interface{}, error) {
		post, err := r.db.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		category, err := r.categoryRepo.GetByID(ctx, post.Category.ID)
		if err != nil {
			return nil, err
		}
		post.Category = category

		_ = r.cache.SetPost(context.Background(), &post)
		_ = r.likeCache.SetLikeCount(ctx, domain.LikeTargetPost, post.ID, post.TotalLikes)

		return post, nil
	})

	if err != nil {
		return domain.Post{}, err
	}

	return result.(domain.Post), nil
}

func (r *postRepository) GetByTitle(ctx context.Context, title string) (domain.Post, error) {
	// title lookups are rare, skip the cache
	post, err := r.db.GetByTitle(ctx, title)
	if err != nil {
		return domain.Post{}, err
	}

	category, err := r.categoryRepo.GetByID(ctx, post.Category.ID)
	if err != nil {
		return domain.Post{}, err
	}
	post.Category = category

	return post, nil
}

func (r *postRepository) Store(ctx context.Context, p *domain.Post) error {
	if err := r.db.Store(ctx, p); err != nil {
		return err
	}

	// new post invalidates the home list
	go func(id int64) {
		_ = r.cache.DeletePost(context.Background(), id)
	}(p.ID)

	return nil
}

func (r *postRepository) Update(ctx context.Context, p *domain.Post) error {
	err := r.db.Update(ctx, p)
	if err != nil {
		return err
	}

	go func(id int64) {
		_ = r.cache.DeletePost(context.Background(), id)
	}(p.ID)

	return nil
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.Delete(ctx, id)
	if err != nil {
		return err
	}

	go func(id int64) {
		_ = r.cache.DeletePost(context.Background(), id)
	}(id)

	return nil
}

func (r *postRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	return r.db.FetchIDs(ctx, cursor, limit)
}

// fillCategoryDetails batch-loads the categories referenced by the posts.
func (r *postRepository) fillCategoryDetails(ctx context.Context, posts []domain.Post) ([]domain.Post, error) {
	if len(posts) == 0 {
		return posts, nil
	}

	categoryIDs := make([]int64, 0, len(posts))
	existMap := make(map[int64]bool)
	for _, item := range posts {
		if !existMap[item.Category.ID] {
			categoryIDs = append(categoryIDs, item.Category.ID)
			existMap[item.Category.ID] = true
		}
	}

	categories, err := r.categoryRepo.GetByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}

	categoryMap := make(map[int64]domain.Category)
	for _, c := range categories {
		categoryMap[c.ID] = c
	}

	for i := range posts {
		if c, ok := categoryMap[posts[i].Category.ID]; ok {
			posts[i].Category = c
		}
	}

	return posts, nil
}

// overlayLikeCounts replaces persisted like totals with the buffered
// counters where present, so fresh toggles show up before the worker flush.
func (r *postRepository) overlayLikeCounts(ctx context.Context, posts []domain.Post) []domain.Post {
	if len(posts) == 0 {
		return posts
	}

	ids := make([]int64, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}

	counts, err := r.likeCache.MGetLikeCounts(ctx, domain.LikeTargetPost, ids)
	if err != nil {
		logrus.Warnf("failed to read like counters: %v", err)
		return posts
	}

	for i := range posts {
		if likes, ok := counts[posts[i].ID]; ok {
			posts[i].TotalLikes = likes
		}
	}
	return posts
}

// rebuildHomeCache refreshes the logically-expired home list in the background.
func (r *postRepository) rebuildHomeCache(ctx context.Context, num int64) {
	_, err, _ := r.rebuildGroup.Do("home", func() (any, error) {
		posts, err := r.db.Fetch(ctx, "", num)
		if err != nil {
			logrus.Errorf("failed to rebuild home cache from db: %v", err)
			return nil, err
		}

		posts, err = r.fillCategoryDetails(ctx, posts)
		if err != nil {
			logrus.Errorf("failed to fill category details: %v", err)
			return nil, err
		}

		err = r.cache.SetHome(ctx, posts, homeTTL)
		if err != nil {
			logrus.Errorf("failed to set home cache: %v", err)
			return nil, err
		}

		return nil, nil
	})

	if err != nil {
		logrus.Errorf("rebuildHomeCache failed: %v", err)
	}
}
