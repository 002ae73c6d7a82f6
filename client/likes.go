package client

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Likeable is a resource carrying a per-visitor liked flag and a public
// like counter. Post and Category implement it.
type Likeable interface {
	TargetID() int64
	TargetType() string
	IsLiked() bool
	SetLiked(v bool)
	AddLikes(d int64)
}

// Reconciler flips likes optimistically. The local flag and counter change
// before the API call so the UI reacts instantly. A failed call is only
// logged: the server reconciles the real counter on the next fetch, rolling
// back locally would make the control flicker.
type Reconciler struct {
	api      likeAPI
	identity *IdentityProvider
}

type likeAPI interface {
	Like(ctx context.Context, visitorID string, targetID int64, targetType string) error
	Unlike(ctx context.Context, visitorID string, targetID int64, targetType string) error
}

func NewReconciler(api likeAPI, identity *IdentityProvider) *Reconciler {
	return &Reconciler{api: api, identity: identity}
}

// Toggle flips the liked state of one item. The returned error reports the
// API outcome, the local state is already flipped either way.
func (r *Reconciler) Toggle(ctx context.Context, item Likeable) error {
	wasLiked := item.IsLiked()
	item.SetLiked(!wasLiked)
	if wasLiked {
		item.AddLikes(-1)
	} else {
		item.AddLikes(1)
	}

	visitorID := r.identity.VisitorID()

	var err error
	if wasLiked {
		err = r.api.Unlike(ctx, visitorID, item.TargetID(), item.TargetType())
	} else {
		err = r.api.Like(ctx, visitorID, item.TargetID(), item.TargetType())
	}
	if err != nil {
		logrus.Warnf("like toggle for %s %d did not reach the server: %v",
			item.TargetType(), item.TargetID(), err)
	}
	return err
}

// HydratedPosts fetches one feed page and the visitor liked set
// concurrently, then marks each post. A failing liked-set fetch degrades to
// an all-unliked page instead of failing the feed.
func (c *Client) HydratedPosts(ctx context.Context, identity *IdentityProvider, cursor string, num int) ([]Post, string, error) {
	var (
		posts []Post
		next  string
		liked map[int64]bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, next, err = c.FetchPosts(gctx, cursor, num)
		return err
	})
	g.Go(func() error {
		liked = c.likedSet(gctx, identity, TargetPost)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, "", err
	}

	for i := range posts {
		posts[i].Liked = liked[posts[i].ID]
	}
	return posts, next, nil
}

// HydratedCategories is HydratedPosts for the category list.
func (c *Client) HydratedCategories(ctx context.Context, identity *IdentityProvider) ([]Category, error) {
	var (
		categories []Category
		liked      map[int64]bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = c.FetchCategories(gctx)
		return err
	})
	g.Go(func() error {
		liked = c.likedSet(gctx, identity, TargetCategory)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range categories {
		categories[i].Liked = liked[categories[i].ID]
	}
	return categories, nil
}

func (c *Client) likedSet(ctx context.Context, identity *IdentityProvider, targetType string) map[int64]bool {
	ids, err := c.LikedIDs(ctx, identity.VisitorID(), targetType)
	if err != nil {
		logrus.Warnf("failed to fetch the %s liked set, rendering unliked: %v", targetType, err)
		return nil
	}

	liked := make(map[int64]bool, len(ids))
	for _, id := range ids {
		liked[id] = true
	}
	return liked
}
