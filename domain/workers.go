package domain

import "context"

type SyncLikesWorker interface {
	Start(ctx context.Context)

	// Send adds a like record if action == Like, and removes a like record if action == Unlike
	Send(like VisitorLike, action LikeAction)
}
