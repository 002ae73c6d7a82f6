package request

import "github.com/avezina/inkwell/domain"

type Like struct {
	VisitorID  string `json:"visitor_id" binding:"required,uuid"`
	TargetID   int64  `json:"target_id" binding:"required"`
	TargetType string `json:"target_type" binding:"required,oneof=post category"`
}

func (r *Like) ToDomain() domain.VisitorLike {
	return domain.VisitorLike{
		VisitorID: r.VisitorID,
		TargetID:  r.TargetID,
		Target:    domain.LikeTarget(r.TargetType),
	}
}
