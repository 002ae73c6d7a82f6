package model

import (
	"time"

	"github.com/avezina/inkwell/domain"
)

type VisitorLike struct {
	VisitorID  string    `gorm:"column:visitor_id;type:varchar(36);not null;uniqueIndex:uniq_visitor_target,priority:1"`
	TargetID   int64     `gorm:"column:target_id;not null;uniqueIndex:uniq_visitor_target,priority:2"`
	TargetType string    `gorm:"column:target_type;type:varchar(16);not null;uniqueIndex:uniq_visitor_target,priority:3"`
	CreatedAt  time.Time `gorm:"type:datetime"`
}

func (VisitorLike) TableName() string {
	return "visitor_likes"
}

func NewVisitorLikeFromDomain(vl domain.VisitorLike) VisitorLike {
	return VisitorLike{
		VisitorID:  vl.VisitorID,
		TargetID:   vl.TargetID,
		TargetType: string(vl.Target),
		CreatedAt:  vl.CreatedAt,
	}
}

func (m VisitorLike) ToDomain() domain.VisitorLike {
	return domain.VisitorLike{
		VisitorID: m.VisitorID,
		TargetID:  m.TargetID,
		Target:    domain.LikeTarget(m.TargetType),
		CreatedAt: m.CreatedAt,
	}
}
