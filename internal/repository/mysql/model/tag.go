package model

import "github.com/avezina/inkwell/domain"

type Tag struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(45);not null;uniqueIndex"`
}

func (Tag) TableName() string {
	return "tag"
}

func (m *Tag) ToDomain() domain.Tag {
	return domain.Tag{
		ID:   m.ID,
		Name: m.Name,
	}
}

func NewTagFromDomain(t *domain.Tag) *Tag {
	return &Tag{
		ID:   t.ID,
		Name: t.Name,
	}
}
