package model

import (
	"time"

	"github.com/avezina/inkwell/domain"
)

type Category struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(45);not null;uniqueIndex"`
	Description string    `gorm:"type:varchar(255)"`
	TotalLikes  int64     `gorm:"column:total_likes;default:0"`
	UpdatedAt   time.Time `gorm:"type:datetime"`
	CreatedAt   time.Time `gorm:"type:datetime"`
}

func (Category) TableName() string {
	return "category"
}

func (m *Category) ToDomain() domain.Category {
	return domain.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		TotalLikes:  m.TotalLikes,
		UpdatedAt:   m.UpdatedAt,
		CreatedAt:   m.CreatedAt,
	}
}

func NewCategoryFromDomain(c *domain.Category) *Category {
	return &Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		TotalLikes:  c.TotalLikes,
		UpdatedAt:   c.UpdatedAt,
		CreatedAt:   c.CreatedAt,
	}
}
