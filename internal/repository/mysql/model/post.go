package model

import (
	"encoding/json"
	"time"

	"github.com/avezina/inkwell/domain"
)

type Post struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Title      string    `gorm:"type:varchar(120);not null"`
	Content    string    `gorm:"type:longtext;not null"`
	CategoryID int64     `gorm:"column:category_id;not null"`
	Tags       string    `gorm:"type:varchar(512)"` // JSON array of tag names
	TotalLikes int64     `gorm:"column:total_likes;default:0"`
	UpdatedAt  time.Time `gorm:"type:datetime"`
	CreatedAt  time.Time `gorm:"type:datetime"`
}

func (Post) TableName() string {
	return "post"
}

func (m *Post) ToDomain() domain.Post {
	var tags []string
	if m.Tags != "" {
		_ = json.Unmarshal([]byte(m.Tags), &tags)
	}
	return domain.Post{
		ID:      m.ID,
		Title:   m.Title,
		Content: m.Content,
		Category: domain.Category{
			ID: m.CategoryID,
		},
		Tags:       tags,
		TotalLikes: m.TotalLikes,
		UpdatedAt:  m.UpdatedAt,
		CreatedAt:  m.CreatedAt,
	}
}

func NewPostFromDomain(p *domain.Post) *Post {
	tags := []byte("[]")
	if len(p.Tags) > 0 {
		tags, _ = json.Marshal(p.Tags)
	}
	return &Post{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		CategoryID: p.Category.ID,
		Tags:       string(tags),
		TotalLikes: p.TotalLikes,
		UpdatedAt:  p.UpdatedAt,
		CreatedAt:  p.CreatedAt,
	}
}
