package request

import "github.com/avezina/inkwell/domain"

type Post struct {
	Title      string   `json:"title" binding:"required"`
	Content    string   `json:"content" binding:"required"`
	CategoryID int64    `json:"category_id" binding:"required"`
	Tags       []string `json:"tags" binding:"omitempty,dive,required"`
}

// ToDomain: Request -> Domain
func (r *Post) ToDomain() domain.Post {
	return domain.Post{
		Title:   r.Title,
		Content: r.Content,
		Category: domain.Category{
			ID: r.CategoryID,
		},
		Tags: r.Tags,
	}
}
