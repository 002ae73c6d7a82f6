package response

import "github.com/avezina/inkwell/domain"

type Post struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	CategoryID   int64    `json:"category_id"`
	CategoryName string   `json:"category_name"`
	Tags         []string `json:"tags"`
	TotalLikes   int64    `json:"total_likes"`
	UpdatedAt    string   `json:"updated_at"`
	CreatedAt    string   `json:"created_at"`
}

// NewPostFromDomain: Domain -> Response
func NewPostFromDomain(p *domain.Post) Post {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return Post{
		ID:           p.ID,
		Title:        p.Title,
		Content:      p.Content,
		CategoryID:   p.Category.ID,
		CategoryName: p.Category.Name,
		Tags:         tags,
		TotalLikes:   p.TotalLikes,
		UpdatedAt:    p.UpdatedAt.Format(DateTimeFormat),
		CreatedAt:    p.CreatedAt.Format(DateTimeFormat),
	}
}
