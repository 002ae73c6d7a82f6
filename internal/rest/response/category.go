package response

import "github.com/avezina/inkwell/domain"

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TotalLikes  int64  `json:"total_likes"`
}

func NewCategoryFromDomain(c *domain.Category) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		TotalLikes:  c.TotalLikes,
	}
}

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewTagFromDomain(t *domain.Tag) Tag {
	return Tag{
		ID:   t.ID,
		Name: t.Name,
	}
}
