package request

import "github.com/avezina/inkwell/domain"

type Category struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (r *Category) ToDomain() domain.Category {
	return domain.Category{
		Name:        r.Name,
		Description: r.Description,
	}
}

type Tag struct {
	Name string `json:"name" binding:"required"`
}

func (r *Tag) ToDomain() domain.Tag {
	return domain.Tag{
		Name: r.Name,
	}
}
