package request

import "github.com/avezina/inkwell/domain"

type Comment struct {
	Author  string `json:"author" binding:"required,max=45"`
	Content string `json:"content" binding:"required"`
}

// ToDomain: Request -> Domain. The post ID comes from the URL.
func (r *Comment) ToDomain(postID int64) domain.Comment {
	return domain.Comment{
		PostID:  postID,
		Author:  r.Author,
		Content: r.Content,
	}
}
