package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// FetchPosts pages through the public post feed. An empty cursor starts at
// the newest post, the returned cursor continues from the last one.
func (c *Client) FetchPosts(ctx context.Context, cursor string, num int) ([]Post, string, error) {
	query := url.Values{}
	if cursor != "" {
		query.Set("cursor", cursor)
	}
	if num > 0 {
		query.Set("num", strconv.Itoa(num))
	}

	var posts []Post
	next, err := c.getPaged(ctx, "/posts", query, &posts)
	if err != nil {
		return nil, "", err
	}
	return posts, next, nil
}

func (c *Client) GetPost(ctx context.Context, id int64) (Post, error) {
	var post Post
	err := c.get(ctx, fmt.Sprintf("/posts/%d", id), nil, &post)
	return post, err
}

func (c *Client) FetchPostsByCategory(ctx context.Context, categoryID int64, cursor string, num int) ([]Post, string, error) {
	query := url.Values{}
	if cursor != "" {
		query.Set("cursor", cursor)
	}
	if num > 0 {
		query.Set("num", strconv.Itoa(num))
	}

	var posts []Post
	next, err := c.getPaged(ctx, fmt.Sprintf("/categories/%d/posts", categoryID), query, &posts)
	if err != nil {
		return nil, "", err
	}
	return posts, next, nil
}

func (c *Client) FetchCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := c.get(ctx, "/categories", nil, &categories)
	return categories, err
}

func (c *Client) FetchComments(ctx context.Context, postID int64, cursor string, num int) ([]Comment, string, error) {
	query := url.Values{}
	if cursor != "" {
		query.Set("cursor", cursor)
	}
	if num > 0 {
		query.Set("num", strconv.Itoa(num))
	}

	var comments []Comment
	next, err := c.getPaged(ctx, fmt.Sprintf("/posts/%d/comments", postID), query, &comments)
	if err != nil {
		return nil, "", err
	}
	return comments, next, nil
}

func (c *Client) CreateComment(ctx context.Context, postID int64, author, content string) (Comment, error) {
	in := map[string]string{"author": author, "content": content}
	var comment Comment
	err := c.post(ctx, fmt.Sprintf("/posts/%d/comments", postID), in, &comment)
	return comment, err
}

// About returns the aggregate public about page.
func (c *Client) About(ctx context.Context) (AboutPage, error) {
	var page AboutPage
	err := c.get(ctx, "/about", nil, &page)
	return page, err
}

// AboutPage is the aggregate served by the public about endpoint.
type AboutPage struct {
	About       AboutMe      `json:"about"`
	Skills      []Skill      `json:"skills"`
	LifeEvents  []LifeEvent  `json:"life_events"`
	Connections []Connection `json:"connections"`
}

// likeRequest is the toggle payload of the like endpoints.
type likeRequest struct {
	VisitorID  string `json:"visitor_id"`
	TargetID   int64  `json:"target_id"`
	TargetType string `json:"target_type"`
}

func (c *Client) Like(ctx context.Context, visitorID string, targetID int64, targetType string) error {
	return c.post(ctx, "/likes", likeRequest{
		VisitorID:  visitorID,
		TargetID:   targetID,
		TargetType: targetType,
	}, nil)
}

func (c *Client) Unlike(ctx context.Context, visitorID string, targetID int64, targetType string) error {
	return c.delete(ctx, "/likes", likeRequest{
		VisitorID:  visitorID,
		TargetID:   targetID,
		TargetType: targetType,
	})
}

// LikedIDs returns the target IDs the visitor liked within one target type.
func (c *Client) LikedIDs(ctx context.Context, visitorID, targetType string) ([]int64, error) {
	query := url.Values{}
	query.Set("visitor", visitorID)
	query.Set("type", targetType)

	var res struct {
		IDs []int64 `json:"ids"`
	}
	if err := c.get(ctx, "/likes", query, &res); err != nil {
		return nil, err
	}
	return res.IDs, nil
}

// Admin endpoints, all behind the bearer session.

func (c *Client) CreatePost(ctx context.Context, draft PostDraft) (Post, error) {
	var post Post
	err := c.post(ctx, "/admin/posts", draft, &post)
	return post, err
}

func (c *Client) UpdatePost(ctx context.Context, draft PostDraft) (Post, error) {
	var post Post
	err := c.put(ctx, fmt.Sprintf("/admin/posts/%d", draft.ID), draft, &post)
	return post, err
}

func (c *Client) DeletePost(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/admin/posts/%d", id), nil)
}

func (c *Client) CreateCategory(ctx context.Context, draft CategoryDraft) (Category, error) {
	var category Category
	err := c.post(ctx, "/admin/categories", draft, &category)
	return category, err
}

func (c *Client) UpdateCategory(ctx context.Context, draft CategoryDraft) (Category, error) {
	var category Category
	err := c.put(ctx, fmt.Sprintf("/admin/categories/%d", draft.ID), draft, &category)
	return category, err
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/admin/categories/%d", id), nil)
}

func (c *Client) FetchTags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	err := c.get(ctx, "/admin/tags", nil, &tags)
	return tags, err
}

func (c *Client) CreateTag(ctx context.Context, name string) (Tag, error) {
	var tag Tag
	err := c.post(ctx, "/admin/tags", map[string]string{"name": name}, &tag)
	return tag, err
}

func (c *Client) DeleteTag(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/admin/tags/%d", id), nil)
}

func (c *Client) DeleteComment(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/admin/comments/%d", id), nil)
}

func (c *Client) FetchSkills(ctx context.Context) ([]Skill, error) {
	var skills []Skill
	err := c.get(ctx, "/admin/skills", nil, &skills)
	return skills, err
}

func (c *Client) CreateSkill(ctx context.Context, draft Skill) (Skill, error) {
	var skill Skill
	err := c.post(ctx, "/admin/skills", draft, &skill)
	return skill, err
}

func (c *Client) UpdateSkill(ctx context.Context, draft Skill) (Skill, error) {
	var skill Skill
	err := c.put(ctx, fmt.Sprintf("/admin/skills/%d", draft.ID), draft, &skill)
	return skill, err
}

func (c *Client) DeleteSkill(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/admin/skills/%d", id), nil)
}

func (c *Client) FetchLifeEvents(ctx context.Context) ([]LifeEvent, error) {
	var events []LifeEvent
	err := c.get(ctx, "/admin/life-events", nil, &events)
	return events, err
}

func (c *Client) CreateLifeEvent(ctx context.Context, draft LifeEvent) (LifeEvent, error) {
	var event LifeEvent
	err := c.post(ctx, "/admin/life-events", draft, &event)
	return event, err
}

func (c *Client) UpdateLifeEvent(ctx context.Context, draft LifeEvent) (LifeEvent, error) {
	var event LifeEvent
	err := c.put(ctx, fmt.Sprintf("/admin/life-events/%d", draft.ID), draft, &event)
	return event, err
}

func (c *Client) DeleteLifeEvent(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/admin/life-events/%d", id), nil)
}

func (c *Client) FetchConnections(ctx context.Context) ([]Connection, error) {
	var connections []Connection
	err := c.get(ctx, "/admin/connections", nil, &connections)
	return connections, err
}

func (c *Client) CreateConnection(ctx context.Context, draft Connection) (Connection, error) {
	var conn Connection
	err := c.post(ctx, "/admin/connections", draft, &conn)
	return conn, err
}

func (c *Client) UpdateConnection(ctx context.Context, draft Connection) (Connection, error) {
	var conn Connection
	err := c.put(ctx, fmt.Sprintf("/admin/connections/%d", draft.ID), draft, &conn)
	return conn, err
}

func (c *Client) DeleteConnection(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/admin/connections/%d", id), nil)
}

func (c *Client) FetchExpenses(ctx context.Context) ([]Expense, error) {
	var expenses []Expense
	err := c.get(ctx, "/admin/expenses", nil, &expenses)
	return expenses, err
}

func (c *Client) CreateExpense(ctx context.Context, draft Expense) (Expense, error) {
	var expense Expense
	err := c.post(ctx, "/admin/expenses", draft, &expense)
	return expense, err
}

func (c *Client) UpdateExpense(ctx context.Context, draft Expense) (Expense, error) {
	var expense Expense
	err := c.put(ctx, fmt.Sprintf("/admin/expenses/%d", draft.ID), draft, &expense)
	return expense, err
}

func (c *Client) DeleteExpense(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/admin/expenses/%d", id), nil)
}

func (c *Client) UpdateAbout(ctx context.Context, about AboutMe) (AboutMe, error) {
	var res AboutMe
	err := c.put(ctx, "/admin/about", about, &res)
	return res, err
}

// UploadCV sends the CV bytes and returns the stored file name.
func (c *Client) UploadCV(ctx context.Context, fileName string, data []byte) (string, error) {
	var res struct {
		FileName string `json:"file_name"`
	}
	if err := c.uploadFile(ctx, "/admin/about/cv", "cv", fileName, data, &res); err != nil {
		return "", err
	}
	return res.FileName, nil
}

func (c *Client) EditPassword(ctx context.Context, oldPassword, newPassword string) error {
	in := map[string]string{
		"old_password": oldPassword,
		"new_password": newPassword,
	}
	return c.put(ctx, "/admin/profile/password", in, nil)
}
