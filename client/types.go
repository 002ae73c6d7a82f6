// Package client is the Go consumer of the blog content API. It powers the
// public site and the admin back office: feed browsing, visitor likes,
// comments, the admin session and the CRUD editors.
package client

// Post is the post resource as served by the API, annotated with the
// per-visitor liked flag.
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

	// Liked is not part of the wire format, it is filled from the
	// visitor liked set after fetching.
	Liked bool `json:"-"`
}

func (p *Post) TargetID() int64    { return p.ID }
func (p *Post) TargetType() string { return TargetPost }
func (p *Post) IsLiked() bool      { return p.Liked }
func (p *Post) SetLiked(v bool)    { p.Liked = v }
func (p *Post) AddLikes(d int64)   { p.TotalLikes += d }

// Category is the category resource with the per-visitor liked flag.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TotalLikes  int64  `json:"total_likes"`

	Liked bool `json:"-"`
}

func (c *Category) TargetID() int64    { return c.ID }
func (c *Category) TargetType() string { return TargetCategory }
func (c *Category) IsLiked() bool      { return c.Liked }
func (c *Category) SetLiked(v bool)    { c.Liked = v }
func (c *Category) AddLikes(d int64)   { c.TotalLikes += d }

type Comment struct {
	ID        int64  `json:"id"`
	PostID    int64  `json:"post_id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Skill struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name" validate:"required"`
	Specialties []string `json:"specialties" validate:"required,min=1,dive,required"`
	Rank        int64    `json:"rank"`
}

type LifeEvent struct {
	ID          int64  `json:"id"`
	Title       string `json:"title" validate:"required"`
	Period      string `json:"period"`
	Description string `json:"description"`
	Rank        int64  `json:"rank"`
}

type Connection struct {
	ID    int64  `json:"id"`
	Label string `json:"label" validate:"required"`
	URL   string `json:"url" validate:"required,url"`
	Icon  string `json:"icon"`
}

type Expense struct {
	ID       int64  `json:"id"`
	Title    string `json:"title" validate:"required"`
	Amount   int64  `json:"amount" validate:"required"`
	Currency string `json:"currency" validate:"required,len=3"`
	// RFC3339, the format the API accepts and returns
	SpentAt string `json:"spent_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

type AboutMe struct {
	Headline   string `json:"headline" validate:"required"`
	Bio        string `json:"bio"`
	CVFileName string `json:"cv_file_name"`
	UpdatedAt  string `json:"updated_at"`
}

// PostDraft is the admin editor payload for posts.
type PostDraft struct {
	ID         int64    `json:"-"`
	Title      string   `json:"title" validate:"required"`
	Content    string   `json:"content" validate:"required"`
	CategoryID int64    `json:"category_id" validate:"required"`
	Tags       []string `json:"tags,omitempty" validate:"omitempty,dive,required"`
}

// CategoryDraft is the admin editor payload for categories.
type CategoryDraft struct {
	ID          int64  `json:"-"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Like target types accepted by the API.
const (
	TargetPost     = "post"
	TargetCategory = "category"
)
