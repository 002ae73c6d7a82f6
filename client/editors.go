package client

import "context"

// Ready-made editors for the admin back office, one per resource type.

// BlankSkill seeds a new-skill draft with one empty specialty slot for the
// form; validation refuses to save until it is filled in.
func BlankSkill() Skill {
	return Skill{Specialties: []string{""}}
}

func NewPostEditor(c *Client) *Editor[PostDraft] {
	return NewEditor(EditorConfig[PostDraft]{
		Create: func(ctx context.Context, d PostDraft) (PostDraft, error) {
			post, err := c.CreatePost(ctx, d)
			if err != nil {
				return PostDraft{}, err
			}
			return draftFromPost(post), nil
		},
		Update: func(ctx context.Context, d PostDraft) (PostDraft, error) {
			post, err := c.UpdatePost(ctx, d)
			if err != nil {
				return PostDraft{}, err
			}
			return draftFromPost(post), nil
		},
		ID: func(d PostDraft) int64 { return d.ID },
		Clone: func(d PostDraft) PostDraft {
			d.Tags = append([]string(nil), d.Tags...)
			return d
		},
	})
}

func draftFromPost(p Post) PostDraft {
	return PostDraft{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		CategoryID: p.CategoryID,
		Tags:       p.Tags,
	}
}

func NewCategoryEditor(c *Client) *Editor[CategoryDraft] {
	return NewEditor(EditorConfig[CategoryDraft]{
		Create: func(ctx context.Context, d CategoryDraft) (CategoryDraft, error) {
			category, err := c.CreateCategory(ctx, d)
			if err != nil {
				return CategoryDraft{}, err
			}
			return CategoryDraft{ID: category.ID, Name: category.Name, Description: category.Description}, nil
		},
		Update: func(ctx context.Context, d CategoryDraft) (CategoryDraft, error) {
			category, err := c.UpdateCategory(ctx, d)
			if err != nil {
				return CategoryDraft{}, err
			}
			return CategoryDraft{ID: category.ID, Name: category.Name, Description: category.Description}, nil
		},
		ID: func(d CategoryDraft) int64 { return d.ID },
	})
}

func NewSkillEditor(c *Client) *Editor[Skill] {
	return NewEditor(EditorConfig[Skill]{
		Create: c.CreateSkill,
		Update: c.UpdateSkill,
		ID:     func(s Skill) int64 { return s.ID },
		Clone: func(s Skill) Skill {
			s.Specialties = append([]string(nil), s.Specialties...)
			return s
		},
	})
}

func NewLifeEventEditor(c *Client) *Editor[LifeEvent] {
	return NewEditor(EditorConfig[LifeEvent]{
		Create: c.CreateLifeEvent,
		Update: c.UpdateLifeEvent,
		ID:     func(e LifeEvent) int64 { return e.ID },
	})
}

func NewConnectionEditor(c *Client) *Editor[Connection] {
	return NewEditor(EditorConfig[Connection]{
		Create: c.CreateConnection,
		Update: c.UpdateConnection,
		ID:     func(n Connection) int64 { return n.ID },
	})
}

func NewExpenseEditor(c *Client) *Editor[Expense] {
	return NewEditor(EditorConfig[Expense]{
		Create: c.CreateExpense,
		Update: c.UpdateExpense,
		ID:     func(e Expense) int64 { return e.ID },
	})
}
