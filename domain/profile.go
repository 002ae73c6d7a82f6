package domain

import (
	"context"
	"time"
)

// Skill is one entry of the CV skill list.
type Skill struct {
	ID          int64
	Name        string
	Specialties []string // concrete techniques under the skill, at least one
	Rank        int64    // manual sort order on the about page
}

// LifeEvent is one entry of the about-page timeline.
type LifeEvent struct {
	ID          int64
	Title       string
	Period      string // free-form, e.g. "2019 - 2022"
	Description string
	Rank        int64
}

// Connection is an outbound social/contact link.
type Connection struct {
	ID    int64
	Label string
	URL   string
	Icon  string
}

// Expense is a private bookkeeping entry of the admin back office.
type Expense struct {
	ID       int64
	Title    string
	Amount   int64 // minor units
	Currency string
	SpentAt  time.Time
}

// AboutMe is the single about-page document.
type AboutMe struct {
	ID         int64
	Headline   string
	Bio        string
	CVFileName string // stored file name of the uploaded CV, empty if none
	UpdatedAt  time.Time
}

// ProfileRepository persists everything behind the about page and the
// admin-only bookkeeping records.
type ProfileRepository interface {
	Skills(ctx context.Context) ([]Skill, error)
	StoreSkill(ctx context.Context, s *Skill) error
	UpdateSkill(ctx context.Context, s *Skill) error
	DeleteSkill(ctx context.Context, id int64) error

	LifeEvents(ctx context.Context) ([]LifeEvent, error)
	StoreLifeEvent(ctx context.Context, e *LifeEvent) error
	UpdateLifeEvent(ctx context.Context, e *LifeEvent) error
	DeleteLifeEvent(ctx context.Context, id int64) error

	Connections(ctx context.Context) ([]Connection, error)
	StoreConnection(ctx context.Context, c *Connection) error
	UpdateConnection(ctx context.Context, c *Connection) error
	DeleteConnection(ctx context.Context, id int64) error

	Expenses(ctx context.Context) ([]Expense, error)
	StoreExpense(ctx context.Context, e *Expense) error
	UpdateExpense(ctx context.Context, e *Expense) error
	DeleteExpense(ctx context.Context, id int64) error

	// About returns the singleton about document, ErrNotFound before first save.
	About(ctx context.Context) (AboutMe, error)
	// UpdateAbout upserts the singleton document.
	UpdateAbout(ctx context.Context, a *AboutMe) error
	// SetCVFile records the stored file name of the uploaded CV.
	SetCVFile(ctx context.Context, fileName string) error
}

// ProfileUsecase mirrors the repository plus the CV upload rules.
type ProfileUsecase interface {
	Skills(ctx context.Context) ([]Skill, error)
	SaveSkill(ctx context.Context, s *Skill) error
	DeleteSkill(ctx context.Context, id int64) error

	LifeEvents(ctx context.Context) ([]LifeEvent, error)
	SaveLifeEvent(ctx context.Context, e *LifeEvent) error
	DeleteLifeEvent(ctx context.Context, id int64) error

	Connections(ctx context.Context) ([]Connection, error)
	SaveConnection(ctx context.Context, c *Connection) error
	DeleteConnection(ctx context.Context, id int64) error

	Expenses(ctx context.Context) ([]Expense, error)
	SaveExpense(ctx context.Context, e *Expense) error
	DeleteExpense(ctx context.Context, id int64) error

	About(ctx context.Context) (AboutMe, error)
	UpdateAbout(ctx context.Context, a *AboutMe) error
	// StoreCV persists the uploaded CV bytes and records its file name.
	StoreCV(ctx context.Context, fileName string, data []byte) (string, error)
	// CVPath resolves the stored CV to a servable file path.
	CVPath(ctx context.Context) (string, error)
}
