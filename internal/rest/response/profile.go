package response

import (
	"time"

	"github.com/avezina/inkwell/domain"
)

type Skill struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Specialties []string `json:"specialties"`
	Rank        int64    `json:"rank"`
}

func NewSkillFromDomain(s *domain.Skill) Skill {
	specialties := s.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	return Skill{
		ID:          s.ID,
		Name:        s.Name,
		Specialties: specialties,
		Rank:        s.Rank,
	}
}

type LifeEvent struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Period      string `json:"period"`
	Description string `json:"description"`
	Rank        int64  `json:"rank"`
}

func NewLifeEventFromDomain(e *domain.LifeEvent) LifeEvent {
	return LifeEvent{
		ID:          e.ID,
		Title:       e.Title,
		Period:      e.Period,
		Description: e.Description,
		Rank:        e.Rank,
	}
}

type Connection struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
}

func NewConnectionFromDomain(c *domain.Connection) Connection {
	return Connection{
		ID:    c.ID,
		Label: c.Label,
		URL:   c.URL,
		Icon:  c.Icon,
	}
}

type Expense struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	SpentAt  string `json:"spent_at"`
}

func NewExpenseFromDomain(e *domain.Expense) Expense {
	return Expense{
		ID:       e.ID,
		Title:    e.Title,
		Amount:   e.Amount,
		Currency: e.Currency,
		// RFC3339 so an admin edit can send the value straight back
		SpentAt:  e.SpentAt.Format(time.RFC3339),
	}
}

type AboutMe struct {
	Headline   string `json:"headline"`
	Bio        string `json:"bio"`
	CVFileName string `json:"cv_file_name"`
	UpdatedAt  string `json:"updated_at"`
}

func NewAboutMeFromDomain(a *domain.AboutMe) AboutMe {
	return AboutMe{
		Headline:   a.Headline,
		Bio:        a.Bio,
		CVFileName: a.CVFileName,
		UpdatedAt:  a.UpdatedAt.Format(DateTimeFormat),
	}
}
