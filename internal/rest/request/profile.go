package request

import (
	"time"

	"github.com/avezina/inkwell/domain"
)

type Skill struct {
	Name        string   `json:"name" binding:"required"`
	Specialties []string `json:"specialties" binding:"required,min=1,dive,required"`
	Rank        int64    `json:"rank"`
}

func (r *Skill) ToDomain() domain.Skill {
	return domain.Skill{
		Name:        r.Name,
		Specialties: r.Specialties,
		Rank:        r.Rank,
	}
}

type LifeEvent struct {
	Title       string `json:"title" binding:"required"`
	Period      string `json:"period"`
	Description string `json:"description"`
	Rank        int64  `json:"rank"`
}

func (r *LifeEvent) ToDomain() domain.LifeEvent {
	return domain.LifeEvent{
		Title:       r.Title,
		Period:      r.Period,
		Description: r.Description,
		Rank:        r.Rank,
	}
}

type Connection struct {
	Label string `json:"label" binding:"required"`
	URL   string `json:"url" binding:"required,url"`
	Icon  string `json:"icon"`
}

func (r *Connection) ToDomain() domain.Connection {
	return domain.Connection{
		Label: r.Label,
		URL:   r.URL,
		Icon:  r.Icon,
	}
}

type Expense struct {
	Title    string    `json:"title" binding:"required"`
	Amount   int64     `json:"amount" binding:"required"`
	Currency string    `json:"currency" binding:"required,len=3"`
	SpentAt  time.Time `json:"spent_at" binding:"required"`
}

func (r *Expense) ToDomain() domain.Expense {
	return domain.Expense{
		Title:    r.Title,
		Amount:   r.Amount,
		Currency: r.Currency,
		SpentAt:  r.SpentAt,
	}
}

type AboutMe struct {
	Headline string `json:"headline" binding:"required"`
	Bio      string `json:"bio"`
}

func (r *AboutMe) ToDomain() domain.AboutMe {
	return domain.AboutMe{
		Headline: r.Headline,
		Bio:      r.Bio,
	}
}
