package model

import (
	"encoding/json"
	"time"

	"github.com/avezina/inkwell/domain"
)

type Skill struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(45);not null"`
	Specialties string `gorm:"type:varchar(512);not null"` // JSON array of strings
	Rank        int64  `gorm:"default:0"`
}

func (Skill) TableName() string {
	return "skill"
}

func (m *Skill) ToDomain() domain.Skill {
	var specialties []string
	if m.Specialties != "" {
		_ = json.Unmarshal([]byte(m.Specialties), &specialties)
	}
	return domain.Skill{
		ID:          m.ID,
		Name:        m.Name,
		Specialties: specialties,
		Rank:        m.Rank,
	}
}

func NewSkillFromDomain(s *domain.Skill) *Skill {
	specialties := []byte("[]")
	if len(s.Specialties) > 0 {
		specialties, _ = json.Marshal(s.Specialties)
	}
	return &Skill{
		ID:          s.ID,
		Name:        s.Name,
		Specialties: string(specialties),
		Rank:        s.Rank,
	}
}

type LifeEvent struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"type:varchar(120);not null"`
	Period      string `gorm:"type:varchar(45)"`
	Description string `gorm:"type:text"`
	Rank        int64  `gorm:"default:0"`
}

func (LifeEvent) TableName() string {
	return "life_event"
}

func (m *LifeEvent) ToDomain() domain.LifeEvent {
	return domain.LifeEvent{
		ID:          m.ID,
		Title:       m.Title,
		Period:      m.Period,
		Description: m.Description,
		Rank:        m.Rank,
	}
}

func NewLifeEventFromDomain(e *domain.LifeEvent) *LifeEvent {
	return &LifeEvent{
		ID:          e.ID,
		Title:       e.Title,
		Period:      e.Period,
		Description: e.Description,
		Rank:        e.Rank,
	}
}

type Connection struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Label string `gorm:"type:varchar(45);not null"`
	URL   string `gorm:"type:varchar(255);not null"`
	Icon  string `gorm:"type:varchar(45)"`
}

func (Connection) TableName() string {
	return "connection"
}

func (m *Connection) ToDomain() domain.Connection {
	return domain.Connection{
		ID:    m.ID,
		Label: m.Label,
		URL:   m.URL,
		Icon:  m.Icon,
	}
}

func NewConnectionFromDomain(c *domain.Connection) *Connection {
	return &Connection{
		ID:    c.ID,
		Label: c.Label,
		URL:   c.URL,
		Icon:  c.Icon,
	}
}

type Expense struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	Title    string    `gorm:"type:varchar(120);not null"`
	Amount   int64     `gorm:"not null"` // minor units
	Currency string    `gorm:"type:varchar(8);not null"`
	SpentAt  time.Time `gorm:"type:datetime"`
}

func (Expense) TableName() string {
	return "expense"
}

func (m *Expense) ToDomain() domain.Expense {
	return domain.Expense{
		ID:       m.ID,
		Title:    m.Title,
		Amount:   m.Amount,
		Currency: m.Currency,
		SpentAt:  m.SpentAt,
	}
}

func NewExpenseFromDomain(e *domain.Expense) *Expense {
	return &Expense{
		ID:       e.ID,
		Title:    e.Title,
		Amount:   e.Amount,
		Currency: e.Currency,
		SpentAt:  e.SpentAt,
	}
}

type AboutMe struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Headline   string    `gorm:"type:varchar(120)"`
	Bio        string    `gorm:"type:longtext"`
	CVFileName string    `gorm:"column:cv_file_name;type:varchar(255)"`
	UpdatedAt  time.Time `gorm:"type:datetime"`
}

func (AboutMe) TableName() string {
	return "about_me"
}

func (m *AboutMe) ToDomain() domain.AboutMe {
	return domain.AboutMe{
		ID:         m.ID,
		Headline:   m.Headline,
		Bio:        m.Bio,
		CVFileName: m.CVFileName,
		UpdatedAt:  m.UpdatedAt,
	}
}

func NewAboutMeFromDomain(a *domain.AboutMe) *AboutMe {
	return &AboutMe{
		ID:         a.ID,
		Headline:   a.Headline,
		Bio:        a.Bio,
		CVFileName: a.CVFileName,
		UpdatedAt:  a.UpdatedAt,
	}
}
