package profile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/avezina/inkwell/domain"
)

// Service manages the about page, CV file and the admin-only records.
// Save* methods dispatch on ID presence: a zero ID creates, anything else
// updates.
type Service struct {
	profileRepo domain.ProfileRepository
	uploadDir   string
}

var _ domain.ProfileUsecase = (*Service)(nil)

func NewService(r domain.ProfileRepository, uploadDir string) *Service {
	return &Service{
		profileRepo: r,
		uploadDir:   uploadDir,
	}
}

func (s *Service) Skills(ctx context.Context) ([]domain.Skill, error) {
	return s.profileRepo.Skills(ctx)
}

func (s *Service) SaveSkill(ctx context.Context, skill *domain.Skill) error {
	if skill.ID == 0 {
		return s.profileRepo.StoreSkill(ctx, skill)
	}
	return s.profileRepo.UpdateSkill(ctx, skill)
}

func (s *Service) DeleteSkill(ctx context.Context, id int64) error {
	return s.profileRepo.DeleteSkill(ctx, id)
}

func (s *Service) LifeEvents(ctx context.Context) ([]domain.LifeEvent, error) {
	return s.profileRepo.LifeEvents(ctx)
}

func (s *Service) SaveLifeEvent(ctx context.Context, event *domain.LifeEvent) error {
	if event.ID == 0 {
		return s.profileRepo.StoreLifeEvent(ctx, event)
	}
	return s.profileRepo.UpdateLifeEvent(ctx, event)
}

func (s *Service) DeleteLifeEvent(ctx context.Context, id int64) error {
	return s.profileRepo.DeleteLifeEvent(ctx, id)
}

func (s *Service) Connections(ctx context.Context) ([]domain.Connection, error) {
	return s.profileRepo.Connections(ctx)
}

func (s *Service) SaveConnection(ctx context.Context, connection *domain.Connection) error {
	if connection.ID == 0 {
		return s.profileRepo.StoreConnection(ctx, connection)
	}
	return s.profileRepo.UpdateConnection(ctx, connection)
}

func (s *Service) DeleteConnection(ctx context.Context, id int64) error {
	return s.profileRepo.DeleteConnection(ctx, id)
}

func (s *Service) Expenses(ctx context.Context) ([]domain.Expense, error) {
	return s.profileRepo.Expenses(ctx)
}

func (s *Service) SaveExpense(ctx context.Context, expense *domain.Expense) error {
	if expense.ID == 0 {
		return s.profileRepo.StoreExpense(ctx, expense)
	}
	return s.profileRepo.UpdateExpense(ctx, expense)
}

func (s *Service) DeleteExpense(ctx context.Context, id int64) error {
	return s.profileRepo.DeleteExpense(ctx, id)
}

func (s *Service) About(ctx context.Context) (domain.AboutMe, error) {
	return s.profileRepo.About(ctx)
}

func (s *Service) UpdateAbout(ctx context.Context, about *domain.AboutMe) error {
	return s.profileRepo.UpdateAbout(ctx, about)
}

// StoreCV writes the uploaded file under a random name and records it on
// the about document. Returns the stored file name.
func (s *Service) StoreCV(ctx context.Context, fileName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext != ".pdf" {
		return "", domain.ErrBadParamInput
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", err
	}

	stored := fmt.Sprintf("cv-%s%s", uuid.NewString(), ext)
	if err := os.WriteFile(filepath.Join(s.uploadDir, stored), data, 0o644); err != nil {
		return "", err
	}

	if err := s.profileRepo.SetCVFile(ctx, stored); err != nil {
		// don't leave the orphan file behind
		_ = os.Remove(filepath.Join(s.uploadDir, stored))
		return "", err
	}
	return stored, nil
}

func (s *Service) CVPath(ctx context.Context) (string, error) {
	about, err := s.profileRepo.About(ctx)
	if err != nil {
		return "", err
	}
	if about.CVFileName == "" {
		return "", domain.ErrNotFound
	}
	return filepath.Join(s.uploadDir, about.CVFileName), nil
}
