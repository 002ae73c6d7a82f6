package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/avezina/inkwell/domain"
	"github.com/avezina/inkwell/internal/repository/mysql/model"
)

type profileRepository struct {
	DB *gorm.DB
}

var _ domain.ProfileRepository = (*profileRepository)(nil)

func NewProfileRepository(db *gorm.DB) *profileRepository {
	return &profileRepository{db}
}

func (m *profileRepository) Skills(ctx context.Context) ([]domain.Skill, error) {
	var skills []model.Skill
	err := m.DB.WithContext(ctx).Order("`rank`, id").Find(&skills).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Skill, len(skills))
	for i := range skills {
		res[i] = skills[i].ToDomain()
	}
	return res, nil
}

func (m *profileRepository) StoreSkill(ctx context.Context, s *domain.Skill) error {
	skillModel := model.NewSkillFromDomain(s)
	if err := m.DB.WithContext(ctx).Create(&skillModel).Error; err != nil {
		return err
	}
	s.ID = skillModel.ID
	return nil
}

func (m *profileRepository) UpdateSkill(ctx context.Context, s *domain.Skill) error {
	skillModel := model.NewSkillFromDomain(s)
	result := m.DB.WithContext(ctx).Model(&skillModel).Updates(&skillModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *profileRepository) DeleteSkill(ctx context.Context, id int64) error {
	return deleteByID(ctx, m.DB, &model.Skill{}, id)
}

func (m *profileRepository) LifeEvents(ctx context.Context) ([]domain.LifeEvent, error) {
	var events []model.LifeEvent
	err := m.DB.WithContext(ctx).Order("`rank`, id").Find(&events).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.LifeEvent, len(events))
	for i := range events {
		res[i] = events[i].ToDomain()
	}
	return res, nil
}

func (m *profileRepository) StoreLifeEvent(ctx context.Context, e *domain.LifeEvent) error {
	eventModel := model.NewLifeEventFromDomain(e)
	if err := m.DB.WithContext(ctx).Create(&eventModel).Error; err != nil {
		return err
	}
	e.ID = eventModel.ID
	return nil
}

func (m *profileRepository) UpdateLifeEvent(ctx context.Context, e *domain.LifeEvent) error {
	eventModel := model.NewLifeEventFromDomain(e)
	result := m.DB.WithContext(ctx).Model(&eventModel).Updates(&eventModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *profileRepository) DeleteLifeEvent(ctx context.Context, id int64) error {
	return deleteByID(ctx, m.DB, &model.LifeEvent{}, id)
}

func (m *profileRepository) Connections(ctx context.Context) ([]domain.Connection, error) {
	var connections []model.Connection
	err := m.DB.WithContext(ctx).Order("id").Find(&connections).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Connection, len(connections))
	for i := range connections {
		res[i] = connections[i].ToDomain()
	}
	return res, nil
}

func (m *profileRepository) StoreConnection(ctx context.Context, c *domain.Connection) error {
	connectionModel := model.NewConnectionFromDomain(c)
	if err := m.DB.WithContext(ctx).Create(&connectionModel).Error; err != nil {
		return err
	}
	c.ID = connectionModel.ID
	return nil
}

func (m *profileRepository) UpdateConnection(ctx context.Context, c *domain.Connection) error {
	connectionModel := model.NewConnectionFromDomain(c)
	result := m.DB.WithContext(ctx).Model(&connectionModel).Updates(&connectionModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *profileRepository) DeleteConnection(ctx context.Context, id int64) error {
	return deleteByID(ctx, m.DB, &model.Connection{}, id)
}

func (m *profileRepository) Expenses(ctx context.Context) ([]domain.Expense, error) {
	var expenses []model.Expense
	err := m.DB.WithContext(ctx).Order("spent_at desc").Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Expense, len(expenses))
	for i := range expenses {
		res[i] = expenses[i].ToDomain()
	}
	return res, nil
}

func (m *profileRepository) StoreExpense(ctx context.Context, e *domain.Expense) error {
	expenseModel := model.NewExpenseFromDomain(e)
	if err := m.DB.WithContext(ctx).Create(&expenseModel).Error; err != nil {
		return err
	}
	e.ID = expenseModel.ID
	return nil
}

func (m *profileRepository) UpdateExpense(ctx context.Context, e *domain.Expense) error {
	expenseModel := model.NewExpenseFromDomain(e)
	result := m.DB.WithContext(ctx).Model(&expenseModel).Updates(&expenseModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *profileRepository) DeleteExpense(ctx context.Context, id int64) error {
	return deleteByID(ctx, m.DB, &model.Expense{}, id)
}

func (m *profileRepository) About(ctx context.Context) (domain.AboutMe, error) {
	var about model.AboutMe
	err := m.DB.WithContext(ctx).First(&about).Error
	if err != nil {
		return domain.AboutMe{}, domain.ErrNotFound
	}
	return about.ToDomain(), nil
}

func (m *profileRepository) UpdateAbout(ctx context.Context, a *domain.AboutMe) error {
	// singleton row, upsert on the fixed primary key
	a.ID = 1
	a.UpdatedAt = time.Now()
	aboutModel := model.NewAboutMeFromDomain(a)
	return m.DB.WithContext(ctx).Clauses(clause.OnConflict{
		UpdateAll: true,
	}).Create(&aboutModel).Error
}

func (m *profileRepository) SetCVFile(ctx context.Context, fileName string) error {
	result := m.DB.WithContext(ctx).Model(&model.AboutMe{}).
		Where("id = ?", 1).
		Updates(map[string]any{"cv_file_name": fileName, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, db *gorm.DB, table any, id int64) error {
	result := db.WithContext(ctx).Delete(table, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
