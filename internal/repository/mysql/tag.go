package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/avezina/inkwell/domain"
	"github.com/avezina/inkwell/internal/repository/mysql/model"
)

type tagRepository struct {
	DB *gorm.DB
}

var _ domain.TagRepository = (*tagRepository)(nil)

func NewTagRepository(db *gorm.DB) *tagRepository {
	return &tagRepository{db}
}

func (m *tagRepository) Fetch(ctx context.Context) ([]domain.Tag, error) {
	var tags []model.Tag
	err := m.DB.WithContext(ctx).Order("name").Find(&tags).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Tag, len(tags))
	for i := range tags {
		res[i] = tags[i].ToDomain()
	}
	return res, nil
}

func (m *tagRepository) Store(ctx context.Context, t *domain.Tag) error {
	var existing model.Tag
	err := m.DB.WithContext(ctx).First(&existing, "name = ?", t.Name).Error
	if err == nil {
		return domain.ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	tagModel := model.NewTagFromDomain(t)
	if err := m.DB.WithContext(ctx).Create(&tagModel).Error; err != nil {
		return err
	}
	t.ID = tagModel.ID
	return nil
}

func (m *tagRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, m.DB, &model.Tag{}, id)
}
