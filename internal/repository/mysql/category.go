package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/avezina/inkwell/domain"
	"github.com/avezina/inkwell/internal/repository/mysql/model"
)

type categoryRepository struct {
	DB *gorm.DB
}

var _ domain.CategoryRepository = (*categoryRepository)(nil)

func NewCategoryRepository(db *gorm.DB) *categoryRepository {
	return &categoryRepository{db}
}

func (m *categoryRepository) Fetch(ctx context.Context) (res []domain.Category, err error) {
	var categories []model.Category
	err = m.DB.WithContext(ctx).Order("name").Find(&categories).Error
	if err != nil {
		return
	}

	for _, category := range categories {
		res = append(res, category.ToDomain())
	}
	return
}

func (m *categoryRepository) GetByID(ctx context.Context, id int64) (res domain.Category, err error) {
	var category model.Category
	err = m.DB.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		return res, domain.ErrNotFound
	}
	res = category.ToDomain()
	return
}

func (m *categoryRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Category, error) {
	var categories []model.Category
	err := m.DB.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Category, len(categories))
	for i := range categories {
		res[i] = categories[i].ToDomain()
	}
	return res, nil
}

func (m *categoryRepository) Store(ctx context.Context, c *domain.Category) error {
	categoryModel := model.NewCategoryFromDomain(c)
	result := m.DB.WithContext(ctx).Create(&categoryModel)
	if result.Error != nil {
		return result.Error
	}
	c.ID = categoryModel.ID
	c.CreatedAt = categoryModel.CreatedAt
	c.UpdatedAt = categoryModel.UpdatedAt
	return nil
}

func (m *categoryRepository) Update(ctx context.Context, c *domain.Category) error {
	categoryModel := model.NewCategoryFromDomain(c)
	result := m.DB.WithContext(ctx).Model(&categoryModel).Updates(&categoryModel)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *categoryRepository) Delete(ctx context.Context, id int64) error {
	// refuse to orphan posts
	var inUse int64
	if err := m.DB.WithContext(ctx).Model(&model.Post{}).Where("category_id = ?", id).Count(&inUse).Error; err != nil {
		return err
	}
	if inUse > 0 {
		return domain.ErrConflict
	}

	result := m.DB.WithContext(ctx).Delete(&model.Category{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
