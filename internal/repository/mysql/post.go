package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/avezina/inkwell/domain"
	"github.com/avezina/inkwell/internal/repository"
	"github.com/avezina/inkwell/internal/repository/mysql/model"
)

type postRepository struct {
	DB *gorm.DB
}

var _ domain.PostRepository = (*postRepository)(nil)

// NewPostRepository creates the database layer for posts
func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{db}
}

func (m *postRepository) Fetch(ctx context.Context, cursor string, num int64) (res []domain.Post, err error) {
	var posts []model.Post
	decodedCursor, err := repository.DecodeCursor(cursor)
	if err != nil && cursor != "" {
		return nil, domain.ErrBadParamInput
	}

	repository.PageVerify(&num)
	err = m.DB.WithContext(ctx).
		Where("created_at > ?", decodedCursor).
		Order("created_at").
		Limit(int(num)).
		Find(&posts).
		Error

	if err != nil {
		return
	}

	for _, post := range posts {
		res = append(res, post.ToDomain())
	}

	return
}

func (m *postRepository) FetchByCategory(ctx context.Context, categoryID int64, cursor string, num int64) (res []domain.Post, err error) {
	var posts []model.Post
	decodedCursor, err := repository.DecodeCursor(cursor)
	if err != nil && cursor != "" {
		return nil, domain.ErrBadParamInput
	}

	repository.PageVerify(&num)
	err = m.DB.WithContext(ctx).
		Where("category_id = ? AND created_at > ?", categoryID, decodedCursor).
		Order("created_at").
		Limit(int(num)).
		Find(&posts).
		Error

	if err != nil {
		return
	}

	for _, post := range posts {
		res = append(res, post.ToDomain())
	}

	return
}

func (m *postRepository) GetByID(ctx context.Context, id int64) (res domain.Post, err error) {
	var post model.Post
	err = m.DB.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		return res, domain.ErrNotFound
	}
	res = post.ToDomain()
	return
}

func (m *postRepository) GetByTitle(ctx context.Context, title string) (res domain.Post, err error) {
	var post model.Post
	err = m.DB.WithContext(ctx).First(&post, "title = ?", title).Error
	if err != nil {
		return res, domain.ErrNotFound
	}
	res = post.ToDomain()
	return
}

func (m *postRepository) Store(ctx context.Context, p *domain.Post) (err error) {
	postModel := model.NewPostFromDomain(p)
	result := m.DB.WithContext(ctx).Create(&postModel)
	if result.Error != nil {
		return result.Error
	}
	p.ID = postModel.ID
	p.CreatedAt = postModel.CreatedAt
	p.UpdatedAt = postModel.UpdatedAt
	return
}

func (m *postRepository) Update(ctx context.Context, p *domain.Post) (err error) {
	postModel := model.NewPostFromDomain(p)
	result := m.DB.WithContext(ctx).Model(&postModel).Updates(&postModel)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return
}

func (m *postRepository) Delete(ctx context.Context, id int64) error {
	result := m.DB.WithContext(ctx).Delete(&model.Post{}, id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (m *postRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Post{}).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	return
}
