package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/avezina/inkwell/domain"
	"github.com/avezina/inkwell/internal/repository/mysql/model"
	"github.com/sirupsen/logrus"
)

type likeRepository struct {
	DB *gorm.DB
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(db *gorm.DB) *likeRepository {
	return &likeRepository{db}
}

func (m *likeRepository) FetchVisitorLiked(ctx context.Context, visitorID string, target domain.LikeTarget, limit int64) ([]int64, error) {
	var res []int64
	err := m.DB.WithContext(ctx).
		Model(&model.VisitorLike{}).
		Select("target_id").
		Where("visitor_id = ? AND target_type = ?", visitorID, string(target)).
		Order("created_at desc").
		Limit(int(limit)).
		Find(&res).Error

	return res, err
}

// likeTableFor maps a target type onto the table carrying its total_likes column.
func likeTableFor(target string) (any, bool) {
	switch domain.LikeTarget(target) {
	case domain.LikeTargetPost:
		return &model.Post{}, true
	case domain.LikeTargetCategory:
		return &model.Category{}, true
	default:
		return nil, false
	}
}

func (m *likeRepository) ApplyLikeChanges(ctx context.Context, changes domain.LikeStateChanges) error {
	if len(changes.ToAdd) == 0 && len(changes.ToRemove) == 0 {
		return nil
	}

	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// drop likes pointing at rows that no longer exist
		filteredAdd := make([]model.VisitorLike, 0, len(changes.ToAdd))
		for _, row := range changes.ToAdd {
			table, ok := likeTableFor(string(row.Target))
			if !ok {
				logrus.Warnf("Dropped like with unknown target type %q", row.Target)
				continue
			}

			var exists int64
			if err := tx.Model(table).Where("id = ?", row.TargetID).Count(&exists).Error; err != nil {
				return err
			}
			if exists == 0 {
				logrus.Warnf("Dropped orphan like for %s %d", row.Target, row.TargetID)
				continue
			}
			filteredAdd = append(filteredAdd, model.NewVisitorLikeFromDomain(row))
		}

		for _, row := range changes.ToRemove {
			err := tx.Where("visitor_id = ? AND target_id = ? AND target_type = ?",
				row.VisitorID, row.TargetID, string(row.Target)).
				Delete(&model.VisitorLike{}).Error
			if err != nil {
				return err
			}
		}

		if len(filteredAdd) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				DoNothing: true,
			}).Create(&filteredAdd).Error; err != nil {
				return err
			}
		}

		// recount total_likes of every touched target from the like table
		type targetKey struct {
			id  int64
			typ string
		}
		touched := make(map[targetKey]struct{})
		for _, row := range changes.ToAdd {
			touched[targetKey{row.TargetID, string(row.Target)}] = struct{}{}
		}
		for _, row := range changes.ToRemove {
			touched[targetKey{row.TargetID, string(row.Target)}] = struct{}{}
		}

		for key := range touched {
			table, ok := likeTableFor(key.typ)
			if !ok {
				continue
			}

			var realCount int64
			if err := tx.Model(&model.VisitorLike{}).
				Where("target_id = ? AND target_type = ?", key.id, key.typ).
				Count(&realCount).Error; err != nil {
				return err
			}

			if err := tx.Model(table).
				Where("id = ?", key.id).
				UpdateColumn("total_likes", realCount).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
