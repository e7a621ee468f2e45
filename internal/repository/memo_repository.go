// internal/repository/memo_repository.go
package repository

import (
	"context"
	"errors"

	"go_5_tally_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemoRepository interface {
	Create(ctx context.Context, tx *gorm.DB, memo *model.Memo) error
	FindByID(ctx context.Context, db *gorm.DB, memoID uuid.UUID) (*model.Memo, error)
	FindByQualification(ctx context.Context, db *gorm.DB, qualificationID uuid.UUID) ([]*model.Memo, error)
	Update(ctx context.Context, tx *gorm.DB, memoID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, memoID uuid.UUID) error
	DeleteByQualification(ctx context.Context, tx *gorm.DB, qualificationID uuid.UUID) error

	CreateImage(ctx context.Context, tx *gorm.DB, image *model.MemoImage) error
	FindImageByID(ctx context.Context, db *gorm.DB, imageID uuid.UUID) (*model.MemoImage, error)
	FindImagesByMemo(ctx context.Context, db *gorm.DB, memoID uuid.UUID) ([]*model.MemoImage, error)
	DeleteImage(ctx context.Context, tx *gorm.DB, imageID uuid.UUID) error
	DeleteImagesByMemos(ctx context.Context, tx *gorm.DB, memoIDs []uuid.UUID) error
}

type gormMemoRepository struct{}

func NewGormMemoRepository() MemoRepository {
	return &gormMemoRepository{}
}

func (r *gormMemoRepository) Create(ctx context.Context, tx *gorm.DB, memo *model.Memo) error {
	return tx.WithContext(ctx).Create(memo).Error
}

func (r *gormMemoRepository) FindByID(ctx context.Context, db *gorm.DB, memoID uuid.UUID) (*model.Memo, error) {
	var memo model.Memo
	result := db.WithContext(ctx).Where("memo_id = ?", memoID).First(&memo)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &memo, nil
}

func (r *gormMemoRepository) FindByQualification(ctx context.Context, db *gorm.DB, qualificationID uuid.UUID) ([]*model.Memo, error) {
	var memos []*model.Memo
	result := db.WithContext(ctx).
		Where("qualification_id = ?", qualificationID).
		Order("updated_at DESC").
		Find(&memos)
	if result.Error != nil {
		return nil, result.Error
	}
	return memos, nil
}

func (r *gormMemoRepository) Update(ctx context.Context, tx *gorm.DB, memoID uuid.UUID, updates map[string]interface{}) error {
	result := tx.WithContext(ctx).Model(&model.Memo{}).
		Where("memo_id = ?", memoID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormMemoRepository) Delete(ctx context.Context, tx *gorm.DB, memoID uuid.UUID) error {
	result := tx.WithContext(ctx).Where("memo_id = ?", memoID).Delete(&model.Memo{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormMemoRepository) DeleteByQualification(ctx context.Context, tx *gorm.DB, qualificationID uuid.UUID) error {
	return tx.WithContext(ctx).
		Where("qualification_id = ?", qualificationID).
		Delete(&model.Memo{}).Error
}

func (r *gormMemoRepository) CreateImage(ctx context.Context, tx *gorm.DB, image *model.MemoImage) error {
	return tx.WithContext(ctx).Create(image).Error
}

func (r *gormMemoRepository) FindImageByID(ctx context.Context, db *gorm.DB, imageID uuid.UUID) (*model.MemoImage, error) {
	var image model.MemoImage
	result := db.WithContext(ctx).Where("image_id = ?", imageID).First(&image)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &image, nil
}

func (r *gormMemoRepository) FindImagesByMemo(ctx context.Context, db *gorm.DB, memoID uuid.UUID) ([]*model.MemoImage, error) {
	var images []*model.MemoImage
	result := db.WithContext(ctx).
		Where("memo_id = ?", memoID).
		Order("created_at ASC").
		Find(&images)
	if result.Error != nil {
		return nil, result.Error
	}
	return images, nil
}

func (r *gormMemoRepository) DeleteImage(ctx context.Context, tx *gorm.DB, imageID uuid.UUID) error {
	result := tx.WithContext(ctx).Where("image_id = ?", imageID).Delete(&model.MemoImage{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormMemoRepository) DeleteImagesByMemos(ctx context.Context, tx *gorm.DB, memoIDs []uuid.UUID) error {
	if len(memoIDs) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Where("memo_id IN ?", memoIDs).Delete(&model.MemoImage{}).Error
}
