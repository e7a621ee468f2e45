// internal/repository/qualification_repository.go
package repository

import (
	"context"
	"errors"

	"go_5_tally_keep/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type QualificationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, q *model.Qualification) error
	FindByID(ctx context.Context, db *gorm.DB, qualificationID uuid.UUID) (*model.Qualification, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Qualification, error)
	FindSelected(ctx context.Context, db *gorm.DB) (*model.Qualification, error)
	Update(ctx context.Context, tx *gorm.DB, qualificationID uuid.UUID, updates map[string]interface{}) error
	// SetSelected は指定の資格だけを選択状態にします (他は全て解除)
	SetSelected(ctx context.Context, tx *gorm.DB, qualificationID uuid.UUID) error
	Delete(ctx context.Context, tx *gorm.DB, qualificationID uuid.UUID) error
}

type gormQualificationRepository struct{}

func NewGormQualificationRepository() QualificationRepository {
	return &gormQualificationRepository{}
}

func (r *gormQualificationRepository) Create(ctx context.Context, tx *gorm.DB, q *model.Qualification) error {
	result := tx.WithContext(ctx).Create(q)
	if result.Error != nil {
		// 資格名の一意制約違反 (PostgreSQL: 23505)
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			return model.ErrConflict
		}
		return result.Error
	}
	return nil
}

func (r *gormQualificationRepository) FindByID(ctx context.Context, db *gorm.DB, qualificationID uuid.UUID) (*model.Qualification, error) {
	var q model.Qualification
	result := db.WithContext(ctx).Where("qualification_id = ?", qualificationID).First(&q)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &q, nil
}

func (r *gormQualificationRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Qualification, error) {
	var qs []*model.Qualification
	result := db.WithContext(ctx).Order("created_at ASC").Find(&qs)
	if result.Error != nil {
		return nil, result.Error
	}
	return qs, nil
}

func (r *gormQualificationRepository) FindSelected(ctx context.Context, db *gorm.DB) (*model.Qualification, error) {
	var q model.Qualification
	result := db.WithContext(ctx).Where("is_selected = ?", true).Order("created_at ASC").First(&q)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &q, nil
}

func (r *gormQualificationRepository) Update(ctx context.Context, tx *gorm.DB, qualificationID uuid.UUID, updates map[string]interface{}) error {
	result := tx.WithContext(ctx).Model(&model.Qualification{}).
		Where("qualification_id = ?", qualificationID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormQualificationRepository) SetSelected(ctx context.Context, tx *gorm.DB, qualificationID uuid.UUID) error {
	// 一旦全解除してから対象だけ選択する。呼び出し側のトランザクション内で実行される前提。
	if err := tx.WithContext(ctx).Model(&model.Qualification{}).
		Where("is_selected = ?", true).
		Update("is_selected", false).Error; err != nil {
		return err
	}
	result := tx.WithContext(ctx).Model(&model.Qualification{}).
		Where("qualification_id = ?", qualificationID).
		Update("is_selected", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormQualificationRepository) Delete(ctx context.Context, tx *gorm.DB, qualificationID uuid.UUID) error {
	result := tx.WithContext(ctx).Where("qualification_id = ?", qualificationID).Delete(&model.Qualification{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
