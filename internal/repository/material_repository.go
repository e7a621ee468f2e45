// internal/repository/material_repository.go
package repository

import (
	"context"
	"errors"

	"go_5_tally_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaterialRepository interface {
	Create(ctx context.Context, tx *gorm.DB, m *model.Material) error
	FindByID(ctx context.Context, db *gorm.DB, materialID uuid.UUID) (*model.Material, error)
	FindByQualification(ctx context.Context, db *gorm.DB, qualificationID uuid.UUID) ([]*model.Material, error)
	Update(ctx context.Context, tx *gorm.DB, materialID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, materialID uuid.UUID) error
	DeleteByQualification(ctx context.Context, tx *gorm.DB, qualificationID uuid.UUID) error
}

type gormMaterialRepository struct{}

func NewGormMaterialRepository() MaterialRepository {
	return &gormMaterialRepository{}
}

func (r *gormMaterialRepository) Create(ctx context.Context, tx *gorm.DB, m *model.Material) error {
	return tx.WithContext(ctx).Create(m).Error
}

func (r *gormMaterialRepository) FindByID(ctx context.Context, db *gorm.DB, materialID uuid.UUID) (*model.Material, error) {
	var m model.Material
	result := db.WithContext(ctx).Where("material_id = ?", materialID).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &m, nil
}

func (r *gormMaterialRepository) FindByQualification(ctx context.Context, db *gorm.DB, qualificationID uuid.UUID) ([]*model.Material, error) {
	var ms []*model.Material
	result := db.WithContext(ctx).
		Where("qualification_id = ?", qualificationID).
		Order("display_order ASC, created_at ASC").
		Find(&ms)
	if result.Error != nil {
		return nil, result.Error
	}
	return ms, nil
}

func (r *gormMaterialRepository) Update(ctx context.Context, tx *gorm.DB, materialID uuid.UUID, updates map[string]interface{}) error {
	result := tx.WithContext(ctx).Model(&model.Material{}).
		Where("material_id = ?", materialID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormMaterialRepository) Delete(ctx context.Context, tx *gorm.DB, materialID uuid.UUID) error {
	result := tx.WithContext(ctx).Where("material_id = ?", materialID).Delete(&model.Material{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormMaterialRepository) DeleteByQualification(ctx context.Context, tx *gorm.DB, qualificationID uuid.UUID) error {
	// 0件でもエラーにしない (資格に教材が無いだけ)
	return tx.WithContext(ctx).
		Where("qualification_id = ?", qualificationID).
		Delete(&model.Material{}).Error
}
