// internal/repository/studylog_repository.go
package repository

import (
	"context"
	"time"

	"go_5_tally_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudyLogRepository interface {
	Create(ctx context.Context, tx *gorm.DB, log *model.StudyLog) error
	// FindByMaterials は指定教材群の記録を日付降順で返します
	FindByMaterials(ctx context.Context, db *gorm.DB, materialIDs []uuid.UUID) ([]model.StudyLog, error)
	// FindByMaterialAndDay は指定教材・指定日 (0時正規化済み) の記録を返します
	FindByMaterialAndDay(ctx context.Context, db *gorm.DB, materialID uuid.UUID, day time.Time) ([]model.StudyLog, error)
	Update(ctx context.Context, tx *gorm.DB, log *model.StudyLog) error
	DeleteByIDs(ctx context.Context, tx *gorm.DB, logIDs []uuid.UUID) error
	DeleteByMaterial(ctx context.Context, tx *gorm.DB, materialID uuid.UUID) error
	DeleteByMaterials(ctx context.Context, tx *gorm.DB, materialIDs []uuid.UUID) error
}

type gormStudyLogRepository struct{}

func NewGormStudyLogRepository() StudyLogRepository {
	return &gormStudyLogRepository{}
}

func (r *gormStudyLogRepository) Create(ctx context.Context, tx *gorm.DB, log *model.StudyLog) error {
	return tx.WithContext(ctx).Create(log).Error
}

func (r *gormStudyLogRepository) FindByMaterials(ctx context.Context, db *gorm.DB, materialIDs []uuid.UUID) ([]model.StudyLog, error) {
	if len(materialIDs) == 0 {
		return []model.StudyLog{}, nil
	}
	var logs []model.StudyLog
	result := db.WithContext(ctx).
		Where("material_id IN ?", materialIDs).
		Order("date DESC, created_at DESC").
		Find(&logs)
	if result.Error != nil {
		return nil, result.Error
	}
	return logs, nil
}

func (r *gormStudyLogRepository) FindByMaterialAndDay(ctx context.Context, db *gorm.DB, materialID uuid.UUID, day time.Time) ([]model.StudyLog, error) {
	var logs []model.StudyLog
	result := db.WithContext(ctx).
		Where("material_id = ? AND date = ?", materialID, day).
		Order("created_at ASC").
		Find(&logs)
	if result.Error != nil {
		return nil, result.Error
	}
	return logs, nil
}

func (r *gormStudyLogRepository) Update(ctx context.Context, tx *gorm.DB, log *model.StudyLog) error {
	return tx.WithContext(ctx).Save(log).Error
}

func (r *gormStudyLogRepository) DeleteByIDs(ctx context.Context, tx *gorm.DB, logIDs []uuid.UUID) error {
	if len(logIDs) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Where("log_id IN ?", logIDs).Delete(&model.StudyLog{}).Error
}

func (r *gormStudyLogRepository) DeleteByMaterial(ctx context.Context, tx *gorm.DB, materialID uuid.UUID) error {
	return tx.WithContext(ctx).Where("material_id = ?", materialID).Delete(&model.StudyLog{}).Error
}

func (r *gormStudyLogRepository) DeleteByMaterials(ctx context.Context, tx *gorm.DB, materialIDs []uuid.UUID) error {
	if len(materialIDs) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Where("material_id IN ?", materialIDs).Delete(&model.StudyLog{}).Error
}
