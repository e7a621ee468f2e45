// internal/repository/mocks/studylog_repository.go
// テスト用の StudyLogRepository モック (testify/mock)
package mocks

import (
	"context"
	"time"

	"go_5_tally_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type StudyLogRepository struct {
	mock.Mock
}

func (m *StudyLogRepository) Create(ctx context.Context, tx *gorm.DB, log *model.StudyLog) error {
	args := m.Called(ctx, tx, log)
	return args.Error(0)
}

func (m *StudyLogRepository) FindByMaterials(ctx context.Context, db *gorm.DB, materialIDs []uuid.UUID) ([]model.StudyLog, error) {
	args := m.Called(ctx, db, materialIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StudyLog), args.Error(1)
}

func (m *StudyLogRepository) FindByMaterialAndDay(ctx context.Context, db *gorm.DB, materialID uuid.UUID, day time.Time) ([]model.StudyLog, error) {
	args := m.Called(ctx, db, materialID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StudyLog), args.Error(1)
}

func (m *StudyLogRepository) Update(ctx context.Context, tx *gorm.DB, log *model.StudyLog) error {
	args := m.Called(ctx, tx, log)
	return args.Error(0)
}

func (m *StudyLogRepository) DeleteByIDs(ctx context.Context, tx *gorm.DB, logIDs []uuid.UUID) error {
	args := m.Called(ctx, tx, logIDs)
	return args.Error(0)
}

func (m *StudyLogRepository) DeleteByMaterial(ctx context.Context, tx *gorm.DB, materialID uuid.UUID) error {
	args := m.Called(ctx, tx, materialID)
	return args.Error(0)
}

func (m *StudyLogRepository) DeleteByMaterials(ctx context.Context, tx *gorm.DB, materialIDs []uuid.UUID) error {
	args := m.Called(ctx, tx, materialIDs)
	return args.Error(0)
}
