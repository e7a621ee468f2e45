// internal/repository/mocks/qualification_repository.go
// テスト用の QualificationRepository モック (testify/mock)
package mocks

import (
	"context"

	"go_5_tally_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type QualificationRepository struct {
	mock.Mock
}

func (m *QualificationRepository) Create(ctx context.Context, tx *gorm.DB, q *model.Qualification) error {
	args := m.Called(ctx, tx, q)
	return args.Error(0)
}

func (m *QualificationRepository) FindByID(ctx context.Context, db *gorm.DB, qualificationID uuid.UUID) (*model.Qualification, error) {
	args := m.Called(ctx, db, qualificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Qualification), args.Error(1)
}

func (m *QualificationRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Qualification, error) {
	args := m.Called(ctx, db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Qualification), args.Error(1)
}

func (m *QualificationRepository) FindSelected(ctx context.Context, db *gorm.DB) (*model.Qualification, error) {
	args := m.Called(ctx, db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Qualification), args.Error(1)
}

func (m *QualificationRepository) Update(ctx context.Context, tx *gorm.DB, qualificationID uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, tx, qualificationID, updates)
	return args.Error(0)
}

func (m *QualificationRepository) SetSelected(ctx context.Context, tx *gorm.DB, qualificationID uuid.UUID) error {
	args := m.Called(ctx, tx, qualificationID)
	return args.Error(0)
}

func (m *QualificationRepository) Delete(ctx context.Context, tx *gorm.DB, qualificationID uuid.UUID) error {
	args := m.Called(ctx, tx, qualificationID)
	return args.Error(0)
}
