// internal/repository/mocks/material_repository.go
// テスト用の MaterialRepository モック (testify/mock)
package mocks

import (
	"context"

	"go_5_tally_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MaterialRepository struct {
	mock.Mock
}

func (m *MaterialRepository) Create(ctx context.Context, tx *gorm.DB, material *model.Material) error {
	args := m.Called(ctx, tx, material)
	return args.Error(0)
}

func (m *MaterialRepository) FindByID(ctx context.Context, db *gorm.DB, materialID uuid.UUID) (*model.Material, error) {
	args := m.Called(ctx, db, materialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Material), args.Error(1)
}

func (m *MaterialRepository) FindByQualification(ctx context.Context, db *gorm.DB, qualificationID uuid.UUID) ([]*model.Material, error) {
	args := m.Called(ctx, db, qualificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Material), args.Error(1)
}

func (m *MaterialRepository) Update(ctx context.Context, tx *gorm.DB, materialID uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, tx, materialID, updates)
	return args.Error(0)
}

func (m *MaterialRepository) Delete(ctx context.Context, tx *gorm.DB, materialID uuid.UUID) error {
	args := m.Called(ctx, tx, materialID)
	return args.Error(0)
}

func (m *MaterialRepository) DeleteByQualification(ctx context.Context, tx *gorm.DB, qualificationID uuid.UUID) error {
	args := m.Called(ctx, tx, qualificationID)
	return args.Error(0)
}
