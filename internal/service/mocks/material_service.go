// テスト用の MaterialService モック (testify/mock)
package mocks

import (
	"context"

	"go_5_tally_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MaterialService struct {
	mock.Mock
}

func (m *MaterialService) CreateMaterial(ctx context.Context, qualificationID uuid.UUID, req *model.CreateMaterialRequest) (*model.Material, error) {
	args := m.Called(ctx, qualificationID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Material), args.Error(1)
}

func (m *MaterialService) GetMaterial(ctx context.Context, materialID uuid.UUID) (*model.Material, error) {
	args := m.Called(ctx, materialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Material), args.Error(1)
}

func (m *MaterialService) ListMaterials(ctx context.Context, qualificationID uuid.UUID) ([]*model.Material, error) {
	args := m.Called(ctx, qualificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Material), args.Error(1)
}

func (m *MaterialService) UpdateMaterial(ctx context.Context, materialID uuid.UUID, req *model.UpdateMaterialRequest) (*model.Material, error) {
	args := m.Called(ctx, materialID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Material), args.Error(1)
}

func (m *MaterialService) DeleteMaterial(ctx context.Context, materialID uuid.UUID) error {
	args := m.Called(ctx, materialID)
	return args.Error(0)
}
