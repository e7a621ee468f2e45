// internal/service/mocks/qualification_service.go
// テスト用の QualificationService モック (testify/mock)
package mocks

import (
	"context"

	"go_5_tally_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type QualificationService struct {
	mock.Mock
}

func (m *QualificationService) CreateQualification(ctx context.Context, req *model.CreateQualificationRequest) (*model.Qualification, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Qualification), args.Error(1)
}

func (m *QualificationService) GetQualification(ctx context.Context, qualificationID uuid.UUID) (*model.Qualification, error) {
	args := m.Called(ctx, qualificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Qualification), args.Error(1)
}

func (m *QualificationService) ListQualifications(ctx context.Context) ([]*model.Qualification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Qualification), args.Error(1)
}

func (m *QualificationService) UpdateQualification(ctx context.Context, qualificationID uuid.UUID, req *model.UpdateQualificationRequest) (*model.Qualification, error) {
	args := m.Called(ctx, qualificationID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Qualification), args.Error(1)
}

func (m *QualificationService) DeleteQualification(ctx context.Context, qualificationID uuid.UUID) error {
	args := m.Called(ctx, qualificationID)
	return args.Error(0)
}

func (m *QualificationService) SelectQualification(ctx context.Context, qualificationID uuid.UUID) error {
	args := m.Called(ctx, qualificationID)
	return args.Error(0)
}

func (m *QualificationService) GetSelectedQualification(ctx context.Context) (*model.Qualification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Qualification), args.Error(1)
}
