// internal/service/mocks/study_service.go
// テスト用の StudyService モック (testify/mock)
package mocks

import (
	"context"
	"time"

	"go_5_tally_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type StudyService struct {
	mock.Mock
}

func (m *StudyService) RecordProgress(ctx context.Context, materialID uuid.UUID, amount int, at time.Time) (*model.RecordProgressResponse, error) {
	args := m.Called(ctx, materialID, amount, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RecordProgressResponse), args.Error(1)
}

func (m *StudyService) AdjustDayAmount(ctx context.Context, materialID uuid.UUID, day time.Time, delta int) (*model.AdjustDayAmountResponse, error) {
	args := m.Called(ctx, materialID, day, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdjustDayAmountResponse), args.Error(1)
}

func (m *StudyService) TodayAmount(ctx context.Context, materialID uuid.UUID, today time.Time) (int, error) {
	args := m.Called(ctx, materialID, today)
	return args.Int(0), args.Error(1)
}

func (m *StudyService) Dashboard(ctx context.Context, qualificationID uuid.UUID, today time.Time) (*model.DashboardResponse, error) {
	args := m.Called(ctx, qualificationID, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardResponse), args.Error(1)
}

func (m *StudyService) Heatmap(ctx context.Context, qualificationID uuid.UUID, months int, today time.Time) (*model.HeatmapResponse, error) {
	args := m.Called(ctx, qualificationID, months, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HeatmapResponse), args.Error(1)
}
