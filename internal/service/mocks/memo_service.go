// テスト用の MemoService モック (testify/mock)
package mocks

import (
	"context"

	"go_5_tally_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MemoService struct {
	mock.Mock
}

func (m *MemoService) CreateMemo(ctx context.Context, qualificationID uuid.UUID, req *model.CreateMemoRequest) (*model.Memo, error) {
	args := m.Called(ctx, qualificationID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Memo), args.Error(1)
}

func (m *MemoService) GetMemo(ctx context.Context, memoID uuid.UUID) (*model.Memo, error) {
	args := m.Called(ctx, memoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Memo), args.Error(1)
}

func (m *MemoService) ListMemos(ctx context.Context, qualificationID uuid.UUID) ([]*model.Memo, error) {
	args := m.Called(ctx, qualificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Memo), args.Error(1)
}

func (m *MemoService) UpdateMemo(ctx context.Context, memoID uuid.UUID, req *model.UpdateMemoRequest) (*model.Memo, error) {
	args := m.Called(ctx, memoID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Memo), args.Error(1)
}

func (m *MemoService) DeleteMemo(ctx context.Context, memoID uuid.UUID) error {
	args := m.Called(ctx, memoID)
	return args.Error(0)
}

func (m *MemoService) AddImage(ctx context.Context, memoID uuid.UUID, data []byte) (*model.MemoImage, error) {
	args := m.Called(ctx, memoID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MemoImage), args.Error(1)
}

func (m *MemoService) ListImages(ctx context.Context, memoID uuid.UUID) ([]*model.MemoImage, error) {
	args := m.Called(ctx, memoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.MemoImage), args.Error(1)
}

func (m *MemoService) DeleteImage(ctx context.Context, imageID uuid.UUID) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}
