// internal/repository/mocks/memo_repository.go
// テスト用の MemoRepository モック (testify/mock)
package mocks

import (
	"context"

	"go_5_tally_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MemoRepository struct {
	mock.Mock
}

func (m *MemoRepository) Create(ctx context.Context, tx *gorm.DB, memo *model.Memo) error {
	args := m.Called(ctx, tx, memo)
	return args.Error(0)
}

func (m *MemoRepository) FindByID(ctx context.Context, db *gorm.DB, memoID uuid.UUID) (*model.Memo, error) {
	args := m.Called(ctx, db, memoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Memo), args.Error(1)
}

func (m *MemoRepository) FindByQualification(ctx context.Context, db *gorm.DB, qualificationID uuid.UUID) ([]*model.Memo, error) {
	args := m.Called(ctx, db, qualificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Memo), args.Error(1)
}

func (m *MemoRepository) Update(ctx context.Context, tx *gorm.DB, memoID uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, tx, memoID, updates)
	return args.Error(0)
}

func (m *MemoRepository) Delete(ctx context.Context, tx *gorm.DB, memoID uuid.UUID) error {
	args := m.Called(ctx, tx, memoID)
	return args.Error(0)
}

func (m *MemoRepository) DeleteByQualification(ctx context.Context, tx *gorm.DB, qualificationID uuid.UUID) error {
	args := m.Called(ctx, tx, qualificationID)
	return args.Error(0)
}

func (m *MemoRepository) CreateImage(ctx context.Context, tx *gorm.DB, image *model.MemoImage) error {
	args := m.Called(ctx, tx, image)
	return args.Error(0)
}

func (m *MemoRepository) FindImageByID(ctx context.Context, db *gorm.DB, imageID uuid.UUID) (*model.MemoImage, error) {
	args := m.Called(ctx, db, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MemoImage), args.Error(1)
}

func (m *MemoRepository) FindImagesByMemo(ctx context.Context, db *gorm.DB, memoID uuid.UUID) ([]*model.MemoImage, error) {
	args := m.Called(ctx, db, memoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.MemoImage), args.Error(1)
}

func (m *MemoRepository) DeleteImage(ctx context.Context, tx *gorm.DB, imageID uuid.UUID) error {
	args := m.Called(ctx, tx, imageID)
	return args.Error(0)
}

func (m *MemoRepository) DeleteImagesByMemos(ctx context.Context, tx *gorm.DB, memoIDs []uuid.UUID) error {
	args := m.Called(ctx, tx, memoIDs)
	return args.Error(0)
}
