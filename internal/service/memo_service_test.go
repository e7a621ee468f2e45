// internal/service/memo_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"go_5_tally_keep/internal/model"
	"go_5_tally_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMemoService_CreateMemo(t *testing.T) {
	qualificationID := uuid.New()

	t.Run("正常系", func(t *testing.T) {
		qualRepo := new(mocks.QualificationRepository)
		memoRepo := new(mocks.MemoRepository)
		svc := NewMemoService(newTestDB(t), qualRepo, memoRepo)

		qualRepo.On("FindByID", mock.Anything, mock.Anything, qualificationID).Return(&model.Qualification{QualificationID: qualificationID}, nil).Once()
		memoRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(m *model.Memo) bool {
			return m.QualificationID == qualificationID && m.Title == "重要ポイント"
		})).Return(nil).Once()

		created, err := svc.CreateMemo(context.Background(), qualificationID, &model.CreateMemoRequest{
			Title: "重要ポイント",
			Body:  "第3章を重点的に復習する",
		})

		require.NoError(t, err)
		assert.Equal(t, "重要ポイント", created.Title)
		memoRepo.AssertExpectations(t)
	})

	t.Run("異常系: 資格が存在しない", func(t *testing.T) {
		qualRepo := new(mocks.QualificationRepository)
		svc := NewMemoService(newTestDB(t), qualRepo, new(mocks.MemoRepository))

		qualRepo.On("FindByID", mock.Anything, mock.Anything, qualificationID).Return(nil, model.ErrNotFound).Once()

		_, err := svc.CreateMemo(context.Background(), qualificationID, &model.CreateMemoRequest{Title: "x"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrNotFound))
	})
}

func TestMemoService_DeleteMemo(t *testing.T) {
	memoID := uuid.New()

	t.Run("正常系: 添付画像も一緒に消える", func(t *testing.T) {
		memoRepo := new(mocks.MemoRepository)
		svc := NewMemoService(newTestDB(t), new(mocks.QualificationRepository), memoRepo)

		memoRepo.On("FindByID", mock.Anything, mock.Anything, memoID).Return(&model.Memo{MemoID: memoID}, nil).Once()
		memoRepo.On("DeleteImagesByMemos", mock.Anything, mock.Anything, []uuid.UUID{memoID}).Return(nil).Once()
		memoRepo.On("Delete", mock.Anything, mock.Anything, memoID).Return(nil).Once()

		require.NoError(t, svc.DeleteMemo(context.Background(), memoID))
		memoRepo.AssertExpectations(t)
	})

	t.Run("異常系: メモが存在しない", func(t *testing.T) {
		memoRepo := new(mocks.MemoRepository)
		svc := NewMemoService(newTestDB(t), new(mocks.QualificationRepository), memoRepo)

		memoRepo.On("FindByID", mock.Anything, mock.Anything, memoID).Return(nil, model.ErrNotFound).Once()

		err := svc.DeleteMemo(context.Background(), memoID)

		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrNotFound))
	})
}

func TestMemoService_AddImage(t *testing.T) {
	memoID := uuid.New()

	t.Run("正常系", func(t *testing.T) {
		memoRepo := new(mocks.MemoRepository)
		svc := NewMemoService(newTestDB(t), new(mocks.QualificationRepository), memoRepo)

		memoRepo.On("FindByID", mock.Anything, mock.Anything, memoID).Return(&model.Memo{MemoID: memoID}, nil).Once()
		memoRepo.On("CreateImage", mock.Anything, mock.Anything, mock.MatchedBy(func(img *model.MemoImage) bool {
			return img.MemoID == memoID && len(img.Data) == 2
		})).Return(nil).Once()

		image, err := svc.AddImage(context.Background(), memoID, []byte{0x89, 0x50})

		require.NoError(t, err)
		assert.Equal(t, memoID, image.MemoID)
		memoRepo.AssertExpectations(t)
	})

	t.Run("異常系: 空データは受け付けない", func(t *testing.T) {
		svc := NewMemoService(newTestDB(t), new(mocks.QualificationRepository), new(mocks.MemoRepository))

		_, err := svc.AddImage(context.Background(), memoID, nil)

		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInvalidInput))
	})
}
