// internal/service/material_service_test.go
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

func TestMaterialService_CreateMaterial(t *testing.T) {
	qualificationID := uuid.New()

	t.Run("正常系: 既定値と表示順が補完される", func(t *testing.T) {
		qualRepo := new(mocks.QualificationRepository)
		materialRepo := new(mocks.MaterialRepository)
		svc := NewMaterialService(newTestDB(t), qualRepo, materialRepo, new(mocks.StudyLogRepository))

		qualRepo.On("FindByID", mock.Anything, mock.Anything, qualificationID).Return(&model.Qualification{QualificationID: qualificationID}, nil).Once()
		materialRepo.On("FindByQualification", mock.Anything, mock.Anything, qualificationID).Return([]*model.Material{{}, {}}, nil).Once()
		materialRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(m *model.Material) bool {
			return m.Name == "合格教本" &&
				m.Unit == "ページ" &&
				m.UnitType == model.UnitTypeCount &&
				m.QuotaMode == model.QuotaModeManual &&
				m.CurrentProgress == 0 &&
				m.Order == 2 // 既存2件の後ろに並ぶ
		})).Return(nil).Once()

		created, err := svc.CreateMaterial(context.Background(), qualificationID, &model.CreateMaterialRequest{
			Name:        "合格教本",
			TotalAmount: 320,
		})

		require.NoError(t, err)
		assert.Equal(t, 320, created.TotalAmount)
		materialRepo.AssertExpectations(t)
	})

	t.Run("正常系: 分単位・自動モードの指定を引き継ぐ", func(t *testing.T) {
		qualRepo := new(mocks.QualificationRepository)
		materialRepo := new(mocks.MaterialRepository)
		svc := NewMaterialService(newTestDB(t), qualRepo, materialRepo, new(mocks.StudyLogRepository))

		qualRepo.On("FindByID", mock.Anything, mock.Anything, qualificationID).Return(&model.Qualification{QualificationID: qualificationID}, nil).Once()
		materialRepo.On("FindByQualification", mock.Anything, mock.Anything, qualificationID).Return([]*model.Material{}, nil).Once()
		materialRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(m *model.Material) bool {
			return m.UnitType == model.UnitTypeMinutes && m.QuotaMode == model.QuotaModeAuto && m.UseWeeklyTarget
		})).Return(nil).Once()

		unitType := model.UnitTypeMinutes
		quotaMode := model.QuotaModeAuto
		useWeekly := true
		_, err := svc.CreateMaterial(context.Background(), qualificationID, &model.CreateMaterialRequest{
			Name:            "講義動画",
			Unit:            "分",
			UnitType:        &unitType,
			TotalAmount:     600,
			QuotaMode:       &quotaMode,
			UseWeeklyTarget: &useWeekly,
		})

		require.NoError(t, err)
		materialRepo.AssertExpectations(t)
	})

	t.Run("異常系: 資格が存在しない", func(t *testing.T) {
		qualRepo := new(mocks.QualificationRepository)
		svc := NewMaterialService(newTestDB(t), qualRepo, new(mocks.MaterialRepository), new(mocks.StudyLogRepository))

		qualRepo.On("FindByID", mock.Anything, mock.Anything, qualificationID).Return(nil, model.ErrNotFound).Once()

		_, err := svc.CreateMaterial(context.Background(), qualificationID, &model.CreateMaterialRequest{Name: "x", TotalAmount: 1})

		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrNotFound))
	})
}

func TestMaterialService_UpdateMaterial(t *testing.T) {
	materialID := uuid.New()

	t.Run("正常系: 合計を進捗より小さくすると進捗も切り詰められる", func(t *testing.T) {
		materialRepo := new(mocks.MaterialRepository)
		svc := NewMaterialService(newTestDB(t), new(mocks.QualificationRepository), materialRepo, new(mocks.StudyLogRepository))

		current := &model.Material{MaterialID: materialID, TotalAmount: 100, CurrentProgress: 80}
		materialRepo.On("FindByID", mock.Anything, mock.Anything, materialID).Return(current, nil).Twice()
		materialRepo.On("Update", mock.Anything, mock.Anything, materialID, map[string]interface{}{
			"total_amount":     50,
			"current_progress": 50,
		}).Return(nil).Once()

		total := 50
		_, err := svc.UpdateMaterial(context.Background(), materialID, &model.UpdateMaterialRequest{TotalAmount: &total})

		require.NoError(t, err)
		materialRepo.AssertExpectations(t)
	})

	t.Run("正常系: 締切のクリアは nil での更新になる", func(t *testing.T) {
		materialRepo := new(mocks.MaterialRepository)
		svc := NewMaterialService(newTestDB(t), new(mocks.QualificationRepository), materialRepo, new(mocks.StudyLogRepository))

		current := &model.Material{MaterialID: materialID, TotalAmount: 100}
		materialRepo.On("FindByID", mock.Anything, mock.Anything, materialID).Return(current, nil).Twice()
		materialRepo.On("Update", mock.Anything, mock.Anything, materialID, mock.MatchedBy(func(updates map[string]interface{}) bool {
			v, ok := updates["deadline"]
			return ok && v == nil
		})).Return(nil).Once()

		_, err := svc.UpdateMaterial(context.Background(), materialID, &model.UpdateMaterialRequest{ClearDeadline: true})

		require.NoError(t, err)
		materialRepo.AssertExpectations(t)
	})

	t.Run("正常系: 変更がなければ更新は呼ばれない", func(t *testing.T) {
		materialRepo := new(mocks.MaterialRepository)
		svc := NewMaterialService(newTestDB(t), new(mocks.QualificationRepository), materialRepo, new(mocks.StudyLogRepository))

		current := &model.Material{MaterialID: materialID, TotalAmount: 100}
		materialRepo.On("FindByID", mock.Anything, mock.Anything, materialID).Return(current, nil).Twice()

		_, err := svc.UpdateMaterial(context.Background(), materialID, &model.UpdateMaterialRequest{})

		require.NoError(t, err)
		materialRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMaterialService_DeleteMaterial(t *testing.T) {
	materialID := uuid.New()

	t.Run("正常系: 学習記録も同時に消える", func(t *testing.T) {
		materialRepo := new(mocks.MaterialRepository)
		logRepo := new(mocks.StudyLogRepository)
		svc := NewMaterialService(newTestDB(t), new(mocks.QualificationRepository), materialRepo, logRepo)

		materialRepo.On("FindByID", mock.Anything, mock.Anything, materialID).Return(&model.Material{MaterialID: materialID}, nil).Once()
		logRepo.On("DeleteByMaterial", mock.Anything, mock.Anything, materialID).Return(nil).Once()
		materialRepo.On("Delete", mock.Anything, mock.Anything, materialID).Return(nil).Once()

		require.NoError(t, svc.DeleteMaterial(context.Background(), materialID))
		logRepo.AssertExpectations(t)
		materialRepo.AssertExpectations(t)
	})

	t.Run("異常系: 教材が存在しない", func(t *testing.T) {
		materialRepo := new(mocks.MaterialRepository)
		svc := NewMaterialService(newTestDB(t), new(mocks.QualificationRepository), materialRepo, new(mocks.StudyLogRepository))

		materialRepo.On("FindByID", mock.Anything, mock.Anything, materialID).Return(nil, model.ErrNotFound).Once()

		err := svc.DeleteMaterial(context.Background(), materialID)

		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrNotFound))
	})
}
