// internal/service/material_service.go
package service

import (
	"context"
	"errors"

	"go_5_tally_keep/internal/middleware"
	"go_5_tally_keep/internal/model"
	"go_5_tally_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaterialService interface {
	CreateMaterial(ctx context.Context, qualificationID uuid.UUID, req *model.CreateMaterialRequest) (*model.Material, error)
	GetMaterial(ctx context.Context, materialID uuid.UUID) (*model.Material, error)
	ListMaterials(ctx context.Context, qualificationID uuid.UUID) ([]*model.Material, error)
	UpdateMaterial(ctx context.Context, materialID uuid.UUID, req *model.UpdateMaterialRequest) (*model.Material, error)
	DeleteMaterial(ctx context.Context, materialID uuid.UUID) error
}

type materialService struct {
	db           *gorm.DB
	qualRepo     repository.QualificationRepository
	materialRepo repository.MaterialRepository
	logRepo      repository.StudyLogRepository
}

func NewMaterialService(db *gorm.DB, qualRepo repository.QualificationRepository, materialRepo repository.MaterialRepository, logRepo repository.StudyLogRepository) MaterialService {
	return &materialService{
		db:           db,
		qualRepo:     qualRepo,
		materialRepo: materialRepo,
		logRepo:      logRepo,
	}
}

func (s *materialService) CreateMaterial(ctx context.Context, qualificationID uuid.UUID, req *model.CreateMaterialRequest) (*model.Material, error) {
	logger := middleware.GetLogger(ctx).With("qualification_id", qualificationID)

	var created *model.Material
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.qualRepo.FindByID(ctx, tx, qualificationID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "資格が見つかりませんでした。", "", err)
			}
			logger.Error("Error finding qualification in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "資格の取得に失敗しました。", "", err)
		}

		existing, err := s.materialRepo.FindByQualification(ctx, tx, qualificationID)
		if err != nil {
			logger.Error("Error listing materials for ordering", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "教材一覧の取得に失敗しました。", "", err)
		}

		material := &model.Material{
			MaterialID:      uuid.New(),
			QualificationID: qualificationID,
			Name:            req.Name,
			Unit:            "ページ",
			UnitType:        model.UnitTypeCount,
			TotalAmount:     req.TotalAmount,
			CurrentProgress: 0,
			QuotaMode:       model.QuotaModeManual,
			Order:           len(existing),
		}
		if req.Unit != "" {
			material.Unit = req.Unit
		}
		if req.UnitType != nil {
			material.UnitType = *req.UnitType
		}
		if req.QuotaMode != nil {
			material.QuotaMode = *req.QuotaMode
		}
		if req.DailyQuota != nil {
			material.DailyQuota = *req.DailyQuota
		}
		material.Deadline = req.Deadline
		if req.UseWeeklyTarget != nil {
			material.UseWeeklyTarget = *req.UseWeeklyTarget
		}

		if err := s.materialRepo.Create(ctx, tx, material); err != nil {
			logger.Error("Error creating material", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "教材の作成に失敗しました。", "", err)
		}
		created = material
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Material created", "material_id", created.MaterialID)
	return created, nil
}

func (s *materialService) GetMaterial(ctx context.Context, materialID uuid.UUID) (*model.Material, error) {
	material, err := s.materialRepo.FindByID(ctx, s.db, materialID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "教材が見つかりませんでした。", "", err)
		}
		middleware.GetLogger(ctx).Error("Error finding material", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "教材の取得に失敗しました。", "", err)
	}
	return material, nil
}

func (s *materialService) ListMaterials(ctx context.Context, qualificationID uuid.UUID) ([]*model.Material, error) {
	materials, err := s.materialRepo.FindByQualification(ctx, s.db, qualificationID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing materials", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "教材一覧の取得に失敗しました。", "", err)
	}
	return materials, nil
}

// UpdateMaterial は教材の設定を更新します。
// TotalAmount を進捗より小さくした場合は進捗側を切り詰めて不変条件を維持します。
func (s *materialService) UpdateMaterial(ctx context.Context, materialID uuid.UUID, req *model.UpdateMaterialRequest) (*model.Material, error) {
	logger := middleware.GetLogger(ctx).With("material_id", materialID)

	var updated *model.Material
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		material, err := s.materialRepo.FindByID(ctx, tx, materialID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "教材が見つかりませんでした。", "", err)
			}
			logger.Error("Error finding material in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "教材の取得に失敗しました。", "", err)
		}

		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.TotalAmount != nil {
			updates["total_amount"] = *req.TotalAmount
			if material.CurrentProgress > *req.TotalAmount {
				updates["current_progress"] = *req.TotalAmount
			}
		}
		if req.Unit != nil {
			updates["unit"] = *req.Unit
		}
		if req.UnitType != nil {
			updates["unit_type"] = *req.UnitType
		}
		if req.QuotaMode != nil {
			updates["quota_mode"] = *req.QuotaMode
		}
		if req.DailyQuota != nil {
			updates["daily_quota"] = *req.DailyQuota
		}
		if req.ClearDeadline {
			updates["deadline"] = nil
		} else if req.Deadline != nil {
			updates["deadline"] = *req.Deadline
		}
		if req.UseWeeklyTarget != nil {
			updates["use_weekly_target"] = *req.UseWeeklyTarget
		}
		if req.Order != nil {
			updates["display_order"] = *req.Order
		}

		if len(updates) > 0 {
			if err := s.materialRepo.Update(ctx, tx, materialID, updates); err != nil {
				logger.Error("Error updating material", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "教材の更新に失敗しました。", "", err)
			}
		}

		updated, err = s.materialRepo.FindByID(ctx, tx, materialID)
		if err != nil {
			logger.Error("Error fetching updated material", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "更新後の教材の取得に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteMaterial は教材と配下の学習記録を同一トランザクションで削除します
func (s *materialService) DeleteMaterial(ctx context.Context, materialID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("material_id", materialID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.materialRepo.FindByID(ctx, tx, materialID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "教材が見つかりませんでした。", "", err)
			}
			logger.Error("Error finding material for deletion", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "教材の取得に失敗しました。", "", err)
		}

		if err := s.logRepo.DeleteByMaterial(ctx, tx, materialID); err != nil {
			logger.Error("Error deleting study logs of material", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習記録の削除に失敗しました。", "", err)
		}
		if err := s.materialRepo.Delete(ctx, tx, materialID); err != nil {
			logger.Error("Error deleting material", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "教材の削除に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Material deleted with its study logs")
	return nil
}
