// internal/service/qualification_service.go
package service

import (
	"context"
	"errors"

	"go_5_tally_keep/internal/config"
	"go_5_tally_keep/internal/middleware"
	"go_5_tally_keep/internal/model"
	"go_5_tally_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QualificationService interface {
	CreateQualification(ctx context.Context, req *model.CreateQualificationRequest) (*model.Qualification, error)
	GetQualification(ctx context.Context, qualificationID uuid.UUID) (*model.Qualification, error)
	ListQualifications(ctx context.Context) ([]*model.Qualification, error)
	UpdateQualification(ctx context.Context, qualificationID uuid.UUID, req *model.UpdateQualificationRequest) (*model.Qualification, error)
	DeleteQualification(ctx context.Context, qualificationID uuid.UUID) error
	SelectQualification(ctx context.Context, qualificationID uuid.UUID) error
	GetSelectedQualification(ctx context.Context) (*model.Qualification, error)
}

type qualificationService struct {
	db           *gorm.DB
	qualRepo     repository.QualificationRepository
	materialRepo repository.MaterialRepository
	logRepo      repository.StudyLogRepository
	memoRepo     repository.MemoRepository
	cfg          *config.Config
}

func NewQualificationService(db *gorm.DB, qualRepo repository.QualificationRepository, materialRepo repository.MaterialRepository, logRepo repository.StudyLogRepository, memoRepo repository.MemoRepository, cfg *config.Config) QualificationService {
	return &qualificationService{
		db:           db,
		qualRepo:     qualRepo,
		materialRepo: materialRepo,
		logRepo:      logRepo,
		memoRepo:     memoRepo,
		cfg:          cfg,
	}
}

// CreateQualification は資格を作成します。最初の1件は自動的に選択状態になります。
func (s *qualificationService) CreateQualification(ctx context.Context, req *model.CreateQualificationRequest) (*model.Qualification, error) {
	logger := middleware.GetLogger(ctx)

	var created *model.Qualification
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.qualRepo.FindAll(ctx, tx)
		if err != nil {
			logger.Error("Error listing qualifications", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "資格一覧の取得に失敗しました。", "", err)
		}

		q := &model.Qualification{
			QualificationID:  uuid.New(),
			Name:             req.Name,
			ExamDate:         req.ExamDate,
			WeeklyTargetDays: s.cfg.App.DefaultWeeklyTargetDays,
			QuotaMode:        model.QuotaModeManual,
			IsSelected:       len(existing) == 0,
		}
		if req.WeeklyTargetDays != nil {
			q.WeeklyTargetDays = *req.WeeklyTargetDays
		}
		if req.QuotaMode != nil {
			q.QuotaMode = *req.QuotaMode
		}

		if err := s.qualRepo.Create(ctx, tx, q); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("CONFLICT", "同じ名前の資格が既に存在します。", "name", err)
			}
			logger.Error("Error creating qualification", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "資格の作成に失敗しました。", "", err)
		}
		created = q
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Qualification created", "qualification_id", created.QualificationID, "selected", created.IsSelected)
	return created, nil
}

func (s *qualificationService) GetQualification(ctx context.Context, qualificationID uuid.UUID) (*model.Qualification, error) {
	q, err := s.qualRepo.FindByID(ctx, s.db, qualificationID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "資格が見つかりませんでした。", "", err)
		}
		middleware.GetLogger(ctx).Error("Error finding qualification", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "資格の取得に失敗しました。", "", err)
	}
	return q, nil
}

func (s *qualificationService) ListQualifications(ctx context.Context) ([]*model.Qualification, error) {
	qs, err := s.qualRepo.FindAll(ctx, s.db)
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing qualifications", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "資格一覧の取得に失敗しました。", "", err)
	}
	return qs, nil
}

func (s *qualificationService) UpdateQualification(ctx context.Context, qualificationID uuid.UUID, req *model.UpdateQualificationRequest) (*model.Qualification, error) {
	logger := middleware.GetLogger(ctx).With("qualification_id", qualificationID)

	var updated *model.Qualification
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.qualRepo.FindByID(ctx, tx, qualificationID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "資格が見つかりませんでした。", "", err)
			}
			logger.Error("Error finding qualification in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "資格の取得に失敗しました。", "", err)
		}

		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.ClearExamDate {
			updates["exam_date"] = nil
		} else if req.ExamDate != nil {
			updates["exam_date"] = *req.ExamDate
		}
		if req.WeeklyTargetDays != nil {
			updates["weekly_target_days"] = *req.WeeklyTargetDays
		}
		if req.QuotaMode != nil {
			updates["quota_mode"] = *req.QuotaMode
		}

		if len(updates) > 0 {
			if err := s.qualRepo.Update(ctx, tx, qualificationID, updates); err != nil {
				logger.Error("Error updating qualification", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "資格の更新に失敗しました。", "", err)
			}
		}

		var err error
		updated, err = s.qualRepo.FindByID(ctx, tx, qualificationID)
		if err != nil {
			logger.Error("Error fetching updated qualification", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "更新後の資格の取得に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteQualification は資格と配下を全てカスケード削除します:
// 資格 → 教材 → 学習記録、資格 → メモ → 画像。
// 環境側の自動カスケードに頼らず、所有側がこの順で明示的に消します。
// 選択中の資格を消した場合は作成が最も古い残りの資格を選択し直します。
func (s *qualificationService) DeleteQualification(ctx context.Context, qualificationID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("qualification_id", qualificationID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q, err := s.qualRepo.FindByID(ctx, tx, qualificationID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "資格が見つかりませんでした。", "", err)
			}
			logger.Error("Error finding qualification for deletion", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "資格の取得に失敗しました。", "", err)
		}
		wasSelected := q.IsSelected

		// 教材とその学習記録
		materials, err := s.materialRepo.FindByQualification(ctx, tx, qualificationID)
		if err != nil {
			logger.Error("Error listing materials for cascade delete", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "教材一覧の取得に失敗しました。", "", err)
		}
		materialIDs := make([]uuid.UUID, 0, len(materials))
		for _, m := range materials {
			materialIDs = append(materialIDs, m.MaterialID)
		}
		if err := s.logRepo.DeleteByMaterials(ctx, tx, materialIDs); err != nil {
			logger.Error("Error cascading study log deletion", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習記録の削除に失敗しました。", "", err)
		}
		if err := s.materialRepo.DeleteByQualification(ctx, tx, qualificationID); err != nil {
			logger.Error("Error cascading material deletion", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "教材の削除に失敗しました。", "", err)
		}

		// メモとその画像
		memos, err := s.memoRepo.FindByQualification(ctx, tx, qualificationID)
		if err != nil {
			logger.Error("Error listing memos for cascade delete", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "メモ一覧の取得に失敗しました。", "", err)
		}
		memoIDs := make([]uuid.UUID, 0, len(memos))
		for _, memo := range memos {
			memoIDs = append(memoIDs, memo.MemoID)
		}
		if err := s.memoRepo.DeleteImagesByMemos(ctx, tx, memoIDs); err != nil {
			logger.Error("Error cascading memo image deletion", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "メモ画像の削除に失敗しました。", "", err)
		}
		if err := s.memoRepo.DeleteByQualification(ctx, tx, qualificationID); err != nil {
			logger.Error("Error cascading memo deletion", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "メモの削除に失敗しました。", "", err)
		}

		if err := s.qualRepo.Delete(ctx, tx, qualificationID); err != nil {
			logger.Error("Error deleting qualification", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "資格の削除に失敗しました。", "", err)
		}

		// 選択中を消した場合は残りの先頭を選択し直す
		if wasSelected {
			remaining, err := s.qualRepo.FindAll(ctx, tx)
			if err != nil {
				logger.Error("Error listing remaining qualifications", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "資格一覧の取得に失敗しました。", "", err)
			}
			if len(remaining) > 0 {
				if err := s.qualRepo.SetSelected(ctx, tx, remaining[0].QualificationID); err != nil {
					logger.Error("Error reselecting qualification", "error", err)
					return model.NewAppError("INTERNAL_SERVER_ERROR", "資格の選択に失敗しました。", "", err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Qualification deleted with cascade")
	return nil
}

func (s *qualificationService) SelectQualification(ctx context.Context, qualificationID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("qualification_id", qualificationID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.qualRepo.SetSelected(ctx, tx, qualificationID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "資格が見つかりませんでした。", "", err)
			}
			logger.Error("Error selecting qualification", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "資格の選択に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Qualification selected")
	return nil
}

func (s *qualificationService) GetSelectedQualification(ctx context.Context) (*model.Qualification, error) {
	q, err := s.qualRepo.FindSelected(ctx, s.db)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "選択中の資格がありません。", "", err)
		}
		middleware.GetLogger(ctx).Error("Error finding selected qualification", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "選択中の資格の取得に失敗しました。", "", err)
	}
	return q, nil
}
