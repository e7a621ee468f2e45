// internal/service/study_service.go
package service

import (
	"context"
	"errors"
	"time"

	"go_5_tally_keep/internal/config"
	"go_5_tally_keep/internal/dateutil"
	"go_5_tally_keep/internal/engine"
	"go_5_tally_keep/internal/middleware"
	"go_5_tally_keep/internal/model"
	"go_5_tally_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudyService は進捗の記録・修正と、計算エンジンを使った集計の入口です
type StudyService interface {
	RecordProgress(ctx context.Context, materialID uuid.UUID, amount int, at time.Time) (*model.RecordProgressResponse, error)
	AdjustDayAmount(ctx context.Context, materialID uuid.UUID, day time.Time, delta int) (*model.AdjustDayAmountResponse, error)
	TodayAmount(ctx context.Context, materialID uuid.UUID, today time.Time) (int, error)
	Dashboard(ctx context.Context, qualificationID uuid.UUID, today time.Time) (*model.DashboardResponse, error)
	Heatmap(ctx context.Context, qualificationID uuid.UUID, months int, today time.Time) (*model.HeatmapResponse, error)
}

type studyService struct {
	db           *gorm.DB
	qualRepo     repository.QualificationRepository
	materialRepo repository.MaterialRepository
	logRepo      repository.StudyLogRepository
	cfg          *config.Config
}

func NewStudyService(db *gorm.DB, qualRepo repository.QualificationRepository, materialRepo repository.MaterialRepository, logRepo repository.StudyLogRepository, cfg *config.Config) StudyService {
	return &studyService{
		db:           db,
		qualRepo:     qualRepo,
		materialRepo: materialRepo,
		logRepo:      logRepo,
		cfg:          cfg,
	}
}

// RecordProgress は学習量を記録します。
// 教材の合計を超える分は記録時にクランプし、実際に適用した量を返します。
// 記録の追加と進捗の加算は1トランザクションで行い、片方だけが残ることはありません。
func (s *studyService) RecordProgress(ctx context.Context, materialID uuid.UUID, amount int, at time.Time) (*model.RecordProgressResponse, error) {
	logger := middleware.GetLogger(ctx).With("material_id", materialID)

	if amount <= 0 {
		return nil, model.NewAppError("INVALID_INPUT", "記録する量は1以上で指定してください。", "amount", model.ErrInvalidInput)
	}
	day := dateutil.StartOfDay(at)

	var resp *model.RecordProgressResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		material, err := s.materialRepo.FindByID(ctx, tx, materialID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "教材が見つかりませんでした。", "", err)
			}
			logger.Error("Error finding material in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "教材の取得に失敗しました。", "", err)
		}

		applied := amount
		if remaining := material.RemainingAmount(); applied > remaining {
			applied = remaining
		}

		newProgress := material.CurrentProgress + applied
		if applied > 0 {
			log := &model.StudyLog{
				LogID:      uuid.New(),
				MaterialID: materialID,
				Date:       day,
				Amount:     applied,
			}
			if err := s.logRepo.Create(ctx, tx, log); err != nil {
				logger.Error("Error creating study log", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "学習記録の保存に失敗しました。", "", err)
			}
			if err := s.materialRepo.Update(ctx, tx, materialID, map[string]interface{}{
				"current_progress": newProgress,
			}); err != nil {
				logger.Error("Error updating material progress", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の更新に失敗しました。", "", err)
			}
		}

		resp = &model.RecordProgressResponse{
			AppliedAmount:   applied,
			CurrentProgress: newProgress,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Progress recorded", "applied", resp.AppliedAmount, "day", dateutil.DayKey(day))
	return resp, nil
}

// AdjustDayAmount は指定日の記録量を手修正します。
// その日の合計が0以下になる場合は記録自体を削除し、進捗は実際に変動した差分だけ増減します
// (0未満・合計超過にはなりません)。
func (s *studyService) AdjustDayAmount(ctx context.Context, materialID uuid.UUID, day time.Time, delta int) (*model.AdjustDayAmountResponse, error) {
	logger := middleware.GetLogger(ctx).With("material_id", materialID)
	day = dateutil.StartOfDay(day)

	var resp *model.AdjustDayAmountResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		material, err := s.materialRepo.FindByID(ctx, tx, materialID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "教材が見つかりませんでした。", "", err)
			}
			logger.Error("Error finding material in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "教材の取得に失敗しました。", "", err)
		}

		logs, err := s.logRepo.FindByMaterialAndDay(ctx, tx, materialID, day)
		if err != nil {
			logger.Error("Error finding study logs for day", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習記録の取得に失敗しました。", "", err)
		}

		current := 0
		for _, log := range logs {
			current += log.Amount
		}

		newAmount := current + delta
		if newAmount < 0 {
			newAmount = 0
		}
		// 進捗の不変条件 0 <= current_progress <= total_amount を守るように適用差分を丸める
		appliedDelta := newAmount - current
		newProgress := material.CurrentProgress + appliedDelta
		if newProgress < 0 {
			appliedDelta = -material.CurrentProgress
			newProgress = 0
			newAmount = current + appliedDelta
		}
		if newProgress > material.TotalAmount {
			appliedDelta = material.TotalAmount - material.CurrentProgress
			newProgress = material.TotalAmount
			newAmount = current + appliedDelta
		}

		if newAmount <= 0 {
			// その日の記録を丸ごと削除
			ids := make([]uuid.UUID, 0, len(logs))
			for _, log := range logs {
				ids = append(ids, log.LogID)
			}
			if err := s.logRepo.DeleteByIDs(ctx, tx, ids); err != nil {
				logger.Error("Error deleting study logs for day", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "学習記録の削除に失敗しました。", "", err)
			}
		} else if len(logs) == 0 {
			log := &model.StudyLog{
				LogID:      uuid.New(),
				MaterialID: materialID,
				Date:       day,
				Amount:     newAmount,
			}
			if err := s.logRepo.Create(ctx, tx, log); err != nil {
				logger.Error("Error creating study log for adjustment", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "学習記録の保存に失敗しました。", "", err)
			}
		} else {
			// 複数レコードは先頭に集約して残りを消す
			head := logs[0]
			head.Amount = newAmount
			if err := s.logRepo.Update(ctx, tx, &head); err != nil {
				logger.Error("Error updating study log for adjustment", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "学習記録の更新に失敗しました。", "", err)
			}
			if len(logs) > 1 {
				ids := make([]uuid.UUID, 0, len(logs)-1)
				for _, log := range logs[1:] {
					ids = append(ids, log.LogID)
				}
				if err := s.logRepo.DeleteByIDs(ctx, tx, ids); err != nil {
					logger.Error("Error consolidating study logs", "error", err)
					return model.NewAppError("INTERNAL_SERVER_ERROR", "学習記録の整理に失敗しました。", "", err)
				}
			}
		}

		if appliedDelta != 0 {
			if err := s.materialRepo.Update(ctx, tx, materialID, map[string]interface{}{
				"current_progress": newProgress,
			}); err != nil {
				logger.Error("Error updating material progress", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の更新に失敗しました。", "", err)
			}
		}

		resp = &model.AdjustDayAmountResponse{
			DayAmount:       newAmount,
			CurrentProgress: newProgress,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Day amount adjusted", "day", dateutil.DayKey(day), "day_amount", resp.DayAmount)
	return resp, nil
}

// TodayAmount は指定教材の今日の記録済み量を返します
func (s *studyService) TodayAmount(ctx context.Context, materialID uuid.UUID, today time.Time) (int, error) {
	logger := middleware.GetLogger(ctx).With("material_id", materialID)

	if _, err := s.materialRepo.FindByID(ctx, s.db, materialID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return 0, model.NewAppError("NOT_FOUND", "教材が見つかりませんでした。", "", err)
		}
		logger.Error("Error finding material", "error", err)
		return 0, model.NewAppError("INTERNAL_SERVER_ERROR", "教材の取得に失敗しました。", "", err)
	}

	logs, err := s.logRepo.FindByMaterialAndDay(ctx, s.db, materialID, dateutil.StartOfDay(today))
	if err != nil {
		logger.Error("Error finding today's study logs", "error", err)
		return 0, model.NewAppError("INTERNAL_SERVER_ERROR", "学習記録の取得に失敗しました。", "", err)
	}

	total := 0
	for _, log := range logs {
		total += log.Amount
	}
	return total, nil
}

// Dashboard は資格配下の教材・記録を読み込み、ストリーク・週間達成・各教材のノルマを計算します。
// 計算は全てエンジンの純粋関数で行うため、同じスナップショットに対する結果は常に同じです。
func (s *studyService) Dashboard(ctx context.Context, qualificationID uuid.UUID, today time.Time) (*model.DashboardResponse, error) {
	logger := middleware.GetLogger(ctx).With("qualification_id", qualificationID)

	qual, materials, logs, err := s.loadSnapshot(ctx, qualificationID)
	if err != nil {
		return nil, err
	}

	materialIDs := make([]uuid.UUID, 0, len(materials))
	for _, m := range materials {
		materialIDs = append(materialIDs, m.MaterialID)
	}

	ledger := engine.NewLedger(logs)
	studyDays := ledger.DistinctStudyDays(materialIDs)
	goalCfg := engine.GoalConfigFromQualification(qual)

	var daysUntilExam *int
	if qual.ExamDate != nil {
		d := dateutil.DaysBetween(today, dateutil.StartOfDay(*qual.ExamDate))
		daysUntilExam = &d
	}

	statuses := make([]model.MaterialStatus, 0, len(materials))
	for _, m := range materials {
		quota := engine.DailyQuota(engine.QuotaInput{
			Remaining: m.RemainingAmount(),
			Plan:      engine.PlanFromMaterial(m),
			Goal:      goalCfg,
			Today:     today,
		})
		statuses = append(statuses, model.MaterialStatus{
			Material:        m,
			DailyQuota:      quota,
			TodayAmount:     ledger.AmountOnDay(m.MaterialID, today),
			RemainingAmount: m.RemainingAmount(),
			ProgressRate:    m.ProgressRate(),
		})
	}

	resp := &model.DashboardResponse{
		Qualification:    qual,
		CurrentStreak:    engine.CurrentStreak(studyDays, today),
		WeeklyStudyDays:  engine.WeeklyStudyDays(studyDays, today),
		WeeklyTargetDays: qual.WeeklyTargetDays,
		DaysUntilExam:    daysUntilExam,
		Materials:        statuses,
	}
	logger.Debug("Dashboard computed", "materials", len(statuses), "streak", resp.CurrentStreak)
	return resp, nil
}

// Heatmap は直近 months ヶ月の日別学習量を返します (months <= 0 は設定値)
func (s *studyService) Heatmap(ctx context.Context, qualificationID uuid.UUID, months int, today time.Time) (*model.HeatmapResponse, error) {
	if months <= 0 {
		months = s.cfg.App.HeatmapMonths
	}

	_, _, logs, err := s.loadSnapshot(ctx, qualificationID)
	if err != nil {
		return nil, err
	}

	return &model.HeatmapResponse{
		Months: months,
		Days:   engine.Heatmap(logs, months, today),
	}, nil
}

// loadSnapshot は資格・教材・学習記録の読み取り専用スナップショットを取得します
func (s *studyService) loadSnapshot(ctx context.Context, qualificationID uuid.UUID) (*model.Qualification, []*model.Material, []model.StudyLog, error) {
	logger := middleware.GetLogger(ctx).With("qualification_id", qualificationID)

	qual, err := s.qualRepo.FindByID(ctx, s.db, qualificationID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil, nil, model.NewAppError("NOT_FOUND", "資格が見つかりませんでした。", "", err)
		}
		logger.Error("Error finding qualification", "error", err)
		return nil, nil, nil, model.NewAppError("INTERNAL_SERVER_ERROR", "資格の取得に失敗しました。", "", err)
	}

	materials, err := s.materialRepo.FindByQualification(ctx, s.db, qualificationID)
	if err != nil {
		logger.Error("Error finding materials", "error", err)
		return nil, nil, nil, model.NewAppError("INTERNAL_SERVER_ERROR", "教材一覧の取得に失敗しました。", "", err)
	}

	materialIDs := make([]uuid.UUID, 0, len(materials))
	for _, m := range materials {
		materialIDs = append(materialIDs, m.MaterialID)
	}
	logs, err := s.logRepo.FindByMaterials(ctx, s.db, materialIDs)
	if err != nil {
		logger.Error("Error finding study logs", "error", err)
		return nil, nil, nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習記録の取得に失敗しました。", "", err)
	}

	return qual, materials, logs, nil
}
