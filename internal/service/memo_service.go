// internal/service/memo_service.go
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

type MemoService interface {
	CreateMemo(ctx context.Context, qualificationID uuid.UUID, req *model.CreateMemoRequest) (*model.Memo, error)
	GetMemo(ctx context.Context, memoID uuid.UUID) (*model.Memo, error)
	ListMemos(ctx context.Context, qualificationID uuid.UUID) ([]*model.Memo, error)
	UpdateMemo(ctx context.Context, memoID uuid.UUID, req *model.UpdateMemoRequest) (*model.Memo, error)
	DeleteMemo(ctx context.Context, memoID uuid.UUID) error

	AddImage(ctx context.Context, memoID uuid.UUID, data []byte) (*model.MemoImage, error)
	ListImages(ctx context.Context, memoID uuid.UUID) ([]*model.MemoImage, error)
	DeleteImage(ctx context.Context, imageID uuid.UUID) error
}

type memoService struct {
	db       *gorm.DB
	qualRepo repository.QualificationRepository
	memoRepo repository.MemoRepository
}

func NewMemoService(db *gorm.DB, qualRepo repository.QualificationRepository, memoRepo repository.MemoRepository) MemoService {
	return &memoService{
		db:       db,
		qualRepo: qualRepo,
		memoRepo: memoRepo,
	}
}

func (s *memoService) CreateMemo(ctx context.Context, qualificationID uuid.UUID, req *model.CreateMemoRequest) (*model.Memo, error) {
	logger := middleware.GetLogger(ctx).With("qualification_id", qualificationID)

	var created *model.Memo
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.qualRepo.FindByID(ctx, tx, qualificationID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "資格が見つかりませんでした。", "", err)
			}
			logger.Error("Error finding qualification in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "資格の取得に失敗しました。", "", err)
		}

		memo := &model.Memo{
			MemoID:          uuid.New(),
			QualificationID: qualificationID,
			Title:           req.Title,
			Body:            req.Body,
		}
		if err := s.memoRepo.Create(ctx, tx, memo); err != nil {
			logger.Error("Error creating memo", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "メモの作成に失敗しました。", "", err)
		}
		created = memo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *memoService) GetMemo(ctx context.Context, memoID uuid.UUID) (*model.Memo, error) {
	memo, err := s.memoRepo.FindByID(ctx, s.db, memoID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "メモが見つかりませんでした。", "", err)
		}
		middleware.GetLogger(ctx).Error("Error finding memo", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "メモの取得に失敗しました。", "", err)
	}
	return memo, nil
}

func (s *memoService) ListMemos(ctx context.Context, qualificationID uuid.UUID) ([]*model.Memo, error) {
	memos, err := s.memoRepo.FindByQualification(ctx, s.db, qualificationID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing memos", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "メモ一覧の取得に失敗しました。", "", err)
	}
	return memos, nil
}

func (s *memoService) UpdateMemo(ctx context.Context, memoID uuid.UUID, req *model.UpdateMemoRequest) (*model.Memo, error) {
	logger := middleware.GetLogger(ctx).With("memo_id", memoID)

	var updated *model.Memo
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.memoRepo.FindByID(ctx, tx, memoID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "メモが見つかりませんでした。", "", err)
			}
			logger.Error("Error finding memo in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "メモの取得に失敗しました。", "", err)
		}

		updates := make(map[string]interface{})
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Body != nil {
			updates["body"] = *req.Body
		}
		if len(updates) > 0 {
			if err := s.memoRepo.Update(ctx, tx, memoID, updates); err != nil {
				logger.Error("Error updating memo", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "メモの更新に失敗しました。", "", err)
			}
		}

		var err error
		updated, err = s.memoRepo.FindByID(ctx, tx, memoID)
		if err != nil {
			logger.Error("Error fetching updated memo", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "更新後のメモの取得に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteMemo はメモと添付画像を同一トランザクションで削除します
func (s *memoService) DeleteMemo(ctx context.Context, memoID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("memo_id", memoID)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.memoRepo.FindByID(ctx, tx, memoID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "メモが見つかりませんでした。", "", err)
			}
			logger.Error("Error finding memo for deletion", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "メモの取得に失敗しました。", "", err)
		}

		if err := s.memoRepo.DeleteImagesByMemos(ctx, tx, []uuid.UUID{memoID}); err != nil {
			logger.Error("Error cascading memo image deletion", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "メモ画像の削除に失敗しました。", "", err)
		}
		if err := s.memoRepo.Delete(ctx, tx, memoID); err != nil {
			logger.Error("Error deleting memo", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "メモの削除に失敗しました。", "", err)
		}
		return nil
	})
}

func (s *memoService) AddImage(ctx context.Context, memoID uuid.UUID, data []byte) (*model.MemoImage, error) {
	logger := middleware.GetLogger(ctx).With("memo_id", memoID)

	if len(data) == 0 {
		return nil, model.NewAppError("INVALID_INPUT", "画像データが空です。", "data", model.ErrInvalidInput)
	}

	var created *model.MemoImage
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.memoRepo.FindByID(ctx, tx, memoID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "メモが見つかりませんでした。", "", err)
			}
			logger.Error("Error finding memo in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "メモの取得に失敗しました。", "", err)
		}

		image := &model.MemoImage{
			ImageID: uuid.New(),
			MemoID:  memoID,
			Data:    data,
		}
		if err := s.memoRepo.CreateImage(ctx, tx, image); err != nil {
			logger.Error("Error creating memo image", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "メモ画像の保存に失敗しました。", "", err)
		}
		created = image
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *memoService) ListImages(ctx context.Context, memoID uuid.UUID) ([]*model.MemoImage, error) {
	images, err := s.memoRepo.FindImagesByMemo(ctx, s.db, memoID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing memo images", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "メモ画像一覧の取得に失敗しました。", "", err)
	}
	return images, nil
}

func (s *memoService) DeleteImage(ctx context.Context, imageID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("image_id", imageID)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.memoRepo.DeleteImage(ctx, tx, imageID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "メモ画像が見つかりませんでした。", "", err)
			}
			logger.Error("Error deleting memo image", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "メモ画像の削除に失敗しました。", "", err)
		}
		return nil
	})
}
