// internal/model/studylog.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// StudyLog は1回分の学習記録です。
// Date は日単位 (その日の0時) に正規化して保存します。
// 同じ (教材, 日) の組に複数レコードが存在し得るため、集計は読み手側で行います。
type StudyLog struct {
	LogID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"log_id"`
	MaterialID uuid.UUID `gorm:"type:uuid;not null;index" json:"material_id"`
	Date       time.Time `gorm:"not null;index" json:"date"`
	Amount     int       `gorm:"not null" json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

func (StudyLog) TableName() string {
	return "study_logs"
}

// 進捗記録リクエストDTO
type RecordProgressRequest struct {
	Amount int        `json:"amount" validate:"required,min=1"`
	Date   *time.Time `json:"date,omitempty"` // 省略時は今日
}

// RecordProgressResponse は記録結果 (クランプ後の適用量) を返します
type RecordProgressResponse struct {
	AppliedAmount   int `json:"applied_amount"`
	CurrentProgress int `json:"current_progress"`
}

// 日別修正リクエストDTO
type AdjustDayAmountRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// AdjustDayAmountResponse は修正後のその日の合計量を返します
type AdjustDayAmountResponse struct {
	DayAmount       int `json:"day_amount"`
	CurrentProgress int `json:"current_progress"`
}
