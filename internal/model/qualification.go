// internal/model/qualification.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// QuotaMode はノルマ計算モードです (手動 / 自動)
type QuotaMode string

const (
	QuotaModeManual QuotaMode = "manual"
	QuotaModeAuto   QuotaMode = "auto"
)

// Qualification は学習目標 (資格・試験) を表します。
// 配下の教材・学習記録・メモの親となる集約ルートです。
type Qualification struct {
	QualificationID  uuid.UUID  `gorm:"type:uuid;primaryKey" json:"qualification_id"`
	Name             string     `gorm:"not null;uniqueIndex" json:"name"`
	ExamDate         *time.Time `json:"exam_date,omitempty"` // 試験日 (未設定可)
	WeeklyTargetDays int        `gorm:"not null;default:4" json:"weekly_target_days"`
	QuotaMode        QuotaMode  `gorm:"not null;default:manual" json:"quota_mode"` // 旧仕様の資格単位の自動計算モード
	IsSelected       bool       `gorm:"not null;default:false" json:"is_selected"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (Qualification) TableName() string {
	return "qualifications"
}

// 資格作成リクエストDTO
type CreateQualificationRequest struct {
	Name             string     `json:"name" validate:"required"`
	ExamDate         *time.Time `json:"exam_date,omitempty"`
	WeeklyTargetDays *int       `json:"weekly_target_days,omitempty" validate:"omitempty,min=1,max=7"`
	QuotaMode        *QuotaMode `json:"quota_mode,omitempty" validate:"omitempty,oneof=manual auto"`
}

// 資格更新リクエストDTO
type UpdateQualificationRequest struct {
	Name             *string    `json:"name,omitempty" validate:"omitempty,min=1"`
	ExamDate         *time.Time `json:"exam_date,omitempty"`
	ClearExamDate    bool       `json:"clear_exam_date,omitempty"` // trueで試験日をクリア
	WeeklyTargetDays *int       `json:"weekly_target_days,omitempty" validate:"omitempty,min=1,max=7"`
	QuotaMode        *QuotaMode `json:"quota_mode,omitempty" validate:"omitempty,oneof=manual auto"`
}
