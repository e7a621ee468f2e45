// internal/model/material.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// UnitType は教材の進捗単位の種別です。
// 回数ベース (ページ・問題など) か時間ベース (分) のいずれか。
type UnitType string

const (
	UnitTypeCount   UnitType = "count"
	UnitTypeMinutes UnitType = "minutes"
)

// Material は学習教材を表します。
// CurrentProgress は常に [0, TotalAmount] に収まるよう書き込み時にクランプされます。
type Material struct {
	MaterialID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"material_id"`
	QualificationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"qualification_id"`
	Name            string     `gorm:"not null" json:"name"`
	Unit            string     `gorm:"not null;default:ページ" json:"unit"` // 表示用の単位名
	UnitType        UnitType   `gorm:"not null;default:count" json:"unit_type"`
	TotalAmount     int        `gorm:"not null" json:"total_amount"`
	CurrentProgress int        `gorm:"not null;default:0" json:"current_progress"`
	QuotaMode       QuotaMode  `gorm:"not null;default:manual" json:"quota_mode"`
	DailyQuota      int        `gorm:"not null;default:0" json:"daily_quota"` // 手動モード時のノルマ
	Deadline        *time.Time `json:"deadline,omitempty"`                    // 教材単位の締切 (未設定時は資格の試験日)
	UseWeeklyTarget bool       `gorm:"not null;default:false" json:"use_weekly_target"`
	Order           int        `gorm:"column:display_order;not null;default:0" json:"order"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Material) TableName() string {
	return "materials"
}

// RemainingAmount は残りの学習量を返します
func (m *Material) RemainingAmount() int {
	if r := m.TotalAmount - m.CurrentProgress; r > 0 {
		return r
	}
	return 0
}

// ProgressRate は進捗率 (0.0〜1.0) を返します
func (m *Material) ProgressRate() float64 {
	if m.TotalAmount <= 0 {
		return 0
	}
	return float64(m.CurrentProgress) / float64(m.TotalAmount)
}

// 教材作成リクエストDTO
type CreateMaterialRequest struct {
	Name            string     `json:"name" validate:"required"`
	TotalAmount     int        `json:"total_amount" validate:"required,min=0"`
	Unit            string     `json:"unit,omitempty"`
	UnitType        *UnitType  `json:"unit_type,omitempty" validate:"omitempty,oneof=count minutes"`
	QuotaMode       *QuotaMode `json:"quota_mode,omitempty" validate:"omitempty,oneof=manual auto"`
	DailyQuota      *int       `json:"daily_quota,omitempty" validate:"omitempty,min=0"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	UseWeeklyTarget *bool      `json:"use_weekly_target,omitempty"`
}

// 教材更新リクエストDTO
type UpdateMaterialRequest struct {
	Name            *string    `json:"name,omitempty" validate:"omitempty,min=1"`
	TotalAmount     *int       `json:"total_amount,omitempty" validate:"omitempty,min=0"`
	Unit            *string    `json:"unit,omitempty" validate:"omitempty,min=1"`
	UnitType        *UnitType  `json:"unit_type,omitempty" validate:"omitempty,oneof=count minutes"`
	QuotaMode       *QuotaMode `json:"quota_mode,omitempty" validate:"omitempty,oneof=manual auto"`
	DailyQuota      *int       `json:"daily_quota,omitempty" validate:"omitempty,min=0"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	ClearDeadline   bool       `json:"clear_deadline,omitempty"`
	UseWeeklyTarget *bool      `json:"use_weekly_target,omitempty"`
	Order           *int       `json:"order,omitempty" validate:"omitempty,min=0"`
}
