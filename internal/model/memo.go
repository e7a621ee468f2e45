// internal/model/memo.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Memo は資格に紐づく学習メモです
type Memo struct {
	MemoID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"memo_id"`
	QualificationID uuid.UUID `gorm:"type:uuid;not null;index" json:"qualification_id"`
	Title           string    `gorm:"not null" json:"title"`
	Body            string    `json:"body"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Memo) TableName() string {
	return "memos"
}

// MemoImage はメモに添付された画像です。メモ削除時に一緒に削除されます。
type MemoImage struct {
	ImageID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"image_id"`
	MemoID    uuid.UUID `gorm:"type:uuid;not null;index" json:"memo_id"`
	Data      []byte    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (MemoImage) TableName() string {
	return "memo_images"
}

// メモ作成リクエストDTO
type CreateMemoRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body,omitempty"`
}

// メモ更新リクエストDTO
type UpdateMemoRequest struct {
	Title *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Body  *string `json:"body,omitempty"`
}
