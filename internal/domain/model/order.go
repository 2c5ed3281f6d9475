package model

import "time"

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
)

// 注文ヘッダ。明細（OrderItem）と同一トランザクションで作成する。
type Order struct {
	ID        int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64       `gorm:"not null;index" json:"user_id"`
	Total     float64     `gorm:"not null" json:"total"`
	Status    OrderStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
}
