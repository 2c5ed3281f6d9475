package model

import "time"

// カタログのレコード1枚。
// stockは注文確定時に減らす。
type Vinyl struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`
	Artist    string    `gorm:"type:varchar(100);not null" json:"artist"`
	Genre     string    `gorm:"type:varchar(50);not null" json:"genre"`
	Price     float64   `gorm:"not null" json:"price"`
	Stock     int64     `gorm:"not null;default:0" json:"stock"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
