package model

// 注文明細。
// priceは注文時点の単価スナップショット。後からVinylを読み直さない。
type OrderItem struct {
	ID       int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID  int64   `gorm:"not null;index" json:"order_id"`
	VinylID  int64   `gorm:"not null;index" json:"vinyl_id"`
	Quantity int64   `gorm:"not null" json:"quantity"`
	Price    float64 `gorm:"not null" json:"price"`
}
