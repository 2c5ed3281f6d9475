package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderItemRepository interface {
	//明細を1件作成（入力順に呼ばれる）
	Create(ctx context.Context, item model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
}
