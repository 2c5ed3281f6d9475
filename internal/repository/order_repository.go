package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	//注文ヘッダを作成して採番されたIDを返す
	Create(ctx context.Context, order model.Order) (int64, error)
	Count(ctx context.Context) (int64, error)
}
