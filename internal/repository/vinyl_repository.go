package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// カタログ（Vinyl）の永続化だけを約束。
type VinylRepository interface {
	//登録順で全件返す
	ListAll(ctx context.Context) ([]model.Vinyl, error)
	FindByID(ctx context.Context, id int64) (model.Vinyl, error)
	Create(ctx context.Context, v model.Vinyl) (model.Vinyl, error)
	Count(ctx context.Context) (int64, error)

	// 在庫を無条件で減算する（下限チェックなし、マイナスも許す）
	DecrementStock(ctx context.Context, vinylID int64, qty int64) error

	// 在庫が足りるときだけ減算
	DecrementStockIfAvailable(ctx context.Context, vinylID int64, qty int64) (bool, error)
}
