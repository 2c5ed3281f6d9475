package usecase

import (
	"context"
	"errors"
	"math"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"go.uber.org/zap"
)

type OrderUsecase struct {
	tx  repo.TransactionManager
	log *zap.Logger
}

func NewOrderUsecase(tx repo.TransactionManager, log *zap.Logger) *OrderUsecase {
	return &OrderUsecase{tx: tx, log: log}
}

type OrderLineInput struct {
	VinylID  int64
	Quantity int64
	Price    float64
}

type PlaceOrderInput struct {
	Total float64
	Items []OrderLineInput
}

// PlaceOrderは注文を確定する。
// ヘッダ作成・明細作成・在庫減算を1つのトランザクションで行う。
//
// totalと各明細のpriceはクライアントの申告値をそのまま保存する（再計算しない）。
// 在庫は下限チェックなしで減らす。明細が存在しないVinylを指していても
// 明細は作成し、その行の在庫更新だけをスキップする。
// いずれも旧来のクライアント互換のための仕様で、乖離はWARNログに残す。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (int64, error) {
	if userID <= 0 {
		return 0, ErrNotAuthenticated
	}
	if len(in.Items) == 0 {
		return 0, ErrValidation
	}
	for _, it := range in.Items {
		if it.VinylID <= 0 || it.Quantity <= 0 || it.Price < 0 {
			return 0, ErrValidation
		}
	}

	var orderID int64

	//注文処理はトランザクション
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		orderID, err = r.Orders().Create(ctx, model.Order{
			UserID: userID,
			Total:  in.Total,
			Status: model.OrderStatusPending,
		})
		if err != nil {
			return err
		}

		var sum float64

		//明細は入力順に処理する
		for _, it := range in.Items {
			if err := r.OrderItems().Create(ctx, model.OrderItem{
				OrderID:  orderID,
				VinylID:  it.VinylID,
				Quantity: it.Quantity,
				Price:    it.Price,
			}); err != nil {
				return err
			}
			sum += it.Price * float64(it.Quantity)

			v, err := r.Vinyls().FindByID(ctx, it.VinylID)
			if errors.Is(err, repo.ErrNotFound) {
				//存在しない商品は在庫更新だけスキップ（明細は残す）
				u.log.Warn("order line references unknown vinyl",
					zap.Int64("order_id", orderID),
					zap.Int64("vinyl_id", it.VinylID),
				)
				continue
			}
			if err != nil {
				return err
			}

			if v.Stock-it.Quantity < 0 {
				u.log.Warn("stock going negative",
					zap.Int64("order_id", orderID),
					zap.Int64("vinyl_id", it.VinylID),
					zap.Int64("stock", v.Stock),
					zap.Int64("quantity", it.Quantity),
				)
			}

			if err := r.Vinyls().DecrementStock(ctx, it.VinylID, it.Quantity); err != nil {
				return err
			}
		}

		if math.Abs(sum-in.Total) > 1e-9 {
			u.log.Warn("client total mismatch",
				zap.Int64("order_id", orderID),
				zap.Float64("client_total", in.Total),
				zap.Float64("computed_total", sum),
			)
		}

		return nil
	})

	if err != nil {
		u.log.Error("place order failed", zap.Int64("user_id", userID), zap.Error(err))
		return 0, ErrInternal
	}

	return orderID, nil
}
