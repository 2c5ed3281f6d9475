package usecase

import (
	"context"

	repo "app/internal/repository"

	"go.uber.org/zap"
)

type AdminUsecase struct {
	users  repo.UserRepository
	vinyls repo.VinylRepository
	orders repo.OrderRepository
	log    *zap.Logger
}

// DI
func NewAdminUsecase(
	users repo.UserRepository,
	vinyls repo.VinylRepository,
	orders repo.OrderRepository,
	log *zap.Logger,
) *AdminUsecase {
	return &AdminUsecase{
		users:  users,
		vinyls: vinyls,
		orders: orders,
		log:    log,
	}
}

type StatsOutput struct {
	Users  int64 `json:"users"`
	Vinyls int64 `json:"vinyls"`
	Orders int64 `json:"orders"`
}

// Statsは各テーブルの件数をそのまま返す（admin権限はmiddlewareで確認済み）。
func (u *AdminUsecase) Stats(ctx context.Context) (StatsOutput, error) {
	users, err := u.users.Count(ctx)
	if err != nil {
		u.log.Error("stats: user count failed", zap.Error(err))
		return StatsOutput{}, ErrInternal
	}

	vinyls, err := u.vinyls.Count(ctx)
	if err != nil {
		u.log.Error("stats: vinyl count failed", zap.Error(err))
		return StatsOutput{}, ErrInternal
	}

	orders, err := u.orders.Count(ctx)
	if err != nil {
		u.log.Error("stats: order count failed", zap.Error(err))
		return StatsOutput{}, ErrInternal
	}

	return StatsOutput{
		Users:  users,
		Vinyls: vinyls,
		Orders: orders,
	}, nil
}
