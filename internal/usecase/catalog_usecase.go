package usecase

import (
	"context"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"go.uber.org/zap"
)

// 新規レコードの初期在庫。呼び出し側は在庫を指定できない。
const defaultNewVinylStock = 10

type CatalogUsecase struct {
	vinyls repo.VinylRepository
	log    *zap.Logger
}

// DI
func NewCatalogUsecase(vinyls repo.VinylRepository, log *zap.Logger) *CatalogUsecase {
	return &CatalogUsecase{
		vinyls: vinyls,
		log:    log,
	}
}

type AddVinylInput struct {
	Title  string
	Artist string
	Genre  string
	Price  float64
}

// ListVinylsはカタログ全件を登録順で返す。
func (u *CatalogUsecase) ListVinyls(ctx context.Context) ([]model.Vinyl, error) {
	vinyls, err := u.vinyls.ListAll(ctx)
	if err != nil {
		u.log.Error("catalog: list failed", zap.Error(err))
		return nil, ErrInternal
	}
	return vinyls, nil
}

// AddVinylはカタログにレコードを追加する。
// 在庫は常にdefaultNewVinylStockで作る（admin権限はmiddlewareで確認済み）。
func (u *CatalogUsecase) AddVinyl(ctx context.Context, in AddVinylInput) (model.Vinyl, error) {
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Artist) == "" ||
		strings.TrimSpace(in.Genre) == "" {
		return model.Vinyl{}, ErrValidation
	}
	if in.Price < 0 {
		return model.Vinyl{}, ErrValidation
	}

	created, err := u.vinyls.Create(ctx, model.Vinyl{
		Title:  in.Title,
		Artist: in.Artist,
		Genre:  in.Genre,
		Price:  in.Price,
		Stock:  defaultNewVinylStock,
	})
	if err != nil {
		u.log.Error("catalog: create failed", zap.Error(err))
		return model.Vinyl{}, ErrInternal
	}

	return created, nil
}
