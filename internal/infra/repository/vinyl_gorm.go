package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type VinylGormRepository struct {
	db *gorm.DB
}

// DI
func NewVinylGormRepository(db *gorm.DB) *VinylGormRepository {
	return &VinylGormRepository{db: db}
}

// 登録順（id昇順）で全件返す
func (r *VinylGormRepository) ListAll(ctx context.Context) ([]model.Vinyl, error) {
	var vinyls []model.Vinyl
	err := r.db.WithContext(ctx).Order("id asc").Find(&vinyls).Error
	if err != nil {
		return []model.Vinyl{}, err
	}
	return vinyls, nil
}

// IDでレコードを取得
func (r *VinylGormRepository) FindByID(ctx context.Context, id int64) (model.Vinyl, error) {
	var v model.Vinyl
	err := r.db.WithContext(ctx).First(&v, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Vinyl{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Vinyl{}, err
	}
	return v, nil
}

// レコードの作成
func (r *VinylGormRepository) Create(ctx context.Context, v model.Vinyl) (model.Vinyl, error) {
	if err := r.db.WithContext(ctx).Create(&v).Error; err != nil {
		return model.Vinyl{}, err
	}
	return v, nil
}

func (r *VinylGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Vinyl{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// 在庫を無条件で減らす（下限チェックなし）
func (r *VinylGormRepository) DecrementStock(ctx context.Context, vinylID int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Vinyl{}).
		Where("id = ?", vinylID).
		Update("stock", gorm.Expr("stock - ?", qty))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 在庫が足りるときだけ減らす
func (r *VinylGormRepository) DecrementStockIfAvailable(ctx context.Context, vinylID int64, qty int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Vinyl{}).
		Where("id = ? AND stock >= ?", vinylID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}
