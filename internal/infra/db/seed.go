package db

import (
	"app/internal/config"
	"app/internal/domain/model"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seedは初回起動時の初期データを入れる。何度起動しても二重投入しない。
func Seed(gormDB *gorm.DB, cfg config.Config, log *zap.Logger) error {
	if err := seedAdminUser(gormDB, cfg, log); err != nil {
		return err
	}
	return seedCatalog(gormDB, log)
}

// 管理者が1人もいなければデフォルト管理者を作る
func seedAdminUser(gormDB *gorm.DB, cfg config.Config, log *zap.Logger) error {
	var count int64
	if err := gormDB.Model(&model.User{}).
		Where("role = ?", model.RoleAdmin).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		// 管理者はもういる
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.User{
		Name:         "Administrator",
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	if err := gormDB.Create(&admin).Error; err != nil {
		return err
	}

	log.Info("created default admin user", zap.String("email", admin.Email))
	return nil
}

// カタログが空ならサンプルのレコード6枚を入れる
func seedCatalog(gormDB *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := gormDB.Model(&model.Vinyl{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	vinyls := []model.Vinyl{
		{Title: "Abbey Road", Artist: "The Beatles", Genre: "rock", Price: 899, Stock: 10},
		{Title: "Kind of Blue", Artist: "Miles Davis", Genre: "jazz", Price: 1200, Stock: 5},
		{Title: "Thriller", Artist: "Michael Jackson", Genre: "pop", Price: 999, Stock: 8},
		{Title: "The Dark Side of the Moon", Artist: "Pink Floyd", Genre: "rock", Price: 1100, Stock: 6},
		{Title: "Random Access Memories", Artist: "Daft Punk", Genre: "electronic", Price: 1050, Stock: 4},
		{Title: "B.B. King Live at the Regal", Artist: "B.B. King", Genre: "blues", Price: 850, Stock: 7},
	}
	if err := gormDB.Create(&vinyls).Error; err != nil {
		return err
	}

	log.Info("seeded catalog", zap.Int("vinyls", len(vinyls)))
	return nil
}
