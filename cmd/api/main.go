package main

import (
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/logging"
	"app/internal/metrics"
	"app/internal/server"
	"app/internal/session"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const sessionTTL = 24 * time.Hour

func main() {
	//.envは無くてもよい
	_ = godotenv.Load()

	cfg := config.Load()

	log := logging.New(cfg.GoEnv)
	defer func() { _ = log.Sync() }()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Vinyl{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatal("db migrate failed", zap.Error(err))
	}

	//初期データ（管理者＋カタログ）
	if err := db.Seed(gormDB, cfg, log); err != nil {
		log.Fatal("db seed failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	vinylRepo := infraRepo.NewVinylGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//セッション
	sessions := session.NewManager(cfg.SessionSecret, sessionTTL, cfg.CookieSecure)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(userRepo, validator.NewAuthValidator(), log)
	catalogUC := usecase.NewCatalogUsecase(vinylRepo, log)
	orderUC := usecase.NewOrderUsecase(txManager, log)
	adminUC := usecase.NewAdminUsecase(userRepo, vinylRepo, orderRepo, log)

	//Handler生成
	h := server.Handlers{
		Auth:  handler.NewAuthHandler(authUC, sessions),
		Vinyl: handler.NewVinylHandler(catalogUC),
		Order: handler.NewOrderHandler(orderUC),
		Admin: handler.NewAdminHandler(adminUC),
	}

	m := metrics.NewHTTPMetrics()

	//Server起動
	addr := ":" + cfg.Port
	if err := server.Start(addr, log, m, sessions, h); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
