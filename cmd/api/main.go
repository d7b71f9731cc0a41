package main

import (
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/hash"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// .envは無くても起動できる
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("no .env file")
	}

	cfg := config.Load()

	//DB接続
	gormDB, err := db.Connect(cfg.DatabaseDSN)
	if err != nil {
		logrus.WithError(err).Fatal("db connect failed")
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Cart{},
		&model.CartItem{},
	); err != nil {
		logrus.WithError(err).Fatal("migrate failed")
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)

	//Usecase生成
	hasher := hash.NewSHA256Hasher()
	userUC := usecase.NewUserUsecase(userRepo, hasher)
	productUC := usecase.NewProductUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo)
	adminUC := usecase.NewAdminUsecase(cfg)

	//Handler生成
	handlers := server.Handlers{
		User:    handler.NewUserHandler(userUC),
		Product: handler.NewProductHandler(productUC),
		Cart:    handler.NewCartHandler(cartUC),
		Admin:   handler.NewAdminHandler(adminUC),
		Upload:  handler.NewUploadHandler(cfg),
	}

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	logrus.WithField("addr", addr).Info("starting server")
	if err := server.Start(addr, cfg, handlers); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
