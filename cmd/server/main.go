package main

import (
	"LinkBank/internal/config"
	"LinkBank/internal/handlers"
	"LinkBank/internal/middleware"
	"LinkBank/internal/repo"
	"LinkBank/internal/service"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	bankRepo := repo.NewBankRepository(gormDB)
	categoryRepo := repo.NewCategoryRepository(gormDB)
	linkRepo := repo.NewLinkRepository(gormDB)

	userService := service.NewUserService(userRepo)
	bankService := service.NewBankService(bankRepo, sugar)
	categoryService := service.NewCategoryService(categoryRepo, bankRepo, service.NewSlugGenerator(), sugar)
	linkService := service.NewLinkService(linkRepo, categoryRepo, sugar)

	h := handlers.NewHandler(userService, bankService, categoryService, linkService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
