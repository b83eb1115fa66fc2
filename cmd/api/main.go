package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mkouadio/pharmacy-backend/config"
	"github.com/mkouadio/pharmacy-backend/internal/auth"
	connlogHandler "github.com/mkouadio/pharmacy-backend/internal/connlog/handler"
	connlogRepository "github.com/mkouadio/pharmacy-backend/internal/connlog/repository"
	connlogUseCase "github.com/mkouadio/pharmacy-backend/internal/connlog/usecase"
	personnelHandler "github.com/mkouadio/pharmacy-backend/internal/personnel/handler"
	personnelRepository "github.com/mkouadio/pharmacy-backend/internal/personnel/repository"
	personnelUseCase "github.com/mkouadio/pharmacy-backend/internal/personnel/usecase"
	pharmacyHandler "github.com/mkouadio/pharmacy-backend/internal/pharmacy/handler"
	pharmacyRepository "github.com/mkouadio/pharmacy-backend/internal/pharmacy/repository"
	pharmacyUseCase "github.com/mkouadio/pharmacy-backend/internal/pharmacy/usecase"
	saleHandler "github.com/mkouadio/pharmacy-backend/internal/sale/handler"
	saleRepository "github.com/mkouadio/pharmacy-backend/internal/sale/repository"
	saleUseCase "github.com/mkouadio/pharmacy-backend/internal/sale/usecase"
	stockHandler "github.com/mkouadio/pharmacy-backend/internal/stock/handler"
	stockRepository "github.com/mkouadio/pharmacy-backend/internal/stock/repository"
	stockUseCase "github.com/mkouadio/pharmacy-backend/internal/stock/usecase"
	"github.com/mkouadio/pharmacy-backend/pkg/cache"
	"github.com/mkouadio/pharmacy-backend/pkg/database/postgres"
	"github.com/mkouadio/pharmacy-backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional outside local development.
	_ = godotenv.Load()

	cfg := config.LoadEnv()
	isDev := cfg.Server.AppEnv == "dev"

	appLogger := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     isDev,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	defer appLogger.Sync() //nolint:errcheck

	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("redis connection failed", zap.Error(err))
	}
	defer redisClient.Close()

	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	sessions := auth.NewSessionStore(redisClient, sessionTTL)

	saleRepo := saleRepository.NewPGRepository(db)
	stockRepo := stockRepository.NewPGRepository(db)
	personnelRepo := personnelRepository.NewPGRepository(db)
	connlogRepo := connlogRepository.NewPGRepository(db)
	pharmacyRepo := pharmacyRepository.NewPGRepository(db)

	saleUC := saleUseCase.NewSaleUseCase(saleRepo, appLogger)
	stockUC := stockUseCase.NewStockUseCase(stockRepo, redisClient, appLogger, int64(cfg.Stock.LowStockThreshold))
	personnelUC := personnelUseCase.NewPersonnelUseCase(personnelRepo, connlogRepo, sessions, appLogger)
	connlogUC := connlogUseCase.NewConnlogUseCase(connlogRepo, appLogger)
	pharmacyUC := pharmacyUseCase.NewPharmacyUseCase(pharmacyRepo, appLogger)

	saleH := saleHandler.NewSaleHandler(saleUC, appLogger)
	stockH := stockHandler.NewStockHandler(stockUC, appLogger)
	personnelH := personnelHandler.NewPersonnelHandler(personnelUC, appLogger, cfg.Session.CookieName, cfg.Session.TTLMinutes*60)
	connlogH := connlogHandler.NewConnlogHandler(connlogUC, appLogger)
	pharmacyH := pharmacyHandler.NewPharmacyHandler(pharmacyUC, appLogger)

	if !isDev {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	router.POST("/login", personnelH.Login)

	authed := router.Group("/", auth.Middleware(sessions, cfg.Session.CookieName))
	{
		authed.POST("/logout", personnelH.Logout)

		authed.GET("/dashboard", stockH.Dashboard)
		authed.GET("/stock", stockH.List)
		authed.POST("/stock", auth.RequireCapability(auth.CapManageStock), stockH.Create)
		authed.PUT("/stock/:id", auth.RequireCapability(auth.CapManageStock), stockH.Update)
		authed.DELETE("/stock/:id", auth.RequireCapability(auth.CapManageStock), stockH.Delete)

		authed.POST("/sales", auth.RequireCapability(auth.CapSubmitSale), saleH.Submit)

		authed.GET("/personnel", auth.RequireCapability(auth.CapManagePersonnel), personnelH.List)
		authed.POST("/personnel", auth.RequireCapability(auth.CapManagePersonnel), personnelH.Create)
		authed.PUT("/personnel/:matricule", auth.RequireCapability(auth.CapManagePersonnel), personnelH.Update)
		authed.DELETE("/personnel/:matricule", auth.RequireCapability(auth.CapManagePersonnel), personnelH.Delete)

		authed.GET("/connection-logs", auth.RequireCapability(auth.CapViewLogs), connlogH.List)

		authed.POST("/pharmacy", auth.RequireCapability(auth.CapManageSettings), pharmacyH.Save)
		authed.GET("/pharmacy/latest", pharmacyH.Latest)
	}

	server := &http.Server{
		Addr:    cfg.Server.HTTPPort,
		Handler: router,
	}

	go func() {
		appLogger.Info("http server listening", zap.String("addr", cfg.Server.HTTPPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("server shutdown failed", zap.Error(err))
	}
}
