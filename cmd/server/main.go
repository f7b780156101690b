package main

import (
	"context"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/0929smj/chun2/internal/config"
	"github.com/0929smj/chun2/internal/handler"
	"github.com/0929smj/chun2/internal/logger"
	"github.com/0929smj/chun2/internal/middleware"
	"github.com/0929smj/chun2/internal/model"
	"github.com/0929smj/chun2/internal/service"
	"github.com/0929smj/chun2/internal/sheet"
	"github.com/0929smj/chun2/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	godotenv.Load()
	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	middleware.JWTSecret = []byte(cfg.Auth.JWTSecret)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db open failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&model.Setting{}, &model.AdminAccount{}); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	authSvc := service.NewAuthService(db)
	if err := authSvc.EnsureAdmin(context.Background(), cfg.Auth.AdminUser, cfg.Auth.AdminPassword); err != nil {
		slog.Error("admin seed failed", "err", err)
		os.Exit(1)
	}

	settingsSvc := service.NewSettingsService(db, cfg.Sheet.URL)
	client := sheet.NewClient(settingsSvc.EndpointURL, cfg.Sheet.RequestTimeout)
	st := store.New(rand.New(rand.NewSource(time.Now().UnixNano())))
	syncSvc := service.NewSyncService(st, client, cfg.Sheet.Year, cfg.Sheet.RequestTimeout,
		rand.New(rand.NewSource(time.Now().UnixNano())))

	// Initial blocking load; falls back to seed data on any failure.
	loadCtx, cancel := context.WithTimeout(context.Background(), cfg.Sheet.RequestTimeout)
	meta := syncSvc.Load(loadCtx)
	cancel()
	slog.Info("initial load done", "source", meta.Source, "load_error", meta.LoadError)

	authH := handler.NewAuthHandler(authSvc)
	dataH := handler.NewDataHandler(st, syncSvc)
	attendanceH := handler.NewAttendanceHandler(st, syncSvc)
	statsH := handler.NewStatsHandler(st, syncSvc)
	memberH := handler.NewMemberHandler(st, syncSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc, syncSvc)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/api/login", authH.Login)

	api := r.Group("/api")
	api.GET("/data", dataH.Data)
	api.POST("/data/reload", dataH.Reload)
	api.GET("/groups", dataH.Groups)
	api.GET("/schedule", dataH.Schedule)
	api.GET("/prayers", dataH.Prayers)
	api.POST("/attendance/toggle", attendanceH.Toggle)
	api.GET("/stats/weekly", statsH.Weekly)
	api.GET("/stats/groups", statsH.Groups)
	api.GET("/stats/members/:id/monthly", statsH.MemberMonthly)

	admin := r.Group("/api", middleware.JWTAuth())
	admin.POST("/members", memberH.Add)
	admin.PUT("/members/:id", memberH.Update)
	admin.GET("/settings/endpoint", settingsH.GetEndpoint)
	admin.PUT("/settings/endpoint", settingsH.SetEndpoint)
	admin.POST("/settings/test", settingsH.Test)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
