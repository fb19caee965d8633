// cmd/api/main.go
package main

import (
	"budget-tracker/internal/auth"
	"budget-tracker/internal/bot"
	"budget-tracker/internal/config"
	"budget-tracker/internal/handler"
	"budget-tracker/internal/middleware"
	"budget-tracker/internal/recurring"
	"budget-tracker/internal/storage/postgres"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	cfg := config.MustLoad()
	cfg.SetupLogger()

	// Суммы в JSON числами, а не строками
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBConn)
	if err != nil {
		slog.Error("Не удалось подключиться к БД", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		slog.Error("Ping БД не удался", "error", err)
		os.Exit(1)
	}
	slog.Info("✅ Подключились к PostgreSQL")

	store := postgres.NewStorage(pool)
	processor := recurring.NewProcessor(store)

	// JWT
	tokenService := auth.NewTokenService(cfg)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Telegram webhook
	if cfg.TelegramBotToken != "" {
		api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
		if err != nil {
			slog.Error("Не удалось инициализировать Telegram бота", "error", err)
			os.Exit(1)
		}

		webhookURL := cfg.WebhookBaseURL + "/telegram"
		if _, err := api.MakeRequest("setWebhook", tgbotapi.Params{"url": webhookURL}); err != nil {
			slog.Error("Не удалось установить webhook", "error", err)
			os.Exit(1)
		}
		slog.Info("Telegram webhook установлен", "url", webhookURL)

		chatBot := bot.New(store)
		router.POST("/telegram", func(c *gin.Context) {
			var update tgbotapi.Update
			if err := c.ShouldBindJSON(&update); err != nil {
				slog.Error("Ошибка парсинга обновления", "error", err)
				c.Status(http.StatusBadRequest)
				return
			}
			chatBot.HandleUpdate(c.Request.Context(), api, update)
			c.Status(http.StatusOK)
		})
	}

	// API-эндпоинты
	router.POST("/api/v1/login", func(c *gin.Context) {
		var req struct {
			UserID int64 `json:"user_id" binding:"required,min=1"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id required"})
			return
		}
		token, err := tokenService.GenerateToken(req.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	})

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	handler.RegisterRoutes(v1, store, processor)

	processor.Start(ctx, cfg.RecurringInterval)
	slog.Info("Recurring processor started", "interval", cfg.RecurringInterval.String())

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Остановка сервера с ошибкой", "error", err)
		}
	}()

	// Запуск сервера
	slog.Info("🚀 Сервер запущен", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Сервер завершил работу с ошибкой", "error", err)
		os.Exit(1)
	}
	slog.Info("Сервер остановлен")
}
