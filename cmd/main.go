package main

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"hostelgo/backend/internal/api/handler"
	"hostelgo/backend/internal/complaint"
	"hostelgo/backend/internal/config"
	"hostelgo/backend/internal/models"
	"hostelgo/backend/internal/notifyhub"
	"hostelgo/backend/internal/storage"
	"hostelgo/backend/internal/telegram"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg *config.Config) (*gorm.DB, *redis.Client) {
	// 1. PostgreSQL
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	// 2. Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: "",
		DB:       0,
	})

	// Перевірка з'єднання Redis
	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	// 3. Міграції (Створення таблиць)
	err = db.AutoMigrate(
		&models.User{},
		&models.Complaint{},
		&models.AdminUpdate{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting Hostel Complaint Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	// 1. Ініціалізація залежностей
	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb)

	// 2. Hub та сервіс скарг. The storage service doubles as the event
	// publisher and the hub's event source.
	hub := notifyhub.NewManagerService(s)
	svc := complaint.NewService(s, s)

	go hub.Run() // Головний диспетчер

	// 3. Telegram-сповіщення для адміністраторів (опціонально)
	if cfg.TelegramBotToken != "" && cfg.TelegramAdminChat != "" {
		chatID, err := strconv.ParseInt(cfg.TelegramAdminChat, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_ADMIN_CHAT_ID: %v", err)
		}
		notifier, err := telegram.NewNotifier(cfg.TelegramBotToken, chatID, s)
		if err != nil {
			log.Fatalf("Failed to start Telegram notifier: %v", err)
		}
		go notifier.Run()
	}

	// 4. Налаштування Gin та роутингу
	r := gin.Default()
	h := handler.NewHandler(hub, s, svc, cfg.JWTSecret)

	r.GET("/api/health", h.Health)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/verify", h.Verify)
	}

	complaints := r.Group("/api/complaints", h.Authenticate, h.RequireRole(models.RoleStudent))
	{
		complaints.GET("/my-complaints", h.MyComplaints)
		complaints.POST("/create", h.CreateComplaint)
		complaints.GET("/:id", h.GetComplaint)
	}

	admin := r.Group("/api/admin", h.Authenticate, h.RequireRole(models.RoleAdmin))
	{
		admin.GET("/complaints", h.AdminListComplaints)
		admin.GET("/stats", h.AdminStats)
		admin.GET("/complaints/:id", h.AdminGetComplaint)
		admin.PUT("/complaints/:id/status", h.AdminUpdateStatus)
		admin.PUT("/complaints/:id/resolve", h.AdminResolveComplaint)
	}

	r.GET("/ws", h.Authenticate, h.ServeWebSocket) // WebSocket Upgrade

	// Запуск HTTP-сервера
	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    config.ReadTimeout,
		WriteTimeout:   config.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
