package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"student-platform/handlers"
	"student-platform/models"
	"student-platform/services"
	"student-platform/store"
	"student-platform/utils"
	"student-platform/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB — reward imagery is the largest upload
	})

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		log.Println("⚠️  ALLOWED_ORIGINS not set, using default: http://localhost:3000")
		allowedOrigins = "http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	tokenTTL := 30 * time.Minute
	if v := os.Getenv("SESSION_TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("invalid SESSION_TOKEN_TTL %q: %v", v, err)
		}
		tokenTTL = d
	}

	if os.Getenv("CLOUDFLARE_ACCOUNT_ID") != "" {
		if err := utils.InitR2(); err != nil {
			log.Fatal("failed to initialize R2 client:", err)
		}
	} else {
		log.Println("⚠️  R2 not configured — image uploads disabled")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.QuizQuestion{},
		&models.QuizResult{},
		&models.Reward{},
		&models.RewardClaim{},
		&models.Internship{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	// The one store handle — every service gets it injected.
	ledger := store.NewGormStore(db)

	authService := services.NewAuthService(ledger, jwtSecret, tokenTTL)
	quizService := services.NewQuizService(ledger)
	leaderboardService := services.NewLeaderboardService(ledger)
	rewardService := services.NewRewardService(ledger)
	internshipService := services.NewInternshipService(ledger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pointsWorker := workers.NewPointsSyncWorker(ledger, 5*time.Minute)
	sched, err := pointsWorker.Start()
	if err != nil {
		log.Fatal("failed to start points sync worker:", err)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	handlers.SetupAuthRoutes(app, authService, leaderboardService)
	handlers.SetupQuizRoutes(app, authService, quizService)
	handlers.SetupLeaderboardRoutes(app, authService, leaderboardService)
	handlers.SetupRewardRoutes(app, authService, rewardService)
	handlers.SetupInternshipRoutes(app, authService, internshipService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	addr := ":" + strings.TrimPrefix(port, ":")

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost%s", addr)
	log.Printf("✅ CORS configured for origins: %s", allowedOrigins)

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := sched.Shutdown(); err != nil {
		log.Printf("scheduler shutdown error: %v", err)
	}
	if err := app.Shutdown(); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
}
