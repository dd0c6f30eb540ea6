package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"contactboard/internal/handlers"
	"contactboard/internal/models"
	"contactboard/internal/repositories"
	"contactboard/internal/services"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite") // sqlite, postgres, or memory
	viper.SetDefault("DB_DSN", "contactboard.db")
	viper.SetDefault("UPLOAD_DIR", "public/uploads")
	// Above the 5 MiB upload cap so oversized files reach the handler and
	// get the documented 400 instead of the transport's 413.
	viper.SetDefault("BODY_LIMIT_MB", 10)
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")
	uploadDir := viper.GetString("UPLOAD_DIR")

	// --- Initialize Repositories ---
	var (
		contactRepo repositories.ContactRepository
		postRepo    repositories.PostRepository
	)
	switch driver := viper.GetString("DB_DRIVER"); driver {
	case "memory":
		// In-memory store, useful for local development without a database.
		contactRepo = repositories.NewMockContactRepository()
		postRepo = repositories.NewMockPostRepository()
	default:
		db, err := openDatabase(driver, viper.GetString("DB_DSN"))
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		if err := db.AutoMigrate(&models.Contact{}, &models.Post{}); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		contactRepo = repositories.NewGORMContactRepository(db)
		postRepo = repositories.NewGORMPostRepository(db)
	}

	// --- Initialize Services ---
	contactService := services.NewContactService(contactRepo)
	postService := services.NewPostService(postRepo)
	uploadService := services.NewUploadService(uploadDir)

	// --- Initialize Handlers ---
	contactHandler := handlers.NewContactHandler(contactService)
	postHandler := handlers.NewPostHandler(postService)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	// --- Initialize Fiber App ---
	app := fiber.New(fiber.Config{
		BodyLimit: viper.GetInt("BODY_LIMIT_MB") * 1024 * 1024,
	})

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- Static uploads ---
	app.Static("/uploads", uploadDir)

	// --- API Routes ---
	contactHandler.RegisterRoutes(app)
	postHandler.RegisterRoutes(app)
	uploadHandler.RegisterRoutes(app)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// openDatabase opens the configured relational store. TranslateError turns
// driver duplicate-key failures into gorm.ErrDuplicatedKey, so the unique
// index on contact email reports conflicts the same way on every driver.
func openDatabase(driver, dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	switch driver {
	case "postgres":
		return gorm.Open(postgres.Open(dsn), cfg)
	case "sqlite":
		return gorm.Open(sqlite.Open(dsn), cfg)
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
}
