package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"swiftdrive/internal/database"
	"swiftdrive/internal/middleware"
	"swiftdrive/internal/modules/auth"
	"swiftdrive/internal/modules/booking"
	"swiftdrive/internal/modules/catalog"
	"swiftdrive/internal/modules/concierge"
	jwtsvc "swiftdrive/internal/pkg/jwt"
	"swiftdrive/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "swiftdrive.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	username := os.Getenv("LOGIN_USERNAME")
	if username == "" {
		username = "swiftdriveclone"
	}
	password := os.Getenv("LOGIN_PASSWORD")
	if password == "" {
		password = "7777"
	}

	db, err := database.Open(dsn)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	kv, err := repository.NewGormKVStore(db)
	if err != nil {
		log.Fatal(err)
	}
	ledger := repository.NewLedgerRepository(ctx, kv)
	sessions := repository.NewSessionRepository(kv)

	j := jwtsvc.New(secret, 24*time.Hour)

	catalogService := catalog.NewService(catalog.Fleet())
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(catalogService, ledger)
	bookingHandler := booking.NewHandler(bookingService)

	authService, err := auth.NewService(sessions, j, username, password)
	if err != nil {
		log.Fatal(err)
	}
	authHandler := auth.NewHandler(authService)

	var generator concierge.Generator
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		gemini, err := concierge.NewGeminiGenerator(ctx, apiKey)
		if err != nil {
			log.Printf("gemini client unavailable, falling back to canned replies: %v", err)
		} else {
			generator = gemini
		}
	} else {
		log.Println("GEMINI_API_KEY is empty, concierge runs on canned replies")
	}
	conciergeService := concierge.NewService(generator, catalogService, 15*time.Second)
	conciergeHandler := concierge.NewHandler(conciergeService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		conciergeHandler.RegisterRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)

		// protected (booking flow)
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
