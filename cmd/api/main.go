// server/cmd/api/main.go
package main

import (
	"log"

	"cleanconnect-api-server/config"
	"cleanconnect-api-server/internal/api/handlers"
	"cleanconnect-api-server/internal/api/routes"
	"cleanconnect-api-server/internal/auth"
	"cleanconnect-api-server/internal/database"
	"cleanconnect-api-server/internal/pickup"
	"cleanconnect-api-server/internal/s3"
	"cleanconnect-api-server/internal/socket"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	godotenv.Load()

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	auth.JwtSecret = []byte(cfg.JWT.Secret)

	db, err := database.Connect(cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.SeedAdmin(db, cfg.Admin); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	if err := database.SeedReferenceData(db); err != nil {
		log.Fatalf("Failed to seed reference data: %v", err)
	}

	// Without credentials the upload endpoints answer with a configuration
	// error instead of failing at startup.
	var objectStore handlers.ObjectStore
	if cfg.S3.AccessKeyID != "" && cfg.S3.SecretAccessKey != "" {
		uploader, err := s3.NewUploader(cfg.S3)
		if err != nil {
			log.Fatalf("Failed to create S3 uploader: %v", err)
		}
		objectStore = uploader
	} else {
		log.Println("S3 credentials not set; image uploads are disabled")
	}

	wsHub := socket.NewHub()
	pickupService := pickup.NewService(&database.PickupStore{DB: db})

	router := routes.SetupRouter(cfg, db, objectStore, wsHub, pickupService)

	log.Printf("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
