package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"lms/config"
	controllers "lms/controllers/course"
	"lms/database"
	"lms/logger"
	"lms/notify"
	courseRoutes "lms/routers/courseRoutes"
	supportRoutes "lms/routers/supportRoutes"
	"lms/storage"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	cfg := config.AppConfig
	appLog := logger.New()

	store, err := storage.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to configure storage: %v", err)
	}
	controllers.Storage = store

	app := fiber.New(fiber.Config{BodyLimit: 200 * 1024 * 1024})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	if cfg.StorageDriver != "s3" {
		app.Static("/uploads", cfg.UploadDir)
	}

	courseRoutes.SetupCourseRoutes(app)
	supportRoutes.SetupSupportRoutes(app)

	dispatcher := notify.NewDispatcher(database.Database.Db, notify.NewMailer(cfg, appLog), appLog, cfg.AppName, cfg.PublicBaseURL)
	scheduler, err := dispatcher.Start(cfg.NotifySchedule)
	if err != nil {
		log.Fatalf("Failed to start notification scheduler: %v", err)
	}
	defer scheduler.Stop()

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
