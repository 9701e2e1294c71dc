package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"lms/apiclient"
	"lms/authoring"
	"lms/config"
	"lms/logger"
	"lms/middleware"
	"lms/models"
)

func main() {
	file := flag.String("file", "outline.yaml", "YAML course outline")
	publish := flag.Bool("publish", false, "publish the course after importing")
	notify := flag.Bool("notify", false, "broadcast a notification when publishing")
	token := flag.String("token", "", "bearer token (defaults to API_TOKEN)")
	devToken := flag.Bool("dev-token", false, "mint an admin token from JWT_SECRET_KEY")
	devUser := flag.Uint("dev-user", 1, "user id of the minted token")
	flag.Parse()

	config.LoadConfig()
	cfg := config.AppConfig
	appLog := logger.New()

	bearer := *token
	if bearer == "" {
		bearer = cfg.APIToken
	}
	if *devToken {
		minted, err := middleware.GenerateJWT(uint(*devUser), "importer", models.RoleAdmin, "", time.Hour)
		if err != nil {
			log.Fatalf("Failed to mint token: %v", err)
		}
		bearer = minted
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("Failed to open outline: %v", err)
	}
	outline, err := ParseOutline(f)
	f.Close()
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := apiclient.New(cfg.APIBaseURL, apiclient.StaticToken(bearer),
		apiclient.WithTimeout(cfg.APITimeout),
		apiclient.WithLogger(appLog),
	)
	importer := &Importer{API: client, Courses: client, Log: appLog, BaseDir: filepath.Dir(*file)}

	course, err := importer.Import(ctx, outline)
	if err != nil {
		log.Fatalf("Import failed: %s", apiclient.Message(err))
	}

	if *publish {
		if _, err := authoring.NewPublisher(client, appLog).Publish(ctx, *course, *notify); err != nil {
			log.Fatalf("Publish failed: %s", apiclient.Message(err))
		}
		appLog.Info().Str("courseId", course.ID).Msg("course published")
	}

	log.Printf("Imported course %s (%s)", course.Title, course.ID)
}
