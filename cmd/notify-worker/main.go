package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"attendance.service/internal/config"
	"attendance.service/internal/core"
	"attendance.service/internal/ports/repository"
	"attendance.service/internal/ports/store"
	"attendance.service/internal/worker"
	"attendance.service/internal/worker/notify"
	awsconfig "attendance.service/pkg/aws"
	"attendance.service/pkg/database"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Could not load configuration: %v", err)
	}

	// DB connection
	db, err := database.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	defer db.Close()
	log.Println("Successfully connected to the database.")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kv, err := store.NewPostgresStore(ctx, db)
	if err != nil {
		log.Fatalf("Error preparing key-value store: %v", err)
	}

	// AWS SDK Config
	awsCfg, err := awsconfig.NewAWSConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("unable to load SDK config: %v", err)
	}

	// Initialize dependencies
	sqsClient := sqs.NewFromConfig(awsCfg)
	sesClient := ses.NewFromConfig(awsCfg)
	repo := repository.NewStoreRepository(kv)
	emailService := core.NewSESEmailService(sesClient, cfg.EmailSender)
	processor := notify.NewProcessor(emailService, repo)

	// Start worker
	app := worker.NewConsumer(sqsClient, cfg.NotifySQSQueueURL, processor)

	go func() {
		app.Start(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down worker...")

	// Cancel the context to signal the worker to stop polling.
	cancel()

	log.Println("Worker exited gracefully")
}
