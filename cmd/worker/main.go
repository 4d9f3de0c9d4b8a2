package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gadget_garage/internal/config"
	"gadget_garage/internal/infrastructure/logging"
	"gadget_garage/internal/infrastructure/notifications"

	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"
)

// Delivers shop notifications queued by the API.
func main() {
	cfg := config.Load()
	logging.Setup(cfg.Env)

	if !cfg.NotificationsEnabled() {
		log.Fatalf("REDIS_URL is required to run the notification worker")
	}

	var mailer notifications.Mailer = notifications.LogMailer{}
	if cfg.MailEnabled() {
		mailer = notifications.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	} else {
		log.Printf("[notifications][worker] SMTP not configured; notifications are only logged")
	}

	worker, err := notifications.NewWorker(cfg.RedisURL, mailer, cfg.NotifyEmailTo)
	if err != nil {
		log.Fatalf("Failed to create notification worker: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := worker.Run(ctx); err != nil {
		log.Fatalf("Notification worker failed: %v", err)
	}
}
