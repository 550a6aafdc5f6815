package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	kafkago "github.com/segmentio/kafka-go"

	"wahibashop/internal/config"
	"wahibashop/internal/events"
	"wahibashop/internal/kafka"
	"wahibashop/internal/mail"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[notifier] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := mail.NewSendGridClient(cfg.SendGridAPIKey, cfg.MailFromName)
	notifier := mail.NewOrderNotifier(client, cfg.MailFrom, cfg.MailTo, logger)

	consumer := kafka.NewConsumer(cfg.KafkaBrokers, "order-notifier", events.TopicOrderCreated, 2, logger)

	logger.Printf("listening for orders on %s", events.TopicOrderCreated)
	if err := consumer.Start(ctx, func(ctx context.Context, m kafkago.Message) error {
		return notifier.HandleEnvelope(ctx, m.Value)
	}); err != nil {
		logger.Fatalf("consumer: %v", err)
	}
}
