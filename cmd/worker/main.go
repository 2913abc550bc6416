package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airlink/config"
	"github.com/Domenick1991/airlink/internal/email"
	"github.com/Domenick1991/airlink/internal/kafka"
	"github.com/Domenick1991/airlink/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	kafkaGo "github.com/segmentio/kafka-go"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightRepo := repository.NewFlightRepository(pool)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	emailSender := email.NewSender()

	go func() {
		if err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
			var event kafka.OrderEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Printf("decode event error: %v", err)
				return nil
			}
			return emailSender.Send(ctx, event)
		}); err != nil {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	reminderWindow := time.Duration(cfg.Worker.ReminderWindowHours) * time.Hour
	sweepInterval := time.Duration(cfg.Worker.ReminderSweepMinutes) * time.Minute

	sweepTicker := time.NewTicker(sweepInterval)
	defer sweepTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-sweepTicker.C:
			// Remind passengers on flights departing soon; the sweep window is
			// advanced each tick so a passenger is reminded once.
			from := time.Now().Add(reminderWindow)
			to := from.Add(sweepInterval)
			notices, err := flightRepo.ListDepartureNotices(ctx, from, to)
			if err != nil {
				log.Printf("departure sweep error: %v", err)
				continue
			}
			for _, n := range notices {
				event := kafka.OrderEvent{
					Type:          "departure_reminder",
					Email:         n.Email,
					FlightID:      n.FlightID,
					RouteLabel:    n.RouteLabel,
					DepartureTime: n.DepartureTime,
					Row:           n.Row,
					Seat:          n.Seat,
				}
				if err := producer.Publish(ctx, cfg.Kafka.NotificationsTopic, n.Email, event); err != nil {
					log.Printf("publish reminder error: %v", err)
				}
			}
			if len(notices) > 0 {
				log.Printf("published %d departure reminders", len(notices))
			}
		case s := <-sig:
			log.Printf("received signal %v, shutting down", s)
			return
		}
	}
}
