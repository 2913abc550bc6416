package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airlink/config"
	"github.com/Domenick1991/airlink/internal/bootstrap"
	"github.com/Domenick1991/airlink/internal/cache"
	"github.com/Domenick1991/airlink/internal/kafka"
	"github.com/Domenick1991/airlink/internal/repository"
	"github.com/Domenick1991/airlink/internal/service/auth"
	"github.com/Domenick1991/airlink/internal/service/catalog"
	"github.com/Domenick1991/airlink/internal/service/flights"
	"github.com/Domenick1991/airlink/internal/service/orders"
	"github.com/Domenick1991/airlink/internal/service/tickets"
	"github.com/Domenick1991/airlink/internal/validation"
	"github.com/jackc/pgx/v5/pgxpool"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.API.FlightsCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	airplaneTypeRepo := repository.NewAirplaneTypeRepository(pool)
	airplaneRepo := repository.NewAirplaneRepository(pool)
	airportRepo := repository.NewAirportRepository(pool)
	crewRepo := repository.NewCrewRepository(pool)
	routeRepo := repository.NewRouteRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	svcs := bootstrap.Services{
		Auth:    auth.NewAuthService(userRepo, cfg.Auth.Secret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour),
		Catalog: catalog.NewCatalogService(airplaneTypeRepo, airplaneRepo, airportRepo, crewRepo, routeRepo, redisCache),
		Flights: flights.NewFlightService(flightRepo, redisCache, validation.SystemClock{}),
		Orders: orders.NewOrderService(
			orderRepo,
			flightRepo,
			userRepo,
			redisCache,
			producer,
			cfg.Kafka.OrdersTopic,
			orders.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		),
		Tickets: tickets.NewTicketService(ticketRepo, flightRepo),
	}

	if err := bootstrap.Run(ctx, cfg, svcs); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
