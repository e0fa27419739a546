package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nshubina/airport-api/api"
	"github.com/nshubina/airport-api/config"
	"github.com/nshubina/airport-api/internal/auth"
	"github.com/nshubina/airport-api/internal/bootstrap"
	"github.com/nshubina/airport-api/internal/kafka"
	"github.com/nshubina/airport-api/internal/repository"
	"github.com/nshubina/airport-api/internal/service/airports"
	"github.com/nshubina/airport-api/internal/service/fleet"
	"github.com/nshubina/airport-api/internal/service/flights"
	"github.com/nshubina/airport-api/internal/service/orders"
	"github.com/nshubina/airport-api/internal/service/routes"
	"github.com/nshubina/airport-api/internal/service/users"
	"github.com/nshubina/airport-api/internal/weather"
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
	if cfg.Auth.Secret == "" {
		log.Fatal("auth secret is not configured (set JWT_SECRET or auth.secret)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	tokens := auth.NewTokenManager(cfg.Auth.Secret, time.Duration(cfg.Auth.TokenTTLMin)*time.Minute)
	weatherClient := weather.NewClient(cfg.Weather)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	userRepo := repository.NewUserRepository(pool)
	typeRepo := repository.NewAirplaneTypeRepository(pool)
	airplaneRepo := repository.NewAirplaneRepository(pool)
	crewRepo := repository.NewCrewRepository(pool)
	airportRepo := repository.NewAirportRepository(pool)
	routeRepo := repository.NewRouteRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	userService := users.NewUserService(userRepo, tokens)
	fleetService := fleet.NewFleetService(typeRepo, airplaneRepo, crewRepo)
	airportService := airports.NewAirportService(airportRepo, weatherClient)
	routeService := routes.NewRouteService(routeRepo, airportRepo)
	flightService := flights.NewFlightService(flightRepo, routeRepo, airplaneRepo, crewRepo)
	orderService := orders.NewOrderService(
		orderRepo,
		flightRepo,
		airplaneRepo,
		producer,
		cfg.Kafka.OrdersTopic,
		orders.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	handlers := api.Handlers{
		Users:    api.NewUserHandler(userService),
		Fleet:    api.NewFleetHandler(fleetService),
		Airports: api.NewAirportHandler(airportService),
		Routes:   api.NewRouteHandler(routeService),
		Flights:  api.NewFlightHandler(flightService),
		Orders:   api.NewOrderHandler(orderService),
	}
	mw := api.NewAuthMiddleware(tokens)

	if err := bootstrap.Run(ctx, cfg, handlers, mw); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
