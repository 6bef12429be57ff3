//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"fmt"
	"time"

	"truckboard/internal/gateway/ai"
	"truckboard/internal/handlers/rest/deliveries_get"
	"truckboard/internal/handlers/rest/delivery_delete"
	"truckboard/internal/handlers/rest/delivery_get"
	"truckboard/internal/handlers/rest/delivery_post"
	"truckboard/internal/handlers/rest/delivery_put"
	"truckboard/internal/handlers/rest/event_delete"
	"truckboard/internal/handlers/rest/event_get"
	"truckboard/internal/handlers/rest/event_post"
	"truckboard/internal/handlers/rest/event_put"
	"truckboard/internal/handlers/rest/events_get"
	"truckboard/internal/handlers/rest/item_delete"
	"truckboard/internal/handlers/rest/item_get"
	"truckboard/internal/handlers/rest/item_post"
	"truckboard/internal/handlers/rest/item_put"
	"truckboard/internal/handlers/rest/items_get"
	"truckboard/internal/handlers/rest/login_post"
	"truckboard/internal/handlers/rest/recommendations_get"
	"truckboard/internal/handlers/rest/register_post"
	"truckboard/internal/handlers/rest/route_delete"
	"truckboard/internal/handlers/rest/route_get"
	"truckboard/internal/handlers/rest/route_optimize_post"
	"truckboard/internal/handlers/rest/route_post"
	"truckboard/internal/handlers/rest/route_put"
	"truckboard/internal/handlers/rest/routes_get"
	"truckboard/internal/handlers/rest/session_get"
	"truckboard/internal/handlers/rest/station_delete"
	"truckboard/internal/handlers/rest/station_get"
	"truckboard/internal/handlers/rest/station_post"
	"truckboard/internal/handlers/rest/station_put"
	"truckboard/internal/handlers/rest/stations_get"
	"truckboard/internal/handlers/rest/stations_nearby_get"
	"truckboard/internal/handlers/tasks/delivery_overdue"
	"truckboard/internal/pkg/config"
	"truckboard/internal/pkg/seed"

	deliveryRepo "truckboard/internal/repository/delivery"
	inventoryRepo "truckboard/internal/repository/inventory"
	routeRepo "truckboard/internal/repository/route"
	scheduleRepo "truckboard/internal/repository/schedule"
	stationRepo "truckboard/internal/repository/station"
	usersRepo "truckboard/internal/repository/users"
	advisorService "truckboard/internal/service/advisor"
	authService "truckboard/internal/service/auth"
	deliveryService "truckboard/internal/service/delivery"
	inventoryService "truckboard/internal/service/inventory"
	routeService "truckboard/internal/service/route"
	scheduleService "truckboard/internal/service/schedule"
	stationService "truckboard/internal/service/station"

	"truckboard/pkg/background"
	"truckboard/pkg/logger"
	"truckboard/pkg/querier"
	"truckboard/pkg/session"

	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	OverdueInterval time.Duration
	OverdueGrace    time.Duration
)

type Application struct {
	ServiceAuth       ServiceAuth
	ServiceInventory  ServiceInventory
	ServiceDelivery   ServiceDelivery
	ServiceRoute      ServiceRoute
	ServiceStation    ServiceStation
	ServiceSchedule   ServiceSchedule
	ServiceAdvisor    ServiceAdvisor
	Sessions          *session.Manager
	BackgroundWorkers *background.Worker
}

type ServiceAuth interface {
	register_post.Service
	login_post.Service
	session_get.Service
}

type ServiceInventory interface {
	item_post.Service
	items_get.Service
	item_get.Service
	item_put.Service
	item_delete.Service
}

type ServiceDelivery interface {
	delivery_post.Service
	deliveries_get.Service
	delivery_get.Service
	delivery_put.Service
	delivery_delete.Service
}

type ServiceRoute interface {
	route_post.Service
	routes_get.Service
	route_get.Service
	route_put.Service
	route_delete.Service
	route_optimize_post.Service
}

type ServiceStation interface {
	station_post.Service
	stations_get.Service
	station_get.Service
	station_put.Service
	station_delete.Service
	stations_nearby_get.Service
	seed.StationService
}

type ServiceSchedule interface {
	event_post.Service
	events_get.Service
	event_get.Service
	event_put.Service
	event_delete.Service
}

type ServiceAdvisor interface {
	recommendations_get.Service
}

// InitializeMemoryApplication wires the default in-process store
// (STORAGE_DRIVER=memory).
func InitializeMemoryApplication(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		usersRepo.NewMemory,
		inventoryRepo.NewMemory,
		deliveryRepo.NewMemory,
		routeRepo.NewMemory,
		stationRepo.NewMemory,
		scheduleRepo.NewMemory,

		provideAIGateway,
		provideSessionManager,

		provideServiceAuth,
		provideServiceInventory,
		provideServiceDelivery,
		provideServiceRoute,
		provideServiceStation,
		provideServiceSchedule,
		provideServiceAdvisor,

		provideOverdueInterval,
		provideOverdueGrace,
		provideDeliveryOverdueTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAuth), new(*authService.Auth)),
		wire.Bind(new(ServiceInventory), new(*inventoryService.Inventory)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceRoute), new(*routeService.Route)),
		wire.Bind(new(ServiceStation), new(*stationService.Station)),
		wire.Bind(new(ServiceSchedule), new(*scheduleService.Schedule)),
		wire.Bind(new(ServiceAdvisor), new(*advisorService.Advisor)),

		wire.Bind(new(authService.Repository), new(*usersRepo.Memory)),
		wire.Bind(new(inventoryService.Repository), new(*inventoryRepo.Memory)),
		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Memory)),
		wire.Bind(new(routeService.Repository), new(*routeRepo.Memory)),
		wire.Bind(new(routeService.DeliveryReader), new(*deliveryRepo.Memory)),
		wire.Bind(new(stationService.Repository), new(*stationRepo.Memory)),
		wire.Bind(new(scheduleService.Repository), new(*scheduleRepo.Memory)),
		wire.Bind(new(advisorService.DeliveryReader), new(*deliveryRepo.Memory)),
		wire.Bind(new(advisorService.ScheduleReader), new(*scheduleRepo.Memory)),

		wire.Bind(new(routeService.Optimizer), new(*ai.Gateway)),
		wire.Bind(new(advisorService.Recommender), new(*ai.Gateway)),

		wire.Bind(new(delivery_overdue.Service), new(*deliveryService.Delivery)),
	)
	return &Application{}, nil
}

// InitializePostgresApplication wires the pgx-backed store
// (STORAGE_DRIVER=postgres).
func InitializePostgresApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideQuerier,
		provideUserRepository,
		provideInventoryRepository,
		provideDeliveryRepository,
		provideRouteRepository,
		provideStationRepository,
		provideScheduleRepository,

		provideAIGateway,
		provideSessionManager,

		provideServiceAuth,
		provideServiceInventory,
		provideServiceDelivery,
		provideServiceRoute,
		provideServiceStation,
		provideServiceSchedule,
		provideServiceAdvisor,

		provideOverdueInterval,
		provideOverdueGrace,
		provideDeliveryOverdueTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAuth), new(*authService.Auth)),
		wire.Bind(new(ServiceInventory), new(*inventoryService.Inventory)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceRoute), new(*routeService.Route)),
		wire.Bind(new(ServiceStation), new(*stationService.Station)),
		wire.Bind(new(ServiceSchedule), new(*scheduleService.Schedule)),
		wire.Bind(new(ServiceAdvisor), new(*advisorService.Advisor)),

		wire.Bind(new(authService.Repository), new(*usersRepo.Postgres)),
		wire.Bind(new(inventoryService.Repository), new(*inventoryRepo.Postgres)),
		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Postgres)),
		wire.Bind(new(routeService.Repository), new(*routeRepo.Postgres)),
		wire.Bind(new(routeService.DeliveryReader), new(*deliveryRepo.Postgres)),
		wire.Bind(new(stationService.Repository), new(*stationRepo.Postgres)),
		wire.Bind(new(scheduleService.Repository), new(*scheduleRepo.Postgres)),
		wire.Bind(new(advisorService.DeliveryReader), new(*deliveryRepo.Postgres)),
		wire.Bind(new(advisorService.ScheduleReader), new(*scheduleRepo.Postgres)),

		wire.Bind(new(routeService.Optimizer), new(*ai.Gateway)),
		wire.Bind(new(advisorService.Recommender), new(*ai.Gateway)),

		wire.Bind(new(delivery_overdue.Service), new(*deliveryService.Delivery)),
	)
	return &Application{}, nil
}

func provideQuerier(pool *pgxpool.Pool) *querier.Querier {
	return querier.New(pool)
}

func provideUserRepository(querier *querier.Querier) *usersRepo.Postgres {
	return usersRepo.NewPostgres(querier)
}

func provideInventoryRepository(querier *querier.Querier) *inventoryRepo.Postgres {
	return inventoryRepo.NewPostgres(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Postgres {
	return deliveryRepo.NewPostgres(querier)
}

func provideRouteRepository(querier *querier.Querier) *routeRepo.Postgres {
	return routeRepo.NewPostgres(querier)
}

func provideStationRepository(querier *querier.Querier) *stationRepo.Postgres {
	return stationRepo.NewPostgres(querier)
}

func provideScheduleRepository(querier *querier.Querier) *scheduleRepo.Postgres {
	return scheduleRepo.NewPostgres(querier)
}

func provideAIGateway(cfg *config.Config) *ai.Gateway {
	return ai.New(cfg.AI)
}

func provideSessionManager(log logger.Logger, cfg *config.Config) (*session.Manager, error) {
	secret := cfg.Auth.SessionSecret
	if secret == "" {
		generated, err := session.NewRandomSecret()
		if err != nil {
			return nil, fmt.Errorf("session secret: %w", err)
		}
		secret = generated
		log.Warn("SESSION_SECRET is not set, sessions will not survive a restart")
	}
	return session.NewManager(secret, cfg.Auth.SessionTTL), nil
}

func provideServiceAuth(repository authService.Repository) *authService.Auth {
	return authService.New(repository)
}

func provideServiceInventory(repository inventoryService.Repository) *inventoryService.Inventory {
	return inventoryService.New(repository)
}

func provideServiceDelivery(repository deliveryService.Repository) *deliveryService.Delivery {
	return deliveryService.New(repository)
}

func provideServiceRoute(
	repository routeService.Repository,
	deliveries routeService.DeliveryReader,
	optimizer routeService.Optimizer,
) *routeService.Route {
	return routeService.New(repository, deliveries, optimizer)
}

func provideServiceStation(repository stationService.Repository) *stationService.Station {
	return stationService.New(repository)
}

func provideServiceSchedule(repository scheduleService.Repository) *scheduleService.Schedule {
	return scheduleService.New(repository)
}

func provideServiceAdvisor(
	deliveries advisorService.DeliveryReader,
	schedule advisorService.ScheduleReader,
	recommender advisorService.Recommender,
) *advisorService.Advisor {
	return advisorService.New(deliveries, schedule, recommender)
}

func provideOverdueInterval(cfg *config.Config) OverdueInterval {
	return OverdueInterval(cfg.Tasks.DeliveryOverdueInterval)
}

func provideOverdueGrace(cfg *config.Config) OverdueGrace {
	return OverdueGrace(cfg.Tasks.DeliveryOverdueGrace)
}

func provideDeliveryOverdueTask(
	log logger.Logger,
	deliveryService delivery_overdue.Service,
	interval OverdueInterval,
	grace OverdueGrace,
) *delivery_overdue.DeliveryOverdue {
	return delivery_overdue.NewDeliveryOverdue(log, deliveryService, time.Duration(interval), time.Duration(grace))
}

func provideTaskList(
	deliveryOverdueTask *delivery_overdue.DeliveryOverdue,
) []background.Task {
	return []background.Task{
		deliveryOverdueTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
