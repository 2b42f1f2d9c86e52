package cmd

import (
	"log/slog"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/memory"
	"fulfillment/internal/adapters/out/postgres/orderstore"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs  Config
	sessions *memory.SessionStore
	orders   *orderstore.GormOrderStore
	logger   *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:  configs,
		sessions: memory.NewSessionStore(),
		orders:   orderstore.NewGormOrderStore(gormDB),
		logger:   logger,
	}
}

func (c *CompositionRoot) CreateStartOrderCommandHandler() commands.StartOrderCommandHandler {
	return commands.NewStartOrderCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateAddItemsCommandHandler() commands.AddItemsCommandHandler {
	return commands.NewAddItemsCommandHandler(c.sessions, services.NewQuantityAligner())
}

func (c *CompositionRoot) CreateRemoveItemsCommandHandler() commands.RemoveItemsCommandHandler {
	return commands.NewRemoveItemsCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.sessions, c.orders)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateWebhookServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateStartOrderCommandHandler(),
		c.CreateAddItemsCommandHandler(),
		c.CreateRemoveItemsCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateTrackOrderQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.sessions,
		c.configs.SessionCleanupSchedule,
		c.configs.SessionIdleTTL,
		c.logger,
	)
}
