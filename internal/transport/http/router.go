package http

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/gigclaw/backend/internal/config"
	"github.com/gigclaw/backend/internal/core/services"
	"github.com/gigclaw/backend/internal/infrastructure/db"
	"github.com/gigclaw/backend/internal/infrastructure/logger"
	"github.com/gigclaw/backend/internal/transport/http/handlers"
	httpmw "github.com/gigclaw/backend/internal/transport/http/middleware"
)

type RouterConfig struct {
	DB     *gorm.DB
	Logger *logger.Logger
	Config *config.Config
}

func SetupRoutes(app *fiber.App, cfg RouterConfig) {
	tx := db.NewTxManager(cfg.DB, cfg.Logger)
	clock := services.NewSystemClock()

	taskService := services.NewTaskService(services.TaskServiceConfig{
		Tx:          tx,
		Clock:       clock,
		Logger:      cfg.Logger,
		EnableLocks: cfg.Config.Features.EnableLocks,
	})
	bidService := services.NewBidService(services.BidServiceConfig{
		Tx:     tx,
		Clock:  clock,
		Logger: cfg.Logger,
	})
	reputationService := services.NewReputationService(services.ReputationServiceConfig{
		Tx:     tx,
		Clock:  clock,
		Logger: cfg.Logger,
	})
	accountService := services.NewAccountService(services.AccountServiceConfig{
		Tx:     tx,
		Clock:  clock,
		Logger: cfg.Logger,
	})

	taskHandler := handlers.NewTaskHandler(taskService, cfg.Logger)
	bidHandler := handlers.NewBidHandler(bidService, cfg.Logger)
	reputationHandler := handlers.NewReputationHandler(reputationService, cfg.Logger)
	agentHandler := handlers.NewAgentHandler(accountService, cfg.Logger)

	agentAuth := httpmw.AgentAuth(accountService, cfg.Logger)
	adminAuth := httpmw.AdminAuth(cfg.Config)

	api := app.Group("/api/v1")

	// Identity and accounts
	api.Post("/agents/register", agentHandler.RegisterAgent)
	api.Get("/accounts/:address/balance", agentHandler.GetBalance)
	if cfg.Config.Features.EnableFaucet {
		api.Post("/accounts/credit", adminAuth, agentHandler.CreditAccount)
	}

	// Tasks
	api.Get("/tasks", taskHandler.GetTasks)
	api.Get("/tasks/:id", taskHandler.GetTask)
	api.Post("/tasks", agentAuth, taskHandler.CreateTask)
	api.Post("/tasks/:id/escrow", agentAuth, taskHandler.InitializeEscrow)
	api.Get("/tasks/:id/escrow", taskHandler.EscrowBalance)
	api.Post("/tasks/:id/cancel", agentAuth, taskHandler.CancelTask)
	api.Post("/tasks/:id/accept", agentAuth, taskHandler.AcceptBid)
	api.Post("/tasks/:id/complete", agentAuth, taskHandler.CompleteTask)
	api.Post("/tasks/:id/verify", agentAuth, taskHandler.VerifyAndPay)
	api.Post("/tasks/:id/rate", agentAuth, reputationHandler.RateAgent)

	// Bids
	api.Get("/tasks/:id/bids", bidHandler.GetBids)
	api.Post("/tasks/:id/bids", agentAuth, bidHandler.PlaceBid)

	// Reputation
	api.Post("/reputation", agentAuth, reputationHandler.InitializeReputation)
	api.Get("/reputation/:agent", reputationHandler.GetReputation)
}
