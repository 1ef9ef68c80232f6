package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/infrastructure/config"
	"ticketdesk/internal/infrastructure/repository"
	tickethandlers "ticketdesk/internal/interfaces/http/handlers/ticket"
	"ticketdesk/internal/interfaces/http/middleware"
	"ticketdesk/internal/interfaces/http/routes"
	shareddb "ticketdesk/internal/shared/db"
	"ticketdesk/internal/shared/logger"

	_ "ticketdesk/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	engine        *gin.Engine
	ticketHandler *tickethandlers.TicketHandler
	rateLimiter   *middleware.RateLimiter
	config        *config.Config
	logger        logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(db)
	txMgr := shareddb.NewTransactionManager(db)

	createUC := usecases.NewCreateTicketUseCase(ticketRepo, log)
	getUC := usecases.NewGetTicketUseCase(ticketRepo, log)
	listUC := usecases.NewListTicketsUseCase(ticketRepo, log)
	updateUC := usecases.NewUpdateTicketUseCase(ticketRepo, txMgr, log)
	deleteUC := usecases.NewDeleteTicketUseCase(ticketRepo, log)

	ticketHandler := tickethandlers.NewTicketHandler(createUC, getUC, listUC, updateUC, deleteUC)

	rateLimiter := middleware.NewRateLimiter(
		redisClient,
		cfg.RateLimit.Requests,
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
	)

	return &Router{
		engine:        engine,
		ticketHandler: ticketHandler,
		rateLimiter:   rateLimiter,
		config:        cfg,
		logger:        log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.config.Server.AllowedOrigins))

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler: r.ticketHandler,
		RateLimiter:   r.rateLimiter,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
