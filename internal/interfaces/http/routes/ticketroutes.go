package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "ticketdesk/internal/interfaces/http/handlers/ticket"
	"ticketdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
	RateLimiter   *middleware.RateLimiter
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/api/tickets")
	{
		// Collection operations
		tickets.GET("", config.TicketHandler.ListTickets)
		tickets.POST("", config.RateLimiter.Limit(), config.TicketHandler.CreateTicket)

		// Parameterized routes
		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PUT("/:id", config.RateLimiter.Limit(), config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", config.RateLimiter.Limit(), config.TicketHandler.DeleteTicket)
	}
}
