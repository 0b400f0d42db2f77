package routes

import (
	"github.com/gin-gonic/gin"

	"ticketdesk/internal/interfaces/http/handlers"
	tickethandlers "ticketdesk/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
	SeedHandler   *handlers.SeedHandler
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	engine.GET("/seed_db", config.SeedHandler.SeedDatabase)

	tickets := engine.Group("/tickets")
	{
		tickets.GET("", config.TicketHandler.ListTickets)
		tickets.GET("/details/:id", config.TicketHandler.GetTicketDetails)
		tickets.GET("/status/:status", config.TicketHandler.ListByStatus)
		tickets.GET("/sort-by-priority", config.TicketHandler.SortByPriority)

		tickets.POST("/new", config.TicketHandler.CreateTicket)
		tickets.POST("/update/:id", config.TicketHandler.UpdateTicket)
		tickets.POST("/delete", config.TicketHandler.DeleteTicket)
	}
}
