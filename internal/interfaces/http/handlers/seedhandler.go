package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

const msgSeedFailed = "Error seeding the database"

type SeedHandler struct {
	seedDatabaseUC seedDatabaseUseCase
	logger         logger.Interface
}

func NewSeedHandler(seedDatabaseUC seedDatabaseUseCase, logger logger.Interface) *SeedHandler {
	return &SeedHandler{
		seedDatabaseUC: seedDatabaseUC,
		logger:         logger,
	}
}

// SeedDatabase handles GET /seed_db
// @Summary Reset and seed the database
// @Description Drop the ticket tables, recreate them and load the fixture dataset
// @Tags seed
// @Produce json
// @Success 200 {object} utils.MessageBody
// @Failure 500 {object} utils.ErrorBody
// @Router /seed_db [get]
func (h *SeedHandler) SeedDatabase(c *gin.Context) {
	result, err := h.seedDatabaseUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err, msgSeedFailed)
		return
	}

	h.logger.Infow("database seeded",
		"tickets", result.Tickets,
		"customers", result.Customers,
		"agents", result.Agents,
	)

	utils.MessageResponse(c, http.StatusOK, usecases.MsgDatabaseSeeded)
}
