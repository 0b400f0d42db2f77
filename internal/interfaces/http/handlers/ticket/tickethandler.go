package ticket

import (
	stderrors "errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

// Fallback messages reported with 500 responses.
const (
	msgFetchTicketsFailed       = "Error fetching tickets"
	msgFetchTicketFailed        = "Error fetching the ticket details"
	msgFetchByStatusFailed      = "Error fetching tickets by status"
	msgFetchByPriorityFailed    = "Error fetching tickets sorted by priority."
	msgCreateTicketFailed       = "Error adding a new ticket"
	msgUpdateTicketFailed       = "Error updating the ticket"
	msgDeleteTicketFailed       = "Error deleting the ticket"
	msgTicketIDRequired         = "Ticket ID is required"
	msgInvalidTicketRequestBody = "Invalid request body"
)

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	updateTicketUC usecases.UpdateTicketExecutor
	deleteTicketUC usecases.DeleteTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		updateTicketUC: updateTicketUC,
		deleteTicketUC: deleteTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		logger:         logger,
	}
}

// ListTickets handles GET /tickets
// @Summary List tickets
// @Description List every ticket with its linked customers and agents
// @Tags tickets
// @Produce json
// @Success 200 {object} map[string][]dto.TicketDetailDTO
// @Failure 500 {object} utils.ErrorBody
// @Router /tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err, msgFetchTicketsFailed)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "tickets", result)
}

// GetTicketDetails handles GET /tickets/details/:id
// @Summary Get ticket details
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} map[string]dto.TicketDetailDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /tickets/details/{id} [get]
func (h *TicketHandler) GetTicketDetails(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err, msgFetchTicketFailed)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err, msgFetchTicketFailed)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket", result)
}

// ListByStatus handles GET /tickets/status/:status
// @Summary List tickets by status
// @Tags tickets
// @Produce json
// @Param status path string true "Ticket status"
// @Success 200 {object} map[string][]dto.TicketDetailDTO
// @Failure 404 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /tickets/status/{status} [get]
func (h *TicketHandler) ListByStatus(c *gin.Context) {
	status := c.Param("status")

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{Status: &status})
	if err != nil {
		utils.ErrorResponseWithError(c, err, msgFetchByStatusFailed)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "tickets", result)
}

// SortByPriority handles GET /tickets/sort-by-priority
// @Summary List tickets by ascending priority
// @Tags tickets
// @Produce json
// @Success 200 {object} map[string][]dto.TicketDetailDTO
// @Failure 404 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /tickets/sort-by-priority [get]
func (h *TicketHandler) SortByPriority(c *gin.Context) {
	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{SortBy: ticket.SortByPriority})
	if err != nil {
		utils.ErrorResponseWithError(c, err, msgFetchByPriorityFailed)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "tickets", result)
}

// CreateTicket handles POST /tickets/new
// @Summary Create a ticket
// @Description Create a ticket linked to one customer and one agent
// @Tags tickets
// @Accept json
// @Produce json
// @Param ticket body CreateTicketRequest true "Ticket data"
// @Success 201 {object} map[string]dto.TicketDetailDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /tickets/new [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(usecases.MsgAllFieldsRequired, err.Error()), msgCreateTicketFailed)
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err, msgCreateTicketFailed)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "ticket", result)
}

// UpdateTicket handles POST /tickets/update/:id
// @Summary Update a ticket
// @Description Apply a partial update; empty or zero fields are ignored, customerId or agentId replace the existing links
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param ticket body UpdateTicketRequest true "Fields to change"
// @Success 200 {object} map[string]dto.TicketDetailDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /tickets/update/{id} [post]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err, msgUpdateTicketFailed)
		return
	}

	// An empty body is an update with nothing supplied.
	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil && !stderrors.Is(err, io.EOF) {
		h.logger.Warnw("invalid request body for update ticket", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(msgInvalidTicketRequestBody, err.Error()), msgUpdateTicketFailed)
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(ticketID))
	if err != nil {
		utils.ErrorResponseWithError(c, err, msgUpdateTicketFailed)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket", result)
}

// DeleteTicket handles POST /tickets/delete
// @Summary Delete a ticket
// @Description Delete a ticket and its customer and agent links
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body DeleteTicketRequest true "Ticket to delete"
// @Success 200 {object} utils.MessageBody
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.MessageBody
// @Failure 500 {object} utils.ErrorBody
// @Router /tickets/delete [post]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	var req DeleteTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(msgTicketIDRequired, err.Error()), msgDeleteTicketFailed)
		return
	}
	if req.ID == nil || *req.ID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, msgTicketIDRequired)
		return
	}

	result, err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{TicketID: *req.ID})
	if err != nil {
		utils.ErrorResponseWithError(c, err, msgDeleteTicketFailed)
		return
	}

	if !result.Deleted {
		utils.MessageResponse(c, http.StatusNotFound, fmt.Sprintf("Ticket with ID %d not found.", result.TicketID))
		return
	}

	utils.MessageResponse(c, http.StatusOK, fmt.Sprintf("Ticket with ID %d deleted successfully.", result.TicketID))
}
