package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wirelance/wirelance/internal/middleware"
	"github.com/wirelance/wirelance/internal/modules/repo"
	"github.com/wirelance/wirelance/internal/modules/serializer"
	"github.com/wirelance/wirelance/internal/modules/service"
)

type TicketHandler struct {
	svc service.TicketService
}

func NewTicketHandler(s service.TicketService) *TicketHandler {
	return &TicketHandler{svc: s}
}

func ticketIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("ticket_id"), 10, 64)
}

type CreateTicketReq struct {
	Category string `json:"category" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

// CreateTicket godoc
//
//	@Summary		Create support ticket
//	@Tags			ticket
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateTicketReq	true	"CreateTicket payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Ticket}
//	@Router			/tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	req := CreateTicketReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	userID, err := middleware.UserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	ticket, err := h.svc.Create(c.Request.Context(), userID, req.Category, req.Message)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: ticket})
}

// ListTickets godoc
//
//	@Summary		List caller's tickets
//	@Tags			ticket
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Ticket}
//	@Router			/tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	userID, err := middleware.UserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	out, err := h.svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// GetTicket godoc
//
//	@Summary		Get ticket thread
//	@Tags			ticket
//	@Produce		json
//	@Param			ticket_id	path	integer	true	"Ticket ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.TicketThreadOutput}
//	@Router			/tickets/{ticket_id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := ticketIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.GetThread(c.Request.Context(), ticketID)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("ticket not found", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusOK, serializer.Response{Data: out})
	}
}

type AddTicketMessageReq struct {
	Message string `json:"message" binding:"required"`
}

// AddTicketMessage godoc
//
//	@Summary		Add ticket message
//	@Tags			ticket
//	@Accept			json
//	@Produce		json
//	@Param			ticket_id	path	integer						true	"Ticket ID"
//	@Param			payload		body	handler.AddTicketMessageReq	true	"AddTicketMessage payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.TicketMessage}
//	@Router			/tickets/{ticket_id}/messages [post]
func (h *TicketHandler) AddTicketMessage(c *gin.Context) {
	ticketID, err := ticketIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := AddTicketMessageReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	userID, err := middleware.UserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	msg, err := h.svc.AddMessage(c.Request.Context(), ticketID, userID, req.Message)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("ticket not found", err))
	case err != nil:
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
	default:
		c.JSON(http.StatusCreated, serializer.Response{Data: msg})
	}
}

// CloseTicket godoc
//
//	@Summary		Close ticket
//	@Tags			ticket
//	@Produce		json
//	@Param			ticket_id	path	integer	true	"Ticket ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/tickets/{ticket_id}/close [post]
func (h *TicketHandler) CloseTicket(c *gin.Context) {
	ticketID, err := ticketIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	err = h.svc.Close(c.Request.Context(), ticketID)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("ticket not found", err))
	case err != nil:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	default:
		c.JSON(http.StatusOK, serializer.Response{})
	}
}
