package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nshubina/airport-api/internal/domain"
	"github.com/nshubina/airport-api/internal/service/orders"
)

type OrderHandler struct {
	service orders.UseCase
}

func NewOrderHandler(service orders.UseCase) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) Register(router *gin.RouterGroup, mw *AuthMiddleware) {
	router.Use(mw.RequireAuth())
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.DELETE("/:id", h.delete)
}

type ticketRequest struct {
	Flight int64 `json:"flight" binding:"required"`
	Row    int   `json:"row" binding:"required"`
	Seat   int   `json:"seat" binding:"required"`
}

type createOrderRequest struct {
	Tickets []ticketRequest `json:"tickets" binding:"required,min=1,dive"`
}

type ticketResponse struct {
	ID     int64 `json:"id"`
	Row    int   `json:"row"`
	Seat   int   `json:"seat"`
	Flight int64 `json:"flight"`
}

type orderResponse struct {
	ID        int64            `json:"id"`
	Number    string           `json:"number"`
	CreatedAt string           `json:"created_at"`
	Tickets   []ticketResponse `json:"tickets"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	tickets := make([]ticketResponse, 0, len(o.Tickets))
	for _, t := range o.Tickets {
		tickets = append(tickets, ticketResponse{ID: t.ID, Row: t.Row, Seat: t.Seat, Flight: t.FlightID})
	}
	return orderResponse{
		ID:        o.ID,
		Number:    o.Number,
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
		Tickets:   tickets,
	}
}

func callerFromContext(c *gin.Context) orders.Caller {
	claims, _ := callerClaims(c)
	return orders.Caller{UserID: claims.UserID, Email: claims.Email, IsStaff: claims.IsStaff}
}

func (h *OrderHandler) create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}

	input := orders.CreateOrderInput{Caller: callerFromContext(c)}
	for _, t := range req.Tickets {
		input.Tickets = append(input.Tickets, orders.TicketInput{
			FlightID: t.Flight,
			Row:      t.Row,
			Seat:     t.Seat,
		})
	}

	order, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(order))
}

func (h *OrderHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	order, err := h.service.Get(c.Request.Context(), callerFromContext(c), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) list(c *gin.Context) {
	ordersList, err := h.service.List(c.Request.Context(), callerFromContext(c), parseListParams(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp := make([]orderResponse, 0, len(ordersList))
	for i := range ordersList {
		resp = append(resp, toOrderResponse(&ordersList[i]))
	}
	c.JSON(http.StatusOK, gin.H{"results": resp})
}

func (h *OrderHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.Delete(c.Request.Context(), callerFromContext(c), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
