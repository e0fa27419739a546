package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nshubina/airport-api/internal/domain"
	"github.com/nshubina/airport-api/internal/service/flights"
)

type FlightHandler struct {
	service flights.UseCase
}

func NewFlightHandler(service flights.UseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup, mw *AuthMiddleware) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", mw.RequireStaff(), h.create)
	router.PUT("/:id", mw.RequireStaff(), h.update)
	router.DELETE("/:id", mw.RequireStaff(), h.delete)
}

type flightRequest struct {
	Route         int64     `json:"route" binding:"required"`
	Airplane      int64     `json:"airplane" binding:"required"`
	DepartureTime time.Time `json:"departure_time" binding:"required"`
	ArrivalTime   time.Time `json:"arrival_time" binding:"required"`
	Crew          []int64   `json:"crew"`
}

type flightResponse struct {
	ID            int64   `json:"id"`
	Route         int64   `json:"route"`
	Airplane      int64   `json:"airplane"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Crew          []int64 `json:"crew"`
	FreeSeats     int     `json:"tickets_available"`
}

func toFlightResponse(f *domain.Flight) flightResponse {
	crew := f.CrewIDs
	if crew == nil {
		crew = []int64{}
	}
	return flightResponse{
		ID:            f.ID,
		Route:         f.RouteID,
		Airplane:      f.AirplaneID,
		DepartureTime: f.DepartureTime.Format(time.RFC3339),
		ArrivalTime:   f.ArrivalTime.Format(time.RFC3339),
		Crew:          crew,
		FreeSeats:     f.FreeSeats,
	}
}

func (r flightRequest) toInput() flights.FlightInput {
	return flights.FlightInput{
		RouteID:       r.Route,
		AirplaneID:    r.Airplane,
		DepartureTime: r.DepartureTime,
		ArrivalTime:   r.ArrivalTime,
		CrewIDs:       r.Crew,
	}
}

func (h *FlightHandler) create(c *gin.Context) {
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}
	flight, err := h.service.Create(c.Request.Context(), req.toInput())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toFlightResponse(flight))
}

func (h *FlightHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	flight, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(flight))
}

func (h *FlightHandler) list(c *gin.Context) {
	routeID, _ := strconv.ParseInt(c.Query("route"), 10, 64)
	airplaneID, _ := strconv.ParseInt(c.Query("airplane"), 10, 64)
	filter := domain.FlightFilter{RouteID: routeID, AirplaneID: airplaneID}
	if raw := c.Query("departure_date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "departure_date must be YYYY-MM-DD"})
			return
		}
		filter.DepartureDate = date
	}

	flightsList, err := h.service.List(c.Request.Context(), filter, parseListParams(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp := make([]flightResponse, 0, len(flightsList))
	for i := range flightsList {
		resp = append(resp, toFlightResponse(&flightsList[i]))
	}
	c.JSON(http.StatusOK, gin.H{"results": resp})
}

func (h *FlightHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}
	flight, err := h.service.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(flight))
}

func (h *FlightHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
