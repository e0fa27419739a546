package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nshubina/airport-api/internal/domain"
	"github.com/nshubina/airport-api/internal/service/airports"
)

type AirportHandler struct {
	service airports.UseCase
}

func NewAirportHandler(service airports.UseCase) *AirportHandler {
	return &AirportHandler{service: service}
}

func (h *AirportHandler) Register(router *gin.RouterGroup, mw *AuthMiddleware) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.GET("/:id/weather", h.weather)
	router.POST("", mw.RequireStaff(), h.create)
	router.PUT("/:id", mw.RequireStaff(), h.update)
	router.DELETE("/:id", mw.RequireStaff(), h.delete)
}

type airportRequest struct {
	Name           string  `json:"name" binding:"required"`
	Code           string  `json:"code" binding:"required"`
	ClosestBigCity string  `json:"closest_big_city"`
	Country        string  `json:"country"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
}

type airportResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Code           string  `json:"code"`
	ClosestBigCity string  `json:"closest_big_city"`
	Country        string  `json:"country"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
}

func toAirportResponse(a *domain.Airport) airportResponse {
	return airportResponse{
		ID:             a.ID,
		Name:           a.Name,
		Code:           a.Code,
		ClosestBigCity: a.ClosestBigCity,
		Country:        a.Country,
		Lat:            a.Lat,
		Lon:            a.Lon,
	}
}

func (a airportRequest) toInput() airports.AirportInput {
	return airports.AirportInput{
		Name:           a.Name,
		Code:           a.Code,
		ClosestBigCity: a.ClosestBigCity,
		Country:        a.Country,
		Lat:            a.Lat,
		Lon:            a.Lon,
	}
}

func (h *AirportHandler) create(c *gin.Context) {
	var req airportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}
	airport, err := h.service.Create(c.Request.Context(), req.toInput())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAirportResponse(airport))
}

func (h *AirportHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	airport, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirportResponse(airport))
}

func (h *AirportHandler) list(c *gin.Context) {
	filter := domain.AirportFilter{
		Code: c.Query("code"),
		City: c.Query("city"),
	}
	airportsList, err := h.service.List(c.Request.Context(), filter, parseListParams(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp := make([]airportResponse, 0, len(airportsList))
	for i := range airportsList {
		resp = append(resp, toAirportResponse(&airportsList[i]))
	}
	c.JSON(http.StatusOK, gin.H{"results": resp})
}

func (h *AirportHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req airportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}
	airport, err := h.service.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirportResponse(airport))
}

func (h *AirportHandler) delete(c *gin.Context) {
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

// weather proxies a live lookup; upstream errors map to 502/504.
func (h *AirportHandler) weather(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	conditions, err := h.service.Weather(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, conditions)
}
