package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nshubina/airport-api/internal/domain"
	"github.com/nshubina/airport-api/internal/service/fleet"
)

type FleetHandler struct {
	service fleet.UseCase
}

func NewFleetHandler(service fleet.UseCase) *FleetHandler {
	return &FleetHandler{service: service}
}

func (h *FleetHandler) Register(router *gin.RouterGroup, mw *AuthMiddleware) {
	types := router.Group("/airplane-types")
	types.GET("", h.listTypes)
	types.POST("", mw.RequireStaff(), h.createType)

	airplanes := router.Group("/airplanes")
	airplanes.GET("", h.listAirplanes)
	airplanes.GET("/:id", h.getAirplane)
	airplanes.POST("", mw.RequireStaff(), h.createAirplane)
	airplanes.PUT("/:id", mw.RequireStaff(), h.updateAirplane)
	airplanes.DELETE("/:id", mw.RequireStaff(), h.deleteAirplane)

	crews := router.Group("/crews")
	crews.GET("", h.listCrews)
	crews.GET("/:id", h.getCrew)
	crews.POST("", mw.RequireStaff(), h.createCrew)
	crews.PUT("/:id", mw.RequireStaff(), h.updateCrew)
	crews.DELETE("/:id", mw.RequireStaff(), h.deleteCrew)
}

// --- airplane types ---

type createAirplaneTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

type airplaneTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (h *FleetHandler) createType(c *gin.Context) {
	var req createAirplaneTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}
	t, err := h.service.CreateAirplaneType(c.Request.Context(), req.Name)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airplaneTypeResponse{ID: t.ID, Name: t.Name})
}

func (h *FleetHandler) listTypes(c *gin.Context) {
	types, err := h.service.ListAirplaneTypes(c.Request.Context(), parseListParams(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp := make([]airplaneTypeResponse, 0, len(types))
	for _, t := range types {
		resp = append(resp, airplaneTypeResponse{ID: t.ID, Name: t.Name})
	}
	c.JSON(http.StatusOK, gin.H{"results": resp})
}

// --- airplanes ---

type airplaneRequest struct {
	Name           string `json:"name" binding:"required"`
	Code           string `json:"code" binding:"required"`
	Rows           int    `json:"rows"`
	SeatsInRow     int    `json:"seats_in_row"`
	AirplaneTypeID int64  `json:"airplane_type" binding:"required"`
}

type airplaneResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	Rows         int    `json:"rows"`
	SeatsInRow   int    `json:"seats_in_row"`
	AirplaneType int64  `json:"airplane_type"`
	TypeName     string `json:"airplane_type_name"`
	TotalSeats   int    `json:"total_seats"`
}

func toAirplaneResponse(a *domain.Airplane) airplaneResponse {
	return airplaneResponse{
		ID:           a.ID,
		Name:         a.Name,
		Code:         a.Code,
		Rows:         a.Rows,
		SeatsInRow:   a.SeatsInRow,
		AirplaneType: a.AirplaneTypeID,
		TypeName:     a.TypeName,
		TotalSeats:   a.TotalSeats(),
	}
}

func (a airplaneRequest) toInput() fleet.AirplaneInput {
	return fleet.AirplaneInput{
		Name:           a.Name,
		Code:           a.Code,
		Rows:           a.Rows,
		SeatsInRow:     a.SeatsInRow,
		AirplaneTypeID: a.AirplaneTypeID,
	}
}

func (h *FleetHandler) createAirplane(c *gin.Context) {
	var req airplaneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}
	airplane, err := h.service.CreateAirplane(c.Request.Context(), req.toInput())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAirplaneResponse(airplane))
}

func (h *FleetHandler) getAirplane(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	airplane, err := h.service.GetAirplane(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirplaneResponse(airplane))
}

func (h *FleetHandler) listAirplanes(c *gin.Context) {
	minSeats, _ := strconv.Atoi(c.Query("total_seats"))
	filter := domain.AirplaneFilter{
		TypeName:      c.Query("type"),
		MinTotalSeats: minSeats,
	}
	airplanes, err := h.service.ListAirplanes(c.Request.Context(), filter, parseListParams(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp := make([]airplaneResponse, 0, len(airplanes))
	for i := range airplanes {
		resp = append(resp, toAirplaneResponse(&airplanes[i]))
	}
	c.JSON(http.StatusOK, gin.H{"results": resp})
}

func (h *FleetHandler) updateAirplane(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req airplaneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}
	airplane, err := h.service.UpdateAirplane(c.Request.Context(), id, req.toInput())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirplaneResponse(airplane))
}

func (h *FleetHandler) deleteAirplane(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.DeleteAirplane(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- crews ---

type crewRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Title     string `json:"title" binding:"required"`
}

type crewResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Title     string `json:"title"`
	FullName  string `json:"full_name"`
}

func toCrewResponse(cr *domain.Crew) crewResponse {
	return crewResponse{
		ID:        cr.ID,
		FirstName: cr.FirstName,
		LastName:  cr.LastName,
		Title:     string(cr.Title),
		FullName:  cr.FullName(),
	}
}

func (h *FleetHandler) createCrew(c *gin.Context) {
	var req crewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}
	crew, err := h.service.CreateCrew(c.Request.Context(), fleet.CrewInput(req))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCrewResponse(crew))
}

func (h *FleetHandler) getCrew(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	crew, err := h.service.GetCrew(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCrewResponse(crew))
}

func (h *FleetHandler) listCrews(c *gin.Context) {
	crews, err := h.service.ListCrews(c.Request.Context(), parseListParams(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp := make([]crewResponse, 0, len(crews))
	for i := range crews {
		resp = append(resp, toCrewResponse(&crews[i]))
	}
	c.JSON(http.StatusOK, gin.H{"results": resp})
}

func (h *FleetHandler) updateCrew(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req crewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}
	crew, err := h.service.UpdateCrew(c.Request.Context(), id, fleet.CrewInput(req))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCrewResponse(crew))
}

func (h *FleetHandler) deleteCrew(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.DeleteCrew(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
