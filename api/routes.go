package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nshubina/airport-api/internal/domain"
	"github.com/nshubina/airport-api/internal/service/routes"
)

type RouteHandler struct {
	service routes.UseCase
}

func NewRouteHandler(service routes.UseCase) *RouteHandler {
	return &RouteHandler{service: service}
}

func (h *RouteHandler) Register(router *gin.RouterGroup, mw *AuthMiddleware) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", mw.RequireStaff(), h.create)
	router.PUT("/:id", mw.RequireStaff(), h.update)
	router.DELETE("/:id", mw.RequireStaff(), h.delete)
}

type routeRequest struct {
	Source      int64 `json:"source" binding:"required"`
	Destination int64 `json:"destination" binding:"required"`
}

type routeResponse struct {
	ID          int64            `json:"id"`
	Source      *airportResponse `json:"source,omitempty"`
	Destination *airportResponse `json:"destination,omitempty"`
	DistanceKM  int              `json:"distance"`
}

func toRouteResponse(r *domain.Route) routeResponse {
	resp := routeResponse{ID: r.ID, DistanceKM: r.DistanceKM}
	if r.Source != nil {
		src := toAirportResponse(r.Source)
		resp.Source = &src
	}
	if r.Destination != nil {
		dst := toAirportResponse(r.Destination)
		resp.Destination = &dst
	}
	return resp
}

func (h *RouteHandler) create(c *gin.Context) {
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}
	route, err := h.service.Create(c.Request.Context(), routes.RouteInput{
		SourceID:      req.Source,
		DestinationID: req.Destination,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRouteResponse(route))
}

func (h *RouteHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	route, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRouteResponse(route))
}

func (h *RouteHandler) list(c *gin.Context) {
	filter := domain.RouteFilter{
		SourceCode:      c.Query("source"),
		DestinationCode: c.Query("destination"),
	}
	routesList, err := h.service.List(c.Request.Context(), filter, parseListParams(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp := make([]routeResponse, 0, len(routesList))
	for i := range routesList {
		resp = append(resp, toRouteResponse(&routesList[i]))
	}
	c.JSON(http.StatusOK, gin.H{"results": resp})
}

func (h *RouteHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}
	route, err := h.service.Update(c.Request.Context(), id, routes.RouteInput{
		SourceID:      req.Source,
		DestinationID: req.Destination,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRouteResponse(route))
}

func (h *RouteHandler) delete(c *gin.Context) {
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
