package api

import "github.com/gin-gonic/gin"

type Handlers struct {
	Users    *UserHandler
	Fleet    *FleetHandler
	Airports *AirportHandler
	Routes   *RouteHandler
	Flights  *FlightHandler
	Orders   *OrderHandler
}

// NewRouter assembles the full API surface under /api/v1.
func NewRouter(h Handlers, mw *AuthMiddleware) *gin.Engine {
	engine := gin.Default()
	engine.Use(mw.Authenticate())

	v1 := engine.Group("/api/v1")
	v1.POST("/token", h.Users.token)

	h.Users.Register(v1.Group("/users"), mw)

	airport := v1.Group("/airport")
	h.Fleet.Register(airport, mw)
	h.Airports.Register(airport.Group("/airports"), mw)
	h.Routes.Register(airport.Group("/routes"), mw)
	h.Flights.Register(airport.Group("/flights"), mw)
	h.Orders.Register(airport.Group("/orders"), mw)

	return engine
}
