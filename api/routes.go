package api

import (
	"net/http"

	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/Domenick1991/airlink/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	service catalog.CatalogUseCase
}

type routeRequest struct {
	SourceID      int64 `json:"source"`
	DestinationID int64 `json:"destination"`
	Distance      int   `json:"distance"`
}

// routeListItem is the flat list shape with the "src - dst" label.
type routeListItem struct {
	ID       int64  `json:"id"`
	Distance int    `json:"distance"`
	GetRoute string `json:"get_route"`
}

type routeDetail struct {
	ID          int64           `json:"id"`
	Source      airportResponse `json:"source"`
	Destination airportResponse `json:"destination"`
	Distance    int             `json:"distance"`
}

func routeDetailShape(rt *domain.Route) routeDetail {
	d := routeDetail{ID: rt.ID, Distance: rt.Distance}
	if rt.Source != nil {
		d.Source = airportShape(rt.Source)
	}
	if rt.Destination != nil {
		d.Destination = airportShape(rt.Destination)
	}
	return d
}

func NewRouteHandler(service catalog.CatalogUseCase) *RouteHandler {
	return &RouteHandler{service: service}
}

func (h *RouteHandler) Register(router *gin.RouterGroup, staffOnly gin.HandlerFunc) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", staffOnly, h.create)
	router.PUT("/:id", staffOnly, h.update)
	router.DELETE("/:id", staffOnly, h.delete)
}

func (h *RouteHandler) list(c *gin.Context) {
	routes, total, err := h.service.ListRoutes(c.Request.Context(), listParams(c))
	if err != nil {
		writeError(c, err)
		return
	}

	results := make([]routeListItem, 0, len(routes))
	for _, rt := range routes {
		results = append(results, routeListItem{ID: rt.ID, Distance: rt.Distance, GetRoute: rt.Label()})
	}
	c.JSON(http.StatusOK, listResponse{Count: total, Results: results})
}

func (h *RouteHandler) get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	rt, err := h.service.GetRoute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, routeDetailShape(rt))
}

func (h *RouteHandler) create(c *gin.Context) {
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rt := &domain.Route{SourceID: req.SourceID, DestinationID: req.DestinationID, Distance: req.Distance}
	if err := h.service.CreateRoute(c.Request.Context(), rt); err != nil {
		writeError(c, err)
		return
	}
	created, err := h.service.GetRoute(c.Request.Context(), rt.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, routeDetailShape(created))
}

func (h *RouteHandler) update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rt := &domain.Route{ID: id, SourceID: req.SourceID, DestinationID: req.DestinationID, Distance: req.Distance}
	if err := h.service.UpdateRoute(c.Request.Context(), rt); err != nil {
		writeError(c, err)
		return
	}
	updated, err := h.service.GetRoute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, routeDetailShape(updated))
}

func (h *RouteHandler) delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if err := h.service.DeleteRoute(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
