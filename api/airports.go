package api

import (
	"net/http"

	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/Domenick1991/airlink/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type AirportHandler struct {
	service catalog.CatalogUseCase
}

type airportRequest struct {
	Name           string `json:"name"`
	ClosestBigCity string `json:"closest_big_city"`
}

type airportResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	ClosestBigCity string `json:"closest_big_city"`
}

func airportShape(a *domain.Airport) airportResponse {
	return airportResponse{ID: a.ID, Name: a.Name, ClosestBigCity: a.ClosestBigCity}
}

func NewAirportHandler(service catalog.CatalogUseCase) *AirportHandler {
	return &AirportHandler{service: service}
}

func (h *AirportHandler) Register(router *gin.RouterGroup, staffOnly gin.HandlerFunc) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", staffOnly, h.create)
	router.PUT("/:id", staffOnly, h.update)
	router.DELETE("/:id", staffOnly, h.delete)
}

func (h *AirportHandler) list(c *gin.Context) {
	airports, total, err := h.service.ListAirports(c.Request.Context(), listParams(c))
	if err != nil {
		writeError(c, err)
		return
	}

	results := make([]airportResponse, 0, len(airports))
	for _, a := range airports {
		results = append(results, airportShape(&a))
	}
	c.JSON(http.StatusOK, listResponse{Count: total, Results: results})
}

func (h *AirportHandler) get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	a, err := h.service.GetAirport(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airportShape(a))
}

func (h *AirportHandler) create(c *gin.Context) {
	var req airportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a := &domain.Airport{Name: req.Name, ClosestBigCity: req.ClosestBigCity}
	if err := h.service.CreateAirport(c.Request.Context(), a); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airportShape(a))
}

func (h *AirportHandler) update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var req airportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a := &domain.Airport{ID: id, Name: req.Name, ClosestBigCity: req.ClosestBigCity}
	if err := h.service.UpdateAirport(c.Request.Context(), a); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airportShape(a))
}

func (h *AirportHandler) delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if err := h.service.DeleteAirport(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
