package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/Domenick1991/airlink/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type AirplaneTypeHandler struct {
	service catalog.CatalogUseCase
}

type airplaneTypeRequest struct {
	Name string `json:"name"`
}

type airplaneTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewAirplaneTypeHandler(service catalog.CatalogUseCase) *AirplaneTypeHandler {
	return &AirplaneTypeHandler{service: service}
}

func (h *AirplaneTypeHandler) Register(router *gin.RouterGroup, staffOnly gin.HandlerFunc) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", staffOnly, h.create)
	router.PUT("/:id", staffOnly, h.update)
	router.DELETE("/:id", staffOnly, h.delete)
}

func (h *AirplaneTypeHandler) list(c *gin.Context) {
	types, total, err := h.service.ListAirplaneTypes(c.Request.Context(), listParams(c))
	if err != nil {
		writeError(c, err)
		return
	}

	results := make([]airplaneTypeResponse, 0, len(types))
	for _, t := range types {
		results = append(results, airplaneTypeResponse{ID: t.ID, Name: t.Name})
	}
	c.JSON(http.StatusOK, listResponse{Count: total, Results: results})
}

func (h *AirplaneTypeHandler) get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	t, err := h.service.GetAirplaneType(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplaneTypeResponse{ID: t.ID, Name: t.Name})
}

func (h *AirplaneTypeHandler) create(c *gin.Context) {
	var req airplaneTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t := &domain.AirplaneType{Name: req.Name}
	if err := h.service.CreateAirplaneType(c.Request.Context(), t); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airplaneTypeResponse{ID: t.ID, Name: t.Name})
}

func (h *AirplaneTypeHandler) update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var req airplaneTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t := &domain.AirplaneType{ID: id, Name: req.Name}
	if err := h.service.UpdateAirplaneType(c.Request.Context(), t); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplaneTypeResponse{ID: t.ID, Name: t.Name})
}

func (h *AirplaneTypeHandler) delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if err := h.service.DeleteAirplaneType(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseID reads the :id path parameter, writing a 400 on malformed input.
func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, err
	}
	return id, nil
}
