package api

import (
	"net/http"

	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/Domenick1991/airlink/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type CrewHandler struct {
	service catalog.CatalogUseCase
}

type crewRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type crewResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

func crewShape(c domain.Crew) crewResponse {
	return crewResponse{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName, FullName: c.FullName()}
}

func NewCrewHandler(service catalog.CatalogUseCase) *CrewHandler {
	return &CrewHandler{service: service}
}

func (h *CrewHandler) Register(router *gin.RouterGroup, staffOnly gin.HandlerFunc) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", staffOnly, h.create)
	router.PUT("/:id", staffOnly, h.update)
	router.DELETE("/:id", staffOnly, h.delete)
}

func (h *CrewHandler) list(c *gin.Context) {
	crews, total, err := h.service.ListCrews(c.Request.Context(), listParams(c))
	if err != nil {
		writeError(c, err)
		return
	}

	results := make([]crewResponse, 0, len(crews))
	for _, member := range crews {
		results = append(results, crewShape(member))
	}
	c.JSON(http.StatusOK, listResponse{Count: total, Results: results})
}

func (h *CrewHandler) get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	member, err := h.service.GetCrew(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, crewShape(*member))
}

func (h *CrewHandler) create(c *gin.Context) {
	var req crewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member := &domain.Crew{FirstName: req.FirstName, LastName: req.LastName}
	if err := h.service.CreateCrew(c.Request.Context(), member); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, crewShape(*member))
}

func (h *CrewHandler) update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var req crewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member := &domain.Crew{ID: id, FirstName: req.FirstName, LastName: req.LastName}
	if err := h.service.UpdateCrew(c.Request.Context(), member); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, crewShape(*member))
}

func (h *CrewHandler) delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if err := h.service.DeleteCrew(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
