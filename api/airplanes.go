package api

import (
	"net/http"

	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/Domenick1991/airlink/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type AirplaneHandler struct {
	service catalog.CatalogUseCase
}

type airplaneRequest struct {
	Name           string `json:"name"`
	Rows           int    `json:"rows"`
	SeatsInRow     int    `json:"seats_in_row"`
	AirplaneTypeID int64  `json:"airplane_type"`
}

// airplaneListItem is the flat list shape: the type is denormalized into
// airplane_model and capacity is included for compact display.
type airplaneListItem struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Rows          int    `json:"rows"`
	SeatsInRow    int    `json:"seats_in_row"`
	AirplaneModel string `json:"airplane_model"`
	Capacity      int    `json:"capacity"`
}

type airplaneDetail struct {
	ID           int64                `json:"id"`
	Name         string               `json:"name"`
	Rows         int                  `json:"rows"`
	SeatsInRow   int                  `json:"seats_in_row"`
	AirplaneType airplaneTypeResponse `json:"airplane_type"`
	Capacity     int                  `json:"capacity"`
}

func airplaneDetailShape(a *domain.Airplane) airplaneDetail {
	d := airplaneDetail{
		ID:         a.ID,
		Name:       a.Name,
		Rows:       a.Rows,
		SeatsInRow: a.SeatsInRow,
		Capacity:   a.Capacity(),
	}
	if a.AirplaneType != nil {
		d.AirplaneType = airplaneTypeResponse{ID: a.AirplaneType.ID, Name: a.AirplaneType.Name}
	}
	return d
}

func NewAirplaneHandler(service catalog.CatalogUseCase) *AirplaneHandler {
	return &AirplaneHandler{service: service}
}

func (h *AirplaneHandler) Register(router *gin.RouterGroup, staffOnly gin.HandlerFunc) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", staffOnly, h.create)
	router.PUT("/:id", staffOnly, h.update)
	router.DELETE("/:id", staffOnly, h.delete)
}

func (h *AirplaneHandler) list(c *gin.Context) {
	airplanes, total, err := h.service.ListAirplanes(c.Request.Context(), listParams(c))
	if err != nil {
		writeError(c, err)
		return
	}

	results := make([]airplaneListItem, 0, len(airplanes))
	for _, a := range airplanes {
		item := airplaneListItem{
			ID:         a.ID,
			Name:       a.Name,
			Rows:       a.Rows,
			SeatsInRow: a.SeatsInRow,
			Capacity:   a.Capacity(),
		}
		if a.AirplaneType != nil {
			item.AirplaneModel = a.AirplaneType.Name
		}
		results = append(results, item)
	}
	c.JSON(http.StatusOK, listResponse{Count: total, Results: results})
}

func (h *AirplaneHandler) get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	a, err := h.service.GetAirplane(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplaneDetailShape(a))
}

func (h *AirplaneHandler) create(c *gin.Context) {
	var req airplaneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a := &domain.Airplane{Name: req.Name, Rows: req.Rows, SeatsInRow: req.SeatsInRow, AirplaneTypeID: req.AirplaneTypeID}
	if err := h.service.CreateAirplane(c.Request.Context(), a); err != nil {
		writeError(c, err)
		return
	}
	created, err := h.service.GetAirplane(c.Request.Context(), a.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airplaneDetailShape(created))
}

func (h *AirplaneHandler) update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var req airplaneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a := &domain.Airplane{ID: id, Name: req.Name, Rows: req.Rows, SeatsInRow: req.SeatsInRow, AirplaneTypeID: req.AirplaneTypeID}
	if err := h.service.UpdateAirplane(c.Request.Context(), a); err != nil {
		writeError(c, err)
		return
	}
	updated, err := h.service.GetAirplane(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplaneDetailShape(updated))
}

func (h *AirplaneHandler) delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if err := h.service.DeleteAirplane(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
