package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/Domenick1991/airlink/internal/repository"
	"github.com/Domenick1991/airlink/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightRequest struct {
	RouteID       *int64    `json:"route"`
	AirplaneID    *int64    `json:"airplane"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	CrewIDs       []int64   `json:"crew"`
}

type flightListItem struct {
	ID               int64     `json:"id"`
	Crew             []string  `json:"crew"`
	FlightRoute      string    `json:"flight_route"`
	AirplaneName     string    `json:"airplane_name"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	TicketsAvailable int       `json:"tickets_available"`
}

type flightDetail struct {
	ID               int64            `json:"id"`
	FlightRoute      string           `json:"flight_route"`
	Airplane         *airplaneDetail  `json:"airplane"`
	DepartureTime    time.Time        `json:"departure_time"`
	ArrivalTime      time.Time        `json:"arrival_time"`
	Crew             []crewResponse   `json:"crew"`
	TicketsAvailable int              `json:"tickets_available"`
	TakenPlaces      []domain.SeatRef `json:"taken_places"`
}

func flightListShape(item domain.FlightListItem) flightListItem {
	return flightListItem{
		ID:               item.ID,
		Crew:             item.Crew,
		FlightRoute:      item.RouteLabel,
		AirplaneName:     item.AirplaneName,
		DepartureTime:    item.DepartureTime,
		ArrivalTime:      item.ArrivalTime,
		TicketsAvailable: item.TicketsAvailable,
	}
}

func flightDetailShape(d *domain.FlightDetail) flightDetail {
	out := flightDetail{
		ID:               d.ID,
		FlightRoute:      d.RouteLabel,
		DepartureTime:    d.DepartureTime,
		ArrivalTime:      d.ArrivalTime,
		TicketsAvailable: d.TicketsAvailable,
		TakenPlaces:      d.TakenPlaces,
		Crew:             make([]crewResponse, 0, len(d.Crew)),
	}
	if d.Airplane != nil {
		shape := airplaneDetailShape(d.Airplane)
		out.Airplane = &shape
	}
	for _, member := range d.Crew {
		out.Crew = append(out.Crew, crewShape(member))
	}
	return out
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup, staffOnly gin.HandlerFunc) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", staffOnly, h.create)
	router.PUT("/:id", staffOnly, h.update)
	router.DELETE("/:id", staffOnly, h.delete)
}

// parseTimeFilter accepts an RFC3339 instant (matched exactly) or a
// YYYY-MM-DD date (matched for the whole day, UTC).
func parseTimeFilter(value string) (*time.Time, *time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		from := t
		to := t.Add(time.Microsecond)
		return &from, &to, true
	}
	if day, err := time.Parse("2006-01-02", value); err == nil {
		from := day
		to := day.Add(24 * time.Hour)
		return &from, &to, true
	}
	return nil, nil, false
}

func (h *FlightHandler) filter(c *gin.Context) (repository.FlightFilter, bool) {
	params := listParams(c)
	filter := repository.FlightFilter{Limit: params.Limit, Offset: params.Offset}

	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id filter"})
			return filter, false
		}
		filter.ID = &id
	}
	if raw := c.Query("route"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid route filter"})
			return filter, false
		}
		filter.RouteID = &id
	}
	if raw := c.Query("departure_time"); raw != "" {
		from, to, ok := parseTimeFilter(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid departure_time filter"})
			return filter, false
		}
		filter.DepartureFrom, filter.DepartureTo = from, to
	}
	if raw := c.Query("arrival_time"); raw != "" {
		from, to, ok := parseTimeFilter(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid arrival_time filter"})
			return filter, false
		}
		filter.ArrivalFrom, filter.ArrivalTo = from, to
	}
	return filter, true
}

func (h *FlightHandler) list(c *gin.Context) {
	filter, ok := h.filter(c)
	if !ok {
		return
	}

	items, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	results := make([]flightListItem, 0, len(items))
	for _, item := range items {
		results = append(results, flightListShape(item))
	}
	c.JSON(http.StatusOK, listResponse{Count: total, Results: results})
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	d, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flightDetailShape(d))
}

func (h *FlightHandler) create(c *gin.Context) {
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := h.service.Create(c.Request.Context(), flights.FlightInput{
		RouteID:       req.RouteID,
		AirplaneID:    req.AirplaneID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		CrewIDs:       req.CrewIDs,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flightDetailShape(d))
}

func (h *FlightHandler) update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := h.service.Update(c.Request.Context(), id, flights.FlightInput{
		RouteID:       req.RouteID,
		AirplaneID:    req.AirplaneID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		CrewIDs:       req.CrewIDs,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flightDetailShape(d))
}

func (h *FlightHandler) delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
