package api

import (
	"net/http"

	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/Domenick1991/airlink/internal/service/tickets"
	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service tickets.TicketUseCase
}

type ticketListItem struct {
	ID       int64  `json:"id"`
	Row      int    `json:"row"`
	Seat     int    `json:"seat"`
	FlightID *int64 `json:"flight"`
	OrderID  *int64 `json:"order"`
}

// ticketDetailResponse nests the flight list shape so staff can see the ticket
// in its operational context without a second lookup.
type ticketDetailResponse struct {
	ID      int64           `json:"id"`
	Row     int             `json:"row"`
	Seat    int             `json:"seat"`
	Flight  *flightListItem `json:"flight"`
	OrderID *int64          `json:"order"`
}

func ticketDetailShape(d *domain.TicketDetail) ticketDetailResponse {
	out := ticketDetailResponse{ID: d.ID, Row: d.Row, Seat: d.Seat, OrderID: d.OrderID}
	if d.Flight != nil {
		shape := flightListShape(*d.Flight)
		out.Flight = &shape
	}
	return out
}

func NewTicketHandler(service tickets.TicketUseCase) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
}

func (h *TicketHandler) list(c *gin.Context) {
	result, total, err := h.service.List(c.Request.Context(), listParams(c))
	if err != nil {
		writeError(c, err)
		return
	}

	results := make([]ticketListItem, 0, len(result))
	for _, t := range result {
		results = append(results, ticketListItem{ID: t.ID, Row: t.Row, Seat: t.Seat, FlightID: t.FlightID, OrderID: t.OrderID})
	}
	c.JSON(http.StatusOK, listResponse{Count: total, Results: results})
}

func (h *TicketHandler) get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	d, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticketDetailShape(d))
}
