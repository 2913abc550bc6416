package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/Domenick1991/airlink/internal/service/orders"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	service orders.OrderUseCase
}

type createOrderRequest struct {
	Tickets []ticketRequest `json:"tickets"`
}

type ticketRequest struct {
	Row      int   `json:"row"`
	Seat     int   `json:"seat"`
	FlightID int64 `json:"flight"`
}

type ticketResponse struct {
	ID       int64  `json:"id"`
	Row      int    `json:"row"`
	Seat     int    `json:"seat"`
	FlightID *int64 `json:"flight"`
}

type orderResponse struct {
	ID        int64            `json:"id"`
	Number    string           `json:"number"`
	CreatedAt time.Time        `json:"created_at"`
	UserID    *int64           `json:"user"`
	Tickets   []ticketResponse `json:"tickets"`
}

type orderTicketDetail struct {
	ID     int64           `json:"id"`
	Row    int             `json:"row"`
	Seat   int             `json:"seat"`
	Flight *flightListItem `json:"flight"`
}

type orderDetailResponse struct {
	ID        int64               `json:"id"`
	Number    string              `json:"number"`
	CreatedAt time.Time           `json:"created_at"`
	UserID    *int64              `json:"user"`
	Tickets   []orderTicketDetail `json:"tickets"`
}

// orderDetailShape replaces each ticket's flight id with the flight list
// shape, so the retrieve response is self-contained.
func orderDetailShape(d *domain.OrderDetail) orderDetailResponse {
	out := orderDetailResponse{
		ID:        d.ID,
		Number:    d.Number,
		CreatedAt: d.CreatedAt,
		UserID:    d.UserID,
		Tickets:   make([]orderTicketDetail, 0, len(d.Tickets)),
	}
	for _, t := range d.Tickets {
		item := orderTicketDetail{ID: t.ID, Row: t.Row, Seat: t.Seat}
		if t.FlightID != nil {
			if flight, ok := d.TicketFlights[*t.FlightID]; ok {
				shape := flightListShape(flight)
				item.Flight = &shape
			}
		}
		out.Tickets = append(out.Tickets, item)
	}
	return out
}

func orderShape(o *domain.Order) orderResponse {
	out := orderResponse{
		ID:        o.ID,
		Number:    o.Number,
		CreatedAt: o.CreatedAt,
		UserID:    o.UserID,
		Tickets:   make([]ticketResponse, 0, len(o.Tickets)),
	}
	for _, t := range o.Tickets {
		out.Tickets = append(out.Tickets, ticketResponse{ID: t.ID, Row: t.Row, Seat: t.Seat, FlightID: t.FlightID})
	}
	return out
}

func NewOrderHandler(service orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.create)
}

func (h *OrderHandler) viewer(c *gin.Context) orders.Viewer {
	return orders.Viewer{UserID: currentUserID(c), IsStaff: currentIsStaff(c)}
}

func (h *OrderHandler) list(c *gin.Context) {
	result, total, err := h.service.List(c.Request.Context(), h.viewer(c), listParams(c))
	if err != nil {
		writeError(c, err)
		return
	}

	results := make([]orderResponse, 0, len(result))
	for i := range result {
		results = append(results, orderShape(&result[i]))
	}
	c.JSON(http.StatusOK, listResponse{Count: total, Results: results})
}

func (h *OrderHandler) get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	detail, err := h.service.GetByID(c.Request.Context(), h.viewer(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderDetailShape(detail))
}

func (h *OrderHandler) create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The owning account always comes from the session, never the payload.
	input := orders.CreateOrderInput{Tickets: make([]orders.TicketInput, 0, len(req.Tickets))}
	for _, t := range req.Tickets {
		input.Tickets = append(input.Tickets, orders.TicketInput{Row: t.Row, Seat: t.Seat, FlightID: t.FlightID})
	}

	order, err := h.service.Create(c.Request.Context(), currentUserID(c), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, orderShape(order))
}
