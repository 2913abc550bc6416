package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/Domenick1991/airlink/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTicketUseCase is a mock implementation of tickets.TicketUseCase
type MockTicketUseCase struct {
	mock.Mock
}

func (m *MockTicketUseCase) List(ctx context.Context, params repository.ListParams) ([]domain.Ticket, int, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Ticket), args.Int(1), args.Error(2)
}

func (m *MockTicketUseCase) GetByID(ctx context.Context, id int64) (*domain.TicketDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TicketDetail), args.Error(1)
}

func TestTicketHandler_list(t *testing.T) {
	mockService := &MockTicketUseCase{}
	handler := NewTicketHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/tickets", nil)

	flightID := int64(4)
	orderID := int64(7)
	mockService.On("List", c.Request.Context(), repository.ListParams{Limit: 10}).
		Return([]domain.Ticket{{ID: 1, Row: 2, Seat: 3, FlightID: &flightID, OrderID: &orderID}}, 1, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["count"])
	results := body["results"].([]any)
	require.Len(t, results, 1)
	first := results[0].(map[string]any)
	assert.Equal(t, float64(4), first["flight"])
	assert.Equal(t, float64(7), first["order"])

	mockService.AssertExpectations(t)
}

func TestTicketHandler_get_EmbedsFlight(t *testing.T) {
	mockService := &MockTicketUseCase{}
	handler := NewTicketHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "9"}}
	c.Request = httptest.NewRequest("GET", "/tickets/9", nil)

	flightID := int64(4)
	orderID := int64(7)
	detail := &domain.TicketDetail{
		Ticket: domain.Ticket{ID: 9, Row: 2, Seat: 3, FlightID: &flightID, OrderID: &orderID},
		Flight: &domain.FlightListItem{ID: 4, RouteLabel: "VKO - LED", AirplaneName: "Boeing 737"},
	}

	mockService.On("GetByID", c.Request.Context(), int64(9)).Return(detail, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	flight, ok := body["flight"].(map[string]any)
	require.True(t, ok, "flight must be an object, not a bare id")
	assert.Equal(t, "VKO - LED", flight["flight_route"])
	assert.Equal(t, float64(7), body["order"])

	mockService.AssertExpectations(t)
}

func TestTicketHandler_get_NotFound(t *testing.T) {
	mockService := &MockTicketUseCase{}
	handler := NewTicketHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "99"}}
	c.Request = httptest.NewRequest("GET", "/tickets/99", nil)

	mockService.On("GetByID", c.Request.Context(), int64(99)).Return(nil, domain.ErrNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}
