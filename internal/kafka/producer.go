package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// OrderEvent is the payload published for order lifecycle and reminder events.
type OrderEvent struct {
	Type          string    `json:"type"`
	OrderNumber   string    `json:"order_number"`
	Email         string    `json:"email"`
	FlightID      int64     `json:"flight_id,omitempty"`
	RouteLabel    string    `json:"route_label,omitempty"`
	DepartureTime time.Time `json:"departure_time,omitzero"`
	TicketCount   int       `json:"ticket_count,omitempty"`
	Row           int       `json:"row,omitempty"`
	Seat          int       `json:"seat,omitempty"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
			Async:        false,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
