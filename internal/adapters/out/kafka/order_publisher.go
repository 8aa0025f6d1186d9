// Package kafka announces committed order changes on a Kafka topic so that
// notification and tracking services can follow the order lifecycle.
package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// Events are written synchronously right after commit, one per request, so
// the writer flushes every message on its own instead of waiting for a batch.
const (
	batchSize    = 1
	batchTimeout = 5 * time.Millisecond
)

// OrderChangedEvent is the message value. Messages are keyed by order id, so
// all events of one order land on one partition in commit order.
type OrderChangedEvent struct {
	EventID               string     `json:"event_id"`
	Type                  string     `json:"type"`
	OrderID               string     `json:"order_id"`
	CustomerID            string     `json:"customer_id"`
	RestaurantID          string     `json:"restaurant_id"`
	DriverID              *string    `json:"driver_id,omitempty"`
	Status                string     `json:"status"`
	PaymentStatus         string     `json:"payment_status"`
	Total                 string     `json:"total"`
	EstimatedDeliveryTime *time.Time `json:"estimated_delivery_time,omitempty"`
	OccurredAt            time.Time  `json:"occurred_at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

var _ ports.OrderEventPublisher = (*OrderPublisher)(nil)

// OrderPublisher writes OrderChangedEvent messages to one topic.
type OrderPublisher struct {
	writer messageWriter
}

// NewOrderPublisher connects to the comma separated broker list. It returns
// nil when no broker is configured; use NopPublisher in that case.
func NewOrderPublisher(brokersCSV, topic string) *OrderPublisher {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return nil
	}

	return newOrderPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchSize:              batchSize,
		BatchTimeout:           batchTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	})
}

func newOrderPublisher(writer messageWriter) *OrderPublisher {
	return &OrderPublisher{writer: writer}
}

func (p *OrderPublisher) PublishOrderChanged(ctx context.Context, aggregate *order.Order) error {
	event := newOrderChangedEvent(aggregate)
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	})
}

func (p *OrderPublisher) Close() error {
	return p.writer.Close()
}

func newOrderChangedEvent(aggregate *order.Order) OrderChangedEvent {
	eventType := EventOrderStatusChanged
	if aggregate.Status() == order.Pending && aggregate.UpdatedAt().Equal(aggregate.CreatedAt()) {
		eventType = EventOrderCreated
	}

	var driverID *string
	if id := aggregate.Driver(); id != nil {
		s := id.String()
		driverID = &s
	}

	return OrderChangedEvent{
		EventID:               uuid.NewString(),
		Type:                  eventType,
		OrderID:               aggregate.ID().String(),
		CustomerID:            aggregate.CustomerID().String(),
		RestaurantID:          aggregate.RestaurantID().String(),
		DriverID:              driverID,
		Status:                aggregate.Status().String(),
		PaymentStatus:         aggregate.PaymentStatus().String(),
		Total:                 aggregate.Totals().Total().Amount().StringFixed(2),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		OccurredAt:            aggregate.UpdatedAt(),
	}
}

// NopPublisher drops every event. It stands in when Kafka is not configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderChanged(context.Context, *order.Order) error { return nil }
