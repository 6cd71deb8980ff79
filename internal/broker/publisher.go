// Package broker publishes order events to RabbitMQ so a kitchen display or
// notification worker can pick them up.
package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/pizzeria-service/config"
	"github.com/guttosm/pizzeria-service/internal/circuitbreaker"
	"github.com/guttosm/pizzeria-service/internal/domain/model"
	"github.com/guttosm/pizzeria-service/internal/metrics"
)

const (
	// EventOrderPlaced is the event name carried in the message body.
	EventOrderPlaced = "order.placed"

	publishTimeout = 5 * time.Second
	sourceHeader   = "pizzeria-service"
)

// ErrPublisherClosed is returned after Close.
var ErrPublisherClosed = errors.New("broker publisher is closed")

// Channel is the subset of *amqp.Channel the publisher uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// EventItem is one order line in an order event.
type EventItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderPlacedEvent is the JSON body of an order.placed message.
type OrderPlacedEvent struct {
	Event        string      `json:"event"`
	OrderID      string      `json:"order_id"`
	OrderType    string      `json:"order_type"`
	CustomerName string      `json:"customer_name"`
	Phone        string      `json:"phone"`
	TableNumber  string      `json:"table_number,omitempty"`
	Items        []EventItem `json:"items"`
	Subtotal     float64     `json:"subtotal"`
	DeliveryFee  float64     `json:"delivery_fee"`
	Total        float64     `json:"total"`
	Priority     int         `json:"priority"`
	CreatedAt    time.Time   `json:"created_at"`
}

// NewOrderPlacedEvent builds the event body for order.
func NewOrderPlacedEvent(order model.Order) OrderPlacedEvent {
	items := make([]EventItem, 0, len(order.Lines))
	for _, l := range order.Lines {
		items = append(items, EventItem{Name: l.Name, Quantity: l.Quantity, Price: l.UnitPrice})
	}
	return OrderPlacedEvent{
		Event:        EventOrderPlaced,
		OrderID:      order.ID,
		OrderType:    string(order.Type),
		CustomerName: order.Customer.Name,
		Phone:        order.Customer.Phone,
		TableNumber:  order.Customer.TableNumber,
		Items:        items,
		Subtotal:     order.Subtotal,
		DeliveryFee:  order.DeliveryFee,
		Total:        order.Total,
		Priority:     Priority(order.Total),
		CreatedAt:    order.CreatedAt,
	}
}

// Priority maps an order total to a message priority: 10 from 100,
// 5 from 50, otherwise 1.
func Priority(total float64) int {
	switch {
	case total >= 100:
		return 10
	case total >= 50:
		return 5
	default:
		return 1
	}
}

// RoutingKey returns kitchen.<order type>.<priority>.
func RoutingKey(orderType model.OrderType, priority int) string {
	return fmt.Sprintf("kitchen.%s.%d", orderType, priority)
}

// Publisher sends order events to a topic exchange. Publishing goes through
// a circuit breaker so an unreachable broker fails fast.
type Publisher struct {
	conn     *amqp.Connection
	ch       Channel
	exchange string
	cb       *circuitbreaker.CircuitBreaker

	mu     sync.Mutex
	closed bool
}

// Dial connects to the broker in cfg and declares the exchange.
func Dial(cfg config.BrokerConfig, cb *circuitbreaker.CircuitBreaker) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open broker channel: %w", err)
	}

	p, err := NewPublisher(ch, cfg.Exchange, cb)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

// NewPublisher declares a durable topic exchange on ch and returns a
// publisher for it. A nil breaker gets the default configuration.
func NewPublisher(ch Channel, exchange string, cb *circuitbreaker.CircuitBreaker) (*Publisher, error) {
	if cb == nil {
		cfg := circuitbreaker.DefaultConfig()
		cfg.Name = "broker"
		cb = circuitbreaker.New(cfg)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}
	return &Publisher{ch: ch, exchange: exchange, cb: cb}, nil
}

// OrderPlaced publishes an order.placed event for order.
func (p *Publisher) OrderPlaced(ctx context.Context, order model.Order) error {
	event := NewOrderPlacedEvent(order)
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode order event: %w", err)
	}
	key := RoutingKey(order.Type, event.Priority)

	err = p.cb.Execute(ctx, func() error {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.closed {
			return ErrPublisherClosed
		}

		pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
		defer cancel()
		return p.ch.PublishWithContext(pubCtx, p.exchange, key, false, false, amqp.Publishing{
			DeliveryMode:  amqp.Persistent,
			ContentType:   "application/json",
			Body:          body,
			MessageId:     order.ID,
			CorrelationId: order.ID,
			Timestamp:     time.Now().UTC(),
			Priority:      uint8(event.Priority),
			Type:          EventOrderPlaced,
			Headers:       amqp.Table{"x-source": sourceHeader},
		})
	})
	if err != nil {
		metrics.RecordBrokerPublish("error")
		return fmt.Errorf("failed to publish order %s: %w", order.ID, err)
	}

	metrics.RecordBrokerPublish("success")
	log.Debug().
		Str("order_id", order.ID).
		Str("routing_key", key).
		Msg("Order event published")
	return nil
}

// Ping reports whether the connection is still open.
func (p *Publisher) Ping() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || (p.conn != nil && p.conn.IsClosed()) {
		return ErrPublisherClosed
	}
	return nil
}

// CircuitBreaker returns the breaker guarding publishes.
func (p *Publisher) CircuitBreaker() *circuitbreaker.CircuitBreaker {
	return p.cb
}

// Close closes the channel and connection. It is safe to call twice.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true

	var errs []error
	if p.ch != nil {
		errs = append(errs, p.ch.Close())
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
	}
	return errors.Join(errs...)
}
