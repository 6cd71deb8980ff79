package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/guttosm/pizzeria-service/config"
	"github.com/guttosm/pizzeria-service/internal/domain/model"
)

const (
	defaultMessagingDomain = "wa.me"
	defaultQRCodeSize      = 256
	ordersCacheName        = "orders"
	ordersCacheCapacity    = 5000
	ordersCacheShards      = 16
)

// OrderNotifier is told about every dispatched order. Notifier errors are
// logged and never fail the checkout.
type OrderNotifier interface {
	OrderPlaced(ctx context.Context, order model.Order) error
}

// DispatchResult is a dispatched order plus the QR code of its link. QRCode
// is nil when the link does not fit in a QR symbol.
type DispatchResult struct {
	Order  model.Order
	QRCode []byte
}

// OrderDispatcher hands orders off to the messaging service and remembers
// them for the delivery tracker.
type OrderDispatcher interface {
	Dispatch(ctx context.Context, order model.Order) (*DispatchResult, error)
	Order(id string) (model.Order, error)
}

// OrderDispatchService builds the order message and deep link, then notifies
// the registered notifiers.
type OrderDispatchService struct {
	catalog         CatalogService
	delay           time.Duration
	messagingDomain string
	siteDomain      string
	qrSize          int
	notifiers       []OrderNotifier
	orders          *ShardedCache[model.Order]
	wait            func(time.Duration)
	clock           func() time.Time
}

var _ OrderDispatcher = (*OrderDispatchService)(nil)

// NewOrderDispatchService creates the dispatcher from the checkout settings.
func NewOrderDispatchService(catalog CatalogService, cfg config.CheckoutConfig, notifiers ...OrderNotifier) *OrderDispatchService {
	domain := cfg.MessagingDomain
	if domain == "" {
		domain = defaultMessagingDomain
	}
	size := cfg.QRCodeSize
	if size <= 0 {
		size = defaultQRCodeSize
	}
	ttl := cfg.OrderTTL
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}

	return &OrderDispatchService{
		catalog:         catalog,
		delay:           cfg.SubmitDelay,
		messagingDomain: domain,
		siteDomain:      cfg.SiteDomain,
		qrSize:          size,
		notifiers:       notifiers,
		orders:          NewShardedCache[model.Order](ordersCacheName, ordersCacheCapacity, ttl, ordersCacheShards),
		wait:            time.Sleep,
		clock:           time.Now,
	}
}

// Dispatch waits the configured submit delay, then fills in the order id,
// summary and link. The delay and the notifiers ignore cancellation of ctx.
func (s *OrderDispatchService) Dispatch(ctx context.Context, order model.Order) (*DispatchResult, error) {
	ctx = context.WithoutCancel(ctx)
	if s.delay > 0 {
		s.wait(s.delay)
	}

	info := s.catalog.Info()
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = s.clock().UTC()
	}
	order.Summary = FormatOrderSummary(order, info, s.siteDomain)
	order.Link = DeepLink(s.messagingDomain, info.WhatsApp, order.Summary)

	result := &DispatchResult{Order: order}
	png, err := EncodeQRCode(order.Link, s.qrSize)
	if err != nil {
		log.Warn().
			Err(err).
			Str("order_id", order.ID).
			Int("link_length", len(order.Link)).
			Msg("Order link does not fit in a QR code")
	} else {
		result.QRCode = png
	}

	s.orders.Set(order.ID, order)

	for _, n := range s.notifiers {
		if err := n.OrderPlaced(ctx, order); err != nil {
			log.Error().
				Err(err).
				Str("order_id", order.ID).
				Msg("Order notifier failed")
		}
	}

	log.Info().
		Str("order_id", order.ID).
		Str("order_type", string(order.Type)).
		Int("items", order.ItemCount()).
		Float64("total", order.Total).
		Msg("Order dispatched")

	return result, nil
}

// Order returns a recently dispatched order.
func (s *OrderDispatchService) Order(id string) (model.Order, error) {
	order, ok := s.orders.Get(id)
	if !ok {
		return model.Order{}, ErrOrderNotFound
	}
	return order, nil
}

// Stop releases the order cache.
func (s *OrderDispatchService) Stop() {
	s.orders.Stop()
}

// DeepLink builds https://<domain>/<phone>?text=<message>.
func DeepLink(domain, phone, message string) string {
	return fmt.Sprintf("https://%s/%s?text=%s", domain, phone, EncodeURIComponent(message))
}

// EncodeQRCode renders content as a PNG QR code of size pixels.
func EncodeQRCode(content string, size int) ([]byte, error) {
	qr, err := qrcode.New(content, qrcode.Low)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return qr.PNG(size)
}

// uriComponentUnescape restores the marks that URI component encoding keeps
// but query escaping does not.
var uriComponentUnescape = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes s so that only A-Z a-z 0-9 and - _ . ! ~ * ' ( )
// are left as is.
func EncodeURIComponent(s string) string {
	return uriComponentUnescape.Replace(url.QueryEscape(s))
}

// AuditNotifier records dispatched orders in the audit log.
type AuditNotifier struct {
	logging LoggingService
}

var _ OrderNotifier = (*AuditNotifier)(nil)

// NewAuditNotifier creates a notifier writing to logging.
func NewAuditNotifier(logging LoggingService) *AuditNotifier {
	return &AuditNotifier{logging: logging}
}

// OrderPlaced writes one audit entry for order.
func (n *AuditNotifier) OrderPlaced(ctx context.Context, order model.Order) error {
	entry := &model.LogEntry{
		Timestamp:  order.CreatedAt,
		Level:      "info",
		Message:    "Order dispatched",
		ActionType: model.ActionOrderDispatched,
		Actor:      order.Customer.Name,
	}
	entry.WithFields(map[string]interface{}{
		"order_id":   order.ID,
		"order_type": string(order.Type),
		"items":      order.ItemCount(),
		"subtotal":   order.Subtotal,
		"total":      order.Total,
	})
	return n.logging.CreateLog(ctx, entry)
}
