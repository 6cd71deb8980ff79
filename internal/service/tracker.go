package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/guttosm/pizzeria-service/config"
	"github.com/guttosm/pizzeria-service/internal/domain/model"
	"github.com/guttosm/pizzeria-service/internal/metrics"
)

// MaxProgress is the progress of a delivered order.
const MaxProgress = 100

const (
	preparingUntil = 20
	departingUntil = 25
	enRouteUntil   = 90
	routeDistance  = 75.0
	routeSway      = 10.0
)

var vehicleStart = model.Point{X: 10, Y: 50}

type phaseInfo struct {
	phase       model.DeliveryPhase
	title       string
	description string
	icon        string
}

var phases = []phaseInfo{
	{model.PhasePreparing, "Preparando", "Sua pizza está sendo preparada", "🍕"},
	{model.PhaseDeparting, "Saindo", "Pedido saiu para entrega", "🏍️"},
	{model.PhaseEnRoute, "A caminho", "Entregador a caminho", "🛣️"},
	{model.PhaseArrived, "Chegou", "Entregador chegou!", "🏠"},
}

// DefaultTrackerMap returns the route and landmarks drawn by the tracker.
func DefaultTrackerMap() model.TrackerMap {
	landmarks := []model.Landmark{
		{Name: "Semáforo Principal", Icon: "🚦", Point: model.Point{X: 25, Y: 45}},
		{Name: "Supermercado Central", Icon: "🏪", Point: model.Point{X: 45, Y: 35}},
		{Name: "Praça da Cidade", Icon: "🌳", Point: model.Point{X: 65, Y: 55}},
		{Name: "Seu Bairro", Icon: "🏘️", Point: model.Point{X: 85, Y: 40}},
	}

	route := fmt.Sprintf("M %g %g", vehicleStart.X, vehicleStart.Y)
	prev := vehicleStart
	for _, l := range landmarks {
		route += fmt.Sprintf(" Q %g %g %g %g", prev.X+5, prev.Y-5, l.X, l.Y)
		prev = l.Point
	}

	return model.TrackerMap{Start: vehicleStart, Route: route, Landmarks: landmarks}
}

// PhaseAt returns the delivery phase for progress.
func PhaseAt(progress int) model.DeliveryPhase {
	return phaseFor(progress).phase
}

func phaseFor(progress int) phaseInfo {
	switch {
	case progress <= preparingUntil:
		return phases[0]
	case progress <= departingUntil:
		return phases[1]
	case progress <= enRouteUntil:
		return phases[2]
	default:
		return phases[3]
	}
}

// VehiclePosition returns where the vehicle is drawn at progress. It only
// moves while en route and otherwise keeps its last position.
func VehiclePosition(progress int) model.Point {
	switch {
	case progress <= departingUntil:
		return vehicleStart
	case progress > enRouteUntil:
		progress = enRouteUntil
	}

	d := float64(progress-departingUntil) / float64(enRouteUntil-departingUntil)
	return model.Point{
		X: round2(vehicleStart.X + d*routeDistance),
		Y: round2(vehicleStart.Y + math.Sin(d*math.Pi*3)*routeSway),
	}
}

// FrameAt returns the tracker frame for progress, clamped to 0..100.
func FrameAt(progress int) model.TrackerFrame {
	progress = max(0, min(progress, MaxProgress))
	p := phaseFor(progress)
	return model.TrackerFrame{
		Progress:    progress,
		Phase:       p.phase,
		Title:       p.title,
		Description: p.description,
		Icon:        p.icon,
		Vehicle:     VehiclePosition(progress),
		Done:        progress == MaxProgress,
	}
}

// TrackedOrderFrom returns the tracker header for order.
func TrackedOrderFrom(order model.Order) *model.TrackedOrder {
	tracked := &model.TrackedOrder{
		ID:           order.ID,
		Type:         order.Type,
		CustomerName: order.Customer.Name,
		Phone:        order.Customer.Phone,
		Total:        order.Total,
		Estimate:     EstimateFor(order.Type),
	}
	if order.Type == model.OrderTypeDelivery {
		c := order.Customer
		tracked.Address = fmt.Sprintf("%s, %s - %s", c.Street, c.Number, c.Neighborhood)
	}
	return tracked
}

// DeliveryTracker streams the simulated delivery of an order.
type DeliveryTracker struct {
	tick   time.Duration
	orders OrderDispatcher
}

// NewDeliveryTracker creates a tracker advancing one percent per tick.
func NewDeliveryTracker(cfg config.TrackerConfig, orders OrderDispatcher) *DeliveryTracker {
	tick := cfg.Tick
	if tick <= 0 {
		tick = 200 * time.Millisecond
	}
	return &DeliveryTracker{tick: tick, orders: orders}
}

// Stream calls emit with frames from progress 0 to 100, one per tick. The
// first frame carries the order header when orderID is a known order. It
// returns when the delivery completes, ctx is done or emit fails.
func (t *DeliveryTracker) Stream(ctx context.Context, orderID string, emit func(model.TrackerFrame) error) error {
	metrics.TrackerStreams.Inc()
	defer metrics.TrackerStreams.Dec()

	first := FrameAt(0)
	if orderID != "" && t.orders != nil {
		if order, err := t.orders.Order(orderID); err == nil {
			first.Order = TrackedOrderFrom(order)
		}
	}
	if err := emit(first); err != nil {
		return err
	}

	ticker := time.NewTicker(t.tick)
	defer ticker.Stop()

	for progress := 1; progress <= MaxProgress; progress++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		if err := emit(FrameAt(progress)); err != nil {
			return err
		}
	}
	return nil
}
