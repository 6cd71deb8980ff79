package model

// DeliveryPhase names the stage of the simulated delivery.
type DeliveryPhase string

const (
	PhasePreparing DeliveryPhase = "preparando"
	PhaseDeparting DeliveryPhase = "saindo"
	PhaseEnRoute   DeliveryPhase = "a_caminho"
	PhaseArrived   DeliveryPhase = "chegou"
)

// Point is a position on the 0-100 tracker map.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Landmark is a named point along the route.
type Landmark struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
	Point
}

// TrackerFrame is one snapshot of the delivery simulation.
type TrackerFrame struct {
	Progress    int           `json:"progress" example:"42"`
	Phase       DeliveryPhase `json:"phase" example:"a_caminho"`
	Title       string        `json:"title" example:"A caminho"`
	Description string        `json:"description" example:"Entregador a caminho"`
	Icon        string        `json:"icon"`
	Vehicle     Point         `json:"vehicle"`
	Done        bool          `json:"done"`
	Order       *TrackedOrder `json:"order,omitempty"`
}

// TrackedOrder is the order header shown by the tracker.
type TrackedOrder struct {
	ID           string    `json:"id"`
	Type         OrderType `json:"order_type"`
	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address,omitempty"`
	Total        float64   `json:"total"`
	Estimate     string    `json:"estimate"`
}

// TrackerMap is the static map drawn behind the vehicle.
type TrackerMap struct {
	Start     Point      `json:"start"`
	Route     string     `json:"route"`
	Landmarks []Landmark `json:"landmarks"`
}
