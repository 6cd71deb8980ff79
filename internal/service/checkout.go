package service

import (
	"context"
	"math"
	"sync"

	"github.com/guttosm/pizzeria-service/internal/domain/model"
	"github.com/guttosm/pizzeria-service/internal/metrics"
)

// Checkout steps. Table orders never visit StepAddress.
const (
	StepCustomer = 1
	StepAddress  = 2
	StepPayment  = 3
)

// CheckoutState is a snapshot of a checkout in progress.
type CheckoutState struct {
	Step        int                     `json:"step" example:"1"`
	DisplayStep int                     `json:"display_step" example:"1"`
	TotalSteps  int                     `json:"total_steps" example:"3"`
	OrderType   model.OrderType         `json:"order_type" example:"entrega"`
	Data        model.CustomerOrderData `json:"data"`
	Submitting  bool                    `json:"submitting"`
}

// CheckoutFlow is the multi-step checkout form of one session. It reads the
// session cart and resets itself when the cart empties.
type CheckoutFlow struct {
	mu         sync.Mutex
	cart       Cart
	catalog    CatalogService
	dispatcher OrderDispatcher

	orderType  model.OrderType
	step       int
	data       model.CustomerOrderData
	submitting bool

	unsubscribe func()
}

// NewCheckoutFlow creates a delivery checkout at step one for cart.
func NewCheckoutFlow(cart Cart, catalog CatalogService, dispatcher OrderDispatcher) *CheckoutFlow {
	f := &CheckoutFlow{
		cart:       cart,
		catalog:    catalog,
		dispatcher: dispatcher,
		orderType:  model.OrderTypeDelivery,
		step:       StepCustomer,
		data:       model.DefaultCustomerOrderData(),
	}
	f.unsubscribe = cart.Subscribe(f.onCartChange)
	return f
}

func (f *CheckoutFlow) onCartChange(event CartEvent) {
	if event.ItemCount > 0 {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.submitting {
		f.step = StepCustomer
	}
}

// Close detaches the flow from its cart.
func (f *CheckoutFlow) Close() {
	if f.unsubscribe != nil {
		f.unsubscribe()
	}
}

// State returns the current checkout state.
func (f *CheckoutFlow) State() CheckoutState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stateLocked()
}

// Update replaces the form data. Phone and postal code are reformatted.
func (f *CheckoutFlow) Update(data model.CustomerOrderData) CheckoutState {
	if data.Phone != "" {
		data.Phone = FormatPhone(data.Phone)
	}
	if data.PostalCode != "" {
		data.PostalCode = FormatPostalCode(data.PostalCode)
	}
	if data.PaymentMethod == "" {
		data.PaymentMethod = model.PaymentCash
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = data
	return f.stateLocked()
}

// SetOrderType switches between table and delivery. A table order sitting on
// the address step moves back to step one.
func (f *CheckoutFlow) SetOrderType(orderType model.OrderType) (CheckoutState, error) {
	if !orderType.Valid() {
		return CheckoutState{}, ErrInvalidOption
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.orderType = orderType
	if orderType == model.OrderTypeTable && f.step == StepAddress {
		f.step = StepCustomer
	}
	return f.stateLocked(), nil
}

// Next validates the current step and advances. On the final step it is a
// no-op. A failed guard returns a *ValidationError and keeps the step.
func (f *CheckoutFlow) Next() (CheckoutState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.step {
	case StepCustomer:
		if errs := ValidateCustomerStep(f.data, f.orderType); len(errs) > 0 {
			return f.stateLocked(), validationFailure(StepCustomer, errs)
		}
		if f.orderType == model.OrderTypeTable {
			f.step = StepPayment
		} else {
			f.step = StepAddress
		}
	case StepAddress:
		if errs := ValidateAddressStep(f.data, f.orderType); len(errs) > 0 {
			return f.stateLocked(), validationFailure(StepAddress, errs)
		}
		f.step = StepPayment
	}
	return f.stateLocked(), nil
}

// Back moves one step back, skipping the address step for table orders.
func (f *CheckoutFlow) Back() CheckoutState {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.step {
	case StepPayment:
		if f.orderType == model.OrderTypeTable {
			f.step = StepCustomer
		} else {
			f.step = StepAddress
		}
	case StepAddress:
		f.step = StepCustomer
	}
	return f.stateLocked()
}

// Submit re-validates the form, assembles the order from the cart and
// dispatches it. On success the cart is cleared and the form reset. Only one
// submit runs at a time and it completes even if ctx is cancelled.
func (f *CheckoutFlow) Submit(ctx context.Context) (*DispatchResult, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return nil, ErrSubmitInProgress
	}
	if f.step != StepPayment {
		f.mu.Unlock()
		return nil, ErrNotFinalStep
	}
	lines := f.cart.Lines()
	if len(lines) == 0 {
		f.mu.Unlock()
		return nil, ErrEmptyCart
	}
	if err := f.validateAllLocked(); err != nil {
		f.mu.Unlock()
		return nil, err
	}
	f.submitting = true
	orderType := f.orderType
	data := f.data
	f.mu.Unlock()

	order := f.buildOrder(orderType, data, lines)
	result, err := f.dispatcher.Dispatch(context.WithoutCancel(ctx), order)
	if err != nil {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
		metrics.RecordOrderSubmitted(string(orderType), "error", order.Total)
		return nil, err
	}

	f.cart.Clear()

	f.mu.Lock()
	f.data = model.DefaultCustomerOrderData()
	f.step = StepCustomer
	f.submitting = false
	f.mu.Unlock()

	metrics.RecordOrderSubmitted(string(orderType), "success", result.Order.Total)
	return result, nil
}

func (f *CheckoutFlow) validateAllLocked() error {
	if errs := ValidateCustomerStep(f.data, f.orderType); len(errs) > 0 {
		return validationFailure(StepCustomer, errs)
	}
	if errs := ValidateAddressStep(f.data, f.orderType); len(errs) > 0 {
		return validationFailure(StepAddress, errs)
	}
	if errs := ValidatePaymentStep(f.data); len(errs) > 0 {
		return validationFailure(StepPayment, errs)
	}
	return nil
}

func (f *CheckoutFlow) buildOrder(orderType model.OrderType, data model.CustomerOrderData, lines []model.CartLine) model.Order {
	subtotal := 0.0
	for _, l := range lines {
		subtotal += l.Subtotal()
	}
	fee := 0.0
	if orderType == model.OrderTypeDelivery {
		fee = f.catalog.Info().DeliveryFee
	}
	subtotal = round2(subtotal)

	return model.Order{
		Type:        orderType,
		Customer:    data,
		Lines:       lines,
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       round2(subtotal + fee),
	}
}

func (f *CheckoutFlow) stateLocked() CheckoutState {
	return CheckoutState{
		Step:        f.step,
		DisplayStep: displayStep(f.step, f.orderType),
		TotalSteps:  totalSteps(f.orderType),
		OrderType:   f.orderType,
		Data:        f.data,
		Submitting:  f.submitting,
	}
}

func validationFailure(step int, fields map[string]string) error {
	metrics.RecordCheckoutValidationFailure(step)
	return &ValidationError{Step: step, Fields: fields}
}

func totalSteps(orderType model.OrderType) int {
	if orderType == model.OrderTypeTable {
		return 2
	}
	return 3
}

// displayStep is the step number shown to the customer: table orders show
// the payment step as step two.
func displayStep(step int, orderType model.OrderType) int {
	if orderType == model.OrderTypeTable && step == StepPayment {
		return 2
	}
	return step
}

// round2 rounds to cents.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
