//go:build !integration

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/pizzeria-service/internal/domain/model"
	"github.com/guttosm/pizzeria-service/internal/i18n"
)

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone    string
		expected bool
	}{
		{"(11) 99999-9999", true},
		{"(11) 3333-4444", true},
		{"11999999999", false},
		{"(11)99999-9999", false},
		{"(1) 99999-9999", false},
		{"(11) 999999-9999", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidPhone(tt.phone))
		})
	}
}

func TestValidTableNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"1", true},
		{"30", true},
		{"15", true},
		{"0", false},
		{"31", false},
		{"12a", false},
		{"-3", false},
		{" 5", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidTableNumber(tt.input))
		})
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"11999999999", "(11) 99999-9999"},
		{"1133334444", "(11) 3333-4444"},
		{"(11) 99999-9999", "(11) 99999-9999"},
		{"11 9 9999 9999", "(11) 99999-9999"},
		{"119999", "119999"},
		{"+55 11 99999-9999", "+55 11 99999-9999"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPhone(tt.input))
		})
	}
}

func TestFormatPostalCode(t *testing.T) {
	assert.Equal(t, "01234-567", FormatPostalCode("01234567"))
	assert.Equal(t, "01234-567", FormatPostalCode("01234-567"))
	assert.Equal(t, "0123", FormatPostalCode("0123"))
}

func validCustomer() model.CustomerOrderData {
	return model.CustomerOrderData{
		Name:          "Maria Silva",
		Phone:         "(11) 99999-9999",
		PostalCode:    "01234-567",
		Street:        "Rua das Flores",
		Number:        "42",
		Neighborhood:  "Centro",
		City:          "São Paulo",
		PaymentMethod: model.PaymentCash,
	}
}

func TestValidateCustomerStep(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*model.CustomerOrderData)
		orderType model.OrderType
		expected  map[string]string
	}{
		{
			name:      "valid delivery",
			mutate:    func(*model.CustomerOrderData) {},
			orderType: model.OrderTypeDelivery,
			expected:  map[string]string{},
		},
		{
			name:      "blank name and phone",
			mutate:    func(d *model.CustomerOrderData) { d.Name = "  "; d.Phone = "" },
			orderType: model.OrderTypeDelivery,
			expected:  map[string]string{"name": i18n.ValKeyNameRequired, "phone": i18n.ValKeyPhoneRequired},
		},
		{
			name:      "bad phone format",
			mutate:    func(d *model.CustomerOrderData) { d.Phone = "11999999999" },
			orderType: model.OrderTypeDelivery,
			expected:  map[string]string{"phone": i18n.ValKeyPhoneFormat},
		},
		{
			name:      "table without number",
			mutate:    func(*model.CustomerOrderData) {},
			orderType: model.OrderTypeTable,
			expected:  map[string]string{"table_number": i18n.ValKeyTableRequired},
		},
		{
			name:      "table out of range",
			mutate:    func(d *model.CustomerOrderData) { d.TableNumber = "31" },
			orderType: model.OrderTypeTable,
			expected:  map[string]string{"table_number": i18n.ValKeyTableRange},
		},
		{
			name:      "valid table",
			mutate:    func(d *model.CustomerOrderData) { d.TableNumber = "12" },
			orderType: model.OrderTypeTable,
			expected:  map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validCustomer()
			tt.mutate(&data)
			assert.Equal(t, tt.expected, ValidateCustomerStep(data, tt.orderType))
		})
	}
}

func TestValidateAddressStep(t *testing.T) {
	assert.Empty(t, ValidateAddressStep(validCustomer(), model.OrderTypeDelivery))
	assert.Empty(t, ValidateAddressStep(model.CustomerOrderData{}, model.OrderTypeTable))

	errs := ValidateAddressStep(model.CustomerOrderData{Street: "Rua A"}, model.OrderTypeDelivery)
	assert.Equal(t, map[string]string{
		"postal_code":  i18n.ValKeyPostalCodeRequired,
		"number":       i18n.ValKeyNumberRequired,
		"neighborhood": i18n.ValKeyNeighborhoodRequired,
		"city":         i18n.ValKeyCityRequired,
	}, errs)
}

func TestValidatePaymentStep(t *testing.T) {
	assert.Empty(t, ValidatePaymentStep(validCustomer()))

	data := validCustomer()
	data.PaymentMethod = "cheque"
	assert.Equal(t, map[string]string{"payment_method": i18n.ValKeyPaymentMethod}, ValidatePaymentStep(data))
}
