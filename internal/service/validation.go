package service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/guttosm/pizzeria-service/internal/domain/model"
	"github.com/guttosm/pizzeria-service/internal/i18n"
)

const (
	minTableNumber = 1
	maxTableNumber = 30
)

var (
	phonePattern  = regexp.MustCompile(`^\(\d{2}\)\s\d{4,5}-\d{4}$`)
	digitsPattern = regexp.MustCompile(`^\d+$`)
	nonDigits     = regexp.MustCompile(`\D`)
	phoneGroups   = regexp.MustCompile(`(\d{2})(\d{4,5})(\d{4})`)
	postalGroups  = regexp.MustCompile(`(\d{5})(\d{3})`)
)

// ValidPhone reports whether phone is "(DD) DDDD-DDDD" or "(DD) DDDDD-DDDD".
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidTableNumber reports whether s is all digits and between 1 and 30.
func ValidTableNumber(s string) bool {
	if !digitsPattern.MatchString(s) {
		return false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return n >= minTableNumber && n <= maxTableNumber
}

// FormatPhone formats up to eleven digits as a Brazilian phone number. Input
// with more digits is returned unchanged.
func FormatPhone(value string) string {
	digits := nonDigits.ReplaceAllString(value, "")
	if len(digits) > 11 {
		return value
	}
	return phoneGroups.ReplaceAllString(digits, "($1) $2-$3")
}

// FormatPostalCode formats a CEP as DDDDD-DDD.
func FormatPostalCode(value string) string {
	digits := nonDigits.ReplaceAllString(value, "")
	return postalGroups.ReplaceAllString(digits, "$1-$2")
}

// ValidateCustomerStep checks step one: name, phone and, for table orders,
// the table number. It returns a field to message key map, empty when valid.
func ValidateCustomerStep(data model.CustomerOrderData, orderType model.OrderType) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(data.Name) == "" {
		errs["name"] = i18n.ValKeyNameRequired
	}
	if strings.TrimSpace(data.Phone) == "" {
		errs["phone"] = i18n.ValKeyPhoneRequired
	} else if !ValidPhone(data.Phone) {
		errs["phone"] = i18n.ValKeyPhoneFormat
	}

	if orderType == model.OrderTypeTable {
		table := strings.TrimSpace(data.TableNumber)
		if table == "" {
			errs["table_number"] = i18n.ValKeyTableRequired
		} else if !ValidTableNumber(data.TableNumber) {
			errs["table_number"] = i18n.ValKeyTableRange
		}
	}
	return errs
}

// ValidateAddressStep checks step two. Table orders always pass.
func ValidateAddressStep(data model.CustomerOrderData, orderType model.OrderType) map[string]string {
	errs := make(map[string]string)
	if orderType != model.OrderTypeDelivery {
		return errs
	}

	required := []struct {
		field string
		value string
		key   string
	}{
		{"postal_code", data.PostalCode, i18n.ValKeyPostalCodeRequired},
		{"street", data.Street, i18n.ValKeyStreetRequired},
		{"number", data.Number, i18n.ValKeyNumberRequired},
		{"neighborhood", data.Neighborhood, i18n.ValKeyNeighborhoodRequired},
		{"city", data.City, i18n.ValKeyCityRequired},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs[r.field] = r.key
		}
	}
	return errs
}

// ValidatePaymentStep checks the payment method.
func ValidatePaymentStep(data model.CustomerOrderData) map[string]string {
	errs := make(map[string]string)
	if !data.PaymentMethod.Valid() {
		errs["payment_method"] = i18n.ValKeyPaymentMethod
	}
	return errs
}
