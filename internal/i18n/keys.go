package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	// ErrKeyInvalidCredentials is shown on a failed admin login.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	ErrKeyForbidden          = "error.forbidden"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyInvalidToken       = "error.invalid_token"
	ErrKeyTokenRequired      = "error.token_required"
	ErrKeyTimeout            = "error.timeout"
	ErrKeyUnknownCategory    = "error.unknown_category"
	ErrKeyItemNotFound       = "error.item_not_found"
	ErrKeyItemUnavailable    = "error.item_unavailable"
	ErrKeyInvalidItem        = "error.invalid_item"
	ErrKeyInvalidOption      = "error.invalid_option"
	ErrKeyEmptyCart          = "error.empty_cart"
	ErrKeyNotFinalStep       = "error.not_final_step"
	ErrKeySubmitInProgress   = "error.submit_in_progress"
	ErrKeyOrderNotFound      = "error.order_not_found"
	ErrKeyAuditUnavailable   = "error.audit_unavailable"
	// ErrKeyValidationFailed is the top level message of a field error map.
	ErrKeyValidationFailed = "error.validation_failed"
)

// Checkout field validation keys.
const (
	ValKeyNameRequired         = "validation.name_required"
	ValKeyPhoneRequired        = "validation.phone_required"
	ValKeyPhoneFormat          = "validation.phone_format"
	ValKeyTableRequired        = "validation.table_required"
	ValKeyTableRange           = "validation.table_range"
	ValKeyPostalCodeRequired   = "validation.postal_code_required"
	ValKeyStreetRequired       = "validation.street_required"
	ValKeyNumberRequired       = "validation.number_required"
	ValKeyNeighborhoodRequired = "validation.neighborhood_required"
	ValKeyCityRequired         = "validation.city_required"
	ValKeyPaymentMethod        = "validation.payment_method"
	ValKeyOrderType            = "validation.order_type"
)

// Success message translation keys.
const (
	SuccessKeyOrderSent = "success.order_sent"
	SuccessKeyLoggedIn  = "success.logged_in"
)
