package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/pizzeria-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeValidation indicates field level validation failures listed in Details.
	ErrCodeValidation = "validation_failed"
	// ErrCodeUnavailable indicates an optional backend is down.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_failed"`
	Message string `json:"message,omitempty" example:"Please check the highlighted fields"`
	// Details maps a field name to its localized error message
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetails attaches per-field error messages.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	e.Details = details
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusUnprocessableEntity:
		return ErrCodeValidation
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// CartResponse is the cart of the calling session.
//
// @Description Cart contents with derived totals
type CartResponse struct {
	SessionID string           `json:"session_id" example:"6f1c2b9e-7d4a-4c55-9a1e-0b9f7c3d2e10"`
	Lines     []model.CartLine `json:"lines"`
	ItemCount int              `json:"item_count" example:"3"`
	Total     float64          `json:"total" example:"75"`
} // @name CartResponse

// OrderSubmittedResponse is returned once an order has been handed off.
// QRCode is a base64 PNG of Link and is omitted when the link does not fit a
// QR symbol.
//
// @Description Submitted order with its messaging deep link
type OrderSubmittedResponse struct {
	Message string      `json:"message" example:"Order sent"`
	Order   model.Order `json:"order"`
	Link    string      `json:"link" example:"https://wa.me/5511999999999?text=..."`
	QRCode  string      `json:"qr_code,omitempty"`
	// TrackerURL is where the delivery tracker of this order can be followed
	TrackerURL string `json:"tracker_url" example:"/api/tracker/ws?order_id=4b6f2c1e"`
} // @name OrderSubmittedResponse

// TrackerResponse is the static map plus one simulation frame.
//
// @Description Delivery tracker snapshot
type TrackerResponse struct {
	Map   model.TrackerMap   `json:"map"`
	Frame model.TrackerFrame `json:"frame"`
} // @name TrackerResponse

// HealthResponse is the body of the liveness and readiness probes.
type HealthResponse struct {
	Status    string            `json:"status" example:"ok"`
	Checks    map[string]string `json:"checks,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
} // @name HealthResponse
