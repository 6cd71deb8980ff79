package http

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-service/internal/domain/dto"
	"github.com/guttosm/pizzeria-service/internal/i18n"
	"github.com/guttosm/pizzeria-service/internal/middleware"
	"github.com/guttosm/pizzeria-service/internal/service"
)

// Response DTO pools for reducing allocations.
var (
	successResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.ErrorResponse{}
		},
	}
)

// getSuccessResponse retrieves a SuccessResponse from the pool.
func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

// putSuccessResponse returns a SuccessResponse to the pool.
func putSuccessResponse(resp *dto.SuccessResponse) {
	// Clear the response before returning to pool
	resp.Data = nil
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	successResponsePool.Put(resp)
}

// getErrorResponse retrieves an ErrorResponse from the pool.
func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

// putErrorResponse returns an ErrorResponse to the pool.
func putErrorResponse(resp *dto.ErrorResponse) {
	// Clear the response before returning to pool
	resp.Error = ""
	resp.Message = ""
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	resp.Details = nil
	resp.TraceID = ""
	errorResponsePool.Put(resp)
}

// RequestBuilder binds request bodies.
type RequestBuilder struct {
	c *gin.Context
}

// NewRequestBuilder creates a new request builder for the given context.
func NewRequestBuilder(c *gin.Context) *RequestBuilder {
	return &RequestBuilder{c: c}
}

// Bind unmarshals the request body into the provided type.
func (b *RequestBuilder) Bind(v interface{}) error {
	if err := b.c.ShouldBindJSON(v); err != nil {
		return err
	}
	return nil
}

// ResponseBuilder writes the success and error envelopes.
// Uses sync.Pool for DTO reuse to reduce allocations.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends a successful response with the given data.
// Uses pooled SuccessResponse to reduce allocations.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	requestID := middleware.GetRequestID(b.c)

	// Get pooled response
	resp := getSuccessResponse()

	// Set values
	resp.Data = data
	resp.RequestID = requestID
	resp.Timestamp = time.Now()

	// Send response (this copies the data)
	b.c.JSON(statusCode, resp)

	// Return to pool after response is sent
	// Note: Gin's JSON serialization happens synchronously, so this is safe
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// Error sends an error response with the given status code and message key.
// Uses pooled ErrorResponse to reduce allocations.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	requestID := middleware.GetRequestID(b.c)
	locale := i18n.GetLocale(b.c)

	translatedMessage := i18n.GetTranslator().Translate(messageKey, locale)

	// Get pooled response
	resp := getErrorResponse()

	// Set values
	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = translatedMessage
	resp.RequestID = requestID
	resp.Timestamp = time.Now()

	// Add error to context for error handler middleware to log
	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)

	// Return to pool after response is sent
	putErrorResponse(resp)
}

// ValidationFailed sends a 422 response whose details map each field to its
// localized message. fields maps field names to message keys.
func (b *ResponseBuilder) ValidationFailed(fields map[string]string, err error) {
	requestID := middleware.GetRequestID(b.c)
	locale := i18n.GetLocale(b.c)
	translator := i18n.GetTranslator()

	resp := getErrorResponse()
	resp.Error = dto.ErrCodeValidation
	resp.Message = translator.Translate(i18n.ErrKeyValidationFailed, locale)
	resp.Details = translator.TranslateAll(fields, locale)
	resp.RequestID = requestID
	resp.Timestamp = time.Now()

	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(http.StatusUnprocessableEntity, resp)

	putErrorResponse(resp)
}

// DomainError maps a service error to its status and message and sends it.
func (b *ResponseBuilder) DomainError(err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		b.ValidationFailed(verr.Fields, nil)
		return
	}

	status, key := domainErrorStatus(err)
	var cause error
	if status >= http.StatusInternalServerError {
		cause = err
	}
	b.Error(status, key, cause)
}

// domainErrorStatus returns the HTTP status and message key of a service error.
func domainErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrUnknownCategory):
		return http.StatusNotFound, i18n.ErrKeyUnknownCategory
	case errors.Is(err, service.ErrItemNotFound):
		return http.StatusNotFound, i18n.ErrKeyItemNotFound
	case errors.Is(err, service.ErrOrderNotFound):
		return http.StatusNotFound, i18n.ErrKeyOrderNotFound
	case errors.Is(err, service.ErrItemUnavailable):
		return http.StatusConflict, i18n.ErrKeyItemUnavailable
	case errors.Is(err, service.ErrEmptyCart):
		return http.StatusConflict, i18n.ErrKeyEmptyCart
	case errors.Is(err, service.ErrNotFinalStep):
		return http.StatusConflict, i18n.ErrKeyNotFinalStep
	case errors.Is(err, service.ErrSubmitInProgress):
		return http.StatusConflict, i18n.ErrKeySubmitInProgress
	case errors.Is(err, service.ErrInvalidItem):
		return http.StatusBadRequest, i18n.ErrKeyInvalidItem
	case errors.Is(err, service.ErrInvalidSize), errors.Is(err, service.ErrInvalidOption):
		return http.StatusBadRequest, i18n.ErrKeyInvalidOption
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, i18n.ErrKeyInvalidToken
	case errors.Is(err, service.ErrAuditUnavailable):
		return http.StatusServiceUnavailable, i18n.ErrKeyAuditUnavailable
	default:
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	}
}

// BuildRequest is a generic helper to build and validate a request from gin context.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	builder := NewRequestBuilder(c)
	var req T
	if err := builder.Bind(&req); err != nil {
		return nil, err
	}
	return &req, nil
}
