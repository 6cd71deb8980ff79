// Package i18n provides internationalization support for the pizzeria service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (Brazilian Portuguese).
	DefaultLocale = "pt"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: defaultMessages,
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale, then to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// TranslateAll translates every value of a field to key map.
func (t *Translator) TranslateAll(keys map[string]string, locale string) map[string]string {
	if len(keys) == 0 {
		return nil
	}
	out := make(map[string]string, len(keys))
	for field, key := range keys {
		out[field] = t.Translate(key, locale)
	}
	return out
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// e.g. "pt-BR,pt;q=0.9,en;q=0.8"
	lang := strings.TrimSpace(strings.Split(strings.Split(acceptLang, ",")[0], ";")[0])
	if idx := strings.Index(lang, "-"); idx > 0 {
		lang = lang[:idx]
	}
	lang = strings.ToLower(lang)
	if _, ok := defaultMessages[lang]; ok {
		return lang
	}

	return DefaultLocale
}

var defaultMessages = map[string]map[string]string{
	"pt": {
		"error.invalid_request":      "Requisição inválida",
		"error.invalid_request_body": "Corpo da requisição inválido",
		"error.internal_error":       "Ocorreu um erro inesperado",
		"error.unauthorized":         "Não autorizado",
		"error.invalid_credentials":  "Credenciais inválidas!",
		"error.forbidden":            "Proibido",
		"error.not_found":            "Não encontrado",
		"error.rate_limit_exceeded":  "Muitas requisições, tente novamente mais tarde",
		"error.conflict":             "Conflito",
		"error.invalid_token":        "Token inválido ou expirado",
		"error.token_required":       "Token de autenticação é obrigatório",
		"error.timeout":              "Tempo limite da requisição excedido",
		"error.unknown_category":     "Categoria de cardápio desconhecida",
		"error.item_not_found":       "Item não encontrado",
		"error.item_unavailable":     "Item indisponível no momento",
		"error.invalid_item":         "Item inválido",
		"error.invalid_option":       "Opção de pizza inválida",
		"error.empty_cart":           "Seu carrinho está vazio",
		"error.not_final_step":       "Conclua as etapas anteriores antes de finalizar",
		"error.submit_in_progress":   "Seu pedido já está sendo enviado",
		"error.order_not_found":      "Pedido não encontrado",
		"error.validation_failed":    "Verifique os campos destacados",
		"error.audit_unavailable":    "Histórico de atividades indisponível no momento",

		"validation.name_required":         "Nome é obrigatório",
		"validation.phone_required":        "Telefone é obrigatório",
		"validation.phone_format":          "Formato: (11) 99999-9999",
		"validation.table_required":        "Número da mesa é obrigatório",
		"validation.table_range":           "Mesa deve ser um número de 1 a 30",
		"validation.postal_code_required":  "CEP é obrigatório",
		"validation.street_required":       "Rua é obrigatória",
		"validation.number_required":       "Número é obrigatório",
		"validation.neighborhood_required": "Bairro é obrigatório",
		"validation.city_required":         "Cidade é obrigatória",
		"validation.payment_method":        "Forma de pagamento inválida",
		"validation.order_type":            "Tipo de pedido inválido",

		"success.order_sent": "Pedido enviado! Confirme no WhatsApp.",
		"success.logged_in":  "Login realizado com sucesso",
	},
	"en": {
		"error.invalid_request":      "Invalid request",
		"error.invalid_request_body": "Invalid request body",
		"error.internal_error":       "An unexpected error occurred",
		"error.unauthorized":         "Unauthorized",
		"error.invalid_credentials":  "Invalid credentials!",
		"error.forbidden":            "Forbidden",
		"error.not_found":            "Not found",
		"error.rate_limit_exceeded":  "Too many requests, please try again later",
		"error.conflict":             "Conflict",
		"error.invalid_token":        "Invalid or expired token",
		"error.token_required":       "Authentication token is required",
		"error.timeout":              "Request timed out",
		"error.unknown_category":     "Unknown menu category",
		"error.item_not_found":       "Item not found",
		"error.item_unavailable":     "Item is currently unavailable",
		"error.invalid_item":         "Invalid item",
		"error.invalid_option":       "Invalid pizza option",
		"error.empty_cart":           "Your cart is empty",
		"error.not_final_step":       "Complete the previous steps before submitting",
		"error.submit_in_progress":   "Your order is already being sent",
		"error.order_not_found":      "Order not found",
		"error.validation_failed":    "Please check the highlighted fields",
		"error.audit_unavailable":    "Activity history is unavailable right now",

		"validation.name_required":         "Name is required",
		"validation.phone_required":        "Phone is required",
		"validation.phone_format":          "Format: (11) 99999-9999",
		"validation.table_required":        "Table number is required",
		"validation.table_range":           "Table must be a number from 1 to 30",
		"validation.postal_code_required":  "Postal code is required",
		"validation.street_required":       "Street is required",
		"validation.number_required":       "Number is required",
		"validation.neighborhood_required": "Neighborhood is required",
		"validation.city_required":         "City is required",
		"validation.payment_method":        "Invalid payment method",
		"validation.order_type":            "Invalid order type",

		"success.order_sent": "Order sent! Confirm it on WhatsApp.",
		"success.logged_in":  "Logged in",
	},
}
