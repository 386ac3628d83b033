// Package i18n provides internationalization support for the storefront cart.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
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
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale. Unknown locales and keys
// missing from a locale use DefaultLocale; a key missing everywhere is
// returned as is.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Supports reports whether the translator has messages for locale.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale picks the most preferred supported language of the
// Accept-Language header, honoring q weights. Region subtags are ignored.
func GetLocale(c *gin.Context) string {
	header := c.GetHeader(AcceptLanguageHeader)
	if header == "" {
		return DefaultLocale
	}

	translator := GetTranslator()
	best, bestQ := DefaultLocale, 0.0
	for _, part := range strings.Split(header, ",") {
		lang, q := parseLanguageRange(part)
		if q > bestQ && translator.Supports(lang) {
			best, bestQ = lang, q
		}
	}
	return best
}

// parseLanguageRange splits "pt-BR;q=0.8" into ("pt", 0.8). A missing or
// malformed weight counts as 1.
func parseLanguageRange(part string) (string, float64) {
	fields := strings.Split(part, ";")
	lang := strings.ToLower(strings.TrimSpace(fields[0]))
	if idx := strings.Index(lang, "-"); idx > 0 {
		lang = lang[:idx]
	}

	q := 1.0
	for _, param := range fields[1:] {
		name, value, found := strings.Cut(strings.TrimSpace(param), "=")
		if !found || name != "q" {
			continue
		}
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			q = parsed
		}
	}
	return lang, q
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request": "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error": "An unexpected error occurred",
			"error.unauthorized": "Unauthorized",
			"error.not_found": "Not found",
			"error.rate_limit_exceeded": "Too many requests, please try again later",
			"error.conflict": "Conflict",
			"error.timeout": "Request timed out",
			"error.validation.product_id": "product_id: must be a positive integer",
			"error.validation.size": "size: must be one of P, M or G",
			"error.product_not_found": "Product not found",
			"error.catalog_unavailable": "The catalog is temporarily unavailable",
			"error.invalid_token": "Invalid session token",
			"error.session_expired": "Session expired, please sign in again",
			"error.session_disabled": "Sessions are not enabled",

			// Success messages
			"success.cart_cleared":       "Cart cleared",
			"success.checkout_completed": "Order placed, the cart was cleared",
			"success.logged_out":         "Signed out, the cart was cleared",
		},
		"pt": {
			// Error messages
			"error.invalid_request": "Requisição inválida",
			"error.invalid_request_body": "Corpo da requisição inválido",
			"error.internal_error": "Ocorreu um erro inesperado",
			"error.unauthorized": "Não autorizado",
			"error.not_found": "Não encontrado",
			"error.rate_limit_exceeded": "Muitas requisições, tente novamente mais tarde",
			"error.conflict": "Conflito",
			"error.timeout": "Tempo da requisição esgotado",
			"error.validation.product_id": "product_id: deve ser um inteiro positivo",
			"error.validation.size": "size: deve ser P, M ou G",
			"error.product_not_found": "Produto não encontrado",
			"error.catalog_unavailable": "O cardápio está temporariamente indisponível",
			"error.invalid_token": "Token de sessão inválido",
			"error.session_expired": "Sessão expirada, entre novamente",
			"error.session_disabled": "Sessões não estão habilitadas",

			// Success messages
			"success.cart_cleared":       "Carrinho esvaziado",
			"success.checkout_completed": "Pedido realizado, o carrinho foi esvaziado",
			"success.logged_out":         "Sessão encerrada, o carrinho foi esvaziado",
		},
		"nl": {
			// Error messages
			"error.invalid_request": "Ongeldig verzoek",
			"error.invalid_request_body": "Ongeldige aanvraag body",
			"error.internal_error": "Er is een onverwachte fout opgetreden",
			"error.unauthorized": "Niet geautoriseerd",
			"error.not_found": "Niet gevonden",
			"error.rate_limit_exceeded": "Te veel verzoeken, probeer het later opnieuw",
			"error.conflict": "Conflict",
			"error.timeout": "Time-out van het verzoek",
			"error.validation.product_id": "product_id: moet een positief geheel getal zijn",
			"error.validation.size": "size: moet P, M of G zijn",
			"error.product_not_found": "Product niet gevonden",
			"error.catalog_unavailable": "De catalogus is tijdelijk niet beschikbaar",
			"error.invalid_token": "Ongeldig sessietoken",
			"error.session_expired": "Sessie verlopen, log opnieuw in",
			"error.session_disabled": "Sessies zijn niet ingeschakeld",

			// Success messages
			"success.cart_cleared":       "Winkelwagen geleegd",
			"success.checkout_completed": "Bestelling geplaatst, de winkelwagen is geleegd",
			"success.logged_out":         "Uitgelogd, de winkelwagen is geleegd",
		},
	}
}
