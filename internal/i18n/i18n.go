// Package i18n provides internationalization support for the move-labels service.
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

// Translate returns the message for key in locale, falling back to the
// DefaultLocale message and then to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Supports reports whether locale has a message table.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale picks the first supported language of the Accept-Language
// header, honoring q-values, and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	return NegotiateLocale(c.GetHeader(AcceptLanguageHeader))
}

// NegotiateLocale resolves an Accept-Language value such as
// "fr-CA,pt;q=0.8,en;q=0.5" to a supported locale.
func NegotiateLocale(acceptLang string) string {
	translator := GetTranslator()

	best, bestQ := DefaultLocale, 0.0
	for _, part := range strings.Split(acceptLang, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		lang, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(tag)), "-")
		if !translator.Supports(lang) {
			continue
		}
		q := 1.0
		if v, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				continue
			}
			q = parsed
		}
		if q > bestQ {
			best, bestQ = lang, q
		}
	}
	return best
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":       "Invalid request",
			"error.invalid_request_body":  "Invalid request body",
			"error.internal_error":        "An unexpected error occurred",
			"error.unauthorized":          "Unauthorized",
			"error.invalid_credentials":   "Invalid username or password",
			"error.not_found":             "Not found",
			"error.rate_limit_exceeded":   "Too many requests, please try again later",
			"error.conflict":              "Conflict",
			"error.invalid_token":         "Invalid or expired session",
			"error.token_required":        "Sign in required",
			"error.api_key_required":      "API key is required",
			"error.invalid_api_key":       "Invalid API key",
			"error.timeout":               "Request timed out",
			"error.service_unavailable":   "Database unavailable",
			"error.box_not_found":         "Box not found",
			"error.item_not_found":        "Item not found",
			"error.label_size_not_found":  "Label size not found",
			"error.label_size_exists":     "A label size with this name already exists",
			"error.no_label_sizes":        "No label sizes configured",
			"error.no_boxes":              "No boxes found",
			"error.no_code":               "no code",
			"error.unknown_format":        "Unknown export format",
			"error.short_code_exhausted":  "could not generate unique short code",
			"error.render_failed":         "Label rendering failed",
			"error.idempotency_in_flight": "A request with this Idempotency-Key is still being processed",
			"error.idempotency_mismatch":  "Idempotency-Key was already used for a different request",
			"error.body_too_large":        "Request body is too large",
		},
		"pt": {
			"error.invalid_request":       "Requisição inválida",
			"error.invalid_request_body":  "Corpo da requisição inválido",
			"error.internal_error":        "Ocorreu um erro inesperado",
			"error.unauthorized":          "Não autorizado",
			"error.invalid_credentials":   "Usuário ou senha inválidos",
			"error.not_found":             "Não encontrado",
			"error.rate_limit_exceeded":   "Muitas requisições, tente novamente mais tarde",
			"error.conflict":              "Conflito",
			"error.invalid_token":         "Sessão inválida ou expirada",
			"error.token_required":        "É necessário entrar",
			"error.api_key_required":      "Chave de API é obrigatória",
			"error.invalid_api_key":       "Chave de API inválida",
			"error.timeout":               "Tempo da requisição esgotado",
			"error.service_unavailable":   "Banco de dados indisponível",
			"error.box_not_found":         "Caixa não encontrada",
			"error.item_not_found":        "Item não encontrado",
			"error.label_size_not_found":  "Tamanho de etiqueta não encontrado",
			"error.label_size_exists":     "Já existe um tamanho de etiqueta com este nome",
			"error.no_label_sizes":        "Nenhum tamanho de etiqueta configurado",
			"error.no_boxes":              "Nenhuma caixa encontrada",
			"error.no_code":               "sem código",
			"error.unknown_format":        "Formato de exportação desconhecido",
			"error.short_code_exhausted":  "não foi possível gerar um código curto único",
			"error.render_failed":         "Falha ao gerar a etiqueta",
			"error.idempotency_in_flight": "Uma requisição com esta Idempotency-Key ainda está em processamento",
			"error.idempotency_mismatch":  "Idempotency-Key já foi usada em outra requisição",
			"error.body_too_large":        "Corpo da requisição muito grande",
		},
		"nl": {
			"error.invalid_request":       "Ongeldig verzoek",
			"error.invalid_request_body":  "Ongeldige aanvraag body",
			"error.internal_error":        "Er is een onverwachte fout opgetreden",
			"error.unauthorized":          "Niet geautoriseerd",
			"error.invalid_credentials":   "Ongeldige gebruikersnaam of wachtwoord",
			"error.not_found":             "Niet gevonden",
			"error.rate_limit_exceeded":   "Te veel verzoeken, probeer het later opnieuw",
			"error.conflict":              "Conflict",
			"error.invalid_token":         "Ongeldige of verlopen sessie",
			"error.token_required":        "Aanmelden vereist",
			"error.api_key_required":      "API-sleutel is verplicht",
			"error.invalid_api_key":       "Ongeldige API-sleutel",
			"error.timeout":               "Verzoek duurde te lang",
			"error.service_unavailable":   "Database niet beschikbaar",
			"error.box_not_found":         "Doos niet gevonden",
			"error.item_not_found":        "Item niet gevonden",
			"error.label_size_not_found":  "Labelformaat niet gevonden",
			"error.label_size_exists":     "Er bestaat al een labelformaat met deze naam",
			"error.no_label_sizes":        "Geen labelformaten geconfigureerd",
			"error.no_boxes":              "Geen dozen gevonden",
			"error.no_code":               "geen code",
			"error.unknown_format":        "Onbekend exportformaat",
			"error.short_code_exhausted":  "kon geen unieke korte code genereren",
			"error.render_failed":         "Label genereren mislukt",
			"error.idempotency_in_flight": "Een verzoek met deze Idempotency-Key wordt nog verwerkt",
			"error.idempotency_mismatch":  "Idempotency-Key is al gebruikt voor een ander verzoek",
			"error.body_too_large":        "De request body is te groot",
		},
	}
}
