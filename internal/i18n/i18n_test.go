//go:build !integration

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator_Singleton(t *testing.T) {
	assert.Same(t, GetTranslator(), GetTranslator())
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{name: "english", key: ErrKeyBoxNotFound, locale: "en", expected: translator.messages["en"][ErrKeyBoxNotFound]},
		{name: "portuguese", key: ErrKeyInternalError, locale: "pt", expected: "Ocorreu um erro inesperado"},
		{name: "dutch", key: ErrKeyInternalError, locale: "nl", expected: "Er is een onverwachte fout opgetreden"},
		{name: "empty locale uses english", key: ErrKeyInternalError, expected: "An unexpected error occurred"},
		{name: "unsupported locale uses english", key: ErrKeyNoLabelSizes, locale: "fr", expected: "No label sizes configured"},
		{name: "unknown key returns the key", key: "error.unknown", locale: "pt", expected: "error.unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.expected)
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestNegotiateLocale(t *testing.T) {
	tests := []struct {
		name           string
		acceptLanguage string
		expected       string
	}{
		{name: "no header", expected: DefaultLocale},
		{name: "plain tag", acceptLanguage: "nl", expected: "nl"},
		{name: "region is dropped", acceptLanguage: "pt-BR", expected: "pt"},
		{name: "upper case", acceptLanguage: "NL-be", expected: "nl"},
		{name: "first supported in order", acceptLanguage: "en-US,en;q=0.9,pt;q=0.8", expected: "en"},
		{name: "unsupported first language is skipped", acceptLanguage: "fr-CA,pt;q=0.8,en;q=0.5", expected: "pt"},
		{name: "q-values win over order", acceptLanguage: "en;q=0.3,nl;q=0.9", expected: "nl"},
		{name: "zero weight is never picked", acceptLanguage: "pt;q=0", expected: DefaultLocale},
		{name: "malformed q-value is ignored", acceptLanguage: "nl;q=abc,pt", expected: "pt"},
		{name: "only unsupported languages", acceptLanguage: "fr,de", expected: DefaultLocale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NegotiateLocale(tt.acceptLanguage))
		})
	}
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/boxes", nil)
	c.Request.Header.Set(AcceptLanguageHeader, "pt-PT,pt;q=0.9")

	assert.Equal(t, "pt", GetLocale(c))
}

func TestMessages_EveryLocaleHasEveryKey(t *testing.T) {
	messages := getDefaultMessages()
	for key := range messages[DefaultLocale] {
		for locale, table := range messages {
			assert.Contains(t, table, key, "locale %s", locale)
		}
	}
	assert.Equal(t, "No label sizes configured", NewTranslator().Translate(ErrKeyNoLabelSizes, "en"))
}
