// Package i18n provides internationalization support for the recipe service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
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

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	if msg, ok := localeMessages[key]; ok {
		return msg
	}
	if fallbackMsg, ok := t.messages[DefaultLocale][key]; ok {
		return fallbackMsg
	}
	return key
}

// Supports reports whether locale has a message table.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Only the first preference is honored (e.g. "en-US,en;q=0.9,pt;q=0.8").
	first := strings.Split(acceptLang, ",")[0]
	lang := strings.TrimSpace(strings.Split(first, ";")[0])
	if idx := strings.Index(lang, "-"); idx > 0 {
		lang = lang[:idx]
	}
	lang = strings.ToLower(lang)

	if GetTranslator().Supports(lang) {
		return lang
	}
	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.invalid_token":        "Invalid or expired session token",
			"error.token_required":       "A session token is required",
			"error.timeout":              "The request timed out",
			"error.empty_query":          "Search query must not be empty",
			"error.invalid_page":         "page: must be a positive integer",
			"error.no_active_recipe":     "No recipe is loaded",
			"error.recipe_not_found":     "Recipe not found",
			"error.list_item_not_found":  "Shopping list item not found",
			"error.like_not_found":       "Recipe is not liked",
			"error.invalid_servings":     "servings: must be a positive integer",
			"error.invalid_direction":    "direction: must be inc or dec",
			"error.invalid_count":        "count: must not be negative",
			"error.count_out_of_range":   "count: scaled value is too large",
			"error.stale_result":         "A newer request replaced this one",
			"error.upstream_failure":     "The recipe service could not be reached",
			"error.service_unavailable":  "Service temporarily unavailable, please try again later",
			"error.storage_failure":      "Liked recipes could not be saved",
		},
		"pt": {
			"error.invalid_request":      "Requisição inválida",
			"error.invalid_request_body": "Corpo da requisição inválido",
			"error.internal_error":       "Ocorreu um erro inesperado",
			"error.not_found":            "Não encontrado",
			"error.rate_limit_exceeded":  "Muitas requisições, tente novamente mais tarde",
			"error.invalid_token":        "Token de sessão inválido ou expirado",
			"error.token_required":       "Token de sessão é obrigatório",
			"error.timeout":              "A requisição excedeu o tempo limite",
			"error.empty_query":          "A busca não pode ser vazia",
			"error.invalid_page":         "page: deve ser um inteiro positivo",
			"error.no_active_recipe":     "Nenhuma receita carregada",
			"error.recipe_not_found":     "Receita não encontrada",
			"error.list_item_not_found":  "Item da lista de compras não encontrado",
			"error.like_not_found":       "Receita não está nos favoritos",
			"error.invalid_servings":     "servings: deve ser um inteiro positivo",
			"error.invalid_direction":    "direction: deve ser inc ou dec",
			"error.invalid_count":        "count: não pode ser negativo",
			"error.count_out_of_range":   "count: valor escalado é grande demais",
			"error.stale_result":         "Uma requisição mais recente substituiu esta",
			"error.upstream_failure":     "O serviço de receitas não pôde ser acessado",
			"error.service_unavailable":  "Serviço temporariamente indisponível, tente novamente mais tarde",
			"error.storage_failure":      "Não foi possível salvar as receitas favoritas",
		},
		"nl": {
			"error.invalid_request":      "Ongeldig verzoek",
			"error.invalid_request_body": "Ongeldige aanvraag body",
			"error.internal_error":       "Er is een onverwachte fout opgetreden",
			"error.not_found":            "Niet gevonden",
			"error.rate_limit_exceeded":  "Te veel verzoeken, probeer het later opnieuw",
			"error.invalid_token":        "Ongeldige of verlopen sessietoken",
			"error.token_required":       "Een sessietoken is vereist",
			"error.timeout":              "Het verzoek is verlopen",
			"error.empty_query":          "Zoekopdracht mag niet leeg zijn",
			"error.invalid_page":         "page: moet een positief geheel getal zijn",
			"error.no_active_recipe":     "Er is geen recept geladen",
			"error.recipe_not_found":     "Recept niet gevonden",
			"error.list_item_not_found":  "Item op boodschappenlijst niet gevonden",
			"error.like_not_found":       "Recept staat niet bij favorieten",
			"error.invalid_servings":     "servings: moet een positief geheel getal zijn",
			"error.invalid_direction":    "direction: moet inc of dec zijn",
			"error.invalid_count":        "count: mag niet negatief zijn",
			"error.count_out_of_range":   "count: geschaalde waarde is te groot",
			"error.stale_result":         "Een nieuwer verzoek heeft dit vervangen",
			"error.upstream_failure":     "De receptendienst is niet bereikbaar",
			"error.service_unavailable":  "Dienst tijdelijk niet beschikbaar, probeer het later opnieuw",
			"error.storage_failure":      "Favoriete recepten konden niet worden opgeslagen",
		},
	}
}
