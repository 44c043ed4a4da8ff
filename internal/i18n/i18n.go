// Package i18n provides the bilingual (French/Arabic) static text lookup for
// the storefront. French is the designated fallback locale.
package i18n

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/muerroui/gsm-ma-achat-simple/internal/logger"
)

// Supported locales.
const (
	LocaleFR = "fr"
	LocaleAR = "ar"
)

// FallbackLocale is used when a translation is missing for the active locale.
const FallbackLocale = LocaleFR

// Translator resolves translation keys for one active locale. The zero value
// is not usable; construct with New.
type Translator struct {
	locale string
	log    *zap.Logger

	mu     sync.Mutex
	warned map[string]struct{}
}

// New returns a Translator bound to the given locale. Unsupported locales are
// accepted; every lookup then resolves through the fallback locale.
func New(locale string) *Translator {
	return &Translator{
		locale: locale,
		log:    logger.L(),
		warned: make(map[string]struct{}),
	}
}

// Locale returns the active locale.
func (t *Translator) Locale() string {
	return t.locale
}

// T returns the display string for key: the active locale's text if present,
// else the fallback locale's, else the key itself. Unknown keys are logged
// once as a warning; T never fails.
func (t *Translator) T(key string) string {
	entry, ok := table[key]
	if !ok {
		t.warnUnknown(key)
		return key
	}
	if s, ok := entry[t.locale]; ok && s != "" {
		return s
	}
	if s, ok := entry[FallbackLocale]; ok && s != "" {
		return s
	}
	return key
}

func (t *Translator) warnUnknown(key string) {
	t.mu.Lock()
	_, seen := t.warned[key]
	if !seen {
		t.warned[key] = struct{}{}
	}
	t.mu.Unlock()
	if !seen {
		t.log.Warn("translation key not found", zap.String("key", key), zap.String("locale", t.locale))
	}
}

// Has reports whether key exists in the translation table.
func Has(key string) bool {
	_, ok := table[key]
	return ok
}

// Supported reports whether locale has dedicated translations.
func Supported(locale string) bool {
	return locale == LocaleFR || locale == LocaleAR
}

// Keys returns all translation keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Strings returns the full key to text mapping for one locale, with the
// fallback applied. Used by the /i18n endpoint so clients can load the whole
// table in one request.
func Strings(locale string) map[string]string {
	tr := New(locale)
	out := make(map[string]string, len(table))
	for k := range table {
		out[k] = tr.T(k)
	}
	return out
}
