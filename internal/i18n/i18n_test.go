package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTActiveLocale(t *testing.T) {
	tr := New(LocaleAR)
	assert.Equal(t, "تسجيل الدخول", tr.T("header.login"))
}

func TestTFallsBackToFrench(t *testing.T) {
	tr := New("en")
	assert.Equal(t, "Se connecter", tr.T("header.login"))
}

func TestTUnknownKeyReturnsKey(t *testing.T) {
	tr := New(LocaleFR)
	assert.Equal(t, "header.doesNotExist", tr.T("header.doesNotExist"))
	// Second lookup takes the warned-already path and still returns the key.
	assert.Equal(t, "header.doesNotExist", tr.T("header.doesNotExist"))
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported(LocaleFR))
	assert.True(t, Supported(LocaleAR))
	assert.False(t, Supported("en"))
}

func TestStringsAppliesFallback(t *testing.T) {
	all := Strings("en")
	assert.Equal(t, "Se connecter", all["header.login"])
	assert.Len(t, all, len(Keys()))
}

func TestHas(t *testing.T) {
	assert.True(t, Has("catalog.addToCart"))
	assert.False(t, Has("catalog.addToWishlist"))
}
