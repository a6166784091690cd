// Package i18n holds the translated user-facing strings.
// Strings are looked up by key; an unknown key is returned unchanged.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/leonelquinteros/gotext"

	"darkmaze/pkg/engine/world"
)

// DefaultLanguage is used when no catalogue exists for the requested language
const DefaultLanguage = "en"

// ErrUnknownLanguage is returned by Load when it falls back to DefaultLanguage
var ErrUnknownLanguage = errors.New("no catalogue for language")

//go:embed locales/*.po
var locales embed.FS

var (
	mu       sync.RWMutex
	catalog  *gotext.Po
	language string
)

func init() {
	if err := Load(DefaultLanguage); err != nil {
		panic(err)
	}
}

// Load switches the active catalogue. Region suffixes and encodings are
// ignored ("de_DE.UTF-8" loads "de"). An unknown language switches to English
// and returns an error wrapping ErrUnknownLanguage.
func Load(lang string) error {
	requested := normalize(lang)
	lang = requested
	data, err := locales.ReadFile("locales/" + lang + ".po")
	var fallback error
	if err != nil {
		fallback = fmt.Errorf("%w %q, using %q", ErrUnknownLanguage, requested, DefaultLanguage)
		lang = DefaultLanguage
		if data, err = locales.ReadFile("locales/" + lang + ".po"); err != nil {
			return fmt.Errorf("load catalogue %q: %w", lang, err)
		}
	}

	po := gotext.NewPo()
	po.Parse(data)

	mu.Lock()
	catalog, language = po, lang
	mu.Unlock()
	return fallback
}

func normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "_-."); i >= 0 {
		lang = lang[:i]
	}
	if lang == "" || lang == "c" || lang == "posix" {
		return DefaultLanguage
	}
	return lang
}

// Language returns the language of the active catalogue
func Language() string {
	mu.RLock()
	defer mu.RUnlock()
	return language
}

// T returns the translation of key, formatted with vars when given
func T(key string, vars ...interface{}) string {
	mu.RLock()
	po := catalog
	mu.RUnlock()
	return po.Get(key, vars...)
}

// CellName returns the translated legend label of a cell value
func CellName(c world.Cell) string {
	return T("CELL_" + strings.ToUpper(c.String()))
}
