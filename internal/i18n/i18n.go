// Package i18n is the static ES/EN label switch: it resolves a language for
// a request and renders message keys through a golang.org/x/text catalog.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "ugchub_lang"
)

var supported = []language.Tag{language.Spanish, language.English}

var matcher = language.NewMatcher(supported)

var messages = buildCatalog()

// Supported returns the supported language tags, default first.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// ParseTag maps a user-supplied value onto a supported tag.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	base, _ := tag.Base()
	for _, s := range supported {
		if sb, _ := s.Base(); sb == base {
			return s, true
		}
	}
	return language.Und, false
}

// Resolver picks the language for a request.
type Resolver struct {
	fallback language.Tag
}

// NewResolver returns a resolver that falls back to defaultLang ("es" or "en").
func NewResolver(defaultLang string) *Resolver {
	tag, ok := ParseTag(defaultLang)
	if !ok {
		tag = language.Spanish
	}
	return &Resolver{fallback: tag}
}

// Resolve checks the lang query param, then the cookie, then Accept-Language.
// The bool reports whether the choice came from the query param and should
// be persisted as a cookie.
func (r *Resolver) Resolve(req *http.Request) (language.Tag, bool) {
	if req == nil {
		return r.fallback, false
	}

	if tag, ok := ParseTag(req.URL.Query().Get(LangParam)); ok {
		return tag, true
	}

	if cookie, err := req.Cookie(LangCookieName); err == nil {
		if tag, ok := ParseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(req.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No {
				return supported[idx], false
			}
		}
	}

	return r.fallback, false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// Printer renders message keys in one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

func NewPrinter(tag language.Tag) *Printer {
	return &Printer{
		tag: tag,
		p:   message.NewPrinter(tag, message.Catalog(messages)),
	}
}

// Lang returns the printer's language tag.
func (p *Printer) Lang() language.Tag {
	return p.tag
}

// T translates a key. Unknown keys are returned unchanged.
func (p *Printer) T(key string) string {
	if key == "" {
		return ""
	}
	return p.p.Sprintf(key)
}

// Labels returns the full static label set for the printer's language.
func (p *Printer) Labels() map[string]string {
	out := make(map[string]string, len(labelKeys))
	for _, key := range labelKeys {
		out[key] = p.T(key)
	}
	return out
}

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.Spanish))
	for key, tr := range translations {
		_ = b.SetString(language.Spanish, key, tr.es)
		_ = b.SetString(language.English, key, tr.en)
	}
	return b
}
