package i18n

import (
	"net/http"
	"slices"
	"strings"
)

// LangQueryParam overrides header negotiation when it names a loaded language.
const LangQueryParam = "lang"

// Middleware negotiates the request language and stores it in the context.
func Middleware(t *Translator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := strings.ToLower(r.URL.Query().Get(LangQueryParam))
			if !slices.Contains(t.langs, lang) {
				lang = t.Match(r.Header.Get("Accept-Language"))
			}
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), lang)))
		})
	}
}
