package i18n

import "context"

type localeContextKey struct{}

// WithLocale stores lang in ctx.
func WithLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, lang)
}

// LocaleFromContext returns the stored locale.
func LocaleFromContext(ctx context.Context) (string, bool) {
	lang, ok := ctx.Value(localeContextKey{}).(string)
	return lang, ok && lang != ""
}
