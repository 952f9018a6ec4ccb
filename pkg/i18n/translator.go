package i18n

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no other default is configured.
const DefaultLanguage = "en"

// Translator resolves keys against loaded catalogs. It is safe for concurrent use.
type Translator struct {
	catalog     Catalog
	defaultLang string
	logMissing  bool
	logger      *slog.Logger

	langs   []string
	matcher language.Matcher
}

// NewTranslator loads the adapter's catalog.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	catalog, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	t.catalog = catalog
	t.buildMatcher()

	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.langs))
	return t, nil
}

// buildMatcher puts the default language first so it wins ties.
func (t *Translator) buildMatcher() {
	langs := slices.Sorted(maps.Keys(t.catalog))
	if i := slices.Index(langs, t.defaultLang); i > 0 {
		langs = append([]string{t.defaultLang}, slices.Delete(langs, i, i+1)...)
	}

	tags := make([]language.Tag, 0, len(langs))
	t.langs = make([]string, 0, len(langs))
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			t.logger.Warn("skipping invalid language tag", slog.String("lang", lang))
			continue
		}
		tags = append(tags, tag)
		t.langs = append(t.langs, lang)
	}
	if len(tags) > 0 {
		t.matcher = language.NewMatcher(tags)
	}
}

// Languages lists the loaded languages, default first.
func (t *Translator) Languages() []string {
	return slices.Clone(t.langs)
}

// DefaultLanguage returns the configured default.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match picks the best loaded language for an Accept-Language header.
func (t *Translator) Match(acceptLanguage string) string {
	if t.matcher == nil || acceptLanguage == "" {
		return t.defaultLang
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return t.defaultLang
	}
	_, idx, conf := t.matcher.Match(prefs...)
	if conf == language.No {
		return t.defaultLang
	}
	return t.langs[idx]
}

// Has reports whether key resolves to a string in lang.
func (t *Translator) Has(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang, replacing %{name} placeholders from args given
// as name/value pairs. Missing keys return the key itself.
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		if t.logMissing {
			t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
		}
		return key
	}
	return substitute(tmpl, args)
}

// For binds the translator to lang.
func (t *Translator) For(lang string) Localizer {
	if lang == "" {
		lang = t.defaultLang
	}
	return Localizer{t: t, lang: lang}
}

// ForContext binds the translator to the locale stored in ctx.
func (t *Translator) ForContext(ctx context.Context) Localizer {
	lang, ok := LocaleFromContext(ctx)
	if !ok {
		lang = t.defaultLang
	}
	return t.For(lang)
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	tree, ok := t.catalog[lang]
	if !ok || key == "" {
		return "", false
	}
	var node any = tree
	for part := range strings.SplitSeq(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		if node, ok = m[part]; !ok {
			return "", false
		}
	}
	s, ok := node.(string)
	return s, ok
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

func substitute(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := params[match[2:len(match)-1]]; ok {
			return v
		}
		return match
	})
}

// Localizer is a Translator bound to one language.
type Localizer struct {
	t    *Translator
	lang string
}

// Language returns the bound language.
func (l Localizer) Language() string {
	return l.lang
}

// Translate returns the translation of key, or key when none exists.
func (l Localizer) Translate(key string) string {
	if l.t == nil {
		return key
	}
	return l.t.T(l.lang, key)
}

// T translates with placeholder substitution.
func (l Localizer) T(key string, args ...string) string {
	if l.t == nil {
		return key
	}
	return l.t.T(l.lang, key, args...)
}
