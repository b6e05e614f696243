package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// ErrLanguageNotSupported indicates that the requested language is not loaded.
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("language not supported: %s", e.Lang)
}

// Translator resolves dot-separated keys like "errors.messages.url" and
// substitutes "%{name}" placeholders. It is safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language Tc and Nc use when ctx carries none.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether a missing key renders as the key itself
// (the default) or as an empty string.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) { t.fallbackToKey = fallback }
}

// WithLogger ignores a nil logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging reports each missing key at warn level.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) { t.missingLogMode = enabled }
}

// NewTranslator loads translations through adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		adapter:       adapter,
	}
	for _, option := range options {
		option(t)
	}

	translations, err := t.load(ctx)
	if err != nil {
		return nil, err
	}
	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded", "languages", t.supportedLanguages())
	return t, nil
}

func (t *Translator) load(ctx context.Context) (map[string]map[string]any, error) {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, tr := range translations {
		if lang == "" {
			return nil, fmt.Errorf("empty language code found")
		}
		if tr == nil {
			return nil, fmt.Errorf("nil translations map for language: %s", lang)
		}
	}
	return translations, nil
}

// Reload replaces the loaded translations with a fresh adapter load.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.load(ctx)
	if err != nil {
		return err
	}
	t.mu.Lock()
	t.translations = translations
	t.mu.Unlock()
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used by the context helpers when none is set.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// lookup walks m by dot-separated key.
func lookup(m map[string]any, key string) (any, bool) {
	current := m
	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}
	return nil, false
}

// HasTranslation checks if a translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(langMap, key)
	return ok
}

// template returns the string stored under key, logging misses when enabled.
func (t *Translator) template(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("language not supported", "lang", lang, "key", key)
		}
		return "", false
	}

	val, ok := lookup(langMap, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", "lang", lang, "key", key)
		}
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	}
	if t.missingLogMode {
		t.logger.Warn("translation is not a string", "lang", lang, "key", key, "type", fmt.Sprintf("%T", val))
	}
	return "", false
}

func (t *Translator) miss(key string, params map[string]string) string {
	if t.fallbackToKey {
		return interpolate(key, params)
	}
	return ""
}

// T translates key for lang. args are name/value pairs for "%{name}" placeholders.
//
//	// "welcome": "Hello, %{name}!"
//	translator.T("en", "welcome", "name", "John") // "Hello, John!"
func (t *Translator) T(lang, key string, args ...string) string {
	params := pairs(args)
	tmpl, ok := t.template(lang, key)
	if !ok {
		return t.miss(key, params)
	}
	return interpolate(tmpl, params)
}

// Tv is like T but takes interpolation values as a map; values are formatted with fmt.
func (t *Translator) Tv(lang, key string, values map[string]any) string {
	params := make(map[string]string, len(values))
	for k, v := range values {
		params[k] = fmt.Sprint(v)
	}
	tmpl, ok := t.template(lang, key)
	if !ok {
		return t.miss(key, params)
	}
	return interpolate(tmpl, params)
}

// Td translates key, using defaultValue as the template when it is missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	params := pairs(args)
	if tmpl, ok := t.template(lang, key); ok {
		return interpolate(tmpl, params)
	}
	return interpolate(defaultValue, params)
}

// N translates a plural key. n selects key.zero (falling back to key.other),
// key.one or key.other; "count" is added to args when absent.
func (t *Translator) N(lang, key string, n int, args ...string) string {
	params := pairs(args)
	if _, ok := params["count"]; !ok {
		params["count"] = strconv.Itoa(n)
	}

	var forms []string
	switch n {
	case 0:
		forms = []string{key + ".zero", key + ".other"}
	case 1:
		forms = []string{key + ".one"}
	default:
		forms = []string{key + ".other"}
	}
	forms = append(forms, key)

	for _, form := range forms {
		if tmpl, ok := t.template(lang, form); ok {
			return interpolate(tmpl, params)
		}
	}
	return t.miss(key, params)
}

// Tc translates key using the language stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(LocaleOr(ctx, t.defaultLang), key, args...)
}

// Nc translates a plural key using the language stored in ctx.
func (t *Translator) Nc(ctx context.Context, key string, n int, args ...string) string {
	return t.N(LocaleOr(ctx, t.defaultLang), key, n, args...)
}

// pairs turns key, value, key, value... into a map. An odd trailing key is ignored.
func pairs(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// interpolate replaces "%{name}" with params[name]; unknown placeholders are kept.
func interpolate(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
