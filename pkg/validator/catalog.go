package validator

import (
	"context"
	"embed"
	"fmt"
	"sync"

	"github.com/Hareramrai/missing-validators/pkg/i18n"
)

// Message keys resolved through a Catalog.
const (
	KeyURL                  = "errors.messages.url"
	KeyEmail                = "errors.messages.email"
	KeyMACAddress           = "errors.messages.mac_address"
	KeyLatitude             = "errors.messages.latitude"
	KeyLongitude            = "errors.messages.longitude"
	KeyGreaterThan          = "errors.messages.greater_than"
	KeyGreaterThanOrEqualTo = "errors.messages.greater_than_or_equal_to"
	KeyEqualTo              = "errors.messages.equal_to"
	KeyLessThan             = "errors.messages.less_than"
	KeyLessThanOrEqualTo    = "errors.messages.less_than_or_equal_to"
	KeyOtherThan            = "errors.messages.other_than"
	KeyIncomparable         = "errors.messages.incomparable"
)

//go:embed locales/*.yaml
var locales embed.FS

// Catalog resolves a message key and its interpolation values into text.
type Catalog interface {
	Resolve(key string, values map[string]any) string
}

// CatalogFunc adapts a function to the Catalog interface.
type CatalogFunc func(key string, values map[string]any) string

func (f CatalogFunc) Resolve(key string, values map[string]any) string {
	return f(key, values)
}

type translatorCatalog struct {
	translator *i18n.Translator
	lang       string
}

// NewTranslatorCatalog resolves keys with t in the given language.
func NewTranslatorCatalog(t *i18n.Translator, lang string) Catalog {
	if lang == "" {
		lang = i18n.DefaultLanguage
	}
	return &translatorCatalog{translator: t, lang: lang}
}

func (c *translatorCatalog) Resolve(key string, values map[string]any) string {
	return c.translator.Tv(c.lang, key, values)
}

var (
	defaultTranslatorOnce sync.Once
	defaultTranslator     *i18n.Translator
)

// DefaultTranslator returns the translator backed by the embedded locales.
func DefaultTranslator() *i18n.Translator {
	defaultTranslatorOnce.Do(func() {
		t, err := NewLocalesTranslator(context.Background(), nil)
		if err != nil {
			panic(fmt.Errorf("validator: embedded locales: %w", err))
		}
		defaultTranslator = t
	})
	return defaultTranslator
}

// NewLocalesTranslator builds a translator from the embedded locales merged
// with any extra adapters. Later adapters override earlier keys.
func NewLocalesTranslator(ctx context.Context, extra []i18n.TranslationAdapter, opts ...i18n.Option) (*i18n.Translator, error) {
	adapters := append([]i18n.TranslationAdapter{
		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales"),
	}, extra...)
	return i18n.NewTranslator(ctx, i18n.MergeAdapters(adapters...), opts...)
}

// DefaultCatalog resolves keys in English against the embedded locales.
func DefaultCatalog() Catalog {
	return NewTranslatorCatalog(DefaultTranslator(), i18n.DefaultLanguage)
}

// report appends one failure for attribute. A non-empty override replaces the
// catalog text and leaves the key and values empty.
func report(record Record, attribute, override string, catalog Catalog, key string, values map[string]any) {
	msg := override
	if msg != "" {
		key, values = "", nil
	} else {
		if catalog == nil {
			catalog = DefaultCatalog()
		}
		msg = catalog.Resolve(key, values)
	}
	record.Errors().Add(ValidationError{
		Field:             attribute,
		Message:           msg,
		TranslationKey:    key,
		TranslationValues: values,
	})
}
