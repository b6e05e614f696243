package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hareramrai/missing-validators/pkg/validator"
)

func validateURL(opts validator.URLOptions, value any) []string {
	rec := validator.NewMapRecord(map[string]any{"website": value})
	validator.NewURLValidator(opts).ValidateEach(rec, "website", value)
	return rec.Errors().Get("website")
}

func TestURLValidator(t *testing.T) {
	tests := []struct {
		name  string
		opts  validator.URLOptions
		value any
		valid bool
	}{
		{"https with scheme and domain", validator.URLOptions{Scheme: []string{"https"}, Domain: []string{"com"}}, "https://example.com", true},
		{"plain http", validator.URLOptions{}, "http://example.org/page?q=1#top", true},
		{"port is ignored for domain", validator.URLOptions{Domain: []string{"com"}}, "http://example.com:8080/", true},
		{"root rejects path", validator.URLOptions{Root: true}, "http://example.org/page", false},
		{"root accepts slash", validator.URLOptions{Root: true}, "http://example.org/", true},
		{"root accepts empty path", validator.URLOptions{Root: true}, "http://example.org", true},
		{"root rejects query", validator.URLOptions{Root: true}, "http://example.org/?a=b", false},
		{"root rejects fragment", validator.URLOptions{Root: true}, "http://example.org/#frag", false},
		{"scheme not allowed", validator.URLOptions{Scheme: []string{"http", "https"}}, "ftp://example.com", false},
		{"scheme restricted to https", validator.URLOptions{Scheme: []string{"https"}}, "http://example.com", false},
		{"scheme is case insensitive", validator.URLOptions{Scheme: []string{"HTTPS"}}, "hTTps://example.com", true},
		{"domain is case insensitive", validator.URLOptions{Domain: []string{"COM"}}, "http://EXAMPLE.Com", true},
		{"domain not listed", validator.URLOptions{Domain: []string{"com", "org"}}, "http://example.net", false},
		{"domain needs dot boundary", validator.URLOptions{Domain: []string{"com"}}, "http://examplecom", false},
		{"second domain in list", validator.URLOptions{Domain: []string{"com", "org"}}, "http://example.org", true},
		{"not a url", validator.URLOptions{}, "not a url", false},
		{"mailto", validator.URLOptions{}, "mailto:user@example.com", false},
		{"bare path", validator.URLOptions{}, "/just/a/path", false},
		{"ftp without options", validator.URLOptions{}, "ftp://example.com", false},
		{"missing host", validator.URLOptions{}, "http://", false},
		{"malformed host", validator.URLOptions{}, "http://exa mple.com", false},
		{"raw space in path", validator.URLOptions{}, "http://example.com/a b", false},
		{"raw angle brackets", validator.URLOptions{}, "http://example.com/<x>", false},
		{"raw quote", validator.URLOptions{}, `http://example.com/"q"`, false},
		{"raw braces", validator.URLOptions{}, "http://example.com/{id}", false},
		{"raw pipe", validator.URLOptions{}, "http://example.com/a|b", false},
		{"raw backslash", validator.URLOptions{}, `http://example.com\path`, false},
		{"raw caret", validator.URLOptions{}, "http://example.com/a^b", false},
		{"raw backtick", validator.URLOptions{}, "http://example.com/a`b", false},
		{"escaped space", validator.URLOptions{}, "http://example.com/a%20b", true},
		{"port out of range", validator.URLOptions{}, "http://example.com:99999", false},
		{"highest port", validator.URLOptions{}, "http://example.com:65535/", true},
		{"empty port", validator.URLOptions{}, "http://example.com:/", true},
		{"empty string", validator.URLOptions{}, "", false},
		{"non string", validator.URLOptions{}, 42, false},
		{"nil", validator.URLOptions{}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs := validateURL(tt.opts, tt.value)
			if tt.valid {
				assert.Empty(t, msgs)
				return
			}
			assert.Equal(t, []string{"is not a valid URL"}, msgs)
		})
	}
}

func TestURLValidator_SingleMessage(t *testing.T) {
	// every criterion fails, still one message
	msgs := validateURL(validator.URLOptions{
		Scheme: []string{"https"},
		Domain: []string{"org"},
		Root:   true,
	}, "http://example.com/path?x=1")
	assert.Len(t, msgs, 1)
}

func TestURLValidator_MessageOverride(t *testing.T) {
	msgs := validateURL(validator.URLOptions{Message: "bad link"}, "nope")
	assert.Equal(t, []string{"bad link"}, msgs)
}

func TestCustomMessageHasNoTranslationKey(t *testing.T) {
	tests := map[string]validator.Validator{
		"url":   validator.NewURLValidator(validator.URLOptions{Message: "wrong"}),
		"email": validator.NewEmailValidator(validator.EmailOptions{Message: "wrong"}),
		"mac":   validator.NewMACAddressValidator(validator.MACAddressOptions{Message: "wrong"}),
		"lat":   validator.NewLatitudeValidator(validator.CoordinateOptions{Message: "wrong"}),
	}

	for name, v := range tests {
		t.Run(name, func(t *testing.T) {
			rec := validator.NewMapRecord(nil)
			v.ValidateEach(rec, name, "bogus")

			verrs := rec.Errors().All()
			require.Len(t, verrs, 1)
			assert.Equal(t, "wrong", verrs[0].Message)
			assert.Empty(t, verrs[0].TranslationKey)
			assert.Nil(t, verrs[0].TranslationValues)
		})
	}
}

func TestURLValidator_TranslationMetadata(t *testing.T) {
	rec := validator.NewMapRecord(nil)
	validator.NewURLValidator(validator.URLOptions{}).ValidateEach(rec, "website", "nope")

	verrs := validator.ExtractValidationErrors(rec.Errors().Err())
	require.Len(t, verrs, 1)
	assert.Equal(t, "website", verrs[0].Field)
	assert.Equal(t, validator.KeyURL, verrs[0].TranslationKey)
}

func TestURLValidator_Idempotent(t *testing.T) {
	v := validator.NewURLValidator(validator.URLOptions{Root: true})
	rec := validator.NewMapRecord(nil)
	v.ValidateEach(rec, "website", "http://example.com/a")
	first := rec.Errors().Get("website")
	v.ValidateEach(rec, "website", "http://example.com/a")
	all := rec.Errors().Get("website")

	require.Len(t, all, 2)
	assert.Equal(t, first[0], all[1])
}

func TestURLValidator_DomainProperty(t *testing.T) {
	tlds := []string{"com", "Co.UK", "org"}
	hosts := map[string]bool{
		"example.com":        true,
		"shop.example.co.uk": true,
		"EXAMPLE.ORG":        true,
		"example.uk":         false,
		"com":                false,
		"example.comm":       false,
	}
	v := validator.NewURLValidator(validator.URLOptions{Domain: tlds})
	for host, want := range hosts {
		assert.Equal(t, want, v.Valid("http://"+host), host)
	}
}
