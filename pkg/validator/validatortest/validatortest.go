// Package validatortest provides testify-style assertions for validators.
package validatortest

import (
	"github.com/stretchr/testify/assert"

	"github.com/Hareramrai/missing-validators/pkg/validator"
)

const attribute = "value"

type tHelper interface {
	Helper()
}

// Messages runs v against value stored under a throwaway attribute and
// returns the appended messages.
func Messages(v validator.Validator, value any) []string {
	return MessagesFor(v, attribute, map[string]any{attribute: value})
}

// MessagesFor runs v against attr of a record built from values.
func MessagesFor(v validator.Validator, attr string, values map[string]any) []string {
	rec := validator.NewMapRecord(values)
	value, _ := rec.Attribute(attr)
	v.ValidateEach(rec, attr, value)
	return rec.Errors().Get(attr)
}

// AssertValid asserts that v accepts value.
func AssertValid(t assert.TestingT, v validator.Validator, value any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return assert.Empty(t, Messages(v, value), "expected %#v to be valid", value)
}

// AssertInvalid asserts that v rejects value with exactly one message.
func AssertInvalid(t assert.TestingT, v validator.Validator, value any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return assert.Len(t, Messages(v, value), 1, "expected %#v to be invalid", value)
}

// AssertMessage asserts that v rejects value with the given message.
func AssertMessage(t assert.TestingT, v validator.Validator, value any, want string) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return assert.Equal(t, []string{want}, Messages(v, value), "messages for %#v", value)
}

func ensure(t assert.TestingT, v validator.Validator, valid, invalid []any) bool {
	ok := true
	for _, value := range valid {
		ok = AssertValid(t, v, value) && ok
	}
	for _, value := range invalid {
		ok = AssertInvalid(t, v, value) && ok
	}
	return ok
}

// EnsureValidEmailFormatOf checks v against common good and bad addresses.
func EnsureValidEmailFormatOf(t assert.TestingT, v validator.Validator) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return ensure(t, v,
		[]any{"user@example.com", "first.last+tag@sub.example.org"},
		[]any{"", "user", "user@", "@example.com", "user@@example.com", "user@example", 42},
	)
}

// EnsureValidURLFormatOf checks v against common good and bad URLs. Use it
// for validators without domain, scheme or root restrictions.
func EnsureValidURLFormatOf(t assert.TestingT, v validator.Validator) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return ensure(t, v,
		[]any{"http://example.com", "https://example.com/path?q=1#frag"},
		[]any{"", "not a url", "example.com", "mailto:user@example.com", "http://", 42},
	)
}

// EnsureValidMACAddressFormatOf checks v against common good and bad MAC addresses.
func EnsureValidMACAddressFormatOf(t assert.TestingT, v validator.Validator) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return ensure(t, v,
		[]any{"aa:bb:cc:dd:ee:ff", "00-11-22-33-44-55", "AA:BB:CC:DD:EE:FF"},
		[]any{"", "aabbccddeeff", "aa:bb:cc:dd:ee", "gg:hh:ii:jj:kk:ll", 42},
	)
}

// EnsureInequalityOf asserts that v accepts attr on every record in passing
// and rejects it on every record in failing.
func EnsureInequalityOf(t assert.TestingT, v validator.Validator, attr string, passing, failing []map[string]any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	ok := true
	for _, values := range passing {
		ok = assert.Empty(t, MessagesFor(v, attr, values), "expected %s to be valid for %v", attr, values) && ok
	}
	for _, values := range failing {
		ok = assert.NotEmpty(t, MessagesFor(v, attr, values), "expected %s to be invalid for %v", attr, values) && ok
	}
	return ok
}
