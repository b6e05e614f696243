package validator

import (
	"errors"
	"slices"
	"strings"
)

// ValidationError is one message recorded against an attribute. Key and
// Values are what the catalog resolved Message from; Key is empty when a
// custom message was configured.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// FullMessage prefixes Message with the attribute name, e.g. "age must be less than 18".
func (e ValidationError) FullMessage() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + " " + e.Message
}

// ValidationErrors is the ordered list of messages produced by a run.
// It implements error and matches ErrValidationFailed with errors.Is.
type ValidationErrors []ValidationError

// Error joins the full messages, grouped by attribute in first-seen order.
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	var b strings.Builder
	b.WriteString(ErrValidationFailed.Error())
	b.WriteString(": ")
	for i, field := range ve.Fields() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(field)
		b.WriteByte(' ')
		b.WriteString(strings.Join(ve.Get(field), ", "))
	}
	return b.String()
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	return slices.ContainsFunc(ve, func(e ValidationError) bool { return e.Field == field })
}

// Get returns the messages of field in insertion order.
func (ve ValidationErrors) Get(field string) []string {
	var out []string
	for _, e := range ve {
		if e.Field == field {
			out = append(out, e.Message)
		}
	}
	return out
}

// Keys returns the translation keys of field in insertion order.
func (ve ValidationErrors) Keys(field string) []string {
	var out []string
	for _, e := range ve {
		if e.Field == field {
			out = append(out, e.TranslationKey)
		}
	}
	return out
}

// Fields lists the failing attributes in the order they first failed.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	for _, e := range ve {
		if !slices.Contains(fields, e.Field) {
			fields = append(fields, e.Field)
		}
	}
	return fields
}

// Messages groups messages by attribute.
func (ve ValidationErrors) Messages() map[string][]string {
	if len(ve) == 0 {
		return nil
	}
	out := make(map[string][]string, len(ve))
	for _, e := range ve {
		out[e.Field] = append(out[e.Field], e.Message)
	}
	return out
}

// FullMessages returns every message prefixed with its attribute.
func (ve ValidationErrors) FullMessages() []string {
	out := make([]string, 0, len(ve))
	for _, e := range ve {
		out = append(out, e.FullMessage())
	}
	return out
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// ExtractValidationErrors unwraps err to its ValidationErrors, or returns nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}
