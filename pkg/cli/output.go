package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Hareramrai/missing-validators/pkg/validator"
)

type outputFormat string

const (
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(s); f {
	case formatJSON, formatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format: %q", s)
}

type resultError struct {
	Field   string `json:"field" yaml:"field"`
	Message string `json:"message" yaml:"message"`
	Key     string `json:"key,omitempty" yaml:"key,omitempty"`
}

type result struct {
	Valid  bool          `json:"valid" yaml:"valid"`
	Locale string        `json:"locale" yaml:"locale"`
	Errors []resultError `json:"errors" yaml:"errors"`
}

func newResult(locale string, errs validator.ValidationErrors) result {
	r := result{
		Valid:  errs.IsEmpty(),
		Locale: locale,
		Errors: make([]resultError, 0, len(errs)),
	}
	for _, e := range errs {
		r.Errors = append(r.Errors, resultError{
			Field:   e.Field,
			Message: e.Message,
			Key:     e.TranslationKey,
		})
	}
	return r
}

func writeResult(w io.Writer, format outputFormat, r result) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
}
