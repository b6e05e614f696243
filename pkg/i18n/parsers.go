package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes translation file content into language -> nested key map.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension accepts extensions with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// YAMLParser reads documents rooted at language codes:
//
//	en:
//	  errors:
//	    messages:
//	      url: "is not a valid URL"
type YAMLParser struct{ codec }

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{codec{
		name:       "yaml",
		extensions: []string{"yaml", "yml"},
		unmarshal:  yaml.Unmarshal,
	}}
}

// JSONParser reads objects rooted at language codes. Non-object roots such
// as {"version": 1} are skipped.
type JSONParser struct{ codec }

func NewJSONParser() *JSONParser {
	return &JSONParser{codec{
		name:        "json",
		extensions:  []string{"json"},
		unmarshal:   json.Unmarshal,
		skipScalars: true,
	}}
}

// NewParserForFile returns a parser for the file extension, or nil.
func NewParserForFile(filename string) Parser {
	ext := path.Ext(filename)
	for _, p := range []Parser{NewYAMLParser(), NewJSONParser()} {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

type codec struct {
	name        string
	extensions  []string
	unmarshal   func([]byte, any) error
	skipScalars bool
}

func (c codec) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var root map[string]any
	if err := c.unmarshal([]byte(content), &root); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidContent, c.name, err)
	}

	langs := make(map[string]map[string]any, len(root))
	for lang, v := range root {
		tree, ok := v.(map[string]any)
		if !ok {
			if c.skipScalars {
				continue
			}
			return nil, fmt.Errorf("%w: %s: language %q holds %T, want a map", ErrInvalidContent, c.name, lang, v)
		}
		langs[lang] = tree
	}

	if len(langs) == 0 && !c.skipScalars {
		return nil, fmt.Errorf("%w: %s: no languages found", ErrInvalidContent, c.name)
	}
	return langs, nil
}

func (c codec) SupportsFileExtension(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	return slices.Contains(c.extensions, ext)
}
