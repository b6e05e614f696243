// Package ruleset decodes declarative validation rules from YAML and
// compiles them into validator.Validation values.
//
//	rules:
//	  - attribute: website
//	    url: {scheme: [https], domain: com, root: true}
//	  - attribute: age
//	    inequality: {greater_than_or_equal_to: 18}
//	  - attribute: start_date
//	    inequality: {less_than: {attribute: end_date}}
//	  - attribute: lat
//	    latitude: true
//
// Each rule names one attribute and exactly one validator. Rules for the
// same attribute run in file order. Unknown keys are ignored.
package ruleset

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Hareramrai/missing-validators/pkg/validator"
)

var (
	ErrInvalidRule    = errors.New("invalid rule")
	ErrFailedToRead   = errors.New("failed to read rule file")
	ErrFailedToDecode = errors.New("failed to decode rule file")
)

// File is the top-level document of a rule file.
type File struct {
	Rules []Rule `yaml:"rules"`
}

// Rule binds one validator to an attribute. A validator key with no value
// (latitude:) or true (latitude: true) enables it without options; false
// leaves it off.
type Rule struct {
	Attribute  string          `yaml:"attribute"`
	URL        *URLRule        `yaml:"url"`
	Email      *EmailRule      `yaml:"email"`
	MACAddress *MessageRule    `yaml:"mac_address"`
	Latitude   *MessageRule    `yaml:"latitude"`
	Longitude  *MessageRule    `yaml:"longitude"`
	Inequality *InequalityRule `yaml:"inequality"`
}

func (r *Rule) UnmarshalYAML(node *yaml.Node) error {
	type plain Rule
	if err := node.Decode((*plain)(r)); err != nil {
		return err
	}
	eachNull(node, func(key string) {
		switch key {
		case "url":
			r.URL = &URLRule{}
		case "email":
			r.Email = &EmailRule{}
		case "mac_address":
			r.MACAddress = &MessageRule{}
		case "latitude":
			r.Latitude = &MessageRule{}
		case "longitude":
			r.Longitude = &MessageRule{}
		case "inequality":
			r.Inequality = &InequalityRule{}
		}
	})
	return nil
}

type MessageRule struct {
	Message string `yaml:"message"`
	off     bool
}

func (m *MessageRule) UnmarshalYAML(node *yaml.Node) error {
	if on, ok, err := boolScalar(node); ok {
		m.off = !on
		return err
	}
	type plain MessageRule
	return node.Decode((*plain)(m))
}

func (m *MessageRule) enabled() bool { return m != nil && !m.off }

type URLRule struct {
	Domain  StringList `yaml:"domain"`
	Scheme  StringList `yaml:"scheme"`
	Root    bool       `yaml:"root"`
	Message string     `yaml:"message"`
	off     bool
}

func (u *URLRule) UnmarshalYAML(node *yaml.Node) error {
	if on, ok, err := boolScalar(node); ok {
		u.off = !on
		return err
	}
	type plain URLRule
	return node.Decode((*plain)(u))
}

func (u *URLRule) enabled() bool { return u != nil && !u.off }

type EmailRule struct {
	Domain  StringList `yaml:"domain"`
	Message string     `yaml:"message"`
	off     bool
}

func (e *EmailRule) UnmarshalYAML(node *yaml.Node) error {
	if on, ok, err := boolScalar(node); ok {
		e.off = !on
		return err
	}
	type plain EmailRule
	return node.Decode((*plain)(e))
}

func (e *EmailRule) enabled() bool { return e != nil && !e.off }

type InequalityRule struct {
	GreaterThan          *Operand `yaml:"greater_than"`
	GreaterThanOrEqualTo *Operand `yaml:"greater_than_or_equal_to"`
	EqualTo              *Operand `yaml:"equal_to"`
	LessThan             *Operand `yaml:"less_than"`
	LessThanOrEqualTo    *Operand `yaml:"less_than_or_equal_to"`
	OtherThan            *Operand `yaml:"other_than"`
	ReportAll            bool     `yaml:"report_all"`
	Message              string   `yaml:"message"`
}

// UnmarshalYAML decodes a null relation (equal_to: ~) as Value(nil).
func (q *InequalityRule) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: inequality must be a mapping", ErrInvalidRule, node.Line)
	}
	type plain InequalityRule
	if err := node.Decode((*plain)(q)); err != nil {
		return err
	}
	eachNull(node, func(key string) {
		if dst := q.relation(key); dst != nil {
			*dst = &Operand{operand: validator.Value(nil)}
		}
	})
	return nil
}

func (q *InequalityRule) relation(key string) **Operand {
	switch key {
	case "greater_than":
		return &q.GreaterThan
	case "greater_than_or_equal_to":
		return &q.GreaterThanOrEqualTo
	case "equal_to":
		return &q.EqualTo
	case "less_than":
		return &q.LessThan
	case "less_than_or_equal_to":
		return &q.LessThanOrEqualTo
	case "other_than":
		return &q.OtherThan
	}
	return nil
}

// eachNull calls fn with every key of mapping node whose value is null.
func eachNull(node *yaml.Node, fn func(key string)) {
	if node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if v := node.Content[i+1]; v.Kind == yaml.ScalarNode && v.ShortTag() == "!!null" {
			fn(node.Content[i].Value)
		}
	}
}

// boolScalar reports whether node is a YAML boolean and its value.
func boolScalar(node *yaml.Node) (on, ok bool, err error) {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!bool" {
		return false, false, nil
	}
	err = node.Decode(&on)
	return on, true, err
}

// StringList accepts a single scalar or a sequence of scalars.
type StringList []string

func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*l = StringList{s}
		return nil
	}
	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*l = list
	return nil
}

// Operand is a literal scalar, {value: x} (which allows null) or {attribute: name}.
type Operand struct {
	operand *validator.Operand
}

func (o *Operand) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		var m struct {
			Attribute string    `yaml:"attribute"`
			Value     yaml.Node `yaml:"value"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		switch {
		case m.Attribute != "":
			o.operand = validator.Attr(m.Attribute)
			return nil
		case m.Value.Kind != 0:
			var v any
			if err := m.Value.Decode(&v); err != nil {
				return err
			}
			o.operand = validator.Value(v)
			return nil
		}
		return fmt.Errorf("%w: line %d: operand needs attribute or value", ErrInvalidRule, node.Line)
	}

	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	o.operand = validator.Value(v)
	return nil
}

func (o *Operand) target() *validator.Operand {
	if o == nil {
		return nil
	}
	return o.operand
}

// Parse decodes a rule document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Join(ErrFailedToDecode, err)
	}
	return &f, nil
}

// Load reads and decodes the rule file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToRead, err)
	}
	return Parse(data)
}

// Compile builds validations in rule order. A nil catalog uses validator.DefaultCatalog.
func (f *File) Compile(catalog validator.Catalog) ([]validator.Validation, error) {
	validations := make([]validator.Validation, 0, len(f.Rules))
	for i, r := range f.Rules {
		v, err := r.build(catalog)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i+1, r.Attribute, err)
		}
		validations = append(validations, validator.Validates(r.Attribute, v))
	}
	return validations, nil
}

func (r Rule) build(catalog validator.Catalog) (validator.Validator, error) {
	if r.Attribute == "" {
		return nil, fmt.Errorf("%w: attribute is required", ErrInvalidRule)
	}

	var built []validator.Validator
	if r.URL.enabled() {
		built = append(built, validator.NewURLValidator(validator.URLOptions{
			Domain:  r.URL.Domain,
			Scheme:  r.URL.Scheme,
			Root:    r.URL.Root,
			Message: r.URL.Message,
			Catalog: catalog,
		}))
	}
	if r.Email.enabled() {
		built = append(built, validator.NewEmailValidator(validator.EmailOptions{
			Domain:  r.Email.Domain,
			Message: r.Email.Message,
			Catalog: catalog,
		}))
	}
	if r.MACAddress.enabled() {
		built = append(built, validator.NewMACAddressValidator(validator.MACAddressOptions{
			Message: r.MACAddress.Message,
			Catalog: catalog,
		}))
	}
	if r.Latitude.enabled() {
		built = append(built, validator.NewLatitudeValidator(validator.CoordinateOptions{
			Message: r.Latitude.Message,
			Catalog: catalog,
		}))
	}
	if r.Longitude.enabled() {
		built = append(built, validator.NewLongitudeValidator(validator.CoordinateOptions{
			Message: r.Longitude.Message,
			Catalog: catalog,
		}))
	}
	if q := r.Inequality; q != nil {
		v, err := validator.NewInequalityValidator(validator.InequalityOptions{
			GreaterThan:          q.GreaterThan.target(),
			GreaterThanOrEqualTo: q.GreaterThanOrEqualTo.target(),
			EqualTo:              q.EqualTo.target(),
			LessThan:             q.LessThan.target(),
			LessThanOrEqualTo:    q.LessThanOrEqualTo.target(),
			OtherThan:            q.OtherThan.target(),
			ReportAll:            q.ReportAll,
			Message:              q.Message,
			Catalog:              catalog,
		})
		if err != nil {
			return nil, err
		}
		built = append(built, v)
	}

	switch len(built) {
	case 0:
		return nil, fmt.Errorf("%w: no validator configured", ErrInvalidRule)
	case 1:
		return built[0], nil
	}
	return nil, fmt.Errorf("%w: exactly one validator per rule, got %d", ErrInvalidRule, len(built))
}
