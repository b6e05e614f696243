package validator

import (
	"errors"
	"fmt"
)

// Operand is the target of a relation: either a literal value or a
// reference to another attribute of the same record.
type Operand struct {
	value     any
	attribute string
	ref       bool
}

// Value returns a literal operand. Value(nil) compares against the absent marker.
func Value(v any) *Operand {
	return &Operand{value: v}
}

// Attr returns an operand resolved to the named attribute at validation time.
// An unset attribute resolves to the absent marker.
func Attr(name string) *Operand {
	return &Operand{attribute: name, ref: true}
}

// IsAttribute reports whether the operand references another attribute.
func (o *Operand) IsAttribute() bool {
	return o.ref
}

// String renders the operand for messages: the attribute name or the literal value.
func (o *Operand) String() string {
	if o.ref {
		return o.attribute
	}
	if isAbsent(o.value) {
		return "nil"
	}
	return fmt.Sprint(deref(o.value))
}

func (o *Operand) resolve(record Record) any {
	if !o.ref {
		return o.value
	}
	v, ok := record.Attribute(o.attribute)
	if !ok {
		return nil
	}
	return v
}

// InequalityOptions configures an InequalityValidator. Every non-nil relation
// must hold. At least one relation is required.
type InequalityOptions struct {
	GreaterThan          *Operand
	GreaterThanOrEqualTo *Operand
	EqualTo              *Operand
	LessThan             *Operand
	LessThanOrEqualTo    *Operand
	OtherThan            *Operand

	// ReportAll records one message per failing relation instead of stopping at the first.
	ReportAll bool

	Message string
	Catalog Catalog
}

type operator struct {
	key   string
	holds func(c int) bool
	// equality operators never need an ordering.
	equality bool
	negate   bool
}

var (
	opGreaterThan          = operator{key: KeyGreaterThan, holds: func(c int) bool { return c > 0 }}
	opGreaterThanOrEqualTo = operator{key: KeyGreaterThanOrEqualTo, holds: func(c int) bool { return c >= 0 }}
	opEqualTo              = operator{key: KeyEqualTo, equality: true}
	opLessThan             = operator{key: KeyLessThan, holds: func(c int) bool { return c < 0 }}
	opLessThanOrEqualTo    = operator{key: KeyLessThanOrEqualTo, holds: func(c int) bool { return c <= 0 }}
	opOtherThan            = operator{key: KeyOtherThan, equality: true, negate: true}
)

type relation struct {
	op     operator
	target *Operand
}

// check reports whether the relation holds between value and target.
func (r relation) check(value, target any) (bool, error) {
	if r.op.equality {
		eq, err := equalValues(value, target)
		if err != nil {
			return false, err
		}
		return eq != r.op.negate, nil
	}

	if isAbsent(value) || isAbsent(target) {
		return false, ErrIncomparable
	}
	c, err := compareValues(value, target)
	if err != nil {
		return false, err
	}
	return r.op.holds(c), nil
}

// InequalityValidator asserts relations between an attribute and literal
// values or sibling attributes.
type InequalityValidator struct {
	relations []relation
	reportAll bool
	message   string
	catalog   Catalog
}

// NewInequalityValidator returns ErrNoRelation when opts names no relation.
func NewInequalityValidator(opts InequalityOptions) (*InequalityValidator, error) {
	candidates := []relation{
		{opGreaterThan, opts.GreaterThan},
		{opGreaterThanOrEqualTo, opts.GreaterThanOrEqualTo},
		{opEqualTo, opts.EqualTo},
		{opLessThan, opts.LessThan},
		{opLessThanOrEqualTo, opts.LessThanOrEqualTo},
		{opOtherThan, opts.OtherThan},
	}

	v := &InequalityValidator{
		reportAll: opts.ReportAll,
		message:   opts.Message,
		catalog:   opts.Catalog,
	}
	for _, r := range candidates {
		if r.target != nil {
			v.relations = append(v.relations, r)
		}
	}
	if len(v.relations) == 0 {
		return nil, ErrNoRelation
	}
	return v, nil
}

// MustInequalityValidator is like NewInequalityValidator but panics on misconfiguration.
func MustInequalityValidator(opts InequalityOptions) *InequalityValidator {
	v, err := NewInequalityValidator(opts)
	if err != nil {
		panic(err)
	}
	return v
}

func (v *InequalityValidator) ValidateEach(record Record, attribute string, value any) {
	for _, r := range v.relations {
		ok, err := r.check(value, r.target.resolve(record))
		if ok {
			continue
		}

		key := r.op.key
		if errors.Is(err, ErrIncomparable) {
			key = KeyIncomparable
		}
		target := r.target.String()
		report(record, attribute, v.message, v.catalog, key, map[string]any{
			"attribute": attribute,
			"count":     target,
			"target":    target,
		})

		if !v.reportAll {
			return
		}
	}
}
