package validator

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// CoordinateOptions configures LatitudeValidator and LongitudeValidator.
type CoordinateOptions struct {
	Message string
	Catalog Catalog
}

// RangeValidator accepts real numbers within [min, max].
type RangeValidator struct {
	min, max float64
	key      string
	message  string
	catalog  Catalog
}

// NewLatitudeValidator accepts values in [-90, 90].
func NewLatitudeValidator(opts CoordinateOptions) *RangeValidator {
	return &RangeValidator{min: -90, max: 90, key: KeyLatitude, message: opts.Message, catalog: opts.Catalog}
}

// NewLongitudeValidator accepts values in [-180, 180].
func NewLongitudeValidator(opts CoordinateOptions) *RangeValidator {
	return &RangeValidator{min: -180, max: 180, key: KeyLongitude, message: opts.Message, catalog: opts.Catalog}
}

func (v *RangeValidator) ValidateEach(record Record, attribute string, value any) {
	if v.Valid(value) {
		return
	}
	report(record, attribute, v.message, v.catalog, v.key, map[string]any{
		"attribute": attribute,
		"min":       v.min,
		"max":       v.max,
	})
}

func (v *RangeValidator) Valid(value any) bool {
	f, ok := toFloat(value)
	return ok && f >= v.min && f <= v.max
}

// toFloat coerces numbers and numeric strings. NaN and infinities are rejected.
func toFloat(value any) (float64, bool) {
	if isAbsent(value) {
		return 0, false
	}
	value = deref(value)

	var f float64
	rv := reflect.ValueOf(value)
	if n, ok := toNumber(rv); ok {
		f = n.float()
	} else if rv.Kind() == reflect.String {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	} else {
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
