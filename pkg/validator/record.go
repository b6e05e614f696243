package validator

import (
	"maps"
	"sync"
)

// Record is the host object being validated. Attribute returns the current
// value of the named attribute and whether it is set at all.
type Record interface {
	Attribute(name string) (any, bool)
	Errors() *Errors
}

// Errors collects validation messages keyed by attribute name. Appends are
// serialized, never deduplicated and never cleared by validators.
type Errors struct {
	mu    sync.Mutex
	items ValidationErrors
}

// Add appends err to the list of its field.
func (e *Errors) Add(err ValidationError) {
	e.mu.Lock()
	e.items = append(e.items, err)
	e.mu.Unlock()
}

// Get returns the messages recorded for attribute in insertion order.
func (e *Errors) Get(attribute string) []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.items.Get(attribute)
}

func (e *Errors) Has(attribute string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.items.Has(attribute)
}

func (e *Errors) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.items)
}

// All returns a copy of every recorded error.
func (e *Errors) All() ValidationErrors {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.items) == 0 {
		return nil
	}
	out := make(ValidationErrors, len(e.items))
	copy(out, e.items)
	return out
}

// Err returns the recorded errors as ValidationErrors, or nil when empty.
func (e *Errors) Err() error {
	if all := e.All(); len(all) > 0 {
		return all
	}
	return nil
}

func (e *Errors) merge(from *Errors) {
	for _, err := range from.All() {
		e.Add(err)
	}
}

// MapRecord is a Record backed by a map snapshot of attribute values.
type MapRecord struct {
	values map[string]any
	errs   Errors
}

// NewMapRecord copies values into a new record.
func NewMapRecord(values map[string]any) *MapRecord {
	return &MapRecord{values: maps.Clone(values)}
}

func (r *MapRecord) Attribute(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

func (r *MapRecord) Errors() *Errors {
	return &r.errs
}

// bufferedRecord reads through to its parent but collects errors locally.
type bufferedRecord struct {
	parent Record
	errs   Errors
}

func (r *bufferedRecord) Attribute(name string) (any, bool) {
	return r.parent.Attribute(name)
}

func (r *bufferedRecord) Errors() *Errors {
	return &r.errs
}
