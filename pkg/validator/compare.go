package validator

import (
	"cmp"
	"math"
	"reflect"
	"strings"
	"time"
)

// Comparer lets custom types take part in ordering relations. CompareTo
// returns the sign of receiver minus other and false when other is not a
// value the receiver can be ordered against.
type Comparer interface {
	CompareTo(other any) (int, bool)
}

// isAbsent reports whether v is the "no value" marker: untyped nil or a nil pointer/interface.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// deref unwraps non-nil pointers so *int and int compare alike.
func deref(v any) any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

// compareValues orders a against b. Both must be present.
func compareValues(a, b any) (int, error) {
	if c, ok := a.(Comparer); ok {
		if n, ok := c.CompareTo(b); ok {
			return n, nil
		}
		return 0, ErrIncomparable
	}
	if c, ok := b.(Comparer); ok {
		if n, ok := c.CompareTo(a); ok {
			return -n, nil
		}
		return 0, ErrIncomparable
	}

	a, b = deref(a), deref(b)

	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb), nil
		}
		return 0, ErrIncomparable
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)

	if va.Kind() == reflect.String && vb.Kind() == reflect.String {
		return strings.Compare(va.String(), vb.String()), nil
	}

	na, okA := toNumber(va)
	nb, okB := toNumber(vb)
	if okA && okB {
		return compareNumbers(na, nb)
	}

	return 0, ErrIncomparable
}

// equalValues reports whether a equals b. Two absent values are equal, an
// absent and a present value are not.
func equalValues(a, b any) (bool, error) {
	absentA, absentB := isAbsent(a), isAbsent(b)
	if absentA || absentB {
		return absentA == absentB, nil
	}

	if c, err := compareValues(a, b); err == nil {
		return c == 0, nil
	}

	a, b = deref(a), deref(b)
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false, ErrIncomparable
	}
	// Comparable on the value, not the type: an interface field may hold a slice.
	if reflect.ValueOf(a).Comparable() && reflect.ValueOf(b).Comparable() {
		return a == b, nil
	}
	return reflect.DeepEqual(a, b), nil
}

type numberKind int

const (
	signedKind numberKind = iota
	unsignedKind
	floatKind
)

type number struct {
	kind numberKind
	i    int64
	u    uint64
	f    float64
}

func toNumber(v reflect.Value) (number, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{kind: signedKind, i: v.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{kind: unsignedKind, u: v.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return number{kind: floatKind, f: v.Float()}, true
	}
	return number{}, false
}

func (n number) float() float64 {
	switch n.kind {
	case signedKind:
		return float64(n.i)
	case unsignedKind:
		return float64(n.u)
	}
	return n.f
}

func compareNumbers(a, b number) (int, error) {
	switch {
	case a.kind == signedKind && b.kind == signedKind:
		return cmp.Compare(a.i, b.i), nil
	case a.kind == unsignedKind && b.kind == unsignedKind:
		return cmp.Compare(a.u, b.u), nil
	case a.kind == signedKind && b.kind == unsignedKind:
		if a.i < 0 {
			return -1, nil
		}
		return cmp.Compare(uint64(a.i), b.u), nil
	case a.kind == unsignedKind && b.kind == signedKind:
		if b.i < 0 {
			return 1, nil
		}
		return cmp.Compare(a.u, uint64(b.i)), nil
	}

	fa, fb := a.float(), b.float()
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return 0, ErrIncomparable
	}
	return cmp.Compare(fa, fb), nil
}
