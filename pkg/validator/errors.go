package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNoRelation is returned when an inequality validator is configured without any relation.
	ErrNoRelation = errors.New("inequality validator requires at least one relation")

	// ErrIncomparable is returned when two values cannot be compared with the requested operator.
	ErrIncomparable = errors.New("values are not comparable")

	// ErrNilRecord is returned when a nil record is passed to the runner.
	ErrNilRecord = errors.New("record is nil")
)
