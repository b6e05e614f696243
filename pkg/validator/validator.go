package validator

// Validator checks one attribute value. A rejected value appends a message
// to record.Errors() under attribute; validators never return errors for bad
// values and never clear earlier messages.
type Validator interface {
	ValidateEach(record Record, attribute string, value any)
}

// ValidatorFunc lets an ordinary function act as a Validator.
type ValidatorFunc func(record Record, attribute string, value any)

func (f ValidatorFunc) ValidateEach(record Record, attribute string, value any) {
	f(record, attribute, value)
}
