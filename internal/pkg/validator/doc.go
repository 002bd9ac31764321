// Package validator provides a small validation abstraction for request and
// domain structs.
//
// Business code should depend on the Validator interface so validation can be
// shared and tested consistently. The concrete implementation wraps
// go-playground/validator v10.
package validator

// Validator validates a struct against its `validate` tags.
type Validator interface {
	Validate(data any) error
}
