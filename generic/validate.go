/*
validate.go - Shared struct validation

PURPOSE:
  One validator instance for the whole engine. Domain packages declare
  rules with struct tags; CheckStruct turns the validator's output into
  the engine's FieldsError, listing EVERY violated field rather than
  failing on the first.

USAGE:
  type Onboarding struct {
      Name string `validate:"required"`
      ...
  }
  if err := generic.CheckStruct("employee", in); err != nil {
      return err // *FieldsError wrapping ErrInvalidInput
  }
*/
package generic

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CheckStruct validates s against its struct tags. On failure it returns
// a *FieldsError naming every violated field.
func CheckStruct(entity string, s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, ve := range verrs {
		fields = append(fields, ve.Field())
	}
	return &FieldsError{Entity: entity, Fields: fields}
}
