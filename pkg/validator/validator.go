package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/medicore/hms-api/pkg/errors"
)

// Validator validates request structs against their validate tags.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate returns a ValidationError describing the first failing field.
func (va *Validator) Validate(obj interface{}) error {
	err := va.v.Struct(obj)
	if err == nil {
		return nil
	}
	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return errors.Validation("field " + fe.Field() + " failed on " + fe.Tag())
	}
	return errors.Validation(err.Error())
}
